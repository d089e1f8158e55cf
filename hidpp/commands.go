package hidpp

import "encoding/binary"

// EncodeFixedColor builds a solid color command.
//
// Report layout after the common header:
//
//	byte 5     mode (0x01)
//	bytes 6-8  red, green, blue
//	byte 16    effect enable flag (0x01)
//
// Returns the complete 20-byte report, or a *ValidationError if any color
// component is outside [0, 255].
func EncodeFixedColor(r, g, b int) ([]byte, error) {
	if err := validateColor(r, g, b); err != nil {
		return nil, err
	}

	buf := newLEDReport(ModeFixed)
	buf[6] = byte(r)
	buf[7] = byte(g)
	buf[8] = byte(b)
	return buf, nil
}

// EncodeBreathe builds a breathing (pulse) effect command.
//
// Report layout after the common header:
//
//	byte 5     mode (0x03)
//	bytes 6-8  red, green, blue
//	bytes 9-10 period in milliseconds, big-endian
//	byte 12    effect brightness scalar (0x64)
//	byte 16    effect enable flag (0x01)
//
// The period must be within [MinSpeedMs, MaxSpeedMs].
func EncodeBreathe(r, g, b, speedMs int) ([]byte, error) {
	if err := validateColor(r, g, b); err != nil {
		return nil, err
	}
	if err := validateSpeed(speedMs); err != nil {
		return nil, err
	}

	buf := newLEDReport(ModeBreathe)
	buf[6] = byte(r)
	buf[7] = byte(g)
	buf[8] = byte(b)
	binary.BigEndian.PutUint16(buf[9:11], uint16(speedMs))
	buf[12] = effectBrightness
	return buf, nil
}

// EncodeCycle builds a spectrum cycle effect command. The color bytes stay
// zero; the firmware rotates the hue itself.
//
// Report layout after the common header:
//
//	byte 5      mode (0x02)
//	bytes 11-12 period in milliseconds, big-endian
//	byte 13     effect brightness scalar (0x64)
//	byte 16     effect enable flag (0x01)
//
// The period must be within [MinSpeedMs, MaxSpeedMs].
func EncodeCycle(speedMs int) ([]byte, error) {
	if err := validateSpeed(speedMs); err != nil {
		return nil, err
	}

	buf := newLEDReport(ModeCycle)
	binary.BigEndian.PutUint16(buf[11:13], uint16(speedMs))
	buf[13] = effectBrightness
	return buf, nil
}

// EncodeBrightness builds a standalone brightness command. Brightness is
// applied on top of whatever effect is active and survives effect changes.
//
// Report layout after the common header:
//
//	byte 3  command type (0x11)
//	byte 5  brightness percent
//
// The percentage must be within [0, MaxBrightness].
func EncodeBrightness(percent int) ([]byte, error) {
	if percent < 0 || percent > MaxBrightness {
		return nil, &ValidationError{Field: "brightness", Value: percent, Min: 0, Max: MaxBrightness}
	}

	buf := make([]byte, ReportLength)
	buf[0] = ReportIDLong
	buf[1] = DeviceIndex
	buf[2] = FeatureIndex
	buf[3] = CmdBrightness
	buf[4] = ZonePrimary
	buf[5] = byte(percent)
	return buf, nil
}

// initCommand switches the lighting out of onboard-memory mode so host
// commands take effect immediately. Captured verbatim from the vendor
// software's startup traffic.
var initCommand = []byte{ReportIDShort, DeviceIndex, FeatureIndex, 0x5B, 0x01, 0x03, 0x05}

// EncodeInit builds the initialization report sent once on the
// configuration interface after connecting. The short command is
// zero-padded to the standard report length.
func EncodeInit() []byte {
	buf := make([]byte, ReportLength)
	copy(buf, initCommand)
	return buf
}

// newLEDReport allocates a report carrying the common LED control framing:
// long report header, LED command type, primary zone, the mode selector,
// and the enable flag the firmware requires at byte 16.
func newLEDReport(mode byte) []byte {
	buf := make([]byte, ReportLength)
	buf[0] = ReportIDLong
	buf[1] = DeviceIndex
	buf[2] = FeatureIndex
	buf[3] = CmdLEDControl
	buf[4] = ZonePrimary
	buf[5] = mode
	buf[16] = 0x01
	return buf
}

func validateColor(r, g, b int) error {
	components := []struct {
		field string
		value int
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
	}
	for _, c := range components {
		if c.value < 0 || c.value > MaxColorComponent {
			return &ValidationError{Field: c.field, Value: c.value, Min: 0, Max: MaxColorComponent}
		}
	}
	return nil
}

func validateSpeed(speedMs int) error {
	if speedMs < MinSpeedMs || speedMs > MaxSpeedMs {
		return &ValidationError{Field: "speed", Value: speedMs, Min: MinSpeedMs, Max: MaxSpeedMs}
	}
	return nil
}
