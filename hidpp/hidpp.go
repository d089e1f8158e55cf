// Package hidpp builds the lighting command reports understood by Logitech
// G-series gaming mice. Commands are fixed-length vendor output reports in
// the long HID++ framing: a three byte header, a command type, a zone
// selector, and a positionally encoded payload. The byte layout was
// recovered from the vendor software's USB traffic; there is no public
// protocol document.
//
// All encoders are pure functions. They validate their inputs against the
// domains the firmware accepts and return a *ValidationError before any
// report is built; values are never clamped.
package hidpp

// Report framing constants.
const (
	// ReportLength is the exact size of every command report, including
	// the report ID at byte 0.
	ReportLength = 20

	// ReportIDLong is the HID++ long report ID, byte 0 of every lighting
	// command.
	ReportIDLong = 0x11

	// ReportIDShort is the HID++ short report ID used by the
	// initialization command.
	ReportIDShort = 0x10

	// DeviceIndex addresses the wired device itself (byte 1).
	DeviceIndex = 0xFF

	// FeatureIndex selects the onboard lighting feature (byte 2).
	FeatureIndex = 0x0E
)

// Command types (byte 3).
const (
	// CmdLEDControl carries an effect payload (fixed, cycle or breathe).
	CmdLEDControl = 0x1B

	// CmdBrightness carries a standalone brightness percentage.
	CmdBrightness = 0x11
)

// ZonePrimary is the only lighting zone the G403 exposes (byte 4).
const ZonePrimary = 0x00

// Effect mode selectors (byte 5 of a CmdLEDControl report).
const (
	ModeFixed   = 0x01
	ModeCycle   = 0x02
	ModeBreathe = 0x03
)

// Input domains enforced by the encoders.
const (
	// MinSpeedMs and MaxSpeedMs bound the effect period in milliseconds
	// for breathe and cycle. The firmware misbehaves below one second.
	MinSpeedMs = 1000
	MaxSpeedMs = 65535

	// MaxColorComponent is the ceiling for each RGB component.
	MaxColorComponent = 255

	// MaxBrightness is the brightness ceiling in percent.
	MaxBrightness = 100
)

// effectBrightness is the brightness scalar baked into effect payloads.
// Overall brightness is a separate command, see EncodeBrightness.
const effectBrightness = 0x64
