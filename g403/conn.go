package g403

import (
	"fmt"
	"log/slog"

	"github.com/seagrayinc/g403-led/hidpp"
	"github.com/seagrayinc/g403-led/internal/hid"
)

// Options configure Connect. The zero value targets the G403 Prodigy and
// logs through slog.Default().
type Options struct {
	// VendorID and ProductID override the device identity. Zero values
	// fall back to the G403 defaults.
	VendorID  uint16
	ProductID uint16

	// Logger receives connection warnings.
	Logger *slog.Logger
}

func (o Options) vendorID() uint16 {
	if o.VendorID != 0 {
		return o.VendorID
	}
	return LogitechVID
}

func (o Options) productID() uint16 {
	if o.ProductID != 0 {
		return o.ProductID
	}
	return G403PID
}

// Conn is an open connection to the mouse's lighting interfaces. The LED
// handle is always valid on a connected Conn; the configuration handle may
// be absent, see Status.
type Conn struct {
	led    hid.Device
	config hid.Device
	status Status
	log    *slog.Logger
}

// Open connects to the device using the OS HID backend. It is the entry
// point for library consumers; Connect exists for callers that bring their
// own Manager.
func Open(opts Options) (*Conn, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create HID manager: %w", err)
	}
	return Connect(mgr, opts)
}

// Connect locates the device's sub-interfaces, opens them, and sends the
// initialization command. The LED interface is mandatory: without it
// Connect fails and no handle stays open. The configuration interface is
// best effort: when it is missing or its initialization write fails,
// Connect still succeeds, logs a warning, and records the condition in
// Status. Commands sent on such a degraded connection may be ignored by
// the firmware until it leaves onboard-memory mode.
func Connect(mgr hid.Manager, opts Options) (*Conn, error) {
	vid, pid := opts.vendorID(), opts.productID()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	candidates, err := Discover(mgr, vid, pid)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		_, detail := ProbeRawBus(vid, pid)
		return nil, fmt.Errorf("%w (VID:0x%04X PID:0x%04X): %s", ErrDeviceNotFound, vid, pid, detail)
	}

	var ledInfo, configInfo *hid.Info
	for i := range candidates {
		switch {
		case ledInfo == nil && IsLEDInterface(candidates[i].Path):
			ledInfo = &candidates[i]
		case configInfo == nil && IsConfigInterface(candidates[i].Path):
			configInfo = &candidates[i]
		}
	}
	if ledInfo == nil {
		return nil, fmt.Errorf("%w: %d interfaces matched VID:0x%04X PID:0x%04X but none contains %q",
			ErrLEDInterfaceMissing, len(candidates), vid, pid, markerLED)
	}

	led, err := mgr.Open(*ledInfo)
	if err != nil {
		return nil, fmt.Errorf("open LED interface %s: %w", ledInfo.Path, err)
	}

	c := &Conn{
		led: led,
		log: logger,
		status: Status{
			Connected: true,
			LEDPath:   ledInfo.Path,
		},
	}

	// Backends disagree on whether the reported length includes the report
	// ID byte, so only lengths that cannot carry the payload are flagged.
	if _, outLen, _ := c.led.ReportLens(); outLen != 0 && outLen < hidpp.ReportLength-1 {
		c.warn(fmt.Sprintf("LED interface reports %d-byte output reports, too short for the %d-byte commands", outLen, hidpp.ReportLength))
		c.log.Warn("LED output report length too short",
			slog.Int("reported", outLen),
			slog.Int("required", hidpp.ReportLength))
	}

	if configInfo == nil {
		c.warn("configuration interface not found; onboard memory was not disabled")
		c.log.Warn("configuration interface not found",
			slog.String("marker", markerConfig),
			slog.Int("candidates", len(candidates)))
		return c, nil
	}

	config, err := mgr.Open(*configInfo)
	if err != nil {
		c.warn(fmt.Sprintf("configuration interface could not be opened: %v", err))
		c.log.Warn("failed to open configuration interface",
			slog.String("path", configInfo.Path),
			slog.Any("error", err))
		return c, nil
	}
	c.config = config
	c.status.ConfigPath = configInfo.Path

	c.initialize()
	return c, nil
}

// warn records a connection warning, appending to any already recorded.
func (c *Conn) warn(msg string) {
	if c.status.Warning == "" {
		c.status.Warning = msg
		return
	}
	c.status.Warning += "; " + msg
}

// initialize sends the onboard-memory disable command on the configuration
// handle. Failure downgrades the connection instead of ending it; the LED
// handle keeps working either way.
func (c *Conn) initialize() {
	buf := hidpp.EncodeInit()
	if err := c.config.WriteOutput(buf[0], buf[1:]); err != nil {
		c.warn(fmt.Sprintf("initialization failed: %v", err))
		c.log.Warn("initialization command rejected",
			slog.String("path", c.status.ConfigPath),
			slog.Any("error", err))
		return
	}
	c.status.Initialized = true
}

// Send writes one command report to the LED interface.
func (c *Conn) Send(buf []byte) error {
	if c == nil || c.led == nil {
		return ErrNotConnected
	}
	if len(buf) != hidpp.ReportLength {
		return fmt.Errorf("g403: command must be %d bytes, got %d", hidpp.ReportLength, len(buf))
	}
	if err := c.led.WriteOutput(buf[0], buf[1:]); err != nil {
		return fmt.Errorf("write LED command: %w", err)
	}
	return nil
}

// SetColor sets a solid color.
func (c *Conn) SetColor(r, g, b int) error {
	buf, err := hidpp.EncodeFixedColor(r, g, b)
	if err != nil {
		return err
	}
	return c.Send(buf)
}

// SetEffect applies a lighting effect.
func (c *Conn) SetEffect(effect hidpp.Effect) error {
	buf, err := effect.Encode()
	if err != nil {
		return err
	}
	return c.Send(buf)
}

// SetBrightness sets the overall brightness in percent. The setting rides
// on top of the active effect and survives effect changes.
func (c *Conn) SetBrightness(percent int) error {
	buf, err := hidpp.EncodeBrightness(percent)
	if err != nil {
		return err
	}
	return c.Send(buf)
}

// Status returns a snapshot of the connection state.
func (c *Conn) Status() Status {
	if c == nil {
		return Status{}
	}
	return c.status
}

// Close releases both interface handles. It is idempotent: closing an
// already closed or never connected Conn returns nil.
func (c *Conn) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	if c.config != nil {
		if err := c.config.Close(); err != nil {
			firstErr = err
		}
		c.config = nil
	}
	if c.led != nil {
		if err := c.led.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.led = nil
	}
	c.status.Connected = false
	return firstErr
}
