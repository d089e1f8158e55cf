// Package cmd implements the g403ctl command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/seagrayinc/g403-led/g403"
)

// CLI is the root command structure parsed by Kong.
type CLI struct {
	Color      ColorCmd      `cmd:"" help:"Set a fixed lighting color"`
	Effect     EffectCmd     `cmd:"" help:"Run a lighting effect"`
	Brightness BrightnessCmd `cmd:"" help:"Set the lighting brightness"`
	Status     StatusCmd     `cmd:"" help:"Show the device connection status"`
	Devices    DevicesCmd    `cmd:"" help:"List matching HID interfaces"`
	Config     ConfigCommand `cmd:"" help:"Manage configuration files"`

	Device DeviceFlags `embed:"" prefix:"device."`
	Log    LogFlags    `embed:"" prefix:"log."`

	ConfigPath string `name:"config" help:"Path to a configuration file" env:"G403CTL_CONFIG"`
}

// LogFlags configures logging output.
type LogFlags struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"G403CTL_LOG_LEVEL"`
	File  string `help:"Write logs to a file instead of the console" env:"G403CTL_LOG_FILE"`
}

// DeviceFlags selects which device to talk to. The defaults match the
// G403 Prodigy; other G-series mice speaking the same protocol can be
// targeted by overriding them.
type DeviceFlags struct {
	VendorID  string `help:"USB vendor ID as hex" default:"046d" env:"G403CTL_VENDOR_ID"`
	ProductID string `help:"USB product ID as hex" default:"c083" env:"G403CTL_PRODUCT_ID"`
}

// Identity parses the flag values into numeric USB IDs.
func (d *DeviceFlags) Identity() (vendorID, productID uint16, err error) {
	vid, err := parseHexID(d.VendorID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid vendor ID %q: %w", d.VendorID, err)
	}
	pid, err := parseHexID(d.ProductID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid product ID %q: %w", d.ProductID, err)
	}
	return vid, pid, nil
}

func parseHexID(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

// connect opens the device selected by the flags. Callers must Close
// the returned connection.
func connect(device *DeviceFlags, logger *slog.Logger) (*g403.Conn, error) {
	vid, pid, err := device.Identity()
	if err != nil {
		return nil, err
	}
	conn, err := g403.Open(g403.Options{
		VendorID:  vid,
		ProductID: pid,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	if st := conn.Status(); st.Degraded() {
		logger.Warn("connected in degraded mode", "warning", st.Warning)
	}
	return conn, nil
}
