package cmd

import (
	"log/slog"
)

// BrightnessCmd sets the lighting brightness.
type BrightnessCmd struct {
	Percent int `arg:"" help:"Brightness percentage (0-100)"`
}

// Run is called by Kong when the brightness command is executed.
func (c *BrightnessCmd) Run(logger *slog.Logger, device *DeviceFlags) error {
	conn, err := connect(device, logger)
	if err != nil {
		return err
	}
	defer conn.Close()
	return conn.SetBrightness(c.Percent)
}
