package cmd

import (
	"log/slog"

	"github.com/seagrayinc/g403-led/internal/color"
)

// ColorCmd sets a fixed lighting color.
type ColorCmd struct {
	Color      string `arg:"" help:"Color name or RRGGBB hex value"`
	Brightness int    `help:"Brightness percentage to apply as well" default:"-1"`
}

// Run is called by Kong when the color command is executed.
func (c *ColorCmd) Run(logger *slog.Logger, device *DeviceFlags) error {
	r, g, b, err := color.Parse(c.Color)
	if err != nil {
		return err
	}

	conn, err := connect(device, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Debug("setting fixed color", "r", r, "g", g, "b", b)
	if err := conn.SetColor(r, g, b); err != nil {
		return err
	}
	if c.Brightness >= 0 {
		if err := conn.SetBrightness(c.Brightness); err != nil {
			return err
		}
	}
	return nil
}
