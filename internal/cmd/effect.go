package cmd

import (
	"log/slog"

	"github.com/seagrayinc/g403-led/hidpp"
	"github.com/seagrayinc/g403-led/internal/color"
)

// EffectCmd groups the lighting effect subcommands.
type EffectCmd struct {
	Fixed   EffectFixedCmd   `cmd:"" help:"Light up in a single color"`
	Breathe EffectBreatheCmd `cmd:"" help:"Pulse a single color"`
	Cycle   EffectCycleCmd   `cmd:"" help:"Cycle through the color spectrum"`
}

// EffectFixedCmd is equivalent to the top-level color command.
type EffectFixedCmd struct {
	Color      string `arg:"" help:"Color name or RRGGBB hex value"`
	Brightness int    `help:"Brightness percentage to apply as well" default:"-1"`
}

// Run is called by Kong when the effect fixed command is executed.
func (c *EffectFixedCmd) Run(logger *slog.Logger, device *DeviceFlags) error {
	r, g, b, err := color.Parse(c.Color)
	if err != nil {
		return err
	}
	effect, err := hidpp.NewFixedColor(r, g, b)
	if err != nil {
		return err
	}
	return runEffect(effect, c.Brightness, logger, device)
}

// EffectBreatheCmd pulses a color at a configurable period.
type EffectBreatheCmd struct {
	Color      string `arg:"" help:"Color name or RRGGBB hex value"`
	Speed      int    `help:"Effect period in milliseconds" default:"5000" env:"G403CTL_EFFECT_SPEED"`
	Brightness int    `help:"Brightness percentage to apply as well" default:"-1"`
}

// Run is called by Kong when the effect breathe command is executed.
func (c *EffectBreatheCmd) Run(logger *slog.Logger, device *DeviceFlags) error {
	r, g, b, err := color.Parse(c.Color)
	if err != nil {
		return err
	}
	effect, err := hidpp.NewBreathe(r, g, b, c.Speed)
	if err != nil {
		return err
	}
	return runEffect(effect, c.Brightness, logger, device)
}

// EffectCycleCmd rotates through the spectrum at a configurable period.
type EffectCycleCmd struct {
	Speed      int `help:"Effect period in milliseconds" default:"5000" env:"G403CTL_EFFECT_SPEED"`
	Brightness int `help:"Brightness percentage to apply as well" default:"-1"`
}

// Run is called by Kong when the effect cycle command is executed.
func (c *EffectCycleCmd) Run(logger *slog.Logger, device *DeviceFlags) error {
	effect, err := hidpp.NewCycle(c.Speed)
	if err != nil {
		return err
	}
	return runEffect(effect, c.Brightness, logger, device)
}

// runEffect connects, applies the effect, and optionally sets the overall
// brightness on top. A negative brightness means "leave it alone".
func runEffect(effect hidpp.Effect, brightness int, logger *slog.Logger, device *DeviceFlags) error {
	conn, err := connect(device, logger)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.SetEffect(effect); err != nil {
		return err
	}
	if brightness >= 0 {
		return conn.SetBrightness(brightness)
	}
	return nil
}
