package hidpp

// Effect is a lighting effect that can encode itself as a command report.
// The implementations are FixedColor, Breathe and Cycle; each carries only
// the fields its mode uses.
type Effect interface {
	// Encode builds the 20-byte command report for the effect.
	Encode() ([]byte, error)
}

// FixedColor is a solid color effect.
type FixedColor struct {
	R, G, B int
}

// NewFixedColor validates the color components and returns the effect.
func NewFixedColor(r, g, b int) (FixedColor, error) {
	if err := validateColor(r, g, b); err != nil {
		return FixedColor{}, err
	}
	return FixedColor{R: r, G: g, B: b}, nil
}

func (e FixedColor) Encode() ([]byte, error) {
	return EncodeFixedColor(e.R, e.G, e.B)
}

// Breathe pulses a single color with the given period.
type Breathe struct {
	R, G, B int
	SpeedMs int
}

// NewBreathe validates the color components and period and returns the
// effect.
func NewBreathe(r, g, b, speedMs int) (Breathe, error) {
	if err := validateColor(r, g, b); err != nil {
		return Breathe{}, err
	}
	if err := validateSpeed(speedMs); err != nil {
		return Breathe{}, err
	}
	return Breathe{R: r, G: g, B: b, SpeedMs: speedMs}, nil
}

func (e Breathe) Encode() ([]byte, error) {
	return EncodeBreathe(e.R, e.G, e.B, e.SpeedMs)
}

// Cycle rotates through the spectrum with the given period.
type Cycle struct {
	SpeedMs int
}

// NewCycle validates the period and returns the effect.
func NewCycle(speedMs int) (Cycle, error) {
	if err := validateSpeed(speedMs); err != nil {
		return Cycle{}, err
	}
	return Cycle{SpeedMs: speedMs}, nil
}

func (e Cycle) Encode() ([]byte, error) {
	return EncodeCycle(e.SpeedMs)
}
