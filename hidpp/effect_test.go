package hidpp

import (
	"bytes"
	"testing"
)

func TestEffectEncodeMatchesFunctions(t *testing.T) {
	tests := []struct {
		name   string
		effect Effect
		direct func() ([]byte, error)
	}{
		{
			name:   "FixedColor",
			effect: FixedColor{R: 10, G: 20, B: 30},
			direct: func() ([]byte, error) { return EncodeFixedColor(10, 20, 30) },
		},
		{
			name:   "Breathe",
			effect: Breathe{R: 255, G: 0, B: 128, SpeedMs: 4000},
			direct: func() ([]byte, error) { return EncodeBreathe(255, 0, 128, 4000) },
		},
		{
			name:   "Cycle",
			effect: Cycle{SpeedMs: 10000},
			direct: func() ([]byte, error) { return EncodeCycle(10000) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromEffect, err := tt.effect.Encode()
			if err != nil {
				t.Fatalf("effect encode failed: %v", err)
			}
			fromFunc, err := tt.direct()
			if err != nil {
				t.Fatalf("direct encode failed: %v", err)
			}
			if !bytes.Equal(fromEffect, fromFunc) {
				t.Errorf("effect report differs from direct encoding:\n%x\n%x", fromEffect, fromFunc)
			}
		})
	}
}

func TestEffectConstructorsValidate(t *testing.T) {
	if _, err := NewFixedColor(0, 300, 0); !IsValidationError(err) {
		t.Errorf("NewFixedColor accepted green=300, err = %v", err)
	}
	if _, err := NewBreathe(0, 0, 0, 500); !IsValidationError(err) {
		t.Errorf("NewBreathe accepted speed=500, err = %v", err)
	}
	if _, err := NewCycle(70000); !IsValidationError(err) {
		t.Errorf("NewCycle accepted speed=70000, err = %v", err)
	}

	eff, err := NewBreathe(1, 2, 3, 1200)
	if err != nil {
		t.Fatalf("NewBreathe rejected valid input: %v", err)
	}
	if eff.R != 1 || eff.G != 2 || eff.B != 3 || eff.SpeedMs != 1200 {
		t.Errorf("constructed effect = %+v", eff)
	}
}
