package pulse

import (
	"math"
	"testing"
)

func TestColorZeroValueIsWhite(t *testing.T) {
	var c Color
	if c != ColorWhite {
		t.Errorf("zero Color = %v, want white", c.ToVec())
	}
}

func TestColorToWGPU(t *testing.T) {
	got := ColorLinearRGBA(0.56, 0.50, 0.31, 1).ToWGPU()

	for name, pair := range map[string][2]float64{
		"r": {got.R, 0.56},
		"g": {got.G, 0.50},
		"b": {got.B, 0.31},
		"a": {got.A, 1},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-6 {
			t.Errorf("%s = %v, want %v", name, pair[0], pair[1])
		}
	}
}
