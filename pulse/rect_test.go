package pulse

import (
	"testing"

	"github.com/oliverbestmann/raiders/glm"
)

func TestRectangleContains(t *testing.T) {
	outer := RectangleFromSize(glm.Vec2u{0, 0}, glm.Vec2u{64, 32})

	tests := []struct {
		name  string
		inner Rectangle2u
		want  bool
	}{
		{"self", outer, true},
		{"inside", RectangleFromSize(glm.Vec2u{8, 8}, glm.Vec2u{16, 16}), true},
		{"too wide", RectangleFromSize(glm.Vec2u{0, 0}, glm.Vec2u{65, 32}), false},
		{"offset out", RectangleFromSize(glm.Vec2u{60, 0}, glm.Vec2u{8, 8}), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Contains(tc.inner); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.inner, got, tc.want)
			}
		})
	}
}

func TestRectangleSize(t *testing.T) {
	r := RectangleFromSize(glm.Vec2u{2, 3}, glm.Vec2u{10, 20})

	if r.Width() != 10 || r.Height() != 20 {
		t.Errorf("size = %vx%v, want 10x20", r.Width(), r.Height())
	}

	if r.Max != (glm.Vec2u{12, 23}) {
		t.Errorf("max = %v, want [12 23]", r.Max)
	}
}
