package pulse

import (
	"github.com/oliverbestmann/raiders/glm"
	"github.com/oliverbestmann/webgpu/wgpu"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)

// Color is a straight rgba color value in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ToVec returns the components of this Color in linear rgb space.
func (c Color) ToVec() glm.Vec4f {
	return glm.Vec4f{
		c.r1 + 1,
		c.g1 + 1,
		c.b1 + 1,
		c.a1 + 1,
	}
}

func (c Color) ToWGPU() wgpu.Color {
	r, g, b, a := c.ToVec().XYZW()

	return wgpu.Color{
		R: float64(r),
		G: float64(g),
		B: float64(b),
		A: float64(a),
	}
}
