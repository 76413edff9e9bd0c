package glm

import "math"

// Rad is an angle in radians.
type Rad float32

func DegToRad[T numeric](deg T) Rad {
	return Rad(float64(deg) * (math.Pi / 180))
}
