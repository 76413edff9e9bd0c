package raiders

import (
	"math"

	"github.com/oliverbestmann/raiders/glm"
)

const (
	// BoulderSpeed is the horizontal speed of the boulder in
	// boulder local units per second. The boulder is scaled by 3.
	BoulderSpeed = 0.59

	// BoulderSpin is the rotation speed of the boulder in degrees per second.
	// Negative values spin clockwise.
	BoulderSpin = -90.0

	// PlayerSpeed is the horizontal speed of the player in world units per second.
	PlayerSpeed = 1.45
)

// Scene holds the animation state of both sprites.
type Scene struct {
	PlayerX         float32
	BoulderX        float32
	BoulderRotation float32 // degrees

	BoulderModel glm.Mat4f
	PlayerModel  glm.Mat4f
}

func NewScene() *Scene {
	s := &Scene{}
	s.UpdateTransforms()
	return s
}

// Advance moves the sprites forward by dt seconds and recomputes the
// model matrices. Negative or NaN dt is treated as zero.
func (s *Scene) Advance(dt float32) {
	if !(dt > 0) || math.IsInf(float64(dt), 0) {
		dt = 0
	}

	s.PlayerX += PlayerSpeed * dt
	s.BoulderX += BoulderSpeed * dt
	s.BoulderRotation += BoulderSpin * dt

	s.UpdateTransforms()
}

// UpdateTransforms recomputes both model matrices from the scalar state.
func (s *Scene) UpdateTransforms() {
	s.BoulderModel = BoulderTransform(s.BoulderX, s.BoulderRotation)
	s.PlayerModel = PlayerTransform(s.PlayerX)
}

// BoulderTransform places the boulder. The translation by x happens after
// the scale, so x is measured in boulder sized units. The rotation is
// applied to the vertices first, which spins the boulder around its own
// center while it rolls. Moving the rotation in front of the translation
// would make it orbit the start point in a spiral instead.
func BoulderTransform(x, rotationDeg float32) glm.Mat4f {
	return glm.IdentityMat4[float32]().
		Translate(-5.0, 0.4, 0.0).
		Scale(3.0, 3.0, 1.0).
		Translate(x, 0.0, 0.0).
		RotateZ(glm.DegToRad(rotationDeg))
}

func PlayerTransform(x float32) glm.Mat4f {
	return glm.IdentityMat4[float32]().
		Translate(-2.0, 0.0, 0.0).
		Translate(x, 0.0, 0.0)
}
