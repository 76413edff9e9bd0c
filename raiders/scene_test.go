package raiders

import (
	"math"
	"testing"

	"github.com/oliverbestmann/raiders/glm"
)

const epsilon = 1e-4

func assertNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, got, want glm.Vec2f) {
	t.Helper()
	assertNear(t, name+".x", got[0], want[0])
	assertNear(t, name+".y", got[1], want[1])
}

func TestSceneAdvanceRates(t *testing.T) {
	for _, dt := range []float32{0, 0.001, 1.0 / 60, 0.5, 1, 2.5} {
		s := NewScene()
		s.PlayerX, s.BoulderX, s.BoulderRotation = 1, 2, 30

		s.Advance(dt)

		assertNear(t, "PlayerX", s.PlayerX, 1+1.45*dt)
		assertNear(t, "BoulderX", s.BoulderX, 2+0.59*dt)
		assertNear(t, "BoulderRotation", s.BoulderRotation, 30-90*dt)
	}
}

func TestSceneAdvanceIsMonotonic(t *testing.T) {
	s := NewScene()

	prev := *s
	for _, dt := range []float32{0.016, 0, 0.1, 0.033, 0.0001, 1} {
		s.Advance(dt)

		if s.PlayerX < prev.PlayerX {
			t.Errorf("PlayerX decreased from %v to %v", prev.PlayerX, s.PlayerX)
		}

		if s.BoulderX < prev.BoulderX {
			t.Errorf("BoulderX decreased from %v to %v", prev.BoulderX, s.BoulderX)
		}

		if s.BoulderRotation > prev.BoulderRotation {
			t.Errorf("BoulderRotation increased from %v to %v", prev.BoulderRotation, s.BoulderRotation)
		}

		prev = *s
	}
}

func TestSceneAdvanceIgnoresInvalidDelta(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	for _, dt := range []float32{-1, -0.001, nan, inf} {
		s := NewScene()
		s.Advance(dt)

		if s.PlayerX != 0 || s.BoulderX != 0 || s.BoulderRotation != 0 {
			t.Errorf("Advance(%v) changed the scene: %+v", dt, s)
		}
	}
}

func TestSceneTransformsFollowState(t *testing.T) {
	s := NewScene()
	s.Advance(0.75)

	if s.BoulderModel != BoulderTransform(s.BoulderX, s.BoulderRotation) {
		t.Error("BoulderModel does not match the scalar state")
	}

	if s.PlayerModel != PlayerTransform(s.PlayerX) {
		t.Error("PlayerModel does not match the scalar state")
	}
}

func TestTransformsAreDeterministic(t *testing.T) {
	a := BoulderTransform(1.25, -112.5)
	b := BoulderTransform(1.25, -112.5)

	if a != b {
		t.Errorf("BoulderTransform not reproducible: %v vs %v", a, b)
	}

	if PlayerTransform(3) != PlayerTransform(3) {
		t.Error("PlayerTransform not reproducible")
	}
}

func TestBoulderTransformAtStart(t *testing.T) {
	m := BoulderTransform(0, 0)

	// the unit quad is scaled by 3 and centered on -5, 0.4
	assertPoint(t, "center", m.TransformPoint(glm.Vec2f{0, 0}), glm.Vec2f{-5, 0.4})
	assertPoint(t, "top right", m.TransformPoint(glm.Vec2f{0.5, 0.5}), glm.Vec2f{-3.5, 1.9})
}

func TestBoulderRollsAroundItsCenter(t *testing.T) {
	m := BoulderTransform(1, -90)

	// the center moves by x in scaled units and is not affected by the rotation
	assertPoint(t, "center", m.TransformPoint(glm.Vec2f{0, 0}), glm.Vec2f{-2, 0.4})

	// a quarter turn clockwise moves the top edge to the right
	assertPoint(t, "top", m.TransformPoint(glm.Vec2f{0, 0.5}), glm.Vec2f{-0.5, 0.4})
}

func TestPlayerTransform(t *testing.T) {
	m := PlayerTransform(1.45)

	assertPoint(t, "center", m.TransformPoint(glm.Vec2f{0, 0}), glm.Vec2f{-0.55, 0})
	assertPoint(t, "corner", m.TransformPoint(glm.Vec2f{-0.5, -0.5}), glm.Vec2f{-1.05, -0.5})
}
