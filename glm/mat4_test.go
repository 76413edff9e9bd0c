package glm

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func assertNear(t *testing.T, name string, got, want float32) {
	t.Helper()
	if math.Abs(float64(got-want)) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertPoint(t *testing.T, name string, got, want Vec2f) {
	t.Helper()
	assertNear(t, name+".x", got[0], want[0])
	assertNear(t, name+".y", got[1], want[1])
}

func TestIdentityMulIsNoop(t *testing.T) {
	m := TranslationMat4[float32](1, 2, 3).Scale(4, 5, 6)

	if got := IdentityMat4[float32]().Mul(m); got != m {
		t.Errorf("I * m = %v, want %v", got, m)
	}

	if got := m.Mul(IdentityMat4[float32]()); got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestMat4Of(t *testing.T) {
	m := Mat4Of([4][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	})

	for i := range m {
		assertNear(t, "m", m[i], float32(i+1))
	}
}

func TestTranslate(t *testing.T) {
	m := IdentityMat4[float32]().Translate(-2, 0.5, 0)
	assertPoint(t, "origin", m.TransformPoint(Vec2f{0, 0}), Vec2f{-2, 0.5})
	assertPoint(t, "unit", m.TransformPoint(Vec2f{1, 1}), Vec2f{-1, 1.5})
}

func TestScale(t *testing.T) {
	m := IdentityMat4[float32]().Scale(3, 3, 1)
	assertPoint(t, "corner", m.TransformPoint(Vec2f{0.5, -0.5}), Vec2f{1.5, -1.5})
}

func TestRotateZ(t *testing.T) {
	tests := []struct {
		deg  float32
		want Vec2f
	}{
		{0, Vec2f{1, 0}},
		{90, Vec2f{0, 1}},
		{180, Vec2f{-1, 0}},
		{-90, Vec2f{0, -1}},
	}

	for _, tc := range tests {
		m := IdentityMat4[float32]().RotateZ(DegToRad(tc.deg))
		assertPoint(t, "rotated", m.TransformPoint(Vec2f{1, 0}), tc.want)
	}
}

func TestBuildersApplyLastCallFirst(t *testing.T) {
	// scale first, then translate
	m := IdentityMat4[float32]().Translate(1, 0, 0).Scale(2, 2, 1)
	assertPoint(t, "translate.scale", m.TransformPoint(Vec2f{1, 0}), Vec2f{3, 0})

	// translate first, then scale
	m = IdentityMat4[float32]().Scale(2, 2, 1).Translate(1, 0, 0)
	assertPoint(t, "scale.translate", m.TransformPoint(Vec2f{1, 0}), Vec2f{4, 0})
}

func TestRotationOrderChangesMotion(t *testing.T) {
	angle := DegToRad[float32](90)

	// translate then rotate: the quad spins in place at its new position
	inPlace := IdentityMat4[float32]().Translate(2, 0, 0).RotateZ(angle)
	assertPoint(t, "in place", inPlace.TransformPoint(Vec2f{0, 0}), Vec2f{2, 0})

	// rotate then translate: the offset itself is rotated, the quad orbits the origin
	orbit := IdentityMat4[float32]().RotateZ(angle).Translate(2, 0, 0)
	assertPoint(t, "orbit", orbit.TransformPoint(Vec2f{0, 0}), Vec2f{0, 2})
}

func TestOrthoMapsBoxToClipSpace(t *testing.T) {
	m := Ortho[float32](-5, 5, -3.75, 3.75, -1, 1)

	assertPoint(t, "bottom left", m.TransformPoint(Vec2f{-5, -3.75}), Vec2f{-1, -1})
	assertPoint(t, "top right", m.TransformPoint(Vec2f{5, 3.75}), Vec2f{1, 1})
	assertPoint(t, "center", m.TransformPoint(Vec2f{0, 0}), Vec2f{0, 0})

	near := m.Transform(Vec4f{0, 0, -1, 1})
	far := m.Transform(Vec4f{0, 0, 1, 1})
	assertNear(t, "near depth", near[2], 1)
	assertNear(t, "far depth", far[2], 0)

	mid := m.Transform(Vec4f{0, 0, 0, 1})
	assertNear(t, "mid depth", mid[2], 0.5)
	assertNear(t, "w", mid[3], 1)
}

func TestDegToRad(t *testing.T) {
	assertNear(t, "180", float32(DegToRad[float32](180)), math.Pi)
	assertNear(t, "-90", float32(DegToRad[float32](-90)), -math.Pi/2)
}
