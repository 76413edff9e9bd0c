package glm

// Ortho builds a right handed orthographic projection. The box spanned by
// left/right, bottom/top and near/far is mapped to x and y in [-1, 1] and
// depth in [0, 1], which is the clip space webgpu expects.
func Ortho[T float](left, right, bottom, top, near, far T) Mat4[T] {
	return Mat4Of([4][4]T{
		{2 / (right - left), 0, 0, 0},
		{0, 2 / (top - bottom), 0, 0},
		{0, 0, -1 / (far - near), 0},
		{-(right + left) / (right - left), -(top + bottom) / (top - bottom), -near / (far - near), 1},
	})
}
