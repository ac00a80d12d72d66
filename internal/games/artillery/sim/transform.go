package sim

import (
	"math"

	"golang.org/x/image/math/f64"
)

// degenerateDet is the determinant magnitude below which a transform is
// treated as non-invertible.
const degenerateDet = 1e-12

// Transform is an affine map from a sprite's local pixel space to field space.
// The matrix is stored as an f64.Aff3 in row-major order:
//
//	x' = m[0]*x + m[1]*y + m[2]
//	y' = m[3]*x + m[4]*y + m[5]
//
// Transforms are composed left to right with Then, so
// Translate(a).Then(Rotate(r)) first translates, then rotates.
type Transform struct {
	m f64.Aff3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{m: f64.Aff3{1, 0, 0, 0, 1, 0}}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) Transform {
	return Transform{m: f64.Aff3{1, 0, x, 0, 1, y}}
}

// Rotate returns a rotation by angle radians, clockwise on screen.
func Rotate(angle float64) Transform {
	sin, cos := math.Sincos(angle)
	return Transform{m: f64.Aff3{cos, -sin, 0, sin, cos, 0}}
}

// Scale returns a uniform scale by s.
func Scale(s float64) Transform {
	return Transform{m: f64.Aff3{s, 0, 0, 0, s, 0}}
}

// Then returns the transform that applies t first and u second.
func (t Transform) Then(u Transform) Transform {
	a, b := t.m, u.m
	return Transform{m: f64.Aff3{
		b[0]*a[0] + b[1]*a[3],
		b[0]*a[1] + b[1]*a[4],
		b[0]*a[2] + b[1]*a[5] + b[2],
		b[3]*a[0] + b[4]*a[3],
		b[3]*a[1] + b[4]*a[4],
		b[3]*a[2] + b[4]*a[5] + b[5],
	}}
}

// Apply maps a local point into the transform's target space.
func (t Transform) Apply(p Vec2) Vec2 {
	return Vec2{
		X: t.m[0]*p.X + t.m[1]*p.Y + t.m[2],
		Y: t.m[3]*p.X + t.m[4]*p.Y + t.m[5],
	}
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.m[0]*t.m[4] - t.m[1]*t.m[3]
}

// Invertible reports whether the transform has an inverse.
func (t Transform) Invertible() bool {
	return math.Abs(t.Det()) > degenerateDet
}

// Inverse returns the inverse transform. The boolean is false when the
// transform collapses space (for example a zero scale).
func (t Transform) Inverse() (Transform, bool) {
	det := t.Det()
	if math.Abs(det) <= degenerateDet {
		return Transform{}, false
	}
	m := t.m
	return Transform{m: f64.Aff3{
		m[4] / det,
		-m[1] / det,
		(m[1]*m[5] - m[4]*m[2]) / det,
		-m[3] / det,
		m[0] / det,
		(m[3]*m[2] - m[0]*m[5]) / det,
	}}, true
}
