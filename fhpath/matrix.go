// Package fhpath implements the geometry of FreeHand documents:
// affine transforms, path elements and their bounding boxes.
//
// Coordinates are float64, in points. Paths are sequences of
// elements with absolute coordinates, which can be transformed in place.
package fhpath

import "math"

// Transform is an affine transformation.
// A point (x, y) is mapped to
//
//	x' = M11*x + M12*y + M13
//	y' = M21*x + M22*y + M23
//
// The field order follows the storage order of FreeHand records.
type Transform struct {
	M11, M21, M12, M22, M13, M23 float64
}

// Identity is the neutral transformation.
var Identity = Transform{M11: 1, M22: 1}

// NewTransform returns the transformation with the given coefficients.
func NewTransform(m11, m21, m12, m22, m13, m23 float64) Transform {
	return Transform{M11: m11, M21: m21, M12: m12, M22: m22, M13: m13, M23: m23}
}

// Translate returns a translation by (dx, dy).
func Translate(dx, dy float64) Transform {
	return Transform{M11: 1, M22: 1, M13: dx, M23: dy}
}

// Scale returns a scaling around the origin.
func Scale(sx, sy float64) Transform {
	return Transform{M11: sx, M22: sy}
}

// Apply returns the image of (x, y).
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.M11*x + t.M12*y + t.M13, t.M21*x + t.M22*y + t.M23
}

// applyVector applies the linear part of t only.
func (t Transform) applyVector(x, y float64) (float64, float64) {
	return t.M11*x + t.M12*y, t.M21*x + t.M22*y
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.M11*t.M22 - t.M12*t.M21
}

// Mul returns the transformation equivalent to first
// applying t, then u.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		M11: u.M11*t.M11 + u.M12*t.M21,
		M21: u.M21*t.M11 + u.M22*t.M21,
		M12: u.M11*t.M12 + u.M12*t.M22,
		M22: u.M21*t.M12 + u.M22*t.M22,
		M13: u.M11*t.M13 + u.M12*t.M23 + u.M13,
		M23: u.M21*t.M13 + u.M22*t.M23 + u.M23,
	}
}

// Inv returns the inverse transformation.
// The boolean is false, and the identity is returned, if t is singular.
func (t Transform) Inv() (Transform, bool) {
	det := t.Det()
	if det == 0 {
		return Identity, false
	}
	inv := 1 / det
	return Transform{
		M11: t.M22 * inv,
		M21: -t.M21 * inv,
		M12: -t.M12 * inv,
		M22: t.M11 * inv,
		M13: (t.M12*t.M23 - t.M22*t.M13) * inv,
		M23: (t.M21*t.M13 - t.M11*t.M23) * inv,
	}, true
}

// IsIdentity reports whether t is the identity, up to 1e-10.
func (t Transform) IsIdentity() bool {
	const eps = 1e-10
	return math.Abs(t.M11-1) < eps && math.Abs(t.M21) < eps &&
		math.Abs(t.M12) < eps && math.Abs(t.M22-1) < eps &&
		math.Abs(t.M13) < eps && math.Abs(t.M23) < eps
}

// Array returns the coefficients in the [a b c d e f] order
// used by SVG and PDF.
func (t Transform) Array() [6]float64 {
	return [6]float64{t.M11, t.M21, t.M12, t.M22, t.M13, t.M23}
}
