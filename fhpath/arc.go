package fhpath

import "math"

// nearSingular is the relative determinant under which a transform
// is considered to collapse the plane onto a line.
const nearSingular = 1e-9

// angleEps is the tolerance used to snap angles on multiples of π/2.
const angleEps = 1e-12

// sincos returns the sine and cosine of theta, exact on
// multiples of π/2 where the general formula leaves rounding noise.
func sincos(theta float64) (sin, cos float64) {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	switch {
	case theta < angleEps || 2*math.Pi-theta < angleEps:
		return 0, 1
	case math.Abs(theta-math.Pi/2) < angleEps:
		return 1, 0
	case math.Abs(theta-math.Pi) < angleEps:
		return 0, -1
	case math.Abs(theta-3*math.Pi/2) < angleEps:
		return -1, 0
	}
	return math.Sincos(theta)
}

// normRotation maps an ellipse rotation into [0, π).
func normRotation(theta float64) float64 {
	theta = math.Mod(theta, math.Pi)
	if theta < 0 {
		theta += math.Pi
	}
	if math.Pi-theta < angleEps {
		theta = 0
	}
	return theta
}

// ApplyToArc returns the image of the arc a under t.
// The endpoint is transformed directly, the sweep flag is
// flipped by orientation reversing transforms, and the radii and
// rotation are those of the image of the ellipse.
func (t Transform) ApplyToArc(a ArcTo) ArcTo {
	out := a
	out.X, out.Y = t.Apply(a.X, a.Y)
	det := t.Det()
	if det < 0 {
		out.Sweep = !a.Sweep
	}

	rx, ry := math.Abs(a.RX), math.Abs(a.RY)
	sin, cos := sincos(a.Rotation)

	switch {
	case rx == 0 && ry == 0:
		out.RX, out.RY, out.Rotation = 0, 0, 0
		return out
	case ry == 0:
		ux, uy := t.applyVector(rx*cos, rx*sin)
		return segmentArc(out, ux, uy)
	case rx == 0:
		vx, vy := t.applyVector(-ry*sin, ry*cos)
		return segmentArc(out, vx, vy)
	}

	// images of the two semi-axes
	ux, uy := t.applyVector(rx*cos, rx*sin)
	vx, vy := t.applyVector(-ry*sin, ry*cos)

	scale := math.Max(math.Max(math.Abs(t.M11), math.Abs(t.M12)), math.Max(math.Abs(t.M21), math.Abs(t.M22)))
	if math.Abs(det) <= nearSingular*scale*scale {
		// the ellipse collapses on a line: keep the longest image axis
		if math.Hypot(ux, uy) >= math.Hypot(vx, vy) {
			return segmentArc(out, ux, uy)
		}
		return segmentArc(out, vx, vy)
	}

	// The image is {u cos s + v sin s}, whose quadratic form is
	// [A B; B C] = [u v][u v]^T. Its eigenvalues are the squared
	// semi-axes and the first eigenvector gives the rotation.
	A := ux*ux + vx*vx
	B := ux*uy + vx*vy
	C := uy*uy + vy*vy
	mid := (A + C) / 2
	dev := math.Hypot((A-C)/2, B)
	lambda1 := mid + dev

	var rotation float64
	switch {
	case math.Abs(B) <= angleEps*math.Max(A, C):
		if A >= C {
			rotation = 0
		} else {
			rotation = math.Pi / 2
		}
	default:
		rotation = math.Atan2(lambda1-A, B)
	}

	newRX := math.Sqrt(lambda1)
	// rx' * ry' = rx * ry * |det|, more stable than sqrt(lambda2)
	newRY := rx * ry * math.Abs(det) / newRX

	out.RX, out.RY, out.Rotation = newRX, newRY, normRotation(rotation)
	return out
}

// segmentArc degenerates the arc to a segment along (vx, vy).
func segmentArc(out ArcTo, vx, vy float64) ArcTo {
	length := math.Hypot(vx, vy)
	if length == 0 {
		out.RX, out.RY, out.Rotation = 0, 0, 0
		return out
	}
	out.RX, out.RY = length, 0
	out.Rotation = normRotation(math.Atan2(vy, vx))
	return out
}

// ellipseCenter converts the endpoint parameterization of the arc from
// (x1, y1) to the center one. The radii are scaled up when they are too
// small to join both points. The returned angles are the parametric
// start angle and the signed angular span.
func ellipseCenter(x1, y1 float64, a ArcTo) (cx, cy, rx, ry, theta1, delta float64) {
	rx, ry = math.Abs(a.RX), math.Abs(a.RY)
	sin, cos := sincos(a.Rotation)

	dx2, dy2 := (x1-a.X)/2, (y1-a.Y)/2
	x1p := cos*dx2 + sin*dy2
	y1p := -sin*dx2 + cos*dy2

	lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	var coef float64
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx = cos*cxp - sin*cyp + (x1+a.X)/2
	cy = sin*cxp + cos*cyp + (y1+a.Y)/2

	theta1 = math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta = theta2 - theta1
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return cx, cy, rx, ry, theta1, delta
}

// ToCubics approximates the arc starting at (x0, y0) by cubic
// segments, each spanning at most a quarter of the ellipse.
// Degenerate arcs give a straight segment.
func (a ArcTo) ToCubics(x0, y0 float64) []CubicTo {
	if x0 == a.X && y0 == a.Y {
		return nil
	}
	if a.RX == 0 || a.RY == 0 {
		return []CubicTo{{X1: x0, Y1: y0, X2: a.X, Y2: a.Y, X: a.X, Y: a.Y}}
	}
	cx, cy, rx, ry, theta, delta := ellipseCenter(x0, y0, a)
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta == 0 {
		// the end points are too close to define an ellipse
		return []CubicTo{{X1: x0, Y1: y0, X2: a.X, Y2: a.Y, X: a.X, Y: a.Y}}
	}
	sin, cos := sincos(a.Rotation)

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	step := delta / float64(n)
	k := 4. / 3 * math.Tan(step/4)

	point := func(t float64) (x, y, dx, dy float64) {
		st, ct := math.Sincos(t)
		x = cx + rx*cos*ct - ry*sin*st
		y = cy + rx*sin*ct + ry*cos*st
		dx = -rx*cos*st - ry*sin*ct
		dy = -rx*sin*st + ry*cos*ct
		return
	}

	out := make([]CubicTo, n)
	x1, y1, dx1, dy1 := point(theta)
	for i := range out {
		theta += step
		x2, y2, dx2, dy2 := point(theta)
		out[i] = CubicTo{
			X1: x1 + k*dx1, Y1: y1 + k*dy1,
			X2: x2 - k*dx2, Y2: y2 - k*dy2,
			X: x2, Y: y2,
		}
		x1, y1, dx1, dy1 = x2, y2, dx2, dy2
	}
	// exact end point
	out[n-1].X, out[n-1].Y = a.X, a.Y
	return out
}
