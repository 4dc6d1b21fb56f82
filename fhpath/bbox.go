package fhpath

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// compute the bounding box of paths, needed to normalize
// sub-documents and to size the page

// cubicSamples is the number of uniform parameter steps used
// to approximate the extent of a cubic curve.
const cubicSamples = 100

// Box is an axis aligned bounding box.
// The zero value is not empty: use EmptyBox to start an accumulation.
type Box struct {
	XMin, YMin, XMax, YMax float64
}

// EmptyBox returns a box containing no point.
func EmptyBox() Box {
	return Box{XMin: math.Inf(1), YMin: math.Inf(1), XMax: math.Inf(-1), YMax: math.Inf(-1)}
}

// IsEmpty returns true if no point has been added.
func (b Box) IsEmpty() bool { return b.XMin > b.XMax || b.YMin > b.YMax }

// Add extends the box to contain (x, y).
func (b *Box) Add(x, y float64) {
	b.XMin = math.Min(b.XMin, x)
	b.YMin = math.Min(b.YMin, y)
	b.XMax = math.Max(b.XMax, x)
	b.YMax = math.Max(b.YMax, y)
}

// Union extends the box to contain o.
func (b *Box) Union(o Box) {
	if o.IsEmpty() {
		return
	}
	b.Add(o.XMin, o.YMin)
	b.Add(o.XMax, o.YMax)
}

// Width returns the horizontal extent, or 0 for an empty box.
func (b Box) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.XMax - b.XMin
}

// Height returns the vertical extent, or 0 for an empty box.
func (b Box) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.YMax - b.YMin
}

// Rect converts the box to a rectangle. An empty box
// gives the zero rectangle.
func (b Box) Rect() rect.Rect {
	if b.IsEmpty() {
		return rect.Rect{}
	}
	return rect.Rect{LLx: b.XMin, LLy: b.YMin, URx: b.XMax, URy: b.YMax}
}

// BoxFromRect is the inverse of Box.Rect.
func BoxFromRect(r rect.Rect) Box {
	return Box{XMin: r.LLx, YMin: r.LLy, XMax: r.URx, YMax: r.URy}
}

// BoundingBox walks the elements, using each end point as
// the start of the next element. The first element starts at its own end point.
func (p Path) BoundingBox() Box {
	box := EmptyBox()
	if len(p.Elements) == 0 {
		return box
	}
	x0, y0 := p.Elements[0].End()
	for _, e := range p.Elements {
		e.extendBox(x0, y0, &box)
		x0, y0 = e.End()
	}
	return box
}

func (e MoveTo) extendBox(x0, y0 float64, b *Box) {
	b.Add(x0, y0)
	b.Add(e.X, e.Y)
}

func (e LineTo) extendBox(x0, y0 float64, b *Box) {
	b.Add(x0, y0)
	b.Add(e.X, e.Y)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

func (e CubicTo) extendBox(x0, y0 float64, b *Box) {
	for i := 0; i <= cubicSamples; i++ {
		t := float64(i) / cubicSamples
		b.Add(bezierSpline(x0, e.X1, e.X2, e.X, t), bezierSpline(y0, e.Y1, e.Y2, e.Y, t))
	}
}

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// quadExtremum returns the parameter zeroing the derivative of
// the quadratic curve, t = (a-b)/(a-2b+c), or false if it
// is not defined or outside [0, 1].
func quadExtremum(a, b, c float64) (float64, bool) {
	den := a - 2*b + c
	if den == 0 {
		return 0, false
	}
	t := (a - b) / den
	return t, 0 <= t && t <= 1
}

func (e QuadTo) extendBox(x0, y0 float64, b *Box) {
	b.Add(x0, y0)
	b.Add(e.X, e.Y)
	if t, ok := quadExtremum(x0, e.X1, e.X); ok {
		b.Add(bezierQuad(x0, e.X1, e.X, t), bezierQuad(y0, e.Y1, e.Y, t))
	}
	if t, ok := quadExtremum(y0, e.Y1, e.Y); ok {
		b.Add(bezierQuad(x0, e.X1, e.X, t), bezierQuad(y0, e.Y1, e.Y, t))
	}
}

func (e ArcTo) extendBox(x0, y0 float64, b *Box) {
	b.Add(x0, y0)
	b.Add(e.X, e.Y)
	if e.RX == 0 || e.RY == 0 || (x0 == e.X && y0 == e.Y) {
		// straight segment, or nothing drawn
		return
	}

	cx, cy, rx, ry, theta1, delta := ellipseCenter(x0, y0, e)
	sin, cos := sincos(e.Rotation)

	// x(t) = cx + rx cos(phi) cos(t) - ry sin(phi) sin(t)
	// y(t) = cy + rx sin(phi) cos(t) + ry cos(phi) sin(t)
	var tx, ty float64
	if cos == 0 {
		tx = math.Pi / 2
	} else {
		tx = math.Atan(-ry * sin / (rx * cos))
	}
	if sin == 0 {
		ty = math.Pi / 2
	} else {
		ty = math.Atan(ry * cos / (rx * sin))
	}

	point := func(t float64) (float64, float64) {
		st, ct := math.Sincos(t)
		return cx + rx*cos*ct - ry*sin*st, cy + rx*sin*ct + ry*cos*st
	}
	for _, t := range [4]float64{tx, tx + math.Pi, ty, ty + math.Pi} {
		if angleInSpan(t, theta1, delta) {
			b.Add(point(t))
		}
	}
}

// angleInSpan returns true if the angle t is swept when
// going from start by the signed amount delta.
func angleInSpan(t, start, delta float64) bool {
	if math.Abs(delta) >= 2*math.Pi {
		return true
	}
	d := math.Mod(t-start, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if delta >= 0 {
		return d <= delta
	}
	// negative sweep: use the complement of the interval
	return d == 0 || 2*math.Pi-d <= -delta
}
