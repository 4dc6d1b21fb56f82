package fhpath

import (
	"fmt"
	"strings"
)

// This file defines the basic path structure

// Element groups the different path commands.
// The set of implementations is closed: MoveTo, LineTo,
// CubicTo, QuadTo and ArcTo.
type Element interface {
	// End returns the current point after the element.
	End() (x, y float64)

	// transformed returns the image of the element by t.
	transformed(t Transform) Element

	// extendBox adds the points covered by the element, starting
	// at (x0, y0), to b.
	extendBox(x0, y0 float64, b *Box)
}

// MoveTo starts a new subpath.
type MoveTo struct{ X, Y float64 }

// LineTo is a straight segment.
type LineTo struct{ X, Y float64 }

// CubicTo is a cubic Bézier segment with control points
// (X1, Y1) and (X2, Y2).
type CubicTo struct{ X1, Y1, X2, Y2, X, Y float64 }

// QuadTo is a quadratic Bézier segment with control point (X1, Y1).
type QuadTo struct{ X1, Y1, X, Y float64 }

// ArcTo is an elliptical arc in SVG endpoint parameterization.
// Rotation is expressed in radians.
type ArcTo struct {
	RX, RY, Rotation float64
	LargeArc, Sweep  bool
	X, Y             float64
}

func (e MoveTo) End() (float64, float64)  { return e.X, e.Y }
func (e LineTo) End() (float64, float64)  { return e.X, e.Y }
func (e CubicTo) End() (float64, float64) { return e.X, e.Y }
func (e QuadTo) End() (float64, float64)  { return e.X, e.Y }
func (e ArcTo) End() (float64, float64)   { return e.X, e.Y }

func (e MoveTo) transformed(t Transform) Element {
	e.X, e.Y = t.Apply(e.X, e.Y)
	return e
}

func (e LineTo) transformed(t Transform) Element {
	e.X, e.Y = t.Apply(e.X, e.Y)
	return e
}

func (e CubicTo) transformed(t Transform) Element {
	e.X1, e.Y1 = t.Apply(e.X1, e.Y1)
	e.X2, e.Y2 = t.Apply(e.X2, e.Y2)
	e.X, e.Y = t.Apply(e.X, e.Y)
	return e
}

func (e QuadTo) transformed(t Transform) Element {
	e.X1, e.Y1 = t.Apply(e.X1, e.Y1)
	e.X, e.Y = t.Apply(e.X, e.Y)
	return e
}

func (e ArcTo) transformed(t Transform) Element {
	return t.ApplyToArc(e)
}

// Path is a sequence of elements, which may be closed.
type Path struct {
	Elements []Element
	Closed   bool
}

// Empty returns true if the path has no elements.
func (p *Path) Empty() bool { return len(p.Elements) == 0 }

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	return Path{Elements: append([]Element(nil), p.Elements...), Closed: p.Closed}
}

// Append adds a copy of the elements of q at the end of p.
// The closed flag of p is kept.
func (p *Path) Append(q Path) {
	p.Elements = append(p.Elements, q.Elements...)
}

// Transform applies t to every element, in place.
func (p *Path) Transform(t Transform) {
	for i, e := range p.Elements {
		p.Elements[i] = e.transformed(t)
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) { p.Elements = append(p.Elements, MoveTo{x, y}) }

// LineTo adds a linear segment to the current subpath.
func (p *Path) LineTo(x, y float64) { p.Elements = append(p.Elements, LineTo{x, y}) }

// CubicTo adds a cubic segment to the current subpath.
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.Elements = append(p.Elements, CubicTo{x1, y1, x2, y2, x, y})
}

// QuadTo adds a quadratic segment to the current subpath.
func (p *Path) QuadTo(x1, y1, x, y float64) {
	p.Elements = append(p.Elements, QuadTo{x1, y1, x, y})
}

// ArcTo adds an elliptical arc to the current subpath.
func (p *Path) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	p.Elements = append(p.Elements, ArcTo{rx, ry, rotation, largeArc, sweep, x, y})
}

// String returns a readable, SVG like representation of the path.
func (p Path) String() string {
	chunks := make([]string, 0, len(p.Elements)+1)
	for _, e := range p.Elements {
		switch e := e.(type) {
		case MoveTo:
			chunks = append(chunks, fmt.Sprintf("M%g,%g", e.X, e.Y))
		case LineTo:
			chunks = append(chunks, fmt.Sprintf("L%g,%g", e.X, e.Y))
		case CubicTo:
			chunks = append(chunks, fmt.Sprintf("C%g,%g,%g,%g,%g,%g", e.X1, e.Y1, e.X2, e.Y2, e.X, e.Y))
		case QuadTo:
			chunks = append(chunks, fmt.Sprintf("Q%g,%g,%g,%g", e.X1, e.Y1, e.X, e.Y))
		case ArcTo:
			chunks = append(chunks, fmt.Sprintf("A%g,%g,%g,%d,%d,%g,%g", e.RX, e.RY, e.Rotation, b2i(e.LargeArc), b2i(e.Sweep), e.X, e.Y))
		}
	}
	if p.Closed {
		chunks = append(chunks, "Z")
	}
	return strings.Join(chunks, " ")
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
