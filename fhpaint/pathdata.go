package fhpaint

import (
	"math"
	"strings"

	"github.com/benoitkugler/freehand/fhpath"
)

// ActionKind names a path command, using the SVG letters.
type ActionKind byte

const (
	MoveTo    ActionKind = 'M'
	LineTo    ActionKind = 'L'
	CubicTo   ActionKind = 'C'
	QuadTo    ActionKind = 'Q'
	ArcTo     ActionKind = 'A'
	ClosePath ActionKind = 'Z'
)

// Action is one path command, with absolute coordinates.
// Only the fields relevant for Kind are used:
//   - MoveTo, LineTo: X, Y
//   - CubicTo: X1, Y1, X2, Y2, X, Y
//   - QuadTo: X1, Y1, X, Y
//   - ArcTo: RX, RY, Rotate (in degrees), LargeArc, Sweep, X, Y
//   - ClosePath: nothing
type Action struct {
	Kind            ActionKind
	X1, Y1, X2, Y2  float64
	RX, RY, Rotate  float64
	LargeArc, Sweep bool
	X, Y            float64
}

// PathData is the list of commands sent to DrawPath.
type PathData []Action

// NewPathData converts the geometry to path data.
// A trailing ClosePath is added for closed paths.
func NewPathData(p fhpath.Path) PathData {
	out := make(PathData, 0, len(p.Elements)+1)
	for _, e := range p.Elements {
		switch e := e.(type) {
		case fhpath.MoveTo:
			out = append(out, Action{Kind: MoveTo, X: e.X, Y: e.Y})
		case fhpath.LineTo:
			out = append(out, Action{Kind: LineTo, X: e.X, Y: e.Y})
		case fhpath.CubicTo:
			out = append(out, Action{Kind: CubicTo, X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2, X: e.X, Y: e.Y})
		case fhpath.QuadTo:
			out = append(out, Action{Kind: QuadTo, X1: e.X1, Y1: e.Y1, X: e.X, Y: e.Y})
		case fhpath.ArcTo:
			out = append(out, Action{
				Kind: ArcTo, RX: e.RX, RY: e.RY, Rotate: e.Rotation * 180 / math.Pi,
				LargeArc: e.LargeArc, Sweep: e.Sweep, X: e.X, Y: e.Y,
			})
		}
	}
	if p.Closed && len(out) != 0 {
		out = append(out, Action{Kind: ClosePath})
	}
	return out
}

// String returns the path in SVG syntax.
func (pd PathData) String() string {
	var sb strings.Builder
	for i, a := range pd {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte(a.Kind))
		switch a.Kind {
		case MoveTo, LineTo:
			writeNumbers(&sb, a.X, a.Y)
		case CubicTo:
			writeNumbers(&sb, a.X1, a.Y1, a.X2, a.Y2, a.X, a.Y)
		case QuadTo:
			writeNumbers(&sb, a.X1, a.Y1, a.X, a.Y)
		case ArcTo:
			writeNumbers(&sb, a.RX, a.RY, a.Rotate, b2f(a.LargeArc), b2f(a.Sweep), a.X, a.Y)
		}
	}
	return sb.String()
}

func writeNumbers(sb *strings.Builder, numbers ...float64) {
	for i, f := range numbers {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(f))
	}
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
