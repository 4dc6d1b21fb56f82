package fhdraw

import (
	"math"

	"github.com/benoitkugler/freehand/fhpaint"
)

// pointEps is the distance under which two points are equal.
const pointEps = 1e-6

func samePoint(x1, y1, x2, y2 float64) bool {
	return math.Abs(x1-x2) < pointEps && math.Abs(y1-y2) < pointEps
}

// pathNormalizer closes the subpaths of a path data.
type pathNormalizer struct {
	out         fhpaint.PathData
	forceClosed bool

	startX, startY float64 // start of the current subpath
	curX, curY     float64
	hasCurrent     bool
	drawn          int // drawing actions in the current subpath
}

// normalizePath closes the subpaths ending on their start point,
// or every subpath when forceClosed is true, and removes useless moves.
// A LineTo back to the start of a closed subpath is replaced by the
// close action. The input is returned unchanged if nothing would remain.
func normalizePath(in fhpaint.PathData, forceClosed bool) fhpaint.PathData {
	n := pathNormalizer{out: make(fhpaint.PathData, 0, len(in)+1), forceClosed: forceClosed}
	for _, a := range in {
		switch a.Kind {
		case fhpaint.MoveTo:
			n.move(a)
		case fhpaint.ClosePath:
			n.close(true)
		default:
			n.draw(a)
		}
	}
	n.closeSubpath()
	if len(n.out) == 0 {
		return in
	}
	return n.out
}

func (n *pathNormalizer) last() *fhpaint.Action {
	if len(n.out) == 0 {
		return nil
	}
	return &n.out[len(n.out)-1]
}

func (n *pathNormalizer) move(a fhpaint.Action) {
	if n.hasCurrent && samePoint(a.X, a.Y, n.curX, n.curY) {
		return
	}
	n.closeSubpath()
	n.out = append(n.out, a)
	n.startX, n.startY = a.X, a.Y
	n.curX, n.curY = a.X, a.Y
	n.hasCurrent = true
	n.drawn = 0
}

func (n *pathNormalizer) draw(a fhpaint.Action) {
	if !n.hasCurrent {
		// implicit start at the origin
		n.hasCurrent = true
	}
	n.out = append(n.out, a)
	n.curX, n.curY = a.X, a.Y
	n.drawn++
}

// closeSubpath is called before a new subpath and at the end:
// a lone move is removed, and a subpath ending on its start
// (or any subpath if forceClosed) is closed.
func (n *pathNormalizer) closeSubpath() {
	last := n.last()
	if last == nil || last.Kind == fhpaint.ClosePath {
		return
	}
	if last.Kind == fhpaint.MoveTo {
		n.out = n.out[:len(n.out)-1]
		return
	}
	if n.drawn == 0 {
		return
	}
	if n.forceClosed || samePoint(n.curX, n.curY, n.startX, n.startY) {
		n.close(false)
	}
}

// close appends a close action, unless the path is
// already closed. explicit is true for close actions of the input.
func (n *pathNormalizer) close(explicit bool) {
	last := n.last()
	if last == nil || last.Kind == fhpaint.ClosePath {
		return
	}
	if last.Kind == fhpaint.MoveTo {
		if explicit {
			// closing a lone move draws nothing
			n.out = n.out[:len(n.out)-1]
		}
		return
	}
	if last.Kind == fhpaint.LineTo && n.drawn > 1 && samePoint(last.X, last.Y, n.startX, n.startY) {
		n.out = n.out[:len(n.out)-1]
	}
	n.out = append(n.out, fhpaint.Action{Kind: fhpaint.ClosePath})
	n.curX, n.curY = n.startX, n.startY
}
