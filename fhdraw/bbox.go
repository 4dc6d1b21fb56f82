package fhdraw

import (
	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpath"
)

// boundingBox returns the extent of the element in page coordinates,
// using the current transform stacks. Every kind of element is probed
// for id, and the boxes of the matching ones are merged.
func (r *renderer) boundingBox(id fhdoc.ID) fhpath.Box {
	box := fhpath.EmptyBox()
	if id == 0 {
		return box
	}
	leave, ok := r.enter(id)
	if !ok {
		return box
	}
	defer leave()

	doc := r.doc
	if p := doc.Path(id); p != nil {
		box.Union(r.pathBox(p))
	}
	if g := doc.Group(id); g != nil {
		box.Union(r.groupBox(g))
	}
	if g := doc.ClipGroup(id); g != nil {
		box.Union(r.groupBox(g))
	}
	if cp := doc.CompositePath(id); cp != nil {
		if p := r.fusePaths(cp); p != nil {
			box.Union(r.pathBox(p))
		}
	}
	if t := doc.TextObject(id); t != nil {
		box.Union(r.quadBox(t.X, t.Y, t.Width, t.Height, t.XFormID))
	}
	if t := doc.DisplayText(id); t != nil {
		box.Union(r.quadBox(t.X, t.Y, t.Width, t.Height, t.XFormID))
	}
	if im := doc.ImageImport(id); im != nil {
		box.Union(r.quadBox(im.X, im.Y, im.Width, im.Height, im.XFormID))
	}
	if si := doc.SymbolInstance(id); si != nil {
		box.Union(r.symbolBox(si))
	}
	// blends have no computed extent
	return box
}

func (r *renderer) pathBox(p *fhdoc.Path) fhpath.Box {
	geom := p.Geometry.Clone()
	r.toPage(&geom, r.doc.Transform(p.XFormID))
	return geom.BoundingBox()
}

func (r *renderer) groupBox(g *fhdoc.Group) fhpath.Box {
	pop := r.pushCurrentID(g.XFormID)
	defer pop()
	box := fhpath.EmptyBox()
	for _, child := range r.doc.ListElements(g.ListID) {
		box.Union(r.boundingBox(child))
	}
	return box
}

func (r *renderer) symbolBox(si *fhdoc.SymbolInstance) fhpath.Box {
	class := r.doc.SymbolClass(si.ClassID)
	if class == nil {
		return fhpath.EmptyBox()
	}
	pop := r.pushCurrent(si.Transform)
	defer pop()
	return r.boundingBox(class.GroupID)
}

// quad is the image of a rectangle, as its corners
// (x, y), (x+w, y+h) and (x, y+h).
type quad struct {
	xa, ya, xb, yb, xc, yc float64
}

func (r *renderer) quadToPage(x, y, width, height float64, xformID fhdoc.ID) quad {
	own := r.doc.Transform(xformID)
	var q quad
	q.xa, q.ya = r.pointToPage(x, y, own)
	q.xb, q.yb = r.pointToPage(x+width, y+height, own)
	q.xc, q.yc = r.pointToPage(x, y+height, own)
	return q
}

func (r *renderer) quadBox(x, y, width, height float64, xformID fhdoc.ID) fhpath.Box {
	own := r.doc.Transform(xformID)
	box := fhpath.EmptyBox()
	for _, pt := range [4][2]float64{{x, y}, {x + width, y}, {x + width, y + height}, {x, y + height}} {
		box.Add(r.pointToPage(pt[0], pt[1], own))
	}
	return box
}
