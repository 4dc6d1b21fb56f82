package fhdraw

import (
	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpath"
)

// The transform stacks are only modified by the push methods,
// whose returned function restores the previous state.
// Callers defer it, so that no early return can leak a transform.

// pushCurrent pushes a group or symbol transform.
func (r *renderer) pushCurrent(t fhpath.Transform) (pop func()) {
	n := len(r.current)
	r.current = append(r.current, t)
	return func() { r.current = r.current[:n] }
}

// pushCurrentID pushes the given transform record, or the identity.
func (r *renderer) pushCurrentID(id fhdoc.ID) (pop func()) {
	t := fhpath.Identity
	if tr := r.doc.Transform(id); tr != nil {
		t = *tr
	}
	return r.pushCurrent(t)
}

// pushFake pushes a transform used to position a sub-document.
func (r *renderer) pushFake(t fhpath.Transform) (pop func()) {
	n := len(r.fake)
	r.fake = append(r.fake, t)
	return func() { r.fake = r.fake[:n] }
}

// isolate empties both stacks, so that elements are rendered
// in page coordinates, independently of the caller context.
func (r *renderer) isolate() (restore func()) {
	current, fake := r.current, r.fake
	r.current, r.fake = nil, nil
	return func() { r.current, r.fake = current, fake }
}

// enter increments the nesting depth. When the depth ceiling
// is reached, ok is false and the element must be skipped.
func (r *renderer) enter(id fhdoc.ID) (leave func(), ok bool) {
	if r.depth >= r.opts.MaxDepth {
		r.log.Warn("fhdraw: nesting too deep, skipping element", "id", id, "max-depth", r.opts.MaxDepth)
		return func() {}, false
	}
	r.depth++
	return func() { r.depth-- }, true
}

// enterEmbedded marks id as being rendered in a sub-document.
// A fill reaching an element which is already being embedded is skipped.
func (r *renderer) enterEmbedded(id fhdoc.ID) (leave func(), ok bool) {
	if r.embedding[id] {
		r.log.Warn("fhdraw: cyclic fill, skipping sub-document", "id", id)
		return func() {}, false
	}
	r.embedding[id] = true
	return func() { delete(r.embedding, id) }, true
}

// pageTransforms returns the transforms applied after the own transform
// of an element, in order: the current stack top to bottom, the page
// normalization, then the fake stack in push order. Each fake transform
// is computed from a box measured through the previous ones.
func (r *renderer) pageTransforms(own *fhpath.Transform) []fhpath.Transform {
	out := make([]fhpath.Transform, 0, len(r.current)+len(r.fake)+2)
	if own != nil {
		out = append(out, *own)
	}
	for i := len(r.current) - 1; i >= 0; i-- {
		out = append(out, r.current[i])
	}
	out = append(out, r.normalization)
	out = append(out, r.fake...)
	return out
}

// toPage transforms the geometry of an element to page coordinates.
// The transforms are applied one after the other, so that arcs
// are re-parameterized at each step.
func (r *renderer) toPage(p *fhpath.Path, own *fhpath.Transform) {
	for _, t := range r.pageTransforms(own) {
		p.Transform(t)
	}
}

// pointToPage transforms a point to page coordinates.
func (r *renderer) pointToPage(x, y float64, own *fhpath.Transform) (float64, float64) {
	for _, t := range r.pageTransforms(own) {
		x, y = t.Apply(x, y)
	}
	return x, y
}
