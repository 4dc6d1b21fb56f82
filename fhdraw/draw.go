// Package fhdraw implements the rendering of a decoded FreeHand
// document, stored in a fhdoc.Collection, to a fhpaint.Painter.
//
// The traversal starts from the layers of the Block record, resolves
// the styles, applies the transforms and emits the drawing commands.
// Fills which are not natively supported by painters (tiles, patterns,
// clipped content) are rendered in embedded sub-documents.
package fhdraw

import (
	"errors"
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhpath"
	"github.com/benoitkugler/freehand/internal/logger"
)

// ErrNoBlock is returned when the document has no Block record.
// Nothing is sent to the painter in this case.
var ErrNoBlock = errors.New("fhdraw: document has no block record")

// renderer holds the state of one traversal.
type renderer struct {
	doc     *fhdoc.Collection
	painter fhpaint.Painter
	opts    Options
	log     *slog.Logger

	// maps document coordinates to page coordinates
	normalization fhpath.Transform

	current []fhpath.Transform // group and symbol transforms
	fake    []fhpath.Transform // sub-document transforms
	depth   int

	embedding map[fhdoc.ID]bool // tile groups and contents being embedded

	styles map[fhdoc.ID]styleNode
}

func newRenderer(doc *fhdoc.Collection, painter fhpaint.Painter, opts Options) *renderer {
	return &renderer{
		doc:           doc,
		painter:       painter,
		opts:          opts.withDefaults(),
		log:           logger.Get(),
		normalization: fhpath.Identity,
		embedding:     make(map[fhdoc.ID]bool),
		styles:        make(map[fhdoc.ID]styleNode),
	}
}

// Draw renders the document to the painter, as one page.
func Draw(doc *fhdoc.Collection, painter fhpaint.Painter, opts Options) error {
	blockID, block := doc.Block()
	if block == nil {
		return ErrNoBlock
	}
	r := newRenderer(doc, painter, opts)

	_, tail := doc.Tail()
	if tail == nil {
		r.log.Warn("fhdraw: missing tail record")
	} else if tail.BlockID != blockID {
		r.log.Warn("fhdraw: tail references an unexpected block, using the collected one",
			"tail-block", tail.BlockID, "block", blockID)
	}

	page := r.pageBox(tail, block)
	r.normalization = fhpath.NewTransform(1, 0, 0, -1, -page.XMin, page.YMax)

	var props fhpaint.Properties
	props.SetFloat(fhpaint.Width, page.Width())
	props.SetFloat(fhpaint.Height, page.Height())

	painter.StartDocument()
	painter.StartPage(props)
	for _, layerID := range r.visibleLayers(block) {
		layer := doc.Layer(layerID)
		for _, id := range doc.ListElements(layer.ListID) {
			r.drawElement(id)
		}
	}
	painter.EndPage()
	painter.EndDocument()
	return nil
}

func (r *renderer) visibleLayers(block *fhdoc.Block) []fhdoc.ID {
	var out []fhdoc.ID
	for _, id := range r.doc.ListElements(block.LayerListID) {
		if layer := r.doc.Layer(id); layer != nil && layer.Visible {
			out = append(out, id)
		}
	}
	return out
}

// pageBox returns the page bounds, in document coordinates.
// When the tail has no usable bounds, the extent of the
// visible layers is used.
func (r *renderer) pageBox(tail *fhdoc.Tail, block *fhdoc.Block) fhpath.Box {
	if tail != nil && tail.Page.Dx() > 0 && tail.Page.Dy() > 0 {
		return fhpath.BoxFromRect(tail.Page)
	}
	// in document coordinates, so without normalization
	var page rect.Rect
	for _, layerID := range r.visibleLayers(block) {
		for _, id := range r.doc.ListElements(r.doc.Layer(layerID).ListID) {
			page.Extend(r.boundingBox(id).Rect())
		}
	}
	return fhpath.BoxFromRect(page)
}

// drawElement renders every kind of element matching id.
func (r *renderer) drawElement(id fhdoc.ID) {
	if id == 0 {
		return
	}
	leave, ok := r.enter(id)
	if !ok {
		return
	}
	defer leave()

	doc := r.doc
	if p := doc.Path(id); p != nil {
		r.drawPath(p)
	}
	if g := doc.Group(id); g != nil {
		r.drawGroup(g)
	}
	if g := doc.ClipGroup(id); g != nil {
		r.drawClipGroup(g)
	}
	if cp := doc.CompositePath(id); cp != nil {
		r.drawCompositePath(cp)
	}
	if t := doc.TextObject(id); t != nil {
		r.drawTextObject(t)
	}
	if t := doc.DisplayText(id); t != nil {
		r.drawDisplayText(t)
	}
	if im := doc.ImageImport(id); im != nil {
		r.drawImage(im)
	}
	if b := doc.NewBlend(id); b != nil {
		r.drawBlend(b)
	}
	if si := doc.SymbolInstance(id); si != nil {
		r.drawSymbol(si)
	}
}

func (r *renderer) drawGroup(g *fhdoc.Group) {
	pop := r.pushCurrentID(g.XFormID)
	defer pop()

	r.painter.OpenGroup(fhpaint.Properties{})
	for _, child := range r.doc.ListElements(g.ListID) {
		r.drawElement(child)
	}
	r.painter.CloseGroup()
}

func (r *renderer) drawBlend(b *fhdoc.NewBlend) {
	pop := r.pushCurrent(fhpath.Identity)
	defer pop()

	r.painter.OpenGroup(fhpaint.Properties{})
	for _, listID := range [3]fhdoc.ID{b.List1ID, b.List2ID, b.List3ID} {
		for _, child := range r.doc.ListElements(listID) {
			r.drawElement(child)
		}
	}
	r.painter.CloseGroup()
}

func (r *renderer) drawSymbol(si *fhdoc.SymbolInstance) {
	class := r.doc.SymbolClass(si.ClassID)
	if class == nil {
		return
	}
	pop := r.pushCurrent(si.Transform)
	defer pop()
	r.drawElement(class.GroupID)
}

// fusePaths concatenates the members of the composite path, each with
// its own transform applied. The style is the one of the composite,
// or of its first member defining one.
func (r *renderer) fusePaths(cp *fhdoc.CompositePath) *fhdoc.Path {
	var (
		out   fhdoc.Path
		found bool
	)
	for _, id := range r.doc.ListElements(cp.ListID) {
		p := r.doc.Path(id)
		if p == nil {
			continue
		}
		geom := p.Geometry.Clone()
		if t := r.doc.Transform(p.XFormID); t != nil {
			geom.Transform(*t)
		}
		if !found {
			out.EvenOdd = p.EvenOdd
			found = true
		}
		out.Geometry.Append(geom)
		out.Geometry.Closed = out.Geometry.Closed || p.Geometry.Closed
		if out.StyleID == 0 {
			out.StyleID = p.StyleID
		}
	}
	if !found {
		return nil
	}
	if cp.StyleID != 0 {
		out.StyleID = cp.StyleID
	}
	return &out
}

func (r *renderer) drawCompositePath(cp *fhdoc.CompositePath) {
	if p := r.fusePaths(cp); p != nil {
		r.drawPath(p)
	}
}

// pathStyle resolves the fill and stroke of the style,
// which default to none.
func (r *renderer) pathStyle(p *fhdoc.Path) fhpaint.Properties {
	props := fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillNone, fhpaint.Stroke, fhpaint.StrokeNone)
	r.appendStroke(&props, p.StyleID)
	r.appendFill(&props, p.StyleID)
	if p.EvenOdd {
		props.Set(fhpaint.FillRule, "evenodd")
	}
	return props
}

// pagePath returns the geometry of p in page coordinates.
func (r *renderer) pagePath(p *fhdoc.Path) fhpath.Path {
	geom := p.Geometry.Clone()
	r.toPage(&geom, r.doc.Transform(p.XFormID))
	return geom
}

func (r *renderer) drawPath(p *fhdoc.Path) {
	if p.Geometry.Empty() {
		return
	}
	props := r.pathStyle(p)
	geom := r.pagePath(p)
	data := normalizePath(fhpaint.NewPathData(geom), props.Get(fhpaint.Fill) != fhpaint.FillNone)

	r.painter.SetStyle(props)
	r.painter.DrawPath(data)

	if contentID := r.contentID(p.StyleID); contentID != 0 {
		r.drawContent(contentID, geom, data)
	}
}
