package fhdraw

import (
	"testing"

	"seehuhn.de/go/geom/rect"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhpath"
)

// names IDs used by the test documents
const (
	fillName     fhdoc.ID = 1
	strokeName   fhdoc.ID = 2
	contentsName fhdoc.ID = 3
)

// builder assembles small documents, with a 100x100 page.
type builder struct {
	doc  *fhdoc.Collection
	next fhdoc.ID
}

func newBuilder() *builder {
	doc := fhdoc.NewCollection()
	doc.CollectName(fillName, fhdoc.NameFill)
	doc.CollectName(strokeName, fhdoc.NameStroke)
	doc.CollectName(contentsName, fhdoc.NameContents)
	return &builder{doc: doc, next: 100}
}

func (b *builder) id() fhdoc.ID {
	b.next++
	return b.next
}

func (b *builder) color(r, g, bl uint8) fhdoc.ID {
	id := b.id()
	b.doc.CollectRGBColor(id, fhdoc.RGBColor{R: uint16(r) * 0x101, G: uint16(g) * 0x101, B: uint16(bl) * 0x101})
	return id
}

func (b *builder) basicFill(color fhdoc.ID) fhdoc.ID {
	id := b.id()
	b.doc.CollectBasicFill(id, fhdoc.BasicFill{ColorID: color})
	return id
}

func (b *builder) line(color fhdoc.ID, width float64) fhdoc.ID {
	id := b.id()
	b.doc.CollectBasicLine(id, fhdoc.BasicLine{ColorID: color, Width: width})
	return id
}

// propList returns a style with the given fill and stroke values (0 to skip).
func (b *builder) propList(parent, fill, stroke fhdoc.ID) fhdoc.ID {
	elements := make(map[fhdoc.ID]fhdoc.ID)
	if fill != 0 {
		elements[fillName] = fill
	}
	if stroke != 0 {
		elements[strokeName] = stroke
	}
	id := b.id()
	b.doc.CollectPropList(id, fhdoc.PropList{ParentID: parent, Elements: elements})
	return id
}

func (b *builder) solidStyle(r, g, bl uint8) fhdoc.ID {
	return b.propList(0, b.basicFill(b.color(r, g, bl)), 0)
}

func rectGeometry(x, y, w, h float64) fhpath.Path {
	var p fhpath.Path
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Closed = true
	return p
}

func (b *builder) rect(x, y, w, h float64, style fhdoc.ID) fhdoc.ID {
	id := b.id()
	b.doc.CollectPath(id, fhdoc.Path{Geometry: rectGeometry(x, y, w, h), StyleID: style})
	return id
}

func (b *builder) transform(t fhpath.Transform) fhdoc.ID {
	id := b.id()
	b.doc.CollectTransform(id, t)
	return id
}

func (b *builder) list(elements ...fhdoc.ID) fhdoc.ID {
	id := b.id()
	b.doc.CollectList(id, fhdoc.List{Elements: elements})
	return id
}

func (b *builder) group(xform fhdoc.ID, children ...fhdoc.ID) fhdoc.ID {
	id := b.id()
	b.doc.CollectGroup(id, fhdoc.Group{XFormID: xform, ListID: b.list(children...)})
	return id
}

// finish adds a visible layer with the given elements, plus a hidden one,
// and the block and tail records.
func (b *builder) finish(elements ...fhdoc.ID) *fhdoc.Collection {
	b.finishWithoutTail(elements...)
	blockID, _ := b.doc.Block()
	b.doc.CollectTail(b.id(), fhdoc.Tail{BlockID: blockID, Page: rect.Rect{URx: 100, URy: 100}})
	return b.doc
}

func (b *builder) finishWithoutTail(elements ...fhdoc.ID) *fhdoc.Collection {
	visible, hidden := b.id(), b.id()
	b.doc.CollectLayer(visible, fhdoc.Layer{ListID: b.list(elements...), Visible: true})
	b.doc.CollectLayer(hidden, fhdoc.Layer{ListID: b.list(b.rect(0, 0, 5, 5, 0)), Visible: false})
	b.doc.CollectBlock(b.id(), fhdoc.Block{LayerListID: b.list(visible, hidden)})
	return b.doc
}

func draw(t *testing.T, doc *fhdoc.Collection, opts Options) *fhpaint.Recorder {
	t.Helper()
	var rec fhpaint.Recorder
	if err := Draw(doc, &rec, opts); err != nil {
		t.Fatal(err)
	}
	return &rec
}

func count(rec *fhpaint.Recorder, method string) int { return len(rec.Find(method)) }
