package fhdraw

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhpath"
)

func TestSolidRectangle(t *testing.T) {
	b := newBuilder()
	doc := b.finish(b.rect(10, 10, 20, 20, b.solidStyle(0x33, 0x66, 0x99)))

	rec := draw(t, doc, Options{})
	want := []string{
		"StartDocument",
		"StartPage {height=100 width=100}",
		"SetStyle {fill=solid fill-color=#336699 stroke=none}",
		"DrawPath M10 90 L30 90 L30 70 L10 70 Z",
		"EndPage",
		"EndDocument",
	}
	if diff := cmp.Diff(want, strings.Split(rec.String(), "\n")); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestNoBlock(t *testing.T) {
	var rec fhpaint.Recorder
	err := Draw(fhdoc.NewCollection(), &rec, Options{})
	if !errors.Is(err, ErrNoBlock) {
		t.Fatalf("expected ErrNoBlock, got %v", err)
	}
	if len(rec.Calls) != 0 {
		t.Fatalf("expected no calls, got %s", rec.String())
	}
}

func TestMissingTail(t *testing.T) {
	b := newBuilder()
	doc := b.finishWithoutTail(b.rect(10, 10, 20, 20, b.solidStyle(0, 0, 0)))

	rec := draw(t, doc, Options{})
	page := rec.Find("StartPage")[0].Props
	if got := page.String(); got != "{height=20 width=20}" {
		t.Fatalf("unexpected page %s", got)
	}
	// the page is the extent of the visible layers
	if got := rec.Find("DrawPath")[0].Path.String(); got != "M0 20 L20 20 L20 0 L0 0 Z" {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestEmptyDocument(t *testing.T) {
	b := newBuilder()
	doc := b.finishWithoutTail()
	rec := draw(t, doc, Options{})
	want := []string{"StartDocument", "StartPage", "EndPage", "EndDocument"}
	if diff := cmp.Diff(want, rec.Methods()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
	if w, _ := rec.Calls[1].Props.Float(fhpaint.Width); w != 0 {
		t.Fatalf("unexpected width %g", w)
	}
}

func TestDanglingReference(t *testing.T) {
	b := newBuilder()
	doc := b.finish(b.group(0, 999, b.rect(10, 10, 20, 20, b.solidStyle(0, 0, 0))))

	rec := draw(t, doc, Options{})
	want := []string{"StartDocument", "StartPage", "OpenGroup", "SetStyle", "DrawPath", "CloseGroup", "EndPage", "EndDocument"}
	if diff := cmp.Diff(want, rec.Methods()); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
}

func TestTransformOrder(t *testing.T) {
	b := newBuilder()
	path := b.rect(10, 10, 10, 10, 0)
	p := *b.doc.Path(path)
	p.XFormID = b.transform(fhpath.Scale(2, 1))
	b.doc.CollectPath(path, p)
	doc := b.finish(b.group(b.transform(fhpath.Translate(5, 0)), path))

	rec := draw(t, doc, Options{})
	// own transform first, then the group one
	if got := rec.Find("DrawPath")[0].Path.String(); got != "M25 90 L45 90 L45 80 L25 80 Z" {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestSymbol(t *testing.T) {
	b := newBuilder()
	group := b.group(0, b.rect(0, 0, 10, 10, 0))
	class := b.id()
	b.doc.CollectSymbolClass(class, fhdoc.SymbolClass{GroupID: group})
	instance := b.id()
	b.doc.CollectSymbolInstance(instance, fhdoc.SymbolInstance{Transform: fhpath.Translate(20, 30), ClassID: class})
	doc := b.finish(instance)

	rec := draw(t, doc, Options{})
	if got := rec.Find("DrawPath")[0].Path.String(); got != "M20 70 L30 70 L30 60 L20 60 Z" {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestCyclicSymbol(t *testing.T) {
	b := newBuilder()
	class, instance := b.id(), b.id()
	group := b.group(0, b.rect(0, 0, 10, 10, 0), instance)
	b.doc.CollectSymbolClass(class, fhdoc.SymbolClass{GroupID: group})
	b.doc.CollectSymbolInstance(instance, fhdoc.SymbolInstance{Transform: fhpath.Identity, ClassID: class})
	doc := b.finish(group)

	rec := draw(t, doc, Options{MaxDepth: 8})
	// the group is entered at depths 1, 3, 5 and 7
	if n := count(rec, "DrawPath"); n != 4 {
		t.Fatalf("expected 4 paths, got %d", n)
	}
	if count(rec, "OpenGroup") != count(rec, "CloseGroup") {
		t.Fatal("unbalanced groups")
	}
}

func TestCompositePath(t *testing.T) {
	b := newBuilder()
	first := b.rect(10, 10, 10, 10, 0)
	second := b.rect(10, 10, 10, 10, 0)
	p := *b.doc.Path(second)
	p.XFormID = b.transform(fhpath.Translate(50, 0))
	b.doc.CollectPath(second, p)
	composite := b.id()
	b.doc.CollectCompositePath(composite, fhdoc.CompositePath{ListID: b.list(first, second), StyleID: b.solidStyle(0xff, 0, 0)})
	doc := b.finish(composite)

	rec := draw(t, doc, Options{})
	paths := rec.Find("DrawPath")
	if len(paths) != 1 {
		t.Fatalf("expected one path, got %d", len(paths))
	}
	if got := paths[0].Path.String(); got != "M10 90 L20 90 L20 80 L10 80 Z M60 90 L70 90 L70 80 L60 80 Z" {
		t.Fatalf("unexpected path %s", got)
	}
	if got := rec.Find("SetStyle")[0].Props.Get(fhpaint.FillColor); got != "#ff0000" {
		t.Fatalf("unexpected fill %s", got)
	}
}

func TestBlend(t *testing.T) {
	b := newBuilder()
	blend := b.id()
	b.doc.CollectNewBlend(blend, fhdoc.NewBlend{
		List1ID: b.list(b.rect(0, 0, 1, 1, 0)),
		List2ID: b.list(b.rect(2, 0, 1, 1, 0)),
		List3ID: b.list(b.rect(4, 0, 1, 1, 0)),
	})
	doc := b.finish(blend)

	rec := draw(t, doc, Options{})
	if count(rec, "OpenGroup") != 1 || count(rec, "DrawPath") != 3 {
		t.Fatalf("unexpected calls\n%s", rec.String())
	}
}

func TestHiddenLayer(t *testing.T) {
	b := newBuilder()
	doc := b.finish()
	rec := draw(t, doc, Options{})
	if n := count(rec, "DrawPath"); n != 0 {
		t.Fatalf("hidden layers must not be drawn, got %d paths", n)
	}
}

func TestPageFromLayers(t *testing.T) {
	b := newBuilder()
	doc := b.finishWithoutTail(b.rect(10, 10, 20, 20, 0), b.group(0, b.rect(50, 40, 10, 10, 0)))
	blockID, _ := doc.Block()
	// a tail with a flat page is not usable
	doc.CollectTail(b.id(), fhdoc.Tail{BlockID: blockID, Page: rect.Rect{URx: 100}})

	rec := draw(t, doc, Options{})
	if got := rec.Find("StartPage")[0].Props.String(); got != "{height=40 width=50}" {
		t.Fatalf("unexpected page %s", got)
	}
	if got := rec.Find("DrawPath")[0].Path.String(); got != "M0 40 L20 40 L20 20 L0 20 Z" {
		t.Fatalf("unexpected path %s", got)
	}
}
