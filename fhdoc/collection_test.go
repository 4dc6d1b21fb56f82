package fhdoc

import (
	"image/color"
	"testing"

	"github.com/benoitkugler/freehand/fhpath"
	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	c := NewCollection()
	c.CollectPath(3, Path{StyleID: 4})
	c.CollectTransform(5, fhpath.Translate(1, 2))

	if p := c.Path(3); p == nil || p.StyleID != 4 {
		t.Fatalf("unexpected path %v", p)
	}
	if c.Path(0) != nil || c.Path(4) != nil || c.Group(3) != nil {
		t.Fatal("missing records should be nil")
	}
	if tr := c.Transform(5); tr == nil || tr.M13 != 1 {
		t.Fatalf("unexpected transform %v", tr)
	}

	// last write wins
	c.CollectPath(3, Path{StyleID: 7})
	if p := c.Path(3); p.StyleID != 7 {
		t.Fatalf("unexpected path %v", p)
	}
}

func TestNames(t *testing.T) {
	c := NewCollection()
	c.CollectName(10, "fill")
	c.CollectName(11, "stroke")
	c.CollectName(12, "contents")
	c.CollectName(13, "other")
	if c.FillNameID() != 10 || c.StrokeNameID() != 11 || c.ContentsNameID() != 12 {
		t.Fatal("special names not recognized")
	}
	if c.Name(13) != "other" || c.Name(14) != "" {
		t.Fatal("unexpected name table")
	}

	c.CollectString(20, "Helvetica")
	if s, ok := c.LookupString(20); !ok || s != "Helvetica" {
		t.Fatal("unexpected string table")
	}
	if _, ok := c.LookupString(0); ok {
		t.Fatal("0 is never a valid ID")
	}
}

func TestBlock(t *testing.T) {
	c := NewCollection()
	if _, b := c.Block(); b != nil {
		t.Fatal("no block expected")
	}
	c.CollectBlock(2, Block{LayerListID: 5})
	c.CollectBlock(3, Block{LayerListID: 6})
	id, b := c.Block()
	if id != 2 || b.LayerListID != 5 {
		t.Fatalf("first block should be kept, got %d %v", id, b)
	}
	// same ID: updated
	c.CollectBlock(2, Block{LayerListID: 7})
	if _, b := c.Block(); b.LayerListID != 7 {
		t.Fatalf("unexpected block %v", b)
	}
}

func TestTint(t *testing.T) {
	c := NewCollection()
	c.CollectRGBColor(1, RGBColor{R: 0xFFFF})
	c.CollectTintColor(2, TintColor{BaseColorID: 1, Tint: 0x8000})
	c.CollectTintColor(3, TintColor{BaseColorID: 2, Tint: 0})
	c.CollectTintColor(4, TintColor{BaseColorID: 99, Tint: 0x8000})
	c.CollectTintColor(5, TintColor{BaseColorID: 5, Tint: 0x8000}) // cycle

	col, ok := c.Color(2)
	if !ok {
		t.Fatal("tint should resolve")
	}
	if diff := cmp.Diff(color.RGBA64{R: 0xFFFF, G: 0x8000, B: 0x8000, A: 0xFFFF}, col); diff != "" {
		t.Fatal(diff)
	}
	if s := c.ColorString(2); s != "#ff8080" {
		t.Fatalf("unexpected color %s", s)
	}
	if s := c.ColorString(3); s != "#ffffff" {
		t.Fatalf("tint of tint: unexpected color %s", s)
	}
	if s := c.ColorString(4); s != "" {
		t.Fatalf("dangling base: unexpected color %s", s)
	}
	if s := c.ColorString(5); s != "" {
		t.Fatalf("cyclic tint: unexpected color %s", s)
	}
	if s := c.ColorString(0); s != "" {
		t.Fatalf("unexpected color %s", s)
	}
}

func TestImageData(t *testing.T) {
	c := NewCollection()
	c.CollectData(1, []byte("ab"))
	c.CollectData(2, []byte("cd"))
	c.CollectDataList(3, DataList{Elements: []ID{1, 42, 2}})
	if got := string(c.ImageData(3)); got != "abcd" {
		t.Fatalf("unexpected payload %q", got)
	}
	if c.ImageData(4) != nil {
		t.Fatal("missing list should give no data")
	}
}

func TestHelpers(t *testing.T) {
	c := NewCollection()
	c.CollectList(1, List{Elements: []ID{3, 2}})
	if diff := cmp.Diff([]ID{3, 2}, c.ListElements(1)); diff != "" {
		t.Fatal(diff)
	}
	if c.ListElements(2) != nil {
		t.Fatal("missing list should be nil")
	}

	gs := GraphicStyle{Elements: map[ID]ID{9: 1, 3: 2, 5: 3}}
	if diff := cmp.Diff([]ID{3, 5, 9}, gs.Attributes()); diff != "" {
		t.Fatal(diff)
	}

	tb := TextBlock{Text: []uint16{'h', 'é', 0xD83D, 0xDE00, '!'}}
	if tb.String() != "hé😀!" {
		t.Fatalf("unexpected text %q", tb.String())
	}
	if s := tb.Slice(2, 10); s != "😀!" {
		t.Fatalf("unexpected slice %q", s)
	}
	if s := tb.Slice(3, 1); s != "" {
		t.Fatalf("unexpected slice %q", s)
	}

	if AlignCenter.String() != "center" || Align(42).String() != "left" {
		t.Fatal("unexpected align names")
	}
}
