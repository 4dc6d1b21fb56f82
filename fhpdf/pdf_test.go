package fhpdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/benoitkugler/freehand/fhpaint"
)

func TestFillColor(t *testing.T) {
	for _, test := range []struct {
		style fhpaint.Properties
		ok    bool
		r     uint8
	}{
		{fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillSolid, fhpaint.FillColor, "#ff0000"), true, 0xff},
		{fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillGradient, fhpaint.StartColor, "#800000"), true, 0x80},
		{fhpaint.Properties{
			Values: map[string]string{fhpaint.Fill: fhpaint.FillGradient, fhpaint.StartColor: "#800000"},
			Stops:  []fhpaint.GradientStop{{Color: "#100000"}},
		}, true, 0x10},
		{fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillBitmap), false, 0},
		{fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillNone), false, 0},
	} {
		col, ok := fillColor(test.style)
		if ok != test.ok || col.R != test.r {
			t.Errorf("fillColor(%s) = %v, %v", test.style, col, ok)
		}
	}
}

func TestOpacity(t *testing.T) {
	style := fhpaint.NewProperties(fhpaint.FillOpacity, "50%", fhpaint.Opacity, "50%")
	got := []float64{opacity(style, fhpaint.FillOpacity), opacity(style, fhpaint.StrokeOpacity)}
	if diff := cmp.Diff([]float64{0.25, 0.5}, got); diff != "" {
		t.Errorf("unexpected opacities (-want +got):\n%s", diff)
	}
}

func TestWriteFile(t *testing.T) {
	p := New()
	p.StartDocument()
	p.StartPage(fhpaint.NewProperties(fhpaint.Width, "200", fhpaint.Height, "100"))
	p.OpenGroup(fhpaint.Properties{})
	p.SetStyle(fhpaint.NewProperties(
		fhpaint.Fill, fhpaint.FillSolid, fhpaint.FillColor, "#336699", fhpaint.FillRule, "evenodd",
		fhpaint.Stroke, fhpaint.StrokeSolid, fhpaint.StrokeColor, "#000000", fhpaint.StrokeWidth, "2",
	))
	p.DrawPath(fhpaint.PathData{
		{Kind: fhpaint.MoveTo, X: 10, Y: 10},
		{Kind: fhpaint.QuadTo, X1: 50, Y1: 0, X: 90, Y: 10},
		{Kind: fhpaint.ArcTo, RX: 20, RY: 20, Sweep: true, X: 90, Y: 50},
		{Kind: fhpaint.ClosePath},
		{Kind: fhpaint.LineTo, X: 20, Y: 80},
	})
	p.DrawRectangle(fhpaint.NewProperties(fhpaint.X, "100", fhpaint.Y, "10", fhpaint.Width, "50", fhpaint.Height, "50"))
	p.CloseGroup()
	p.EndPage()
	p.EndDocument()

	if p.Pages() != 1 {
		t.Fatalf("expected one page, got %d", p.Pages())
	}
	name := filepath.Join(t.TempDir(), "out.pdf")
	if err := p.WriteFile(name); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty PDF file")
	}
}
