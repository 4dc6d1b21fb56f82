package fhsvg

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/benoitkugler/freehand/fhpaint"
)

func square() fhpaint.PathData {
	return fhpaint.PathData{
		{Kind: fhpaint.MoveTo},
		{Kind: fhpaint.LineTo, X: 10},
		{Kind: fhpaint.LineTo, X: 10, Y: 10},
		{Kind: fhpaint.ClosePath},
	}
}

func page(p *Painter, draw func()) string {
	p.StartDocument()
	p.StartPage(fhpaint.NewProperties(fhpaint.Width, "100", fhpaint.Height, "50"))
	draw()
	p.EndPage()
	p.EndDocument()
	return string(p.Document(len(p.pages) - 1))
}

func TestSolidPath(t *testing.T) {
	p := New()
	out := page(p, func() {
		p.SetStyle(fhpaint.NewProperties(
			fhpaint.Fill, fhpaint.FillSolid, fhpaint.FillColor, "#336699",
			fhpaint.Stroke, fhpaint.StrokeSolid, fhpaint.StrokeColor, "#000000", fhpaint.StrokeWidth, "2",
			fhpaint.FillOpacity, "50%",
		))
		p.DrawPath(square())
	})
	for _, want := range []string{
		`viewBox="0 0 100 50"`,
		`<path d="M0 0 L10 0 L10 10 Z" fill="#336699" fill-opacity="0.5" stroke="#000000" stroke-width="2"/>`,
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("missing XML header")
	}
}

func TestPages(t *testing.T) {
	p := New()
	page(p, func() {})
	page(p, func() { p.DrawPath(square()) })
	if len(p.Pages()) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(p.Pages()))
	}
	if len(p.Pages()[1]) <= len(p.Pages()[0]) {
		t.Error("drawing should produce a larger document")
	}
	if p.Document(2) != nil {
		t.Error("expected nil for a missing page")
	}
}

func TestGradientAndPattern(t *testing.T) {
	p := New()
	out := page(p, func() {
		p.SetStyle(fhpaint.Properties{
			Values: map[string]string{
				fhpaint.Fill: fhpaint.FillGradient, fhpaint.GradientStyle: "linear", fhpaint.GradientAngle: "90",
			},
			Stops: []fhpaint.GradientStop{{Offset: 0, Color: "#ff0000", Opacity: 1}, {Offset: 1, Color: "#0000ff", Opacity: 1}},
		})
		p.DrawPath(square())
		p.SetStyle(fhpaint.NewProperties(
			fhpaint.Fill, fhpaint.FillBitmap, fhpaint.FillImage, "AAAA", fhpaint.MimeType, "image/bmp",
			fhpaint.Repeat, fhpaint.RepeatTile, fhpaint.FillImageWidth, "8", fhpaint.FillImageHeight, "8",
		))
		p.DrawPath(square())
	})
	for _, want := range []string{
		`<linearGradient id="gradient1" x1="0" y1="0.5" x2="1" y2="0.5">`,
		`<stop offset="1" stop-color="#0000ff"/>`,
		`fill="url(#gradient1)"`,
		`<pattern id="pattern2" patternUnits="userSpaceOnUse" width="8" height="8">`,
		`xlink:href="data:image/bmp;base64,AAAA"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
}

func TestLinearVector(t *testing.T) {
	var got [4]float64
	got[0], got[1], got[2], got[3] = linearVector(0)
	if diff := cmp.Diff([4]float64{.5, 1, .5, 0}, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("unexpected vector (-want +got):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	p := New()
	out := page(p, func() {
		p.StartTextObject(fhpaint.NewProperties(fhpaint.X, "5", fhpaint.Y, "6", fhpaint.Width, "10", fhpaint.Height, "4", fhpaint.Rotate, "90"))
		p.OpenParagraph(fhpaint.NewProperties(fhpaint.TextAlign, "center"))
		p.OpenSpan(fhpaint.NewProperties(fhpaint.FontName, "Helvetica", fhpaint.FontWeight, "bold", fhpaint.Color, "#ff0000"))
		p.InsertText("a < b & c")
		p.CloseSpan()
		p.CloseParagraph()
		p.EndTextObject()
	})
	want := `<text x="5" y="6" transform="rotate(90 10 8)"><tspan x="5" dy="1.2em" text-anchor="middle">` +
		`<tspan font-family="Helvetica" font-weight="bold" fill="#ff0000">a &lt; b &amp; c</tspan></tspan></text>`
	if !strings.Contains(out, want) {
		t.Errorf("unexpected text in\n%s", out)
	}
}

func TestFilter(t *testing.T) {
	p := New()
	out := page(p, func() {
		p.SetStyle(fhpaint.NewProperties(
			fhpaint.Fill, fhpaint.FillNone, fhpaint.ColorMode, "greyscale",
			fhpaint.Shadow, "visible", fhpaint.ShadowOffsetX, "2", fhpaint.ShadowOpacity, "50%",
		))
		p.DrawPath(square())
	})
	for _, want := range []string{
		`<feDropShadow dx="2" dy="0" stdDeviation="0" flood-color="#000000" flood-opacity="0.5"/>`,
		`<feColorMatrix type="saturate" values="0"/>`,
		`filter="url(#filter1)"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in\n%s", want, out)
		}
	}
}
