// Package fhpdf implements a painter writing PDF documents,
// using the content streams of github.com/benoitkugler/pdf.
//
// Only vector graphics are supported: gradients are approximated
// by their first color, and bitmap fills, images and texts are skipped.
package fhpdf

import (
	"image/color"
	"math"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"

	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhpath"
)

var _ fhpaint.Painter = (*Painter)(nil) // assert interface conformance

// Painter accumulates the pages of a PDF document.
type Painter struct {
	doc   model.Document
	pages int

	page  *contentstream.Appearance // current page
	style fhpaint.Properties

	// cache the opacity states
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// New returns an empty document.
func New() *Painter {
	return &Painter{
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// Pages returns the number of pages written so far.
func (p *Painter) Pages() int { return p.pages }

// WriteFile serializes the document into the given file.
func (p *Painter) WriteFile(name string) error { return p.doc.WriteFile(name, nil) }

func (p *Painter) StartDocument() {}
func (p *Painter) EndDocument()   {}

func (p *Painter) StartPage(props fhpaint.Properties) {
	w, _ := props.Float(fhpaint.Width)
	h, _ := props.Float(fhpaint.Height)
	page := contentstream.NewAppearance(w, h)
	p.page = &page
	p.style = fhpaint.Properties{}
	// painters use a top-left origin
	p.page.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, h}},
	)
}

func (p *Painter) EndPage() {
	if p.page == nil {
		return
	}
	p.page.Ops(contentstream.OpRestore{})
	p.doc.Catalog.Pages.Kids = append(p.doc.Catalog.Pages.Kids, p.page.ToPageObject(true))
	p.page = nil
	p.pages++
}

func (p *Painter) OpenGroup(fhpaint.Properties) {
	if p.page != nil {
		p.page.Ops(contentstream.OpSave{})
	}
}

func (p *Painter) CloseGroup() {
	if p.page != nil {
		p.page.Ops(contentstream.OpRestore{})
	}
}

func (p *Painter) SetStyle(props fhpaint.Properties) { p.style = props.Clone() }

// writePath writes the path construction operators.
func (p *Painter) writePath(path fhpaint.PathData) {
	var (
		x, y           float64 // current point
		startX, startY float64
	)
	for _, a := range path {
		switch a.Kind {
		case fhpaint.MoveTo:
			p.page.Ops(contentstream.OpMoveTo{X: a.X, Y: a.Y})
			startX, startY = a.X, a.Y
		case fhpaint.LineTo:
			p.page.Ops(contentstream.OpLineTo{X: a.X, Y: a.Y})
		case fhpaint.QuadTo:
			// degree elevation
			p.page.Ops(contentstream.OpCubicTo{
				X1: x + 2./3*(a.X1-x), Y1: y + 2./3*(a.Y1-y),
				X2: a.X + 2./3*(a.X1-a.X), Y2: a.Y + 2./3*(a.Y1-a.Y),
				X3: a.X, Y3: a.Y,
			})
		case fhpaint.CubicTo:
			p.page.Ops(contentstream.OpCubicTo{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2, X3: a.X, Y3: a.Y})
		case fhpaint.ArcTo:
			arc := fhpath.ArcTo{
				RX: a.RX, RY: a.RY, Rotation: a.Rotate * math.Pi / 180,
				LargeArc: a.LargeArc, Sweep: a.Sweep, X: a.X, Y: a.Y,
			}
			for _, c := range arc.ToCubics(x, y) {
				p.page.Ops(contentstream.OpCubicTo{X1: c.X1, Y1: c.Y1, X2: c.X2, Y2: c.Y2, X3: c.X, Y3: c.Y})
			}
		case fhpaint.ClosePath:
			p.page.Ops(contentstream.OpClosePath{})
			x, y = startX, startY
			continue
		}
		x, y = a.X, a.Y
	}
}

// opacity returns the product of the given opacity and the global one.
func opacity(style fhpaint.Properties, key string) float64 {
	o := 1.
	if v, ok := style.Float(key); ok {
		o = v
	}
	if v, ok := style.Float(fhpaint.Opacity); ok {
		o *= v
	}
	return o
}

// fillColor returns the color used to fill, or false
// for fills which are not supported.
func fillColor(style fhpaint.Properties) (color.NRGBA, bool) {
	switch style.Get(fhpaint.Fill) {
	case fhpaint.FillSolid:
		return fhpaint.ParseColor(style.Get(fhpaint.FillColor))
	case fhpaint.FillGradient:
		if len(style.Stops) != 0 {
			return fhpaint.ParseColor(style.Stops[0].Color)
		}
		return fhpaint.ParseColor(style.Get(fhpaint.StartColor))
	}
	return color.NRGBA{}, false
}

func (p *Painter) DrawPath(path fhpaint.PathData) {
	if p.page == nil || len(path) == 0 {
		return
	}
	if col, ok := fillColor(p.style); ok {
		p.writePath(path)
		p.page.SetColorFill(col)
		o := opacity(p.style, fhpaint.FillOpacity)
		gs, ok := p.fillOpacityStates[o]
		if !ok {
			gs = &model.GraphicState{Ca: model.ObjFloat(o), BM: []model.Name{"Normal"}}
			p.fillOpacityStates[o] = gs
		}
		name := p.page.AddExtGState(gs)
		p.page.Ops(contentstream.OpSetExtGState{Dict: name})
		if p.style.Get(fhpaint.FillRule) == "evenodd" {
			p.page.Ops(contentstream.OpEOFill{})
		} else {
			p.page.Ops(contentstream.OpFill{})
		}
	}

	if p.style.Get(fhpaint.Stroke) == fhpaint.StrokeSolid {
		col, ok := fhpaint.ParseColor(p.style.Get(fhpaint.StrokeColor))
		if !ok {
			return
		}
		width, ok := p.style.Float(fhpaint.StrokeWidth)
		if !ok || width <= 0 {
			width = 1
		}
		p.writePath(path)
		p.page.SetColorStroke(col)
		o := opacity(p.style, fhpaint.StrokeOpacity)
		gs, ok := p.strokeOpacityStates[o]
		if !ok {
			gs = &model.GraphicState{CA: model.ObjFloat(o), BM: []model.Name{"Normal"}}
			p.strokeOpacityStates[o] = gs
		}
		name := p.page.AddExtGState(gs)
		p.page.Ops(
			contentstream.OpSetExtGState{Dict: name},
			contentstream.OpSetLineWidth{W: width},
			contentstream.OpStroke{},
		)
	}
}

func (p *Painter) DrawRectangle(props fhpaint.Properties) {
	x, _ := props.Float(fhpaint.X)
	y, _ := props.Float(fhpaint.Y)
	w, _ := props.Float(fhpaint.Width)
	h, _ := props.Float(fhpaint.Height)
	p.DrawPath(fhpaint.PathData{
		{Kind: fhpaint.MoveTo, X: x, Y: y},
		{Kind: fhpaint.LineTo, X: x + w, Y: y},
		{Kind: fhpaint.LineTo, X: x + w, Y: y + h},
		{Kind: fhpaint.LineTo, X: x, Y: y + h},
		{Kind: fhpaint.ClosePath},
	})
}

func (p *Painter) DrawGraphicObject(fhpaint.Properties) {}
func (p *Painter) StartTextObject(fhpaint.Properties)   {}
func (p *Painter) EndTextObject()                       {}
func (p *Painter) OpenParagraph(fhpaint.Properties)     {}
func (p *Painter) CloseParagraph()                      {}
func (p *Painter) OpenSpan(fhpaint.Properties)          {}
func (p *Painter) CloseSpan()                           {}
func (p *Painter) InsertText(string)                    {}
