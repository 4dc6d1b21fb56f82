// Package fhraster implements a raster painter, by wrapping rasterx.
//
// It is used to embed sub-documents as PNG images. Text is not
// rendered, and group properties are ignored.
package fhraster

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhpath"
)

var _ fhpaint.Painter = (*Painter)(nil) // assert interface conformance

// Painter draws each page into an RGBA image.
type Painter struct {
	scale float64 // pixels per point
	pages []*image.RGBA

	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	style  fhpaint.Properties
}

// New returns a painter using scale pixels per point.
// A non positive scale is replaced by 1.
func New(scale float64) *Painter {
	if scale <= 0 {
		scale = 1
	}
	return &Painter{scale: scale}
}

// Image returns the i-th page, or nil.
func (p *Painter) Image(i int) *image.RGBA {
	if i < 0 || i >= len(p.pages) {
		return nil
	}
	return p.pages[i]
}

// PNG encodes the i-th page.
func (p *Painter) PNG(i int) ([]byte, error) {
	img := p.Image(i)
	if img == nil {
		img = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (p *Painter) StartDocument() {}
func (p *Painter) EndDocument()   {}

// pixels returns the size in pixels of a length in points, at least 1.
func (p *Painter) pixels(length float64) int {
	return max(1, int(math.Ceil(length*p.scale)))
}

func (p *Painter) StartPage(props fhpaint.Properties) {
	w, _ := props.Float(fhpaint.Width)
	h, _ := props.Float(fhpaint.Height)
	width, height := p.pixels(w), p.pixels(h)
	p.img = image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, p.img, p.img.Bounds())
	p.dasher = rasterx.NewDasher(width, height, scanner)
	p.filler = rasterx.NewFiller(width, height, scanner)
	p.style = fhpaint.Properties{}
}

func (p *Painter) EndPage() {
	p.pages = append(p.pages, p.img)
	p.img, p.dasher, p.filler = nil, nil, nil
}

func (p *Painter) OpenGroup(fhpaint.Properties) {}
func (p *Painter) CloseGroup()                  {}

func (p *Painter) SetStyle(props fhpaint.Properties) { p.style = props.Clone() }

// adder is implemented by rasterx fillers and dashers.
type adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

func (p *Painter) point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * p.scale * 64), Y: fixed.Int26_6(y * p.scale * 64)}
}

// addPath sends the path to the rasterizer, in pixels.
func (p *Painter) addPath(path fhpaint.PathData, to adder) {
	var (
		x, y           float64 // current point
		startX, startY float64
		open           bool
	)
	ensureOpen := func() {
		if !open {
			to.Start(p.point(x, y))
			startX, startY, open = x, y, true
		}
	}
	for _, a := range path {
		switch a.Kind {
		case fhpaint.MoveTo:
			if open {
				to.Stop(false)
			}
			x, y, open = a.X, a.Y, false
			ensureOpen()
		case fhpaint.LineTo:
			ensureOpen()
			to.Line(p.point(a.X, a.Y))
		case fhpaint.QuadTo:
			ensureOpen()
			to.QuadBezier(p.point(a.X1, a.Y1), p.point(a.X, a.Y))
		case fhpaint.CubicTo:
			ensureOpen()
			to.CubeBezier(p.point(a.X1, a.Y1), p.point(a.X2, a.Y2), p.point(a.X, a.Y))
		case fhpaint.ArcTo:
			ensureOpen()
			arc := fhpath.ArcTo{
				RX: a.RX, RY: a.RY, Rotation: a.Rotate * math.Pi / 180,
				LargeArc: a.LargeArc, Sweep: a.Sweep, X: a.X, Y: a.Y,
			}
			for _, c := range arc.ToCubics(x, y) {
				to.CubeBezier(p.point(c.X1, c.Y1), p.point(c.X2, c.Y2), p.point(c.X, c.Y))
			}
		case fhpaint.ClosePath:
			if open {
				to.Stop(true)
				open = false
			}
			x, y = startX, startY
			continue
		}
		x, y = a.X, a.Y
	}
	if open {
		to.Stop(false)
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

func (p *Painter) DrawPath(path fhpaint.PathData) {
	if p.img == nil || len(path) == 0 {
		return
	}
	evenOdd := p.style.Get(fhpaint.FillRule) == "evenodd"
	switch p.style.Get(fhpaint.Fill) {
	case fhpaint.FillSolid, fhpaint.FillGradient:
		p.filler.Clear()
		p.filler.SetWinding(!evenOdd)
		p.addPath(path, p.filler)
		p.setFillColor()
		p.filler.Draw()
	case fhpaint.FillBitmap:
		p.drawBitmapFill(path, evenOdd)
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
		p.dasher.Clear()
		p.dasher.SetStroke(
			fixed.Int26_6(width*p.scale*64), fixed.Int26_6(4*64),
			rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter, nil, 0,
		)
		p.addPath(path, p.dasher)
		p.dasher.SetColor(rasterx.ApplyOpacity(col, opacity(p.style, fhpaint.StrokeOpacity)))
		p.dasher.Draw()
	}
}

// setFillColor resolves the color of the filler, which must
// already contain the path.
func (p *Painter) setFillColor() {
	alpha := opacity(p.style, fhpaint.FillOpacity)
	if p.style.Get(fhpaint.Fill) == fhpaint.FillSolid {
		col, _ := fhpaint.ParseColor(p.style.Get(fhpaint.FillColor))
		p.filler.SetColor(rasterx.ApplyOpacity(col, alpha))
		return
	}
	grad := toRasterxGradient(p.style)
	fRect := p.filler.Scanner.GetPathExtent()
	mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
	mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
	grad.Bounds.X, grad.Bounds.Y = mnx, mny
	grad.Bounds.W, grad.Bounds.H = mxx-mnx, mxy-mny
	p.filler.SetColor(grad.GetColorFunction(alpha))
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

func (p *Painter) StartTextObject(fhpaint.Properties) {}
func (p *Painter) EndTextObject()                     {}
func (p *Painter) OpenParagraph(fhpaint.Properties)   {}
func (p *Painter) CloseParagraph()                    {}
func (p *Painter) OpenSpan(fhpaint.Properties)        {}
func (p *Painter) CloseSpan()                         {}
func (p *Painter) InsertText(string)                  {}

// toRasterxGradient builds a gradient in bounding box units.
func toRasterxGradient(style fhpaint.Properties) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	if style.Get(fhpaint.GradientStyle) == "radial" {
		cx, ok := style.Float(fhpaint.CX)
		if !ok {
			cx = .5
		}
		cy, ok := style.Float(fhpaint.CY)
		if !ok {
			cy = .5
		}
		points = [5]float64{cx, cy, cx, cy, .5}
		isRadial = true
	} else {
		angle, _ := style.Float(fhpaint.GradientAngle)
		sin, cos := math.Sincos(angle * math.Pi / 180)
		points[0], points[1], points[2], points[3] = .5-sin/2, .5+cos/2, .5+sin/2, .5-cos/2
	}

	stops := style.Stops
	if len(stops) == 0 {
		stops = []fhpaint.GradientStop{
			{Offset: 0, Color: style.Get(fhpaint.StartColor), Opacity: 1},
			{Offset: 1, Color: style.Get(fhpaint.EndColor), Opacity: 1},
		}
	}
	gradStops := make([]rasterx.GradStop, len(stops))
	for i, stop := range stops {
		col, _ := fhpaint.ParseColor(stop.Color)
		gradStops[i] = rasterx.GradStop{StopColor: col, Offset: stop.Offset, Opacity: stop.Opacity}
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    gradStops,
		Matrix:   rasterx.Identity,
		Spread:   rasterx.PadSpread,
		Units:    rasterx.ObjectBoundingBox,
		IsRadial: isRadial,
	}
}
