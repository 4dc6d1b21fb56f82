package fhraster

import (
	"encoding/base64"
	"image"
	"image/color"
	_ "image/jpeg" // decoders of embedded images
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	_ "golang.org/x/image/tiff"

	"github.com/benoitkugler/freehand/fhpaint"
)

// decodeImage decodes base64 data of a raster MIME type.
func decodeImage(mime, data string) (image.Image, bool) {
	if data == "" || !strings.HasPrefix(mime, "image/") || mime == "image/svg+xml" {
		return nil, false
	}
	img, _, err := image.Decode(base64.NewDecoder(base64.StdEncoding, strings.NewReader(data)))
	if err != nil {
		return nil, false
	}
	return img, true
}

// pathMask returns the coverage of the path.
func (p *Painter) pathMask(path fhpaint.PathData, evenOdd bool) *image.Alpha {
	bounds := p.img.Bounds()
	mask := image.NewAlpha(bounds)
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), mask, bounds)
	filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), scanner)
	filler.SetWinding(!evenOdd)
	p.addPath(path, filler)
	filler.SetColor(color.White)
	filler.Draw()
	return mask
}

// drawBitmapFill paints the fill image inside the path, either
// stretched on its bounding box or repeated from the page origin.
func (p *Painter) drawBitmapFill(path fhpaint.PathData, evenOdd bool) {
	src, ok := decodeImage(p.style.Get(fhpaint.MimeType), p.style.Get(fhpaint.FillImage))
	if !ok {
		return
	}
	mask := p.pathMask(path, evenOdd)
	area := alphaBounds(mask)
	if area.Empty() {
		return
	}
	opts := &draw.Options{DstMask: mask}

	if p.style.Get(fhpaint.Repeat) != fhpaint.RepeatTile {
		draw.BiLinear.Scale(p.img, area, src, src.Bounds(), draw.Over, opts)
		return
	}
	w, _ := p.style.Float(fhpaint.FillImageWidth)
	h, _ := p.style.Float(fhpaint.FillImageHeight)
	tw, th := p.pixels(w), p.pixels(h)
	for y := area.Min.Y / th * th; y < area.Max.Y; y += th {
		for x := area.Min.X / tw * tw; x < area.Max.X; x += tw {
			tile := image.Rect(x, y, x+tw, y+th)
			draw.BiLinear.Scale(p.img, tile, src, src.Bounds(), draw.Over, opts)
		}
	}
}

// alphaBounds returns the smallest rectangle containing
// the non transparent pixels.
func alphaBounds(mask *image.Alpha) image.Rectangle {
	var out image.Rectangle
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.AlphaAt(x, y).A != 0 {
				out = out.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return out
}

// DrawGraphicObject draws the image in its frame, rotated
// around the frame center.
func (p *Painter) DrawGraphicObject(props fhpaint.Properties) {
	if p.img == nil {
		return
	}
	src, ok := decodeImage(props.Get(fhpaint.MimeType), props.Get(fhpaint.BinaryData))
	if !ok {
		return
	}
	x, _ := props.Float(fhpaint.X)
	y, _ := props.Float(fhpaint.Y)
	w, _ := props.Float(fhpaint.Width)
	h, _ := props.Float(fhpaint.Height)
	angle, _ := props.Float(fhpaint.Rotate)

	sr := src.Bounds()
	sw, sh := float64(sr.Dx()), float64(sr.Dy())
	if sw == 0 || sh == 0 {
		return
	}
	sx, sy := w*p.scale/sw, h*p.scale/sh
	sin, cos := math.Sincos(angle * math.Pi / 180)
	cx, cy := (x+w/2)*p.scale, (y+h/2)*p.scale

	// source pixels to page pixels: center, scale, rotate, move
	a, b := cos*sx, -sin*sy
	d, e := sin*sx, cos*sy
	ox, oy := float64(sr.Min.X)+sw/2, float64(sr.Min.Y)+sh/2
	m := f64.Aff3{
		a, b, cx - (a*ox + b*oy),
		d, e, cy - (d*ox + e*oy),
	}
	draw.BiLinear.Transform(p.img, m, src, sr, draw.Over, nil)
}
