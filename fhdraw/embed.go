package fhdraw

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"

	"golang.org/x/image/bmp"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhpath"
	"github.com/benoitkugler/freehand/fhraster"
	"github.com/benoitkugler/freehand/fhsvg"
)

const (
	mimeSVG = "image/svg+xml"
	mimePNG = "image/png"
	mimeBMP = "image/bmp"
)

// embed renders a sub-document of the given size, redirecting the
// commands emitted by draw. It returns the serialized document, or
// false if it is (almost) empty.
func (r *renderer) embed(width, height float64, draw func()) (data []byte, mime string, ok bool) {
	var page fhpaint.Properties
	page.SetFloat(fhpaint.Width, width)
	page.SetFloat(fhpaint.Height, height)

	svg := fhsvg.New()
	var (
		sub    fhpaint.Painter = svg
		raster *fhraster.Painter
	)
	if r.opts.EmbedRaster {
		raster = fhraster.New(r.opts.RasterScale)
		sub = fhpaint.Tee{svg, raster}
	}

	saved := r.painter
	r.painter = sub
	func() {
		defer func() { r.painter = saved }()
		sub.StartDocument()
		sub.StartPage(page)
		draw()
		sub.EndPage()
		sub.EndDocument()
	}()

	content := svg.Document(0)
	if r.opts.MinEmbedSize >= 0 {
		empty := fhsvg.New()
		empty.StartDocument()
		empty.StartPage(page)
		empty.EndPage()
		empty.EndDocument()
		if added := len(content) - len(empty.Document(0)); added < r.opts.MinEmbedSize {
			r.log.Debug("fhdraw: discarding empty sub-document", "added-bytes", added)
			return nil, "", false
		}
	}

	if raster != nil {
		png, err := raster.PNG(0)
		if err != nil {
			r.log.Warn("fhdraw: encoding raster sub-document", "error", err)
			return nil, "", false
		}
		return png, mimePNG, true
	}
	return content, mimeSVG, true
}

// appendEmbedded renders the sub-document covering box (in page
// coordinates) and stores it as a stretched fill image.
func (r *renderer) appendEmbedded(props *fhpaint.Properties, box fhpath.Box, draw func()) bool {
	pop := r.pushFake(fhpath.Translate(-box.XMin, -box.YMin))
	defer pop()

	data, mime, ok := r.embed(box.Width(), box.Height(), draw)
	if !ok {
		return false
	}
	setFillImage(props, data, mime)
	props.Set(fhpaint.Repeat, fhpaint.RepeatStretch)
	return true
}

func setFillImage(props *fhpaint.Properties, data []byte, mime string) {
	props.Set(fhpaint.Fill, fhpaint.FillBitmap)
	props.Set(fhpaint.FillImage, base64.StdEncoding.EncodeToString(data))
	props.Set(fhpaint.MimeType, mime)
}

// drawClipGroup uses the first child, when it is a path, as the
// clipping shape of the other children.
func (r *renderer) drawClipGroup(g *fhdoc.Group) {
	children := r.doc.ListElements(g.ListID)
	var clip *fhdoc.Path
	if len(children) != 0 {
		clip = r.doc.Path(children[0])
	}
	if clip == nil || clip.Geometry.Empty() {
		r.drawGroup(g)
		return
	}

	pop := r.pushCurrentID(g.XFormID)
	defer pop()
	r.painter.OpenGroup(fhpaint.Properties{})
	defer r.painter.CloseGroup()

	geom := r.pagePath(clip)
	props := fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillNone, fhpaint.Stroke, fhpaint.StrokeNone)
	if box := geom.BoundingBox(); !box.IsEmpty() && box.Width() > 0 && box.Height() > 0 {
		r.appendEmbedded(&props, box, func() {
			for _, child := range children[1:] {
				r.drawElement(child)
			}
		})
	}
	r.painter.SetStyle(props)
	r.painter.DrawPath(normalizePath(fhpaint.NewPathData(geom), true))

	// the visible boundary
	border := fhpaint.NewProperties(fhpaint.Fill, fhpaint.FillNone, fhpaint.Stroke, fhpaint.StrokeNone)
	r.appendStroke(&border, clip.StyleID)
	if border.Get(fhpaint.Stroke) != fhpaint.StrokeNone {
		r.painter.SetStyle(border)
		r.painter.DrawPath(normalizePath(fhpaint.NewPathData(geom), false))
	}
}

// drawContent draws the elements pasted inside a path.
func (r *renderer) drawContent(contentID fhdoc.ID, geom fhpath.Path, data fhpaint.PathData) {
	box := geom.BoundingBox()
	if box.IsEmpty() || box.Width() <= 0 || box.Height() <= 0 {
		return
	}
	leave, ok := r.enterEmbedded(contentID)
	if !ok {
		return
	}
	defer leave()

	props := fhpaint.NewProperties(fhpaint.Stroke, fhpaint.StrokeNone)
	if !r.appendEmbedded(&props, box, func() { r.drawElement(contentID) }) {
		return
	}
	r.painter.OpenGroup(fhpaint.Properties{})
	r.painter.SetStyle(props)
	r.painter.DrawPath(data)
	r.painter.CloseGroup()
}

// appendTileFill renders the tile group on its own, scaled,
// and repeats it.
func (r *renderer) appendTileFill(props *fhpaint.Properties, fill *fhdoc.TileFill) {
	leave, ok := r.enterEmbedded(fill.GroupID)
	if !ok {
		return
	}
	defer leave()
	restore := r.isolate()
	defer restore()
	pop := r.pushCurrentID(fill.XFormID)
	defer pop()

	box := r.boundingBox(fill.GroupID)
	if box.IsEmpty() || box.Width() <= 0 || box.Height() <= 0 {
		return
	}
	sx, sy := fill.ScaleX, fill.ScaleY
	if sx <= 0 {
		sx = 1
	}
	if sy <= 0 {
		sy = 1
	}
	popFake := r.pushFake(fhpath.Translate(-box.XMin, -box.YMin).Mul(fhpath.Scale(sx, sy)))
	defer popFake()

	width, height := box.Width()*sx, box.Height()*sy
	data, mime, ok := r.embed(width, height, func() { r.drawElement(fill.GroupID) })
	if !ok {
		return
	}
	setFillImage(props, data, mime)
	props.Set(fhpaint.Repeat, fhpaint.RepeatTile)
	props.SetFloat(fhpaint.FillImageWidth, width)
	props.SetFloat(fhpaint.FillImageHeight, height)
}

// patternSize is the side of the pattern bitmaps, in pixels and points.
const patternSize = 8

// patternImage returns the 8x8 image of the pattern: a set bit
// is painted with col, other pixels are white. Bits are read from
// the most significant one, rows from the top.
func patternImage(pattern [8]byte, col color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, patternSize, patternSize))
	for y, row := range pattern {
		for x := 0; x < patternSize; x++ {
			if row&(0x80>>x) != 0 {
				img.Set(x, y, col)
			} else {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}

func (r *renderer) appendPatternFill(props *fhpaint.Properties, fill *fhdoc.PatternFill) {
	col, ok := r.doc.Color(fill.ColorID)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, patternImage(fill.Pattern, col)); err != nil {
		r.log.Warn("fhdraw: encoding pattern", "error", err)
		return
	}
	setFillImage(props, buf.Bytes(), mimeBMP)
	props.Set(fhpaint.Repeat, fhpaint.RepeatTile)
	props.SetInt(fhpaint.FillImageWidth, patternSize)
	props.SetInt(fhpaint.FillImageHeight, patternSize)
}
