// Package fhsvg implements a painter producing SVG documents,
// one per page.
//
// It is used both as an output format and to serialize the
// sub-documents embedded as fill images.
package fhsvg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strconv"

	"github.com/benoitkugler/freehand/fhpaint"
)

var _ fhpaint.Painter = (*Painter)(nil)

const header = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n"

// Painter writes SVG markup. The zero value is ready to use.
type Painter struct {
	pages [][]byte

	buf   bytes.Buffer // current page
	style fhpaint.Properties
	ids   int // for definitions

	textX, textY float64 // current text frame
}

// New returns an empty painter.
func New() *Painter { return &Painter{} }

// Pages returns the SVG documents, one per page.
func (p *Painter) Pages() []string {
	out := make([]string, len(p.pages))
	for i, page := range p.pages {
		out[i] = string(page)
	}
	return out
}

// Document returns the i-th page, or nil if it does not exist.
func (p *Painter) Document(i int) []byte {
	if i < 0 || i >= len(p.pages) {
		return nil
	}
	return p.pages[i]
}

// num formats coordinates, with a fixed precision.
func num(f float64) string {
	f = math.Round(f*1e4) / 1e4
	if f == 0 {
		f = 0 // no negative zero
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p *Painter) escape(s string) { xml.EscapeText(&p.buf, []byte(s)) }

func (p *Painter) attr(name, value string) {
	fmt.Fprintf(&p.buf, ` %s="`, name)
	p.escape(value)
	p.buf.WriteByte('"')
}

func (p *Painter) newID(prefix string) string {
	p.ids++
	return prefix + strconv.Itoa(p.ids)
}

func (p *Painter) StartDocument() {}
func (p *Painter) EndDocument()   {}

func (p *Painter) StartPage(props fhpaint.Properties) {
	w, _ := props.Float(fhpaint.Width)
	h, _ := props.Float(fhpaint.Height)
	p.buf.Reset()
	p.ids = 0
	p.style = fhpaint.Properties{}
	p.buf.WriteString(header)
	fmt.Fprintf(&p.buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" version="1.1" width="%spt" height="%spt" viewBox="0 0 %s %s">`+"\n",
		num(w), num(h), num(w), num(h))
}

func (p *Painter) EndPage() {
	p.buf.WriteString("</svg>\n")
	p.pages = append(p.pages, bytes.Clone(p.buf.Bytes()))
	p.buf.Reset()
}

func (p *Painter) OpenGroup(props fhpaint.Properties) {
	p.buf.WriteString("<g")
	if o, ok := props.Float(fhpaint.Opacity); ok {
		p.attr("opacity", num(o))
	}
	p.buf.WriteString(">\n")
}

func (p *Painter) CloseGroup() { p.buf.WriteString("</g>\n") }

func (p *Painter) SetStyle(props fhpaint.Properties) { p.style = props.Clone() }

func (p *Painter) DrawPath(path fhpaint.PathData) {
	if len(path) == 0 {
		return
	}
	attrs := p.writeDefs(p.style)
	p.buf.WriteString("<path")
	p.attr("d", path.String())
	p.buf.WriteString(attrs)
	p.buf.WriteString("/>\n")
}

func (p *Painter) DrawRectangle(props fhpaint.Properties) {
	attrs := p.writeDefs(p.style)
	p.buf.WriteString("<rect")
	for _, key := range [...]string{fhpaint.X, fhpaint.Y, fhpaint.Width, fhpaint.Height} {
		if v, ok := props.Float(key); ok {
			p.attr(key, num(v))
		}
	}
	p.buf.WriteString(attrs)
	p.buf.WriteString("/>\n")
}

// rotation returns the transform attribute rotating the frame
// around its center, or an empty string.
func rotation(props fhpaint.Properties) string {
	angle, ok := props.Float(fhpaint.Rotate)
	if !ok || angle == 0 {
		return ""
	}
	x, _ := props.Float(fhpaint.X)
	y, _ := props.Float(fhpaint.Y)
	w, _ := props.Float(fhpaint.Width)
	h, _ := props.Float(fhpaint.Height)
	return fmt.Sprintf("rotate(%s %s %s)", num(angle), num(x+w/2), num(y+h/2))
}

func (p *Painter) DrawGraphicObject(props fhpaint.Properties) {
	data := props.Get(fhpaint.BinaryData)
	if data == "" {
		return
	}
	p.buf.WriteString("<image")
	for _, key := range [...]string{fhpaint.X, fhpaint.Y, fhpaint.Width, fhpaint.Height} {
		v, _ := props.Float(key)
		p.attr(key, num(v))
	}
	if t := rotation(props); t != "" {
		p.attr("transform", t)
	}
	p.attr("preserveAspectRatio", "none")
	p.attr("xlink:href", "data:"+props.Get(fhpaint.MimeType)+";base64,"+data)
	p.buf.WriteString("/>\n")
}

func (p *Painter) StartTextObject(props fhpaint.Properties) {
	p.textX, _ = props.Float(fhpaint.X)
	p.textY, _ = props.Float(fhpaint.Y)
	p.buf.WriteString("<text")
	p.attr("x", num(p.textX))
	p.attr("y", num(p.textY))
	if t := rotation(props); t != "" {
		p.attr("transform", t)
	}
	p.buf.WriteString(">")
}

func (p *Painter) EndTextObject() { p.buf.WriteString("</text>\n") }

var textAnchors = map[string]string{
	"left":   "start",
	"center": "middle",
	"right":  "end",
}

// OpenParagraph starts a new line.
func (p *Painter) OpenParagraph(props fhpaint.Properties) {
	p.buf.WriteString("<tspan")
	p.attr("x", num(p.textX))
	p.attr("dy", "1.2em")
	if anchor, ok := textAnchors[props.Get(fhpaint.TextAlign)]; ok && anchor != "start" {
		p.attr("text-anchor", anchor)
	}
	p.buf.WriteString(">")
}

func (p *Painter) CloseParagraph() { p.buf.WriteString("</tspan>") }

func (p *Painter) OpenSpan(props fhpaint.Properties) {
	p.buf.WriteString("<tspan")
	if name := props.Get(fhpaint.FontName); name != "" {
		p.attr("font-family", name)
	}
	if size, ok := props.Float(fhpaint.FontSize); ok {
		p.attr("font-size", num(size))
	}
	if w := props.Get(fhpaint.FontWeight); w != "" {
		p.attr("font-weight", w)
	}
	if s := props.Get(fhpaint.FontStyle); s != "" {
		p.attr("font-style", s)
	}
	if c := props.Get(fhpaint.Color); c != "" {
		p.attr("fill", c)
	}
	p.buf.WriteString(">")
}

func (p *Painter) CloseSpan() { p.buf.WriteString("</tspan>") }

func (p *Painter) InsertText(text string) { p.escape(text) }
