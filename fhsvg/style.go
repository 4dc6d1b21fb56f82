package fhsvg

import (
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/freehand/fhpaint"
)

// writeDefs writes the definitions (gradients, patterns, filters)
// needed by the style and returns the presentation attributes
// of the shape.
func (p *Painter) writeDefs(style fhpaint.Properties) string {
	var attrs strings.Builder
	add := func(name, value string) { fmt.Fprintf(&attrs, ` %s="%s"`, name, value) }

	switch style.Get(fhpaint.Fill) {
	case fhpaint.FillSolid:
		add("fill", style.Get(fhpaint.FillColor))
	case fhpaint.FillGradient:
		add("fill", "url(#"+p.writeGradient(style)+")")
	case fhpaint.FillBitmap:
		if style.Get(fhpaint.FillImage) != "" {
			add("fill", "url(#"+p.writePattern(style)+")")
		} else {
			add("fill", "none")
		}
	default:
		add("fill", "none")
	}
	if o, ok := style.Float(fhpaint.FillOpacity); ok {
		add("fill-opacity", num(o))
	}
	if style.Get(fhpaint.FillRule) == "evenodd" {
		add("fill-rule", "evenodd")
	}

	if style.Get(fhpaint.Stroke) == fhpaint.StrokeSolid {
		add("stroke", style.Get(fhpaint.StrokeColor))
		if w, ok := style.Float(fhpaint.StrokeWidth); ok {
			add("stroke-width", num(w))
		}
		if o, ok := style.Float(fhpaint.StrokeOpacity); ok {
			add("stroke-opacity", num(o))
		}
	} else {
		add("stroke", "none")
	}

	if o, ok := style.Float(fhpaint.Opacity); ok {
		add("opacity", num(o))
	}
	if id := p.writeFilter(style); id != "" {
		add("filter", "url(#"+id+")")
	}
	return attrs.String()
}

func (p *Painter) writeStops(style fhpaint.Properties) {
	stops := style.Stops
	if len(stops) == 0 {
		stops = []fhpaint.GradientStop{
			{Offset: 0, Color: style.Get(fhpaint.StartColor), Opacity: 1},
			{Offset: 1, Color: style.Get(fhpaint.EndColor), Opacity: 1},
		}
	}
	for _, stop := range stops {
		color := stop.Color
		if color == "" {
			color = "#000000"
		}
		fmt.Fprintf(&p.buf, `<stop offset="%s" stop-color="%s"`, num(stop.Offset), color)
		if stop.Opacity != 1 {
			fmt.Fprintf(&p.buf, ` stop-opacity="%s"`, num(stop.Opacity))
		}
		p.buf.WriteString("/>")
	}
}

// linearVector returns the end points, in bounding box units, of
// a gradient whose direction is angle degrees clockwise from the top.
func linearVector(angle float64) (x1, y1, x2, y2 float64) {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return .5 - sin/2, .5 + cos/2, .5 + sin/2, .5 - cos/2
}

func (p *Painter) writeGradient(style fhpaint.Properties) string {
	id := p.newID("gradient")
	p.buf.WriteString("<defs>")
	if style.Get(fhpaint.GradientStyle) == "radial" {
		cx, ok := style.Float(fhpaint.CX)
		if !ok {
			cx = .5
		}
		cy, ok := style.Float(fhpaint.CY)
		if !ok {
			cy = .5
		}
		fmt.Fprintf(&p.buf, `<radialGradient id="%s" cx="%s" cy="%s" r="0.5">`, id, num(cx), num(cy))
		p.writeStops(style)
		p.buf.WriteString("</radialGradient>")
	} else {
		angle, _ := style.Float(fhpaint.GradientAngle)
		x1, y1, x2, y2 := linearVector(angle)
		fmt.Fprintf(&p.buf, `<linearGradient id="%s" x1="%s" y1="%s" x2="%s" y2="%s">`, id, num(x1), num(y1), num(x2), num(y2))
		p.writeStops(style)
		p.buf.WriteString("</linearGradient>")
	}
	p.buf.WriteString("</defs>\n")
	return id
}

func (p *Painter) writePattern(style fhpaint.Properties) string {
	id := p.newID("pattern")
	href := "data:" + style.Get(fhpaint.MimeType) + ";base64," + style.Get(fhpaint.FillImage)
	p.buf.WriteString("<defs>")
	if style.Get(fhpaint.Repeat) == fhpaint.RepeatTile {
		w, _ := style.Float(fhpaint.FillImageWidth)
		h, _ := style.Float(fhpaint.FillImageHeight)
		fmt.Fprintf(&p.buf, `<pattern id="%s" patternUnits="userSpaceOnUse" width="%s" height="%s">`, id, num(w), num(h))
		fmt.Fprintf(&p.buf, `<image width="%s" height="%s" preserveAspectRatio="none" xlink:href="%s"/>`, num(w), num(h), href)
	} else {
		fmt.Fprintf(&p.buf, `<pattern id="%s" patternUnits="objectBoundingBox" patternContentUnits="objectBoundingBox" width="1" height="1">`, id)
		fmt.Fprintf(&p.buf, `<image width="1" height="1" preserveAspectRatio="none" xlink:href="%s"/>`, href)
	}
	p.buf.WriteString("</pattern></defs>\n")
	return id
}

// writeFilter returns the id of the filter implementing the drop
// shadow and the grey scale mode, or an empty string.
func (p *Painter) writeFilter(style fhpaint.Properties) string {
	shadow := style.Get(fhpaint.Shadow) == "visible"
	grey := style.Get(fhpaint.ColorMode) == "greyscale"
	if !shadow && !grey {
		return ""
	}
	id := p.newID("filter")
	fmt.Fprintf(&p.buf, `<defs><filter id="%s">`, id)
	if shadow {
		dx, _ := style.Float(fhpaint.ShadowOffsetX)
		dy, _ := style.Float(fhpaint.ShadowOffsetY)
		color := style.Get(fhpaint.ShadowColor)
		if color == "" {
			color = "#000000"
		}
		opacity, ok := style.Float(fhpaint.ShadowOpacity)
		if !ok {
			opacity = 1
		}
		fmt.Fprintf(&p.buf, `<feDropShadow dx="%s" dy="%s" stdDeviation="0" flood-color="%s" flood-opacity="%s"/>`,
			num(dx), num(dy), color, num(opacity))
	}
	if grey {
		p.buf.WriteString(`<feColorMatrix type="saturate" values="0"/>`)
	}
	p.buf.WriteString("</filter></defs>\n")
	return id
}
