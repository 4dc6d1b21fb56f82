package fhdraw

import (
	"math"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
)

// styleKind tags the two representations of a style.
type styleKind uint8

const (
	noStyle styleKind = iota
	propListStyle
	graphicStyle
)

// styleNode is a style ID resolved to its representation.
type styleNode struct {
	kind     styleKind
	parent   fhdoc.ID
	propList *fhdoc.PropList
	graphic  *fhdoc.GraphicStyle
}

// style resolves the representation of id, once.
func (r *renderer) style(id fhdoc.ID) styleNode {
	if node, ok := r.styles[id]; ok {
		return node
	}
	var node styleNode
	if pl := r.doc.PropList(id); pl != nil {
		node = styleNode{kind: propListStyle, parent: pl.ParentID, propList: pl}
	} else if gs := r.doc.GraphicStyle(id); gs != nil {
		node = styleNode{kind: graphicStyle, parent: gs.ParentID, graphic: gs}
	}
	r.styles[id] = node
	return node
}

// styleTarget selects which properties a resolution produces.
type styleTarget uint8

const (
	fillTarget styleTarget = iota
	strokeTarget
)

// appendFill resolves the fill (and filter) properties of the style.
func (r *renderer) appendFill(props *fhpaint.Properties, styleID fhdoc.ID) {
	r.appendStyle(props, styleID, fillTarget, 0)
}

// appendStroke resolves the stroke properties of the style.
func (r *renderer) appendStroke(props *fhpaint.Properties, styleID fhdoc.ID) {
	r.appendStyle(props, styleID, strokeTarget, 0)
}

// appendStyle resolves the parent first, so that
// values of the style override the inherited ones.
func (r *renderer) appendStyle(props *fhpaint.Properties, styleID fhdoc.ID, target styleTarget, depth int) {
	if styleID == 0 {
		return
	}
	if depth > r.opts.MaxDepth {
		r.log.Warn("fhdraw: style inheritance too deep", "style", styleID)
		return
	}
	node := r.style(styleID)
	if node.kind == noStyle {
		return
	}
	if node.parent != 0 {
		r.appendStyle(props, node.parent, target, depth+1)
	}

	switch node.kind {
	case propListStyle:
		nameID := r.doc.FillNameID()
		if target == strokeTarget {
			nameID = r.doc.StrokeNameID()
		}
		if nameID == 0 {
			return
		}
		if valueID, ok := node.propList.Elements[nameID]; ok {
			r.appendValue(props, valueID, target)
		}
	case graphicStyle:
		if valueID := r.findValue(node.graphic, target); valueID != 0 {
			r.appendValue(props, valueID, target)
			return
		}
		if fah := r.findFilterHolder(node.graphic); fah != nil {
			r.appendStyle(props, fah.StyleID, target, depth+1)
			r.applyFilter(props, fah.FilterID, target)
		}
	}
}

// leafValue follows the AttributeHolder chain from id. An ID which
// is not an AttributeHolder is a leaf.
func (r *renderer) leafValue(id fhdoc.ID, depth int) fhdoc.ID {
	holder := r.doc.AttributeHolder(id)
	if holder == nil {
		return id
	}
	if holder.AttrID != 0 {
		return holder.AttrID
	}
	if holder.ParentID == 0 || depth > r.opts.MaxDepth {
		return 0
	}
	return r.leafValue(holder.ParentID, depth+1)
}

func (r *renderer) isFill(id fhdoc.ID) bool {
	return r.doc.BasicFill(id) != nil || r.doc.LinearFill(id) != nil ||
		r.doc.LensFill(id) != nil || r.doc.RadialFill(id) != nil ||
		r.doc.TileFill(id) != nil || r.doc.PatternFill(id) != nil
}

func (r *renderer) isLine(id fhdoc.ID) bool { return r.doc.BasicLine(id) != nil }

// findValue returns the first leaf value of the style which
// is a fill (or a line), or 0.
func (r *renderer) findValue(gs *fhdoc.GraphicStyle, target styleTarget) fhdoc.ID {
	for _, attr := range gs.Attributes() {
		leaf := r.leafValue(gs.Elements[attr], 0)
		if leaf == 0 {
			continue
		}
		if target == fillTarget && r.isFill(leaf) || target == strokeTarget && r.isLine(leaf) {
			return leaf
		}
	}
	return 0
}

func (r *renderer) findFilterHolder(gs *fhdoc.GraphicStyle) *fhdoc.FilterAttributeHolder {
	for _, attr := range gs.Attributes() {
		if fah := r.doc.FilterAttributeHolder(gs.Elements[attr]); fah != nil {
			return fah
		}
	}
	return nil
}

// contentID returns the ID of the elements drawn inside
// shapes using this style, or 0. The nearest definition wins.
func (r *renderer) contentID(styleID fhdoc.ID) fhdoc.ID {
	nameID := r.doc.ContentsNameID()
	if nameID == 0 {
		return 0
	}
	for depth := 0; styleID != 0 && depth <= r.opts.MaxDepth; depth++ {
		node := r.style(styleID)
		if node.kind != propListStyle {
			return 0
		}
		if v, ok := node.propList.Elements[nameID]; ok && v != 0 {
			return v
		}
		styleID = node.parent
	}
	return 0
}

func (r *renderer) appendValue(props *fhpaint.Properties, valueID fhdoc.ID, target styleTarget) {
	if target == strokeTarget {
		r.appendLine(props, valueID)
		return
	}
	// only the first matching kind applies
	doc := r.doc
	if fill := doc.BasicFill(valueID); fill != nil {
		r.appendBasicFill(props, fill)
	} else if fill := doc.LinearFill(valueID); fill != nil {
		r.appendLinearFill(props, fill)
	} else if fill := doc.LensFill(valueID); fill != nil {
		r.appendLensFill(props, fill)
	} else if fill := doc.RadialFill(valueID); fill != nil {
		r.appendRadialFill(props, fill)
	} else if fill := doc.TileFill(valueID); fill != nil {
		r.appendTileFill(props, fill)
	} else if fill := doc.PatternFill(valueID); fill != nil {
		r.appendPatternFill(props, fill)
	}
}

func (r *renderer) appendLine(props *fhpaint.Properties, id fhdoc.ID) {
	line := r.doc.BasicLine(id)
	if line == nil {
		return
	}
	color := r.doc.ColorString(line.ColorID)
	if color == "" {
		return
	}
	props.Set(fhpaint.Stroke, fhpaint.StrokeSolid)
	props.Set(fhpaint.StrokeColor, color)
	props.SetFloat(fhpaint.StrokeWidth, line.Width)
}

func (r *renderer) appendBasicFill(props *fhpaint.Properties, fill *fhdoc.BasicFill) {
	color := r.doc.ColorString(fill.ColorID)
	if color == "" {
		return
	}
	props.Set(fhpaint.Fill, fhpaint.FillSolid)
	props.Set(fhpaint.FillColor, color)
}

// gradientColors uses the multi color list when it has
// at least two stops, the two colors otherwise.
func (r *renderer) gradientColors(props *fhpaint.Properties, color1, color2, listID fhdoc.ID) {
	props.Stops = nil
	if list := r.doc.MultiColorList(listID); list != nil && len(list.Stops) > 1 {
		for _, stop := range list.Stops {
			color := r.doc.ColorString(stop.ColorID)
			if color == "" {
				continue
			}
			props.Stops = append(props.Stops, fhpaint.GradientStop{Offset: stop.Position, Color: color, Opacity: 1})
		}
		if len(props.Stops) != 0 {
			props.Set(fhpaint.StartColor, props.Stops[0].Color)
			props.Set(fhpaint.EndColor, props.Stops[len(props.Stops)-1].Color)
			return
		}
	}
	if c := r.doc.ColorString(color1); c != "" {
		props.Set(fhpaint.StartColor, c)
	}
	if c := r.doc.ColorString(color2); c != "" {
		props.Set(fhpaint.EndColor, c)
	}
}

func (r *renderer) appendLinearFill(props *fhpaint.Properties, fill *fhdoc.LinearFill) {
	props.Set(fhpaint.Fill, fhpaint.FillGradient)
	props.Set(fhpaint.GradientStyle, "linear")
	// FreeHand angles are counter clockwise from the x axis
	angle := math.Mod(90-fill.Angle, 360)
	if angle < 0 {
		angle += 360
	}
	props.SetFloat(fhpaint.GradientAngle, angle)
	r.gradientColors(props, fill.Color1ID, fill.Color2ID, fill.MultiColorListID)
}

func (r *renderer) appendRadialFill(props *fhpaint.Properties, fill *fhdoc.RadialFill) {
	props.Set(fhpaint.Fill, fhpaint.FillGradient)
	props.Set(fhpaint.GradientStyle, "radial")
	props.SetFloat(fhpaint.CX, fill.CX)
	props.SetFloat(fhpaint.CY, fill.CY)
	r.gradientColors(props, fill.Color1ID, fill.Color2ID, fill.MultiColorListID)
}

func (r *renderer) appendLensFill(props *fhpaint.Properties, fill *fhdoc.LensFill) {
	switch fill.Mode {
	case fhdoc.LensTransparency:
		color := r.doc.ColorString(fill.ColorID)
		if color == "" {
			return
		}
		props.Set(fhpaint.Fill, fhpaint.FillSolid)
		props.Set(fhpaint.FillColor, color)
		props.SetPercent(fhpaint.Opacity, fill.Value/100)
	case fhdoc.LensMonochrome:
		props.Set(fhpaint.Fill, fhpaint.FillNone)
		props.Set(fhpaint.ColorMode, "greyscale")
	case fhdoc.LensMagnify, fhdoc.LensInvert:
		props.Set(fhpaint.Fill, fhpaint.FillNone)
	case fhdoc.LensLighten:
		props.Set(fhpaint.Fill, fhpaint.FillSolid)
		props.Set(fhpaint.FillColor, "#ffffff")
		props.SetPercent(fhpaint.Opacity, fill.Value/100)
	case fhdoc.LensDarken:
		props.Set(fhpaint.Fill, fhpaint.FillSolid)
		props.Set(fhpaint.FillColor, "#000000")
		props.SetPercent(fhpaint.Opacity, fill.Value/100)
	}
}

// applyFilter applies the filter on top of the already resolved properties.
func (r *renderer) applyFilter(props *fhpaint.Properties, filterID fhdoc.ID, target styleTarget) {
	if filterID == 0 {
		return
	}
	if f := r.doc.OpacityFilter(filterID); f != nil {
		if target == fillTarget && props.Has(fhpaint.Fill) && props.Get(fhpaint.Fill) != fhpaint.FillNone {
			props.SetPercent(fhpaint.FillOpacity, f.Opacity/100)
		}
		if target == strokeTarget && props.Has(fhpaint.Stroke) && props.Get(fhpaint.Stroke) != fhpaint.StrokeNone {
			props.SetPercent(fhpaint.StrokeOpacity, f.Opacity/100)
		}
	}
	if f := r.doc.ShadowFilter(filterID); f != nil && !f.Inner && target == fillTarget {
		props.Set(fhpaint.Shadow, "visible")
		props.SetFloat(fhpaint.ShadowOffsetX, f.Distance*math.Cos(f.Angle))
		props.SetFloat(fhpaint.ShadowOffsetY, f.Distance*math.Sin(f.Angle))
		if color := r.doc.ColorString(f.ColorID); color != "" {
			props.Set(fhpaint.ShadowColor, color)
		}
		props.SetPercent(fhpaint.ShadowOpacity, f.Opacity)
	}
	// glow filters have no equivalent
}
