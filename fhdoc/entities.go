// Package fhdoc stores the decoded records of a FreeHand document.
//
// Every entity is addressed by its record ID. References between entities
// are IDs as well, which may point to missing records: lookups then
// return nil, and callers treat it as "nothing to contribute".
// A Collection is filled once by the decoders and is read-only afterwards.
package fhdoc

import (
	"github.com/benoitkugler/freehand/fhpath"
	"seehuhn.de/go/geom/rect"
)

// ID identifies a record. 0 means absent.
type ID uint32

// Path is a drawn shape.
type Path struct {
	Geometry fhpath.Path
	EvenOdd  bool
	XFormID  ID
	StyleID  ID
}

// Group is used for both plain groups and clip groups.
type Group struct {
	XFormID ID
	ListID  ID // children
}

// CompositePath fuses several paths into one shape.
type CompositePath struct {
	ListID  ID // of Path records
	StyleID ID
}

// List is an ordered list of record IDs.
type List struct {
	Elements []ID
}

// TextObject is a text frame whose content is stored in a TString.
type TextObject struct {
	XFormID, StyleID, TStringID ID

	X, Y, Width, Height float64

	// Range of the characters displayed by this frame,
	// when a text flows in several frames.
	BeginIndex, EndIndex uint32
}

// TString lists the paragraphs of a text.
type TString struct {
	Paragraphs []ID
}

// TextRun is the character style applied from Offset.
type TextRun struct {
	Offset      uint32
	CharStyleID ID
}

// Paragraph references its characters, stored in a TextBlock,
// and the style runs, sorted by offset.
type Paragraph struct {
	TextBlockID ID
	ParaStyleID ID
	Runs        []TextRun
}

// TextBlock stores UTF-16 code units.
type TextBlock struct {
	Text []uint16
}

// CharProperties are the character level text attributes.
type CharProperties struct {
	TextColorID     ID
	FontSize        float64
	FontNameID      ID
	FontID          ID
	Bold, Italic    bool
	HorizontalScale float64
	BaselineShift   float64
}

// Font references a font name, stored in the string table.
type Font struct {
	FontNameID   ID
	Size         float64
	Bold, Italic bool
}

// Align is a paragraph alignment.
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
	AlignJustify
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	default:
		return "left"
	}
}

// ParagraphProperties are the paragraph level text attributes.
type ParagraphProperties struct {
	Align  Align
	Indent float64
}

// DisplayTextCharProps applies from Offset in the character buffer.
type DisplayTextCharProps struct {
	Offset uint32
	CharProperties
}

// DisplayTextParaProps applies from Offset in the character buffer.
type DisplayTextParaProps struct {
	Offset uint32
	ParagraphProperties
}

// DisplayText is the legacy text representation, carrying its
// own 8-bit character buffer and style spans.
type DisplayText struct {
	XFormID, StyleID    ID
	X, Y, Width, Height float64

	Characters []byte
	CharProps  []DisplayTextCharProps // sorted by offset
	ParaProps  []DisplayTextParaProps // sorted by offset
}

// ImageImport is an embedded raster image, whose payload
// is split in the Data records of a DataList.
type ImageImport struct {
	X, Y, Width, Height float64
	XFormID, StyleID    ID
	DataListID          ID
}

// DataList lists the Data records of a payload.
type DataList struct {
	Elements []ID
}

// PropList is the attribute list style representation:
// the elements map a name ID (see Collection.FillNameID) to a value ID.
type PropList struct {
	ParentID ID
	Elements map[ID]ID
}

// GraphicStyle is the legacy style representation.
// The elements map an attribute ID to an AttributeHolder or directly
// to a value ID. They are resolved in increasing attribute ID order.
type GraphicStyle struct {
	ParentID ID
	Elements map[ID]ID
}

// AttributeHolder is an indirection node of GraphicStyle elements.
type AttributeHolder struct {
	ParentID ID
	AttrID   ID
}

// FilterAttributeHolder applies a filter on top of a style.
type FilterAttributeHolder struct {
	StyleID  ID
	FilterID ID
}

// BasicFill is a solid color fill.
type BasicFill struct {
	ColorID ID
}

// LinearFill is a linear gradient. When MultiColorListID is set,
// its stops replace the two colors.
type LinearFill struct {
	Color1ID, Color2ID ID
	Angle              float64 // in degrees
	MultiColorListID   ID
}

// RadialFill is a radial gradient centered at (CX, CY),
// relative to the bounding box of the shape.
type RadialFill struct {
	Color1ID, Color2ID ID
	CX, CY             float64
	MultiColorListID   ID
}

// LensMode is the visual effect of a lens fill.
type LensMode uint8

const (
	LensTransparency LensMode = iota
	LensMagnify
	LensLighten
	LensDarken
	LensInvert
	LensMonochrome
)

// LensFill emulates a lens effect.
type LensFill struct {
	ColorID ID
	Mode    LensMode
	Value   float64 // in [0, 100]
}

// TileFill repeats the rendering of a group.
type TileFill struct {
	GroupID, XFormID ID
	ScaleX, ScaleY   float64
}

// PatternFill repeats an 8x8 monochrome bitmap, one bit per pixel,
// with the most significant bit on the left.
type PatternFill struct {
	ColorID ID
	Pattern [8]byte
}

// ColorStop is one color of a MultiColorList.
type ColorStop struct {
	ColorID  ID
	Position float64 // in [0, 1]
}

// MultiColorList stores the stops of a gradient.
type MultiColorList struct {
	Stops []ColorStop
}

// BasicLine is a solid stroke.
type BasicLine struct {
	ColorID ID
	Width   float64
}

// OpacityFilter applies a uniform opacity.
type OpacityFilter struct {
	Opacity float64 // in [0, 100]
}

// ShadowFilter adds a drop shadow.
type ShadowFilter struct {
	Inner    bool
	Angle    float64 // in radians
	Distance float64
	ColorID  ID
	Opacity  float64 // in [0, 1]
}

// GlowFilter is decoded but has no visual effect.
type GlowFilter struct {
	ColorID ID
	Width   float64
	Opacity float64
}

// RGBColor stores 16-bit channels.
type RGBColor struct {
	R, G, B uint16
}

// TintColor lightens its base color: Tint is the fraction
// of the base color, in 16-bit fixed point (0x10000 is the base color).
type TintColor struct {
	BaseColorID ID
	Tint        uint16
}

// SymbolClass defines a reusable group.
type SymbolClass struct {
	GroupID, NameID ID
}

// SymbolInstance renders the group of its class with
// its own transform.
type SymbolInstance struct {
	Transform fhpath.Transform
	ClassID   ID
	StyleID   ID
}

// NewBlend is rendered as its three lists, without interpolation.
type NewBlend struct {
	List1ID, List2ID, List3ID ID
	StyleID                   ID
}

// Layer is a top level list of elements.
type Layer struct {
	ListID  ID
	Visible bool
}

// Block is the root record, listing the layers.
type Block struct {
	LayerListID ID
}

// Tail is the last record of a document.
type Tail struct {
	BlockID    ID
	PropListID ID
	Page       rect.Rect // in document coordinates, y pointing up
}
