package fhdoc

import (
	"fmt"
	"image/color"
	"unicode/utf16"

	"github.com/benoitkugler/freehand/internal/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Special names used as keys in PropList elements.
const (
	NameStroke   = "stroke"
	NameFill     = "fill"
	NameContents = "contents"
)

// maxColorDepth bounds the resolution of tints of tints.
const maxColorDepth = 16

// CollectName stores an entry of the name table,
// recognizing the special names used by property lists.
func (c *Collection) CollectName(id ID, name string) {
	c.names[id] = name
	switch name {
	case NameStroke:
		c.strokeNameID = id
	case NameFill:
		c.fillNameID = id
	case NameContents:
		c.contentsNameID = id
	}
}

// Name returns the entry of the name table, or an empty string.
func (c *Collection) Name(id ID) string { return c.names[id] }

// StrokeNameID returns the ID of the "stroke" name, or 0.
func (c *Collection) StrokeNameID() ID { return c.strokeNameID }

// FillNameID returns the ID of the "fill" name, or 0.
func (c *Collection) FillNameID() ID { return c.fillNameID }

// ContentsNameID returns the ID of the "contents" name, or 0.
func (c *Collection) ContentsNameID() ID { return c.contentsNameID }

// CollectString stores an entry of the string table (font names).
func (c *Collection) CollectString(id ID, s string) { c.strings[id] = s }

// LookupString returns an entry of the string table.
func (c *Collection) LookupString(id ID) (string, bool) {
	if id == 0 {
		return "", false
	}
	s, ok := c.strings[id]
	return s, ok
}

// CollectBlock stores the root record. A document has only one:
// a second one with a different ID is reported and ignored.
func (c *Collection) CollectBlock(id ID, b Block) {
	if c.block != nil && c.blockID != id {
		logger.Get().Warn("fhdoc: duplicate block record, keeping the first one",
			"first", c.blockID, "ignored", id)
		return
	}
	c.blockID, c.block = id, &b
}

// Block returns the root record and its ID, or nil.
func (c *Collection) Block() (ID, *Block) { return c.blockID, c.block }

// CollectTail stores the last record of the document.
func (c *Collection) CollectTail(id ID, t Tail) { c.tailID, c.tail = id, &t }

// Tail returns the last record and its ID, or nil.
func (c *Collection) Tail() (ID, *Tail) { return c.tailID, c.tail }

// ListElements returns the IDs of the given List,
// or nil if it is missing.
func (c *Collection) ListElements(id ID) []ID {
	if l := c.List(id); l != nil {
		return l.Elements
	}
	return nil
}

// ImageData concatenates the fragments of the given DataList.
// Missing fragments are skipped.
func (c *Collection) ImageData(dataListID ID) []byte {
	dl := c.DataList(dataListID)
	if dl == nil {
		return nil
	}
	var out []byte
	for _, id := range dl.Elements {
		out = append(out, c.Data(id)...)
	}
	return out
}

// Attributes returns the attribute IDs, in increasing order.
func (g GraphicStyle) Attributes() []ID {
	return slices.Sorted(maps.Keys(g.Elements))
}

// String decodes the UTF-16 content of the block.
func (tb TextBlock) String() string { return string(utf16.Decode(tb.Text)) }

// Slice decodes the code units in [begin, end), clamped to the block.
func (tb TextBlock) Slice(begin, end int) string {
	if end > len(tb.Text) {
		end = len(tb.Text)
	}
	if begin < 0 {
		begin = 0
	}
	if begin >= end {
		return ""
	}
	return string(utf16.Decode(tb.Text[begin:end]))
}

// Color resolves an RGBColor or a (possibly nested) TintColor.
// The alpha channel is always opaque.
func (c *Collection) Color(id ID) (color.RGBA64, bool) {
	return c.resolveColor(id, 0)
}

func (c *Collection) resolveColor(id ID, depth int) (color.RGBA64, bool) {
	if depth > maxColorDepth {
		logger.Get().Warn("fhdoc: tint color nesting too deep", "id", id)
		return color.RGBA64{}, false
	}
	if rgb := c.RGBColor(id); rgb != nil {
		return color.RGBA64{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xFFFF}, true
	}
	if tint := c.TintColor(id); tint != nil {
		base, ok := c.resolveColor(tint.BaseColorID, depth+1)
		if !ok {
			return color.RGBA64{}, false
		}
		return color.RGBA64{
			R: blendTint(base.R, tint.Tint),
			G: blendTint(base.G, tint.Tint),
			B: blendTint(base.B, tint.Tint),
			A: 0xFFFF,
		}, true
	}
	return color.RGBA64{}, false
}

// blendTint interpolates between white and c, in 16.16 fixed point.
func blendTint(c, tint uint16) uint16 {
	t := uint64(tint)
	return uint16((uint64(c)*t + 0xFFFF*(0x10000-t) + 0x8000) >> 16)
}

// ColorString returns the color as #rrggbb, or an empty string
// if it can't be resolved.
func (c *Collection) ColorString(id ID) string {
	col, ok := c.Color(id)
	if !ok {
		return ""
	}
	return HexColor(col)
}

// HexColor formats the high byte of each channel as #rrggbb.
func HexColor(col color.RGBA64) string {
	return fmt.Sprintf("#%02x%02x%02x", col.R>>8, col.G>>8, col.B>>8)
}
