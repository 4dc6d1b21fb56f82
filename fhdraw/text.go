package fhdraw

import (
	"math"

	"golang.org/x/exp/slices"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
)

// frameProps returns the position, size and rotation of the frame,
// from its corners in page coordinates.
func frameProps(q quad) fhpaint.Properties {
	rotation := math.Atan2(q.yb-q.yc, q.xb-q.xc)
	height := math.Hypot(q.xc-q.xa, q.yc-q.ya)
	width := math.Hypot(q.xc-q.xb, q.yc-q.yb)
	x := (q.xa+q.xb)/2 - width/2
	y := (q.ya+q.yb)/2 - height/2

	var props fhpaint.Properties
	props.SetFloat(fhpaint.X, x)
	props.SetFloat(fhpaint.Y, y)
	props.SetFloat(fhpaint.Width, width)
	props.SetFloat(fhpaint.Height, height)
	if rotation != 0 {
		props.SetFloat(fhpaint.Rotate, rotation*180/math.Pi)
	}
	return props
}

// fontName returns the font name stored as a string record,
// or as a name.
func (r *renderer) fontName(id fhdoc.ID) string {
	if s, ok := r.doc.LookupString(id); ok {
		return s
	}
	return r.doc.Name(id)
}

func (r *renderer) charProps(cp *fhdoc.CharProperties) fhpaint.Properties {
	var props fhpaint.Properties
	if cp == nil {
		return props
	}
	bold, italic := cp.Bold, cp.Italic
	size, nameID := cp.FontSize, cp.FontNameID
	if font := r.doc.Font(cp.FontID); font != nil {
		if nameID == 0 {
			nameID = font.FontNameID
		}
		if size == 0 {
			size = font.Size
		}
		bold = bold || font.Bold
		italic = italic || font.Italic
	}
	if name := r.fontName(nameID); name != "" {
		props.Set(fhpaint.FontName, name)
	}
	if size > 0 {
		props.SetFloat(fhpaint.FontSize, size)
	}
	if bold {
		props.Set(fhpaint.FontWeight, "bold")
	}
	if italic {
		props.Set(fhpaint.FontStyle, "italic")
	}
	if c := r.doc.ColorString(cp.TextColorID); c != "" {
		props.Set(fhpaint.Color, c)
	}
	return props
}

func paragraphProps(pp *fhdoc.ParagraphProperties) fhpaint.Properties {
	var props fhpaint.Properties
	if pp != nil {
		props.Set(fhpaint.TextAlign, pp.Align.String())
	}
	return props
}

func (r *renderer) drawTextObject(t *fhdoc.TextObject) {
	tstring := r.doc.TString(t.TStringID)
	if tstring == nil {
		return
	}
	r.painter.StartTextObject(frameProps(r.quadToPage(t.X, t.Y, t.Width, t.Height, t.XFormID)))
	defer r.painter.EndTextObject()

	// the characters shown by the frame, counted over all paragraphs
	lo, hi := 0, math.MaxInt
	if t.EndIndex > t.BeginIndex {
		lo, hi = int(t.BeginIndex), int(t.EndIndex)
	}
	pos := 0
	for _, paraID := range tstring.Paragraphs {
		para := r.doc.Paragraph(paraID)
		if para == nil {
			continue
		}
		block := r.doc.TextBlock(para.TextBlockID)
		if block == nil {
			continue
		}
		n := len(block.Text)
		begin, end := clamp(lo-pos, 0, n), clamp(hi-pos, 0, n)
		pos += n
		if begin >= end {
			continue
		}
		r.painter.OpenParagraph(paragraphProps(r.doc.ParagraphProperties(para.ParaStyleID)))
		r.drawRuns(block, para.Runs, begin, end)
		r.painter.CloseParagraph()
	}
}

// drawRuns emits one span per run, restricted to [begin, end).
// Characters before the first run use the default style.
func (r *renderer) drawRuns(block *fhdoc.TextBlock, runs []fhdoc.TextRun, begin, end int) {
	span := func(props fhpaint.Properties, from, to int) {
		from, to = max(from, begin), min(to, end)
		if from >= to {
			return
		}
		r.painter.OpenSpan(props)
		r.painter.InsertText(block.Slice(from, to))
		r.painter.CloseSpan()
	}
	if len(runs) == 0 {
		span(fhpaint.Properties{}, 0, len(block.Text))
		return
	}
	span(fhpaint.Properties{}, 0, int(runs[0].Offset))
	for i, run := range runs {
		to := len(block.Text)
		if i+1 < len(runs) {
			to = int(runs[i+1].Offset)
		}
		span(r.charProps(r.doc.CharProperties(run.CharStyleID)), int(run.Offset), to)
	}
}

func clamp(v, lo, hi int) int { return min(max(v, lo), hi) }

// textDecoder returns the decoder of legacy texts.
func (r *renderer) textDecoder() *encoding.Decoder {
	enc, _ := charset.Lookup(r.opts.TextEncoding)
	if enc == nil {
		r.log.Debug("fhdraw: unknown text encoding, using macintosh", "label", r.opts.TextEncoding)
		enc = charmap.Macintosh
	}
	return enc.NewDecoder()
}

// displayTextBounds returns the sorted offsets, inside the text,
// where a property changes.
func displayTextBounds(t *fhdoc.DisplayText) []uint32 {
	var out []uint32
	n := uint32(len(t.Characters))
	for _, p := range t.ParaProps {
		if p.Offset > 0 && p.Offset < n {
			out = append(out, p.Offset)
		}
	}
	for _, p := range t.CharProps {
		if p.Offset > 0 && p.Offset < n {
			out = append(out, p.Offset)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func (r *renderer) drawDisplayText(t *fhdoc.DisplayText) {
	r.painter.StartTextObject(frameProps(r.quadToPage(t.X, t.Y, t.Width, t.Height, t.XFormID)))
	defer r.painter.EndTextObject()

	dec := r.textDecoder()
	flush := func(chunk []byte) {
		if len(chunk) == 0 {
			return
		}
		text, err := dec.Bytes(chunk)
		if err != nil {
			r.log.Debug("fhdraw: decoding legacy text", "error", err)
			return
		}
		r.painter.InsertText(string(text))
	}

	// indices of the active properties
	para, char := -1, -1
	advance := func(offset uint32) (newPara, newChar bool) {
		for para+1 < len(t.ParaProps) && t.ParaProps[para+1].Offset <= offset {
			para, newPara = para+1, true
		}
		for char+1 < len(t.CharProps) && t.CharProps[char+1].Offset <= offset {
			char, newChar = char+1, true
		}
		return newPara, newChar
	}
	paraProps := func() fhpaint.Properties {
		if para < 0 {
			return fhpaint.Properties{}
		}
		return paragraphProps(&t.ParaProps[para].ParagraphProperties)
	}
	spanProps := func() fhpaint.Properties {
		if char < 0 {
			return fhpaint.Properties{}
		}
		return r.charProps(&t.CharProps[char].CharProperties)
	}

	advance(0)
	r.painter.OpenParagraph(paraProps())
	r.painter.OpenSpan(spanProps())
	var start uint32
	for _, offset := range displayTextBounds(t) {
		newPara, newChar := advance(offset)
		if !newPara && !newChar {
			continue
		}
		flush(t.Characters[start:offset])
		start = offset
		r.painter.CloseSpan()
		if newPara {
			r.painter.CloseParagraph()
			r.painter.OpenParagraph(paraProps())
		}
		r.painter.OpenSpan(spanProps())
	}
	flush(t.Characters[start:])
	r.painter.CloseSpan()
	r.painter.CloseParagraph()
}
