package fhpaint

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Property names understood by painters.
const (
	Fill          = "fill"      // one of FillNone, FillSolid, FillGradient, FillBitmap
	FillColor     = "fill-color"
	FillOpacity   = "fill-opacity"
	FillRule      = "fill-rule" // "evenodd" or "nonzero"
	Stroke        = "stroke"    // one of StrokeNone, StrokeSolid
	StrokeColor   = "stroke-color"
	StrokeWidth   = "stroke-width"
	StrokeOpacity = "stroke-opacity"
	Opacity       = "opacity"

	GradientStyle = "gradient-style" // "linear" or "radial"
	GradientAngle = "gradient-angle" // in degrees
	StartColor    = "start-color"
	EndColor      = "end-color"
	CX            = "cx" // relative to the bounding box, in [0, 1]
	CY            = "cy"

	Shadow        = "shadow" // "visible" when a drop shadow is requested
	ShadowColor   = "shadow-color"
	ShadowOpacity = "shadow-opacity"
	ShadowOffsetX = "shadow-offset-x"
	ShadowOffsetY = "shadow-offset-y"

	ColorMode = "color-mode" // "greyscale" when set

	FillImage       = "fill-image" // base64 encoded
	MimeType        = "mime-type"
	Repeat          = "repeat" // RepeatStretch or RepeatTile
	FillImageWidth  = "fill-image-width"
	FillImageHeight = "fill-image-height"

	X      = "x"
	Y      = "y"
	Width  = "width"
	Height = "height"
	Rotate = "rotate" // in degrees

	BinaryData  = "binary-data" // base64 encoded
	PixelWidth  = "pixel-width"
	PixelHeight = "pixel-height"

	FontName   = "font-name"
	FontSize   = "font-size"
	FontWeight = "font-weight" // "bold" when set
	FontStyle  = "font-style"  // "italic" when set
	Color      = "color"
	TextAlign  = "text-align" // "left", "right", "center" or "justify"
)

// Values of the Fill and Stroke properties.
const (
	FillNone     = "none"
	FillSolid    = "solid"
	FillGradient = "gradient"
	FillBitmap   = "bitmap"

	StrokeNone  = "none"
	StrokeSolid = "solid"

	RepeatStretch = "stretch"
	RepeatTile    = "repeat"
)

// GradientStop is one color of a multi colored gradient.
type GradientStop struct {
	Offset  float64 // in [0, 1]
	Color   string  // #rrggbb
	Opacity float64 // in [0, 1]
}

// Properties is a flat key/value map using the vocabulary
// defined by this package, plus the optional gradient stops.
// The zero value is ready to use.
type Properties struct {
	Values map[string]string
	Stops  []GradientStop
}

// NewProperties returns a property list with the given
// key/value pairs, which must come by two.
func NewProperties(kv ...string) Properties {
	var p Properties
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// Set adds or overrides the value for key.
func (p *Properties) Set(key, value string) {
	if p.Values == nil {
		p.Values = make(map[string]string)
	}
	p.Values[key] = value
}

// SetFloat stores a number, using the shortest representation.
func (p *Properties) SetFloat(key string, value float64) {
	p.Set(key, formatFloat(value))
}

// SetInt stores an integer.
func (p *Properties) SetInt(key string, value int) {
	p.Set(key, strconv.Itoa(value))
}

// SetPercent stores a fraction in [0, 1] as a percentage,
// such as "50%".
func (p *Properties) SetPercent(key string, fraction float64) {
	p.Set(key, formatFloat(fraction*100)+"%")
}

// Get returns the value for key, or an empty string.
func (p Properties) Get(key string) string { return p.Values[key] }

// Has returns true if the key is defined.
func (p Properties) Has(key string) bool {
	_, ok := p.Values[key]
	return ok
}

// Delete removes the key.
func (p *Properties) Delete(key string) { delete(p.Values, key) }

// Float parses the value stored for key. Percentages are
// returned as fractions. The boolean is false if the key is missing or invalid.
func (p Properties) Float(key string) (float64, bool) {
	s, ok := p.Values[key]
	if !ok {
		return 0, false
	}
	scale := 1.
	if strings.HasSuffix(s, "%") {
		s, scale = strings.TrimSuffix(s, "%"), 0.01
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f * scale, true
}

// Keys returns the sorted keys.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p.Values))
}

// Len returns the number of key/value pairs.
func (p Properties) Len() int { return len(p.Values) }

// Clone returns a deep copy.
func (p Properties) Clone() Properties {
	out := Properties{Stops: slices.Clone(p.Stops)}
	if p.Values != nil {
		out.Values = maps.Clone(p.Values)
	}
	return out
}

// Merge copies the values of o into p, overriding existing keys.
// Stops are replaced if o has some.
func (p *Properties) Merge(o Properties) {
	for k, v := range o.Values {
		p.Set(k, v)
	}
	if len(o.Stops) != 0 {
		p.Stops = slices.Clone(o.Stops)
	}
}

// String returns a deterministic representation, useful for debugging.
func (p Properties) String() string {
	chunks := make([]string, 0, p.Len()+1)
	for _, k := range p.Keys() {
		chunks = append(chunks, fmt.Sprintf("%s=%s", k, p.Values[k]))
	}
	if len(p.Stops) != 0 {
		chunks = append(chunks, fmt.Sprintf("stops=%v", p.Stops))
	}
	return "{" + strings.Join(chunks, " ") + "}"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
