package fhpaint

import (
	"encoding/hex"
	"image/color"
)

// ParseColor parses a #rrggbb color, as found in properties.
// Invalid strings give an opaque black and false.
func ParseColor(s string) (color.NRGBA, bool) {
	black := color.NRGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return black, false
	}
	rgb, err := hex.DecodeString(s[1:])
	if err != nil {
		return black, false
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, true
}
