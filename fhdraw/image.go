package fhdraw

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/jpeg" // register decoders for image.DecodeConfig
	_ "image/png"

	_ "golang.org/x/image/tiff"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
)

// sniffImage returns the MIME type of the payload,
// from its magic bytes, or an empty string.
func sniffImage(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return "image/tiff"
	case bytes.HasPrefix(data, []byte("BM")):
		return mimeBMP
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8}):
		return "image/jpeg"
	case bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}):
		return mimePNG
	}
	return ""
}

func (r *renderer) drawImage(im *fhdoc.ImageImport) {
	data := r.doc.ImageData(im.DataListID)
	mime := sniffImage(data)
	if mime == "" {
		r.log.Debug("fhdraw: skipping image of unknown format", "size", len(data))
		return
	}
	props := frameProps(r.quadToPage(im.X, im.Y, im.Width, im.Height, im.XFormID))
	props.Set(fhpaint.MimeType, mime)
	props.Set(fhpaint.BinaryData, base64.StdEncoding.EncodeToString(data))
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		props.SetInt(fhpaint.PixelWidth, cfg.Width)
		props.SetInt(fhpaint.PixelHeight, cfg.Height)
	}
	r.painter.DrawGraphicObject(props)
}
