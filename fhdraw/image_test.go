package fhdraw

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/benoitkugler/freehand/fhdoc"
	"github.com/benoitkugler/freehand/fhpaint"
)

func TestSniffImage(t *testing.T) {
	for _, test := range []struct {
		data string
		want string
	}{
		{"II*\x00rest", "image/tiff"},
		{"MM\x00*rest", "image/tiff"},
		{"BM\x00\x00", "image/bmp"},
		{"\xff\xd8\xff\xe0", "image/jpeg"},
		{"\x89PNG\r\n\x1a\n", "image/png"},
		{"GIF89a", ""},
		{"", ""},
	} {
		if got := sniffImage([]byte(test.data)); got != test.want {
			t.Errorf("sniffImage(%q) = %q, want %q", test.data, got, test.want)
		}
	}
}

// imageImport splits the payload in two data records.
func (b *builder) imageImport(data []byte) fhdoc.ID {
	first, second := b.id(), b.id()
	b.doc.CollectData(first, data[:len(data)/2])
	b.doc.CollectData(second, data[len(data)/2:])
	list := b.id()
	b.doc.CollectDataList(list, fhdoc.DataList{Elements: []fhdoc.ID{first, second}})
	id := b.id()
	b.doc.CollectImageImport(id, fhdoc.ImageImport{X: 10, Y: 10, Width: 30, Height: 20, DataListID: list})
	return id
}

func TestImageImport(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 3, 2))); err != nil {
		t.Fatal(err)
	}
	payload := buf.Bytes()

	b := newBuilder()
	doc := b.finish(b.imageImport(payload))
	rec := draw(t, doc, Options{})

	images := rec.Find("DrawGraphicObject")
	if len(images) != 1 {
		t.Fatalf("expected one image, got\n%s", rec.String())
	}
	props := images[0].Props
	for key, want := range map[string]string{
		fhpaint.MimeType:    "image/png",
		fhpaint.PixelWidth:  "3",
		fhpaint.PixelHeight: "2",
		fhpaint.X:           "10",
		fhpaint.Y:           "70",
		fhpaint.Width:       "30",
		fhpaint.Height:      "20",
		fhpaint.BinaryData:  base64.StdEncoding.EncodeToString(payload),
	} {
		if got := props.Get(key); got != want {
			t.Errorf("%s: expected %s, got %s", key, want, got)
		}
	}
}

func TestUnknownImage(t *testing.T) {
	b := newBuilder()
	doc := b.finish(b.imageImport([]byte("not an image")))
	rec := draw(t, doc, Options{})
	if n := count(rec, "DrawGraphicObject"); n != 0 {
		t.Fatalf("expected no image, got %d", n)
	}
}
