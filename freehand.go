// Package freehand converts FreeHand documents into a stream of vector
// drawing commands, sent to a fhpaint.Painter.
//
// The conversion has two steps: the records of the file are decoded by
// the decoders registered in package fhstream into a fhdoc.Collection,
// which is then rendered by package fhdraw. Painters for SVG, PDF
// and raster images are provided by the fhsvg, fhpdf and fhraster packages.
//
// Logging is disabled by default. Use SetLogger to enable it.
package freehand

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/benoitkugler/freehand/fhdraw"
	"github.com/benoitkugler/freehand/fhpaint"
	"github.com/benoitkugler/freehand/fhstream"
	"github.com/benoitkugler/freehand/fhsvg"
	"github.com/benoitkugler/freehand/internal/logger"
)

// Options configures the conversion.
type Options struct {
	// ErrorMode is the behavior for records without decoder.
	ErrorMode fhstream.ErrorMode

	Draw fhdraw.Options
}

// DefaultOptions ignores unknown records and uses the
// default rendering options.
func DefaultOptions() Options {
	return Options{ErrorMode: fhstream.IgnoreErrorMode, Draw: fhdraw.DefaultOptions()}
}

// SetLogger sets the logger used by all the freehand packages.
// Passing nil disables logging.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// IsSupported returns true if the stream starts with the header of
// a supported document. The stream is rewound to its start.
func IsSupported(rs io.ReadSeeker) bool { return fhstream.IsSupported(rs) }

// Parse decodes the document and renders it to painter.
// When an error is returned, the commands already sent
// to the painter should be discarded.
func Parse(rs io.ReadSeeker, painter fhpaint.Painter, opts Options) error {
	doc, err := fhstream.Decode(rs, opts.ErrorMode)
	if err != nil {
		return fmt.Errorf("freehand: decoding document: %w", err)
	}
	if err = fhdraw.Draw(doc, painter, opts.Draw); err != nil {
		return fmt.Errorf("freehand: rendering document: %w", err)
	}
	return nil
}

// GenerateSVG converts the document into SVG, returning one
// document per page.
func GenerateSVG(rs io.ReadSeeker, opts Options) ([]string, error) {
	svg := fhsvg.New()
	if err := Parse(rs, svg, opts); err != nil {
		return nil, err
	}
	return svg.Pages(), nil
}
