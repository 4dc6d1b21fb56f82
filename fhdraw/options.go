package fhdraw

// Options tunes the rendering traversal.
// The zero value is valid: zero fields are replaced by their default.
type Options struct {
	// MinEmbedSize is the number of bytes a sub-document must add to an
	// empty document of the same size to be embedded.
	// Smaller sub-documents are considered empty and discarded.
	// Default: 16. A negative value embeds every sub-document.
	MinEmbedSize int

	// EmbedRaster embeds sub-documents as PNG images instead of SVG.
	EmbedRaster bool

	// RasterScale is the number of pixels per point used for
	// raster sub-documents. Default: 1.
	RasterScale float64

	// MaxDepth bounds the nesting of groups, symbols and sub-documents.
	// Deeper elements, which only occur in cyclic documents, are skipped.
	// Default: 64.
	MaxDepth int

	// TextEncoding is the label of the encoding used by legacy
	// texts, as understood by golang.org/x/net/html/charset.
	// Default: "macintosh".
	TextEncoding string
}

// DefaultOptions returns the options with their default values.
func DefaultOptions() Options {
	return Options{
		MinEmbedSize: 16,
		RasterScale:  1,
		MaxDepth:     64,
		TextEncoding: "macintosh",
	}
}

func (opts Options) withDefaults() Options {
	def := DefaultOptions()
	if opts.MinEmbedSize == 0 {
		opts.MinEmbedSize = def.MinEmbedSize
	}
	if opts.RasterScale <= 0 {
		opts.RasterScale = def.RasterScale
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = def.MaxDepth
	}
	if opts.TextEncoding == "" {
		opts.TextEncoding = def.TextEncoding
	}
	return opts
}
