package main

import (
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"

	"github.com/benoitkugler/freehand"
	"github.com/benoitkugler/freehand/fhdraw"
	"github.com/benoitkugler/freehand/fhstream"
)

// output formats
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"
)

// config is read from the FHCONVERT_* environment variables.
type config struct {
	Format       string             `envconfig:"FORMAT" default:"svg"`
	ErrorMode    fhstream.ErrorMode `envconfig:"ERROR_MODE" default:"ignore"`
	LogLevel     slog.Level         `envconfig:"LOG_LEVEL" default:"WARN"`
	EmbedRaster  bool               `envconfig:"EMBED_RASTER" default:"false"`
	MinEmbedSize int                `envconfig:"MIN_EMBED_SIZE" default:"16"`
	TextEncoding string             `envconfig:"TEXT_ENCODING" default:"macintosh"`
	Scale        float64            `envconfig:"SCALE" default:"1"` // pixels per point for PNG output
}

func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process("FHCONVERT", &cfg); err != nil {
		return config{}, err
	}
	switch cfg.Format {
	case formatSVG, formatPNG, formatPDF:
	default:
		return config{}, fmt.Errorf("invalid format %q (expected svg, png or pdf)", cfg.Format)
	}
	if cfg.Scale <= 0 {
		return config{}, fmt.Errorf("invalid scale %g", cfg.Scale)
	}
	return cfg, nil
}

// binary returns true for formats which must not be written to a terminal.
func (cfg config) binary() bool { return cfg.Format != formatSVG }

func (cfg config) options() freehand.Options {
	draw := fhdraw.DefaultOptions()
	draw.EmbedRaster = cfg.EmbedRaster
	draw.TextEncoding = cfg.TextEncoding
	draw.RasterScale = cfg.Scale
	draw.MinEmbedSize = cfg.MinEmbedSize
	if cfg.MinEmbedSize == 0 {
		// 0 means the default in fhdraw
		draw.MinEmbedSize = -1
	}
	return freehand.Options{ErrorMode: cfg.ErrorMode, Draw: draw}
}
