// Command fhconvert converts a FreeHand document to SVG, PNG or PDF.
//
// Usage:
//
//	fhconvert input.fh [output]
//
// The output is written to stdout when no output file is given.
// The conversion is configured with environment variables:
//
//	FHCONVERT_FORMAT          svg (default), png or pdf
//	FHCONVERT_ERROR_MODE      ignore (default), warn or strict
//	FHCONVERT_LOG_LEVEL       DEBUG, INFO, WARN (default) or ERROR
//	FHCONVERT_EMBED_RASTER    embed fills as PNG instead of SVG
//	FHCONVERT_MIN_EMBED_SIZE  size under which embedded fills are dropped (default 16, 0 keeps them all)
//	FHCONVERT_TEXT_ENCODING   encoding of legacy texts (default macintosh)
//	FHCONVERT_SCALE           pixels per point for PNG output (default 1)
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/benoitkugler/freehand"
	"github.com/benoitkugler/freehand/fhpdf"
	"github.com/benoitkugler/freehand/fhraster"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fhconvert input.fh [output]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fhconvert: configuration:", err)
		os.Exit(2)
	}
	freehand.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	if err := run(cfg, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintln(os.Stderr, "fhconvert:", err)
		os.Exit(1)
	}
}

var errTerminal = errors.New("refusing to write binary output to a terminal")

func run(cfg config, input, output string) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()
	if !freehand.IsSupported(in) {
		return fmt.Errorf("%s: not a supported FreeHand document", input)
	}

	out := io.Writer(os.Stdout)
	if output == "" {
		if cfg.binary() && term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
	} else {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if err := convert(cfg, in, out); err != nil {
		return err
	}
	if f, ok := out.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}

func convert(cfg config, in io.ReadSeeker, out io.Writer) error {
	opts := cfg.options()
	switch cfg.Format {
	case formatPNG:
		raster := fhraster.New(cfg.Scale)
		if err := freehand.Parse(in, raster, opts); err != nil {
			return err
		}
		data, err := raster.PNG(0)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	case formatPDF:
		pdf := fhpdf.New()
		if err := freehand.Parse(in, pdf, opts); err != nil {
			return err
		}
		return writePDF(pdf, out)
	default:
		pages, err := freehand.GenerateSVG(in, opts)
		if err != nil {
			return err
		}
		for _, page := range pages {
			if _, err := io.WriteString(out, page); err != nil {
				return err
			}
		}
		return nil
	}
}

// writePDF serializes the document through a temporary file.
func writePDF(pdf *fhpdf.Painter, out io.Writer) error {
	dir, err := os.MkdirTemp("", "fhconvert")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "out.pdf")
	if err := pdf.WriteFile(name); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(out, f)
	return err
}
