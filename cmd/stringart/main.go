// seehuhn.de/go/stringart - thread paths for string art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command stringart computes the thread paths for a string art picture.
//
// Usage:
//
//	stringart -circle layout.json [flags] image
//
// The layout file describes the rings of pins.  The program writes the
// threading instructions for every window as JSON, together with an SVG
// mask which shows the window numbers.  Further drawings can be requested
// with flags.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/layout"
	"seehuhn.de/go/stringart/output"
	"seehuhn.de/go/stringart/plan"
	"seehuhn.de/go/stringart/tone"
)

type config struct {
	image  string
	circle string
	rgb    bool

	maxSize int
	workers int
	plan    plan.Options

	mask     string
	sections string
	pdf      string
	preview  string
	template string
	threads  string
	debugDir string
}

func main() {
	def := plan.DefaultOptions()
	cfg := &config{}
	flag.StringVar(&cfg.circle, "circle", "", "layout file (JSON)")
	flag.BoolVar(&cfg.rgb, "rgb", false, "use red, green and blue thread in addition to black")
	flag.IntVar(&cfg.maxSize, "max-size", 800, "downscale the image to at most this many pixels per side")
	flag.IntVar(&cfg.workers, "workers", 0, "number of parallel runs (0 = number of CPUs)")
	flag.Float64Var(&cfg.plan.CoverageFactor, "coverage", def.CoverageFactor, "thread budget, relative to the required darkness")
	flag.Float64Var(&cfg.plan.Discouragement, "discouragement", def.Discouragement, "tie-breaking penalty for lines of other channels")
	flag.Float64Var(&cfg.plan.ThreadWidth, "thread-width", def.ThreadWidth, "thread width in pixels")
	flag.StringVar(&cfg.mask, "mask", "mask.svg", "output file for the window mask (SVG)")
	flag.StringVar(&cfg.sections, "sections", "sections.json", "output file for the threading instructions")
	flag.StringVar(&cfg.pdf, "template-pdf", "", "output file for a printable pin template (PDF)")
	flag.StringVar(&cfg.preview, "preview", "", "output file for a simulated picture (PNG)")
	flag.StringVar(&cfg.template, "debug-template", "", "output file for the candidate lines (SVG)")
	flag.StringVar(&cfg.threads, "debug-plan", "", "output file for the planned threads (SVG)")
	flag.StringVar(&cfg.debugDir, "debug-dir", "", "directory for per-run PNG images")
	verbose := flag.Bool("v", false, "log every run")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s -circle layout.json [flags] image\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || cfg.circle == "" {
		flag.Usage()
		os.Exit(2)
	}
	cfg.image = flag.Arg(0)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger); err != nil {
		logger.Error("stringart failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config, logger *slog.Logger) error {
	p, err := readLayout(cfg.circle)
	if err != nil {
		return err
	}

	img, err := readImage(cfg.image)
	if err != nil {
		return err
	}
	img = tone.Downscale(img, cfg.maxSize)
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	logger.Info("image loaded", "file", cfg.image, "width", width, "height", height)

	if cfg.debugDir != "" {
		if err := os.MkdirAll(cfg.debugDir, 0o755); err != nil {
			return err
		}
	}

	planes := stringart.Planes(img, p.Primaries, cfg.rgb)
	res, err := stringart.Run(p, planes, &stringart.Options{
		Plan:     &cfg.plan,
		Workers:  cfg.workers,
		Logger:   logger,
		DebugDir: cfg.debugDir,
	})
	if err != nil {
		return err
	}

	factor := output.YarnFactor(height)
	err = writeFile(cfg.sections, func(w io.Writer) error {
		return output.Sections(w, p, res.Sequences, factor)
	})
	if err != nil {
		return err
	}
	err = writeFile(cfg.mask, func(w io.Writer) error {
		return output.Mask(w, p, width, height)
	})
	if err != nil {
		return err
	}
	err = writeFile(cfg.template, func(w io.Writer) error {
		return output.Template(w, p, res.Graphs, width, height)
	})
	if err != nil {
		return err
	}
	err = writeFile(cfg.threads, func(w io.Writer) error {
		return output.Threads(w, p, res.Sequences, p.Primaries, width, height, cfg.rgb)
	})
	if err != nil {
		return err
	}
	if cfg.pdf != "" {
		if err := output.PDFTemplate(cfg.pdf, p, width, height); err != nil {
			return err
		}
	}
	if cfg.preview != "" {
		pv := output.Preview(p, res.Sequences, p.Primaries, width, height, cfg.rgb)
		if err := output.WritePNG(cfg.preview, pv); err != nil {
			return err
		}
	}

	logger.Info("done",
		"windows", len(p.Windows),
		"runs", res.Runs,
		"yarn_m", fmt.Sprintf("%.1f", res.Length*factor))
	return nil
}

func readLayout(fname string) (*layout.Plan, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return layout.Read(f)
}

func readImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

// writeFile creates fname and fills it using fn.  An empty file name
// skips the output.
func writeFile(fname string, fn func(io.Writer) error) error {
	if fname == "" {
		return nil
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
