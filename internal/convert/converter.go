// Package convert performs one-shot conversions: a whole video into
// ASCII animation frames, or a single image into ASCII art, plus the
// embeddable HTML snippets around them. Completed conversions are
// recorded in a history store.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/framegeist/framegeist/internal/ascii"
	"github.com/framegeist/framegeist/internal/ffmpeg"
)

// Options carries the settings snapshot one conversion runs under.
type Options struct {
	Width   int
	FPS     int
	Palette string
}

func newRasterizer(opts Options) (*ascii.Rasterizer, error) {
	chars := opts.Palette
	if chars == "" {
		chars = ascii.DefaultPalette
	}
	palette, err := ascii.NewPalette(chars)
	if err != nil {
		return nil, err
	}
	return ascii.NewRasterizer(opts.Width, palette)
}

type Converter struct {
	bin string
	log *slog.Logger
}

func NewConverter(bin string, logger *slog.Logger) *Converter {
	return &Converter{
		bin: bin,
		log: logger.With("component", "convert"),
	}
}

// VideoToFrames decodes the whole video into ASCII text frames. The
// decoder's stills live in a temp directory that is removed before
// returning.
func (cv *Converter) VideoToFrames(ctx context.Context, path string, opts Options) ([]string, error) {
	ras, err := newRasterizer(opts)
	if err != nil {
		return nil, err
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("convert: fps must be positive, got %d", opts.FPS)
	}

	dir, err := os.MkdirTemp("", "framegeist-frames-")
	if err != nil {
		return nil, fmt.Errorf("convert: temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	paths, err := ffmpeg.ExtractFrames(ctx, cv.bin, path, dir, opts.Width, opts.FPS)
	if err != nil {
		return nil, err
	}

	frames := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("convert: read frame: %w", err)
		}
		f, err := ras.RasterizeBytes(data)
		if err != nil {
			return nil, fmt.Errorf("convert: frame %s: %w", filepath.Base(p), err)
		}
		frames = append(frames, f.Text())
	}

	cv.log.Info("video converted", "input", filepath.Base(path), "frames", len(frames))
	return frames, nil
}

// ImageToASCII converts a single image file to ASCII art.
func (cv *Converter) ImageToASCII(path string, opts Options) (string, error) {
	ras, err := newRasterizer(opts)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("convert: read image: %w", err)
	}
	f, err := ras.RasterizeBytes(data)
	if err != nil {
		return "", err
	}
	return f.Text(), nil
}
