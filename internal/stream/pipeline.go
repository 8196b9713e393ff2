// Package stream turns a video file into an ordered, cancellable
// sequence of ASCII art frames by piping a decoder's PPM output through
// the demuxer and rasterizer.
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/framegeist/framegeist/internal/ascii"
	"github.com/framegeist/framegeist/internal/ffmpeg"
	"github.com/framegeist/framegeist/internal/ppm"
)

// Kind discriminates pipeline items on the wire.
type Kind string

const (
	KindFrame    Kind = "frame"
	KindComplete Kind = "complete"
	KindError    Kind = "error"
)

// Item is one element of a stream: a rendered frame, or one of the two
// terminal markers. Every stream carries exactly one terminal item and
// the channel is closed after it.
type Item struct {
	Kind    Kind   `json:"kind"`
	Index   int    `json:"index,omitempty"`
	Text    string `json:"text,omitempty"`
	Total   int    `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
}

// Options controls one stream. An empty Palette falls back to the
// default ramp.
type Options struct {
	Width   int
	FPS     int
	Palette string
}

const (
	// defaultChunkSize is how much decoder output is consumed per read.
	defaultChunkSize = 8192
	// itemBuffer decouples the producer from a briefly slow consumer
	// without letting frames pile up unboundedly.
	itemBuffer = 16
)

// Pipeline produces ASCII frame streams from video files.
type Pipeline struct {
	bin   string
	chunk int
	log   *slog.Logger
}

// NewPipeline builds a pipeline around the given decoder binary. A
// chunkSize of zero or less selects the default read size.
func NewPipeline(bin string, chunkSize int, logger *slog.Logger) *Pipeline {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Pipeline{
		bin:   bin,
		chunk: chunkSize,
		log:   logger.With("component", "stream"),
	}
}

// Stream starts decoding input and returns a channel of items. Frames
// arrive in decode order with 1-based strictly increasing indices;
// frames that fail to decode are logged and skipped without an index.
// Cancelling ctx kills the decoder and ends the stream promptly. The
// channel is always closed, and the decoder process never outlives the
// stream.
func (p *Pipeline) Stream(ctx context.Context, input string, opts Options) <-chan Item {
	items := make(chan Item, itemBuffer)
	go p.run(ctx, input, opts, items)
	return items
}

func (p *Pipeline) run(ctx context.Context, input string, opts Options, items chan<- Item) {
	defer close(items)

	total, err := p.pump(ctx, input, opts, items)
	switch {
	case ctx.Err() != nil:
		// Consumer is gone. Leave a notice if there is room, but never
		// block on a channel nobody reads.
		select {
		case items <- Item{Kind: KindError, Message: "stream cancelled"}:
		default:
		}
	case err != nil:
		p.log.Warn("video stream failed", "input", input, "frames", total, "error", err)
		select {
		case items <- Item{Kind: KindError, Message: err.Error()}:
		case <-ctx.Done():
		}
	default:
		p.log.Info("video stream complete", "input", input, "frames", total)
		select {
		case items <- Item{Kind: KindComplete, Total: total}:
		case <-ctx.Done():
		}
	}
}

// pump emits frame items until the decoder's output is exhausted,
// returning the emitted count and the fatal error if the stream cannot
// complete. Consumer cancellation is not an error here; run picks it up
// from the context.
func (p *Pipeline) pump(ctx context.Context, input string, opts Options, items chan<- Item) (int, error) {
	chars := opts.Palette
	if chars == "" {
		chars = ascii.DefaultPalette
	}
	palette, err := ascii.NewPalette(chars)
	if err != nil {
		return 0, err
	}
	ras, err := ascii.NewRasterizer(opts.Width, palette)
	if err != nil {
		return 0, err
	}
	if opts.FPS <= 0 {
		return 0, fmt.Errorf("stream: fps must be positive, got %d", opts.FPS)
	}

	proc := ffmpeg.NewProcess(p.bin, p.log)
	if err := proc.Start(ctx, ffmpeg.StreamConfig{Input: input, Width: opts.Width, FPS: opts.FPS}); err != nil {
		return 0, fmt.Errorf("failed to start video decoder: %w", err)
	}
	defer proc.Cancel()

	var demux ppm.Demuxer
	out := proc.Output()
	chunk := make([]byte, p.chunk)
	total := 0
	for {
		n, readErr := out.Read(chunk)
		for _, fr := range demux.Feed(chunk[:n]) {
			img, err := fr.Image()
			if err != nil {
				p.log.Warn("skipping undecodable frame",
					"width", fr.Width, "height", fr.Height, "error", err)
				continue
			}
			af, err := ras.Rasterize(img)
			if err != nil {
				p.log.Warn("skipping frame that failed to rasterize", "error", err)
				continue
			}
			select {
			case items <- Item{Kind: KindFrame, Index: total + 1, Text: af.Text()}:
				total++
			case <-ctx.Done():
				return total, nil
			}
		}
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				p.log.Debug("decoder output closed", "error", readErr)
			}
			break
		}
	}

	if err := proc.Wait(); err != nil {
		return total, fmt.Errorf("video processing failed: %w", err)
	}
	return total, nil
}
