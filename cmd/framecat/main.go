// Command framecat plays a video file as ASCII animation in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/framegeist/framegeist/internal/ascii"
	"github.com/framegeist/framegeist/internal/stream"
)

func main() {
	width := flag.Int("w", 80, "output width in characters")
	fps := flag.Int("fps", 10, "playback frames per second")
	bin := flag.String("ffmpeg", "ffmpeg", "ffmpeg binary to use")
	palette := flag.String("palette", ascii.DefaultPalette, "glyph ramp, darkest to brightest")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: framecat [flags] <video>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *fps <= 0 {
		fmt.Fprintln(os.Stderr, "framecat: fps must be positive")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The terminal is the output surface, so pipeline logs are dropped.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pipeline := stream.NewPipeline(*bin, 0, logger)
	opts := stream.Options{Width: *width, FPS: *fps, Palette: *palette}

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	failed := false
	first := true
	for item := range pipeline.Stream(ctx, flag.Arg(0), opts) {
		switch item.Kind {
		case stream.KindFrame:
			if !first {
				select {
				case <-ticker.C:
				case <-ctx.Done():
				}
			}
			first = false
			fmt.Print("\x1b[2J\x1b[H")
			fmt.Println(item.Text)
		case stream.KindError:
			fmt.Fprintln(os.Stderr, "framecat:", item.Message)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
