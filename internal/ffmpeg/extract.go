package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// ExtractFrames decodes input into numbered PNG stills inside dir at the
// given fps and width, returning their paths in frame order. The whole
// run is synchronous; ctx cancellation kills the decoder.
func ExtractFrames(ctx context.Context, bin, input, dir string, width, fps int) ([]string, error) {
	if bin == "" {
		bin = DefaultBin
	}

	pattern := filepath.Join(dir, "frame_%04d.png")
	cmd := exec.CommandContext(ctx, bin,
		"-i", input,
		"-vf", fmt.Sprintf("fps=%d,scale=%d:-1", fps, width),
		"-y",
		pattern,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: extract frames: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	frames, err := filepath.Glob(filepath.Join(dir, "frame_*.png"))
	if err != nil {
		return nil, fmt.Errorf("ffmpeg: glob frames: %w", err)
	}
	sort.Strings(frames)
	if len(frames) == 0 {
		return nil, errors.New("ffmpeg: no frames were extracted")
	}
	return frames, nil
}

// Available reports whether the decoder binary can be resolved.
func Available(bin string) bool {
	if bin == "" {
		bin = DefaultBin
	}
	_, err := exec.LookPath(bin)
	return err == nil
}
