package convert

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub decoder scripts require a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found in PATH")
	}
}

func writeStub(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func writePNG(t *testing.T, w, h int, c color.Color) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "still.png")
	if err := os.WriteFile(path, pngBytes(t, w, h, c), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestVideoToFrames(t *testing.T) {
	requireSh(t)

	still := writePNG(t, 2, 2, color.White)
	bin := writeStub(t, `
for last; do :; done
cp '`+still+`' "$(printf "$last" 1)"
cp '`+still+`' "$(printf "$last" 2)"`)

	cv := NewConverter(bin, testLogger())
	frames, err := cv.VideoToFrames(context.Background(), "in.mp4", Options{Width: 20, FPS: 10})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	// A square white source at width 20 renders 11 lines of spaces.
	lines := strings.Split(frames[0], "\n")
	if len(lines) != 11 {
		t.Errorf("frame has %d lines, want 11", len(lines))
	}
	if lines[0] != strings.Repeat(" ", 20) {
		t.Errorf("first line %q, want 20 spaces", lines[0])
	}
}

func TestVideoToFramesDecoderFailure(t *testing.T) {
	requireSh(t)

	bin := writeStub(t, `echo 'moov atom not found' >&2; exit 1`)

	cv := NewConverter(bin, testLogger())
	_, err := cv.VideoToFrames(context.Background(), "bad.mp4", Options{Width: 80, FPS: 10})
	if err == nil {
		t.Fatal("expected error from failing decoder")
	}
	if !strings.Contains(err.Error(), "moov atom") {
		t.Errorf("error should carry decoder stderr, got: %v", err)
	}
}

func TestVideoToFramesInvalidOptions(t *testing.T) {
	cv := NewConverter("ffmpeg", testLogger())

	if _, err := cv.VideoToFrames(context.Background(), "in.mp4", Options{Width: 0, FPS: 10}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := cv.VideoToFrames(context.Background(), "in.mp4", Options{Width: 80, FPS: 0}); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestImageToASCII(t *testing.T) {
	still := writePNG(t, 2, 2, color.Black)

	cv := NewConverter("", testLogger())
	art, err := cv.ImageToASCII(still, Options{Width: 20})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	lines := strings.Split(art, "\n")
	if len(lines) != 11 {
		t.Errorf("art has %d lines, want 11", len(lines))
	}
	if lines[0] != strings.Repeat("@", 20) {
		t.Errorf("first line %q, want 20 @ characters", lines[0])
	}
}

func TestImageToASCIINotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("definitely not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	cv := NewConverter("", testLogger())
	if _, err := cv.ImageToASCII(path, Options{Width: 20}); err == nil {
		t.Error("expected error for undecodable file")
	}
}
