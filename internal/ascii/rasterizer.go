package ascii

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// aspectCorrection compensates for terminal character cells being taller
// than they are wide.
const aspectCorrection = 0.55

// Frame is an immutable grid of equal-length lines of palette
// characters.
type Frame struct {
	Lines []string
}

// Text joins the frame's lines with newlines.
func (f Frame) Text() string {
	return strings.Join(f.Lines, "\n")
}

// A Rasterizer converts images to fixed-width ASCII frames. It holds
// only immutable settings and is safe for concurrent use.
type Rasterizer struct {
	width   int
	palette Palette
}

func NewRasterizer(width int, palette Palette) (*Rasterizer, error) {
	if width <= 0 {
		return nil, fmt.Errorf("ascii: width must be positive, got %d", width)
	}
	if palette.Len() == 0 {
		return nil, fmt.Errorf("ascii: palette must not be empty")
	}
	return &Rasterizer{width: width, palette: palette}, nil
}

// Rasterize converts img to a frame at the configured width. The height
// follows the source aspect ratio corrected for character cell
// proportions and is never less than one row.
func (r *Rasterizer) Rasterize(img image.Image) (Frame, error) {
	if img == nil {
		return Frame{}, fmt.Errorf("ascii: nil image")
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Frame{}, fmt.Errorf("ascii: empty image %dx%d", b.Dx(), b.Dy())
	}

	height := int(math.Round(float64(r.width) * float64(b.Dy()) / float64(b.Dx()) * aspectCorrection))
	if height < 1 {
		height = 1
	}

	gray := image.NewGray(image.Rect(0, 0, r.width, height))
	draw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, b, draw.Src, nil)

	lines := make([]string, height)
	var sb strings.Builder
	for y := 0; y < height; y++ {
		sb.Reset()
		sb.Grow(r.width)
		row := gray.Pix[y*gray.Stride : y*gray.Stride+r.width]
		for _, v := range row {
			sb.WriteRune(r.palette.Glyph(v))
		}
		lines[y] = sb.String()
	}
	return Frame{Lines: lines}, nil
}

// RasterizeBytes decodes an encoded still image (PNG, JPEG, GIF, WebP)
// and rasterizes it. Decode failures are returned as errors so the
// caller can decide whether to skip or abort.
func (r *Rasterizer) RasterizeBytes(data []byte) (Frame, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Frame{}, fmt.Errorf("ascii: decode image: %w", err)
	}
	return r.Rasterize(img)
}
