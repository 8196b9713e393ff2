// Package ppm implements incremental demuxing and decoding of binary PPM
// (P6) image streams, the raw frame format ffmpeg emits with
// -f image2pipe -c:v ppm.
package ppm

import (
	"fmt"
	"image"
)

// Frame is one demuxed P6 image: the parsed header plus its raw 24-bit
// RGB payload. The payload is always an owned copy, never a view into a
// demuxer's buffer.
type Frame struct {
	Width  int
	Height int
	MaxVal int
	Pix    []byte
}

// Image converts the frame to 8-bit grayscale using ITU-R 601 luma
// weights, rescaling samples when the header declares a maximum other
// than 255. Structural problems (non-positive dimensions, out-of-range
// maximum, payload size mismatch) are reported as errors so callers can
// skip the frame.
func (f Frame) Image() (*image.Gray, error) {
	if f.Width <= 0 || f.Height <= 0 {
		return nil, fmt.Errorf("ppm: invalid dimensions %dx%d", f.Width, f.Height)
	}
	if f.MaxVal <= 0 || f.MaxVal > 65535 {
		return nil, fmt.Errorf("ppm: invalid max sample value %d", f.MaxVal)
	}
	if want := f.Width * f.Height * 3; len(f.Pix) != want {
		return nil, fmt.Errorf("ppm: payload is %d bytes, want %d for %dx%d", len(f.Pix), want, f.Width, f.Height)
	}

	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for i, j := 0, 0; i < len(f.Pix); i, j = i+3, j+1 {
		r := rescale(f.Pix[i], f.MaxVal)
		g := rescale(f.Pix[i+1], f.MaxVal)
		b := rescale(f.Pix[i+2], f.MaxVal)
		img.Pix[j] = uint8((299*r + 587*g + 114*b + 500) / 1000)
	}
	return img, nil
}

func rescale(v byte, maxVal int) int {
	if maxVal == 255 {
		return int(v)
	}
	s := int(v) * 255 / maxVal
	if s > 255 {
		s = 255
	}
	return s
}
