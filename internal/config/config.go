// Package config holds the runtime conversion settings: palette, output
// width, frame rate, display colors, and upload limits. Settings are
// mutable over the API and persisted to a JSON file across restarts.
package config

import (
	"fmt"
	"regexp"

	"github.com/framegeist/framegeist/internal/ascii"
)

const (
	minWidth = 20
	maxWidth = 200
	minFPS   = 1
	maxFPS   = 60

	minImageSize = 1 << 20
	maxImageSize = 100 << 20
	minVideoSize = 1 << 20
	maxVideoSize = 500 << 20
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is one consistent snapshot of the conversion settings.
type Config struct {
	ImageMaxSize    int64  `json:"image_max_size"`
	VideoMaxSize    int64  `json:"video_max_size"`
	ASCIIWidth      int    `json:"ascii_width"`
	DefaultFPS      int    `json:"default_fps"`
	ASCIIChars      string `json:"ascii_chars"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

func Default() Config {
	return Config{
		ImageMaxSize:    5 << 20,
		VideoMaxSize:    10 << 20,
		ASCIIWidth:      80,
		DefaultFPS:      10,
		ASCIIChars:      ascii.DefaultPalette,
		BackgroundColor: "#000000",
		TextColor:       "#00ff00",
	}
}

// ValidationError reports the first setting that failed validation. Its
// message is safe to surface to API clients.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalidf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks every field against its allowed range.
func (c Config) Validate() error {
	if c.ImageMaxSize < minImageSize || c.ImageMaxSize > maxImageSize {
		return invalidf("image_max_size must be between %d and %d bytes", minImageSize, maxImageSize)
	}
	if c.VideoMaxSize < minVideoSize || c.VideoMaxSize > maxVideoSize {
		return invalidf("video_max_size must be between %d and %d bytes", minVideoSize, maxVideoSize)
	}
	if c.ASCIIWidth < minWidth || c.ASCIIWidth > maxWidth {
		return invalidf("ascii_width must be between %d and %d", minWidth, maxWidth)
	}
	if c.DefaultFPS < minFPS || c.DefaultFPS > maxFPS {
		return invalidf("default_fps must be between %d and %d", minFPS, maxFPS)
	}
	if c.ASCIIChars == "" {
		return invalidf("ascii_chars must not be empty")
	}
	if !colorPattern.MatchString(c.BackgroundColor) {
		return invalidf("background_color must be a hex color like #000000")
	}
	if !colorPattern.MatchString(c.TextColor) {
		return invalidf("text_color must be a hex color like #00ff00")
	}
	return nil
}

// Patch is a partial update. Nil fields keep their current values.
type Patch struct {
	ImageMaxSize    *int64
	VideoMaxSize    *int64
	ASCIIWidth      *int
	DefaultFPS      *int
	ASCIIChars      *string
	BackgroundColor *string
	TextColor       *string
}

func (c Config) apply(p Patch) Config {
	if p.ImageMaxSize != nil {
		c.ImageMaxSize = *p.ImageMaxSize
	}
	if p.VideoMaxSize != nil {
		c.VideoMaxSize = *p.VideoMaxSize
	}
	if p.ASCIIWidth != nil {
		c.ASCIIWidth = *p.ASCIIWidth
	}
	if p.DefaultFPS != nil {
		c.DefaultFPS = *p.DefaultFPS
	}
	if p.ASCIIChars != nil {
		c.ASCIIChars = *p.ASCIIChars
	}
	if p.BackgroundColor != nil {
		c.BackgroundColor = *p.BackgroundColor
	}
	if p.TextColor != nil {
		c.TextColor = *p.TextColor
	}
	return c
}
