// Package ascii renders grayscale images as fixed-width character
// frames using a configurable intensity palette.
package ascii

import "errors"

// DefaultPalette is the classic dark-to-light ramp.
const DefaultPalette = "@%#*+=-:. "

// Palette is an ordered character ramp indexed by intensity, darkest
// first. Stored as runes so multi-byte ramps work.
type Palette struct {
	chars []rune
}

func NewPalette(chars string) (Palette, error) {
	if chars == "" {
		return Palette{}, errors.New("ascii: palette must not be empty")
	}
	return Palette{chars: []rune(chars)}, nil
}

// MustPalette is NewPalette for ramps known to be valid.
func MustPalette(chars string) Palette {
	p, err := NewPalette(chars)
	if err != nil {
		panic(err)
	}
	return p
}

// Glyph maps an 8-bit intensity to its palette character: index
// v*(len-1)/255 with integer floor, clamped to the ramp.
func (p Palette) Glyph(v uint8) rune {
	if len(p.chars) == 0 {
		return ' '
	}
	i := int(v) * (len(p.chars) - 1) / 255
	if i >= len(p.chars) {
		i = len(p.chars) - 1
	}
	return p.chars[i]
}

func (p Palette) Len() int {
	return len(p.chars)
}

func (p Palette) String() string {
	return string(p.chars)
}
