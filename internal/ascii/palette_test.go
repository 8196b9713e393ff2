package ascii

import "testing"

func TestNewPalette(t *testing.T) {
	if _, err := NewPalette(""); err == nil {
		t.Error("expected error for empty palette")
	}

	p, err := NewPalette(DefaultPalette)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Len() != 10 {
		t.Errorf("expected 10 characters, got %d", p.Len())
	}
	if p.String() != DefaultPalette {
		t.Errorf("round trip mismatch: %q", p.String())
	}
}

func TestGlyphMapping(t *testing.T) {
	p := MustPalette(DefaultPalette)

	tests := []struct {
		v    uint8
		want rune
	}{
		{v: 0, want: '@'},
		{v: 28, want: '@'},   // 28*9/255 = 0
		{v: 29, want: '%'},   // 29*9/255 = 1
		{v: 128, want: '+'},  // 128*9/255 = 4
		{v: 254, want: '.'},  // 254*9/255 = 8
		{v: 255, want: ' '},  // exactly the brightest character
	}

	for _, tt := range tests {
		if got := p.Glyph(tt.v); got != tt.want {
			t.Errorf("Glyph(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestGlyphTwoCharacterRamp(t *testing.T) {
	p := MustPalette("ab")

	// Integer floor means only full intensity reaches the second character.
	for _, v := range []uint8{0, 1, 127, 254} {
		if got := p.Glyph(v); got != 'a' {
			t.Errorf("Glyph(%d) = %q, want 'a'", v, got)
		}
	}
	if got := p.Glyph(255); got != 'b' {
		t.Errorf("Glyph(255) = %q, want 'b'", got)
	}
}

func TestGlyphUnicodeRamp(t *testing.T) {
	p := MustPalette("█▓▒░ ")
	if p.Len() != 5 {
		t.Fatalf("expected 5 runes, got %d", p.Len())
	}
	if got := p.Glyph(0); got != '█' {
		t.Errorf("Glyph(0) = %q, want '█'", got)
	}
	if got := p.Glyph(255); got != ' ' {
		t.Errorf("Glyph(255) = %q, want ' '", got)
	}
}
