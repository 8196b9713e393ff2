package convert

import (
	"strings"
	"testing"
)

func TestAnimationSnippet(t *testing.T) {
	frames := []string{"@@\n@@", "..\n.."}
	snippet := AnimationSnippet(frames, 10, "#000000", "#00ff00")

	if !strings.Contains(snippet, `<div id="ascii-animation-`) {
		t.Error("missing animation container")
	}
	if !strings.Contains(snippet, `"@@\n@@"`) || !strings.Contains(snippet, `"..\n.."`) {
		t.Error("frames not embedded as JSON")
	}
	if !strings.Contains(snippet, "setInterval(animate, 100)") {
		t.Error("10 fps should animate every 100ms")
	}
	if !strings.Contains(snippet, "frameIndex % frames.length") {
		t.Error("frame loop should wrap with modulo")
	}
	if !strings.Contains(snippet, "background: #000000") || !strings.Contains(snippet, "color: #00ff00") {
		t.Error("configured colors missing from style")
	}
}

func TestAnimationSnippetInterval(t *testing.T) {
	tests := []struct {
		fps  int
		want string
	}{
		{10, "setInterval(animate, 100)"},
		{24, "setInterval(animate, 41)"},
		{60, "setInterval(animate, 16)"},
		{0, "setInterval(animate, 100)"},
	}
	for _, tt := range tests {
		snippet := AnimationSnippet([]string{"x"}, tt.fps, "#000000", "#ffffff")
		if !strings.Contains(snippet, tt.want) {
			t.Errorf("fps %d: snippet missing %q", tt.fps, tt.want)
		}
	}
}

func TestAnimationSnippetUniqueIDs(t *testing.T) {
	a := AnimationSnippet([]string{"x"}, 10, "#000000", "#ffffff")
	b := AnimationSnippet([]string{"x"}, 10, "#000000", "#ffffff")

	idOf := func(s string) string {
		start := strings.Index(s, `id="`) + len(`id="`)
		end := strings.Index(s[start:], `"`)
		return s[start : start+end]
	}
	if idOf(a) == idOf(b) {
		t.Error("two snippets on one page would collide on container id")
	}
}

func TestImageSnippet(t *testing.T) {
	snippet := ImageSnippet("@#.\n..@", "#1a1a1a", "#33ff33")

	if !strings.Contains(snippet, `<div id="ascii-image-`) {
		t.Error("missing image container")
	}
	if !strings.Contains(snippet, `"@#.\n..@"`) {
		t.Error("art not embedded as JSON")
	}
	if strings.Contains(snippet, "setInterval") {
		t.Error("static snippet should not animate")
	}
	if !strings.Contains(snippet, "background: #1a1a1a") || !strings.Contains(snippet, "color: #33ff33") {
		t.Error("configured colors missing from style")
	}
}
