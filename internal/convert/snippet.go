package convert

import (
	"encoding/json"
	"fmt"

	"github.com/framegeist/framegeist/internal/shared"
)

// AnimationSnippet wraps the frames in a self-contained HTML fragment
// that loops through them at the given frame rate. The container id is
// randomized so multiple snippets can share a page.
func AnimationSnippet(frames []string, fps int, backgroundColor, textColor string) string {
	if fps <= 0 {
		fps = 10
	}
	id := shared.ShortID("ascii-animation-", 8)
	framesJSON, _ := json.Marshal(frames)

	return fmt.Sprintf(`<div id="%[1]s"></div>
<script>
  (function() {
    const containerId = "%[1]s";
    const frames = %[2]s;
    let frameIndex = 0;

    function animate() {
      const container = document.getElementById(containerId);
      if (container) {
        container.textContent = frames[frameIndex %% frames.length];
        frameIndex++;
      }
    }

    setInterval(animate, %[3]d);
  })();
</script>
<style>
  #%[1]s {
    font-family: 'Courier New', 'Monaco', 'Consolas', monospace;
    white-space: pre;
    line-height: 1;
    background: %[4]s;
    color: %[5]s;
    padding: 1rem;
    border-radius: 0.5rem;
    overflow: auto;
    font-size: 12px;
  }
</style>`, id, framesJSON, 1000/fps, backgroundColor, textColor)
}

// ImageSnippet wraps static ASCII art in the same styled container.
func ImageSnippet(asciiArt, backgroundColor, textColor string) string {
	id := shared.ShortID("ascii-image-", 8)
	asciiJSON, _ := json.Marshal(asciiArt)

	return fmt.Sprintf(`<div id="%[1]s"></div>
<script>
  document.getElementById("%[1]s").textContent = %[2]s;
</script>
<style>
  #%[1]s {
    font-family: 'Courier New', 'Monaco', 'Consolas', monospace;
    white-space: pre;
    line-height: 1;
    background: %[3]s;
    color: %[4]s;
    padding: 1rem;
    border-radius: 0.5rem;
    overflow: auto;
    font-size: 12px;
  }
</style>`, id, asciiJSON, backgroundColor, textColor)
}
