package convert

import (
	"time"

	"github.com/framegeist/framegeist/internal/shared"
)

// Conversion records one completed conversion for the history listing.
// Only the shape of the output is kept, not the rendered frames.
type Conversion struct {
	ID         string           `gorm:"primaryKey" json:"id"`
	Kind       shared.MediaKind `gorm:"not null;index" json:"kind"`
	Filename   string           `json:"filename"`
	Width      int              `json:"width"`
	FPS        int              `json:"fps"`
	FrameCount int              `json:"frame_count"`
	DurationMs int64            `json:"duration_ms"`
	CreatedAt  time.Time        `json:"created_at"`
}
