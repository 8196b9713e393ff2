package dto

// UploadResponse is shared by the video and image conversion endpoints.
// A video conversion fills Frames, an image conversion fills ASCIIArt;
// both carry an embeddable HTML snippet. Failed conversions report
// Success false with Error set and nothing else.
type UploadResponse struct {
	Success  bool     `json:"success" example:"true"`
	Frames   []string `json:"frames,omitempty"`
	ASCIIArt string   `json:"ascii_art,omitempty"`
	Snippet  string   `json:"snippet,omitempty"`
	FileType string   `json:"file_type,omitempty" example:"video" enums:"video,image"`
	Error    string   `json:"error,omitempty" example:"file too large"`
}

type ConversionResponse struct {
	ID         string `json:"id" example:"conv_abc123"`
	Kind       string `json:"kind" example:"video" enums:"video,image"`
	Filename   string `json:"filename" example:"clip.mp4"`
	Width      int    `json:"width" example:"80"`
	FPS        int    `json:"fps,omitempty" example:"10"`
	FrameCount int    `json:"frame_count" example:"42"`
	DurationMs int64  `json:"duration_ms" example:"1500"`
	CreatedAt  string `json:"created_at" example:"2025-06-15T10:30:00Z"`
}

type ConversionListResponse struct {
	Conversions []ConversionResponse `json:"conversions"`
}
