package dto

// ConfigPayload mirrors the runtime conversion settings on the wire.
type ConfigPayload struct {
	ImageMaxSize    int64  `json:"image_max_size" example:"5242880"`
	VideoMaxSize    int64  `json:"video_max_size" example:"10485760"`
	ASCIIWidth      int    `json:"ascii_width" example:"80"`
	DefaultFPS      int    `json:"default_fps" example:"10"`
	ASCIIChars      string `json:"ascii_chars" example:"@%#*+=-:. "`
	BackgroundColor string `json:"background_color" example:"#000000"`
	TextColor       string `json:"text_color" example:"#00ff00"`
}

// ConfigUpdateRequest patches a subset of the settings. Absent fields
// keep their current values.
type ConfigUpdateRequest struct {
	ImageMaxSize    *int64  `json:"image_max_size,omitempty" example:"10485760"`
	VideoMaxSize    *int64  `json:"video_max_size,omitempty" example:"52428800"`
	ASCIIWidth      *int    `json:"ascii_width,omitempty" example:"120"`
	DefaultFPS      *int    `json:"default_fps,omitempty" example:"15"`
	ASCIIChars      *string `json:"ascii_chars,omitempty" example:"@#. "`
	BackgroundColor *string `json:"background_color,omitempty" example:"#1a1a1a"`
	TextColor       *string `json:"text_color,omitempty" example:"#33ff33"`
}

type ConfigResponse struct {
	Success bool           `json:"success" example:"true"`
	Config  *ConfigPayload `json:"config,omitempty"`
	Message string         `json:"message,omitempty" example:"Configuration updated"`
}
