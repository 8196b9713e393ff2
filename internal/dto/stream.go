package dto

type StreamUploadResponse struct {
	Success  bool   `json:"success" example:"true"`
	Message  string `json:"message,omitempty" example:"Video uploaded successfully. Use stream_id to start streaming."`
	StreamID string `json:"stream_id,omitempty" example:"stream_a1b2c3d4e5f6"`
	Error    string `json:"error,omitempty"`
}

type StreamStatusResponse struct {
	StreamID string `json:"stream_id" example:"stream_a1b2c3d4e5f6"`
	Status   string `json:"status" example:"ready"`
	Ready    bool   `json:"ready" example:"true"`
	FileSize int64  `json:"file_size,omitempty" example:"1048576"`
	Filename string `json:"filename,omitempty" example:"clip.mp4"`
}
