package session

import "time"

// Session is an uploaded video parked on disk, waiting for a streaming
// client to claim it.
type Session struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) RedisKey() string {
	return "stream:" + s.ID
}
