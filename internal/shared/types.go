package shared

import (
	"crypto/rand"
	"encoding/hex"
	"mime"
	"path/filepath"
	"strings"
)

func NewID(prefix string) string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return prefix + hex.EncodeToString(b)
}

// ShortID is NewID truncated to widthHex hex characters after the prefix,
// for identifiers that appear in filenames and snippet element ids.
func ShortID(prefix string, widthHex int) string {
	id := NewID(prefix)
	if widthHex <= 0 || len(prefix)+widthHex >= len(id) {
		return id
	}
	return id[:len(prefix)+widthHex]
}

type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindImage MediaKind = "image"
)

func (k MediaKind) String() string {
	return string(k)
}

var extensionByContentType = map[string]string{
	"video/mp4":       ".mp4",
	"video/quicktime": ".mov",
	"video/x-msvideo": ".avi",
	"video/webm":      ".webm",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
}

var allowedExtensions = map[string]struct{}{
	".mp4": {}, ".mov": {}, ".avi": {}, ".webm": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

// SafeExtension picks a staging-file extension from the declared content
// type, falling back to a known-safe filename extension, then to a default
// for the media kind. Unknown extensions never reach the filesystem.
func SafeExtension(filename, contentType string, kind MediaKind) string {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := extensionByContentType[mt]; ok {
			return ext
		}
	}

	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		if _, ok := allowedExtensions[ext]; ok {
			return ext
		}
	}

	switch kind {
	case MediaKindVideo:
		return ".mp4"
	case MediaKindImage:
		return ".png"
	default:
		return ".tmp"
	}
}
