package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/framegeist/framegeist/internal/config"
	"github.com/framegeist/framegeist/internal/dto"
	"github.com/framegeist/framegeist/internal/session"
	"github.com/framegeist/framegeist/internal/shared"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const wsWriteWait = 10 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler serves the streaming API: stage a video, then replay it as
// ASCII frames over websocket, SSE, or the plain-text frame protocol.
type Handler struct {
	pipeline *Pipeline
	sessions session.Store
	config   *config.Store
	mediaDir string
	logger   *slog.Logger
}

func NewHandler(pipeline *Pipeline, sessions session.Store, configStore *config.Store, mediaDir string, logger *slog.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		sessions: sessions,
		config:   configStore,
		mediaDir: mediaDir,
		logger:   logger.With("component", "stream_handler"),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/stream-upload", h.Upload)
	g.GET("/stream-ascii/:id", h.StreamASCII)
	g.GET("/stream-status/:id", h.Status)
}

// Upload godoc
//
// @Summary      Upload a video for ASCII streaming
// @Description  Stages the video and returns a stream id. The id can be redeemed exactly once against /stream-ascii.
// @Tags         stream
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file (MP4, MOV, AVI, WebM)"
// @Success      200  {object}  dto.StreamUploadResponse
// @Failure      400  {object}  shared.APIError
// @Router       /stream-upload [post]
func (h *Handler) Upload(c echo.Context) error {
	file, err := c.FormFile("video")
	if err != nil {
		return shared.BadRequest("missing_file", "video file is required")
	}

	cfg := h.config.Current()
	contentType := file.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "video/") {
		return shared.BadRequest("invalid_type", "File must be a video (MP4, MOV, AVI, WebM)")
	}
	if file.Size > cfg.VideoMaxSize {
		return shared.BadRequest("file_too_large",
			fmt.Sprintf("File size must be less than %.0fMB", float64(cfg.VideoMaxSize)/(1<<20)))
	}

	h.logger.Info("staging video for streaming",
		"filename", file.Filename, "size", file.Size, "content_type", contentType)

	path, err := h.stage(file, shared.SafeExtension(file.Filename, contentType, shared.MediaKindVideo))
	if err != nil {
		h.logger.Error("failed to stage upload", "error", err)
		return c.JSON(http.StatusOK, dto.StreamUploadResponse{
			Error: "Unexpected error: " + err.Error(),
		})
	}

	sess := &session.Session{Path: path, Filename: file.Filename, Size: file.Size}
	if err := h.sessions.Create(c.Request().Context(), sess); err != nil {
		h.logger.Error("failed to create stream session", "error", err)
		_ = os.Remove(path)
		return c.JSON(http.StatusOK, dto.StreamUploadResponse{
			Error: "Unexpected error: " + err.Error(),
		})
	}

	h.logger.Info("video staged for streaming", "stream_id", sess.ID, "path", path)
	return c.JSON(http.StatusOK, dto.StreamUploadResponse{
		Success:  true,
		Message:  "Video uploaded successfully. Use stream_id to start streaming.",
		StreamID: sess.ID,
	})
}

// stage copies the upload into the media directory so it outlives the
// request. The caller owns the returned file.
func (h *Handler) stage(file *multipart.FileHeader, ext string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dir := h.mediaDir
	if dir == "" {
		dir = os.TempDir()
	}
	dst, err := os.CreateTemp(dir, "framegeist-stream-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}

// StreamASCII redeems a stream id and plays the video back as ASCII
// frames. The session is consumed up front, so a second request for the
// same id gets a 404 even while the first stream is still running. The
// transport is picked per request: a websocket upgrade when asked for,
// SSE when the client accepts text/event-stream, plain text otherwise.
func (h *Handler) StreamASCII(c echo.Context) error {
	id := c.Param("id")

	sess, err := h.sessions.Resolve(c.Request().Context(), id)
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NotFound("stream_not_found",
			fmt.Sprintf("Stream ID %s not found. Upload video first.", id))
	}
	if err != nil {
		h.logger.Error("failed to resolve stream session", "error", err, "stream_id", id)
		return shared.InternalError("session_lookup_failed", "failed to resolve stream session")
	}
	defer h.discard(sess)

	if _, err := os.Stat(sess.Path); err != nil {
		return shared.NotFound("file_missing", "Video file no longer exists")
	}

	cfg := h.config.Current()
	opts := Options{Width: cfg.ASCIIWidth, FPS: cfg.DefaultFPS, Palette: cfg.ASCIIChars}

	h.logger.Info("starting ascii stream", "stream_id", id, "width", opts.Width, "fps", opts.FPS)

	switch {
	case websocket.IsWebSocketUpgrade(c.Request()):
		return h.streamWebSocket(c, sess, opts)
	case strings.Contains(c.Request().Header.Get("Accept"), "text/event-stream"):
		return h.streamSSE(c, sess, opts)
	default:
		return h.streamPlain(c, sess, opts)
	}
}

// discard removes the staged video once its one stream has run.
func (h *Handler) discard(sess *session.Session) {
	if err := os.Remove(sess.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		h.logger.Warn("failed to remove staged video", "path", sess.Path, "error", err)
		return
	}
	h.logger.Info("cleaned up staged video", "path", sess.Path)
}

func (h *Handler) streamPlain(c echo.Context, sess *session.Session, opts Options) error {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	for item := range h.pipeline.Stream(ctx, sess.Path, opts) {
		if err := writePlainItem(resp, item); err != nil {
			h.logger.Debug("client went away", "error", err)
			cancel()
			break
		}
		resp.Flush()
	}
	return nil
}

// writePlainItem encodes one pipeline item in the line-oriented frame
// protocol: a KIND:n header line, the payload, and an END_KIND trailer
// followed by a blank line.
func writePlainItem(w io.Writer, item Item) error {
	switch item.Kind {
	case KindFrame:
		_, err := fmt.Fprintf(w, "FRAME:%d\n%s\nEND_FRAME\n\n", item.Index, item.Text)
		return err
	case KindComplete:
		_, err := fmt.Fprintf(w, "COMPLETE:%d\nStream completed successfully\nEND_STREAM\n\n", item.Total)
		return err
	case KindError:
		_, err := fmt.Fprintf(w, "ERROR:0\n%s\nEND_ERROR\n\n", item.Message)
		return err
	}
	return nil
}

func (h *Handler) streamSSE(c echo.Context, sess *session.Session, opts Options) error {
	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.Header().Set("Connection", "keep-alive")
	resp.Header().Set("X-Accel-Buffering", "no")
	resp.WriteHeader(http.StatusOK)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	for item := range h.pipeline.Stream(ctx, sess.Path, opts) {
		data, err := json.Marshal(item)
		if err != nil {
			h.logger.Error("failed to marshal stream item", "error", err)
			continue
		}
		if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
			h.logger.Debug("client went away", "error", err)
			cancel()
			break
		}
		resp.Flush()
	}
	return nil
}

func (h *Handler) streamWebSocket(c echo.Context, sess *session.Session, opts Options) error {
	ws, err := wsUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return err
	}
	defer ws.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	// The read side only carries close frames.
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for item := range h.pipeline.Stream(ctx, sess.Path, opts) {
		data, err := json.Marshal(item)
		if err != nil {
			h.logger.Error("failed to marshal stream item", "error", err)
			continue
		}
		_ = ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("websocket write failed", "error", err)
			cancel()
			break
		}
	}

	_ = ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
	_ = ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return nil
}

// Status godoc
//
// @Summary      Check whether a stream id is ready
// @Description  Reports readiness without consuming the session.
// @Tags         stream
// @Produce      json
// @Param        id  path  string  true  "Stream ID"
// @Success      200  {object}  dto.StreamStatusResponse
// @Router       /stream-status/{id} [get]
func (h *Handler) Status(c echo.Context) error {
	id := c.Param("id")

	sess, err := h.sessions.Get(c.Request().Context(), id)
	if errors.Is(err, shared.ErrNotFound) {
		return c.JSON(http.StatusOK, dto.StreamStatusResponse{StreamID: id, Status: "not_found"})
	}
	if err != nil {
		h.logger.Error("failed to look up stream session", "error", err, "stream_id", id)
		return shared.InternalError("session_lookup_failed", "failed to look up stream session")
	}

	return c.JSON(http.StatusOK, dto.StreamStatusResponse{
		StreamID: id,
		Status:   "ready",
		Ready:    true,
		FileSize: sess.Size,
		Filename: sess.Filename,
	})
}
