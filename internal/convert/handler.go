package convert

import (
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/framegeist/framegeist/internal/config"
	"github.com/framegeist/framegeist/internal/dto"
	"github.com/framegeist/framegeist/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	converter *Converter
	store     *Store
	config    *config.Store
	logger    *slog.Logger
}

func NewHandler(converter *Converter, store *Store, configStore *config.Store, logger *slog.Logger) *Handler {
	return &Handler{
		converter: converter,
		store:     store,
		config:    configStore,
		logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.POST("/upload", h.UploadVideo)
	g.POST("/upload-image", h.UploadImage)
	g.GET("/conversions", h.ListConversions)
}

// saveUpload copies the multipart file to a temp file with a safe
// extension and hands back a cleanup func for the caller to defer.
func (h *Handler) saveUpload(file *multipart.FileHeader, ext string) (string, func(), error) {
	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "framegeist-upload-*"+ext)
	if err != nil {
		return "", nil, err
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, err
	}
	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

func (h *Handler) record(c echo.Context, kind shared.MediaKind, filename string, cfg config.Config, frameCount int, elapsed time.Duration) {
	if h.store == nil {
		return
	}
	conv := &Conversion{
		Kind:       kind,
		Filename:   filename,
		Width:      cfg.ASCIIWidth,
		FrameCount: frameCount,
		DurationMs: elapsed.Milliseconds(),
	}
	if kind == shared.MediaKindVideo {
		conv.FPS = cfg.DefaultFPS
	}
	if err := h.store.Record(c.Request().Context(), conv); err != nil {
		h.logger.Warn("failed to record conversion", "error", err)
	}
}

// @Summary      Convert a video to ASCII animation
// @Description  Uploads a video, decodes it, and returns every frame as ASCII art plus an embeddable HTML snippet
// @Tags         convert
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file (MP4, MOV, AVI, WebM)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  shared.APIError
// @Router       /upload [post]
func (h *Handler) UploadVideo(c echo.Context) error {
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

	h.logger.Info("video upload started",
		"filename", file.Filename, "size", file.Size, "content_type", contentType)

	path, cleanup, err := h.saveUpload(file, shared.SafeExtension(file.Filename, contentType, shared.MediaKindVideo))
	if err != nil {
		h.logger.Error("failed to save upload", "error", err)
		return shared.InternalError("save_failed", "failed to save uploaded file")
	}
	defer cleanup()

	start := time.Now()
	frames, err := h.converter.VideoToFrames(c.Request().Context(), path, Options{
		Width:   cfg.ASCIIWidth,
		FPS:     cfg.DefaultFPS,
		Palette: cfg.ASCIIChars,
	})
	if err != nil {
		h.logger.Warn("video conversion failed", "filename", file.Filename, "error", err)
		return c.JSON(http.StatusOK, dto.UploadResponse{
			Success:  false,
			Error:    "Video processing failed: " + err.Error(),
			FileType: shared.MediaKindVideo.String(),
		})
	}

	h.record(c, shared.MediaKindVideo, file.Filename, cfg, len(frames), time.Since(start))

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		Frames:   frames,
		Snippet:  AnimationSnippet(frames, cfg.DefaultFPS, cfg.BackgroundColor, cfg.TextColor),
		FileType: shared.MediaKindVideo.String(),
	})
}

// @Summary      Convert an image to ASCII art
// @Description  Uploads an image and returns it as ASCII art plus an embeddable HTML snippet
// @Tags         convert
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file (JPG, PNG, GIF, WebP)"
// @Success      200  {object}  dto.UploadResponse
// @Failure      400  {object}  shared.APIError
// @Router       /upload-image [post]
func (h *Handler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return shared.BadRequest("missing_file", "image file is required")
	}
	cfg := h.config.Current()

	contentType := file.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return shared.BadRequest("invalid_type", "File must be an image (JPG, PNG, GIF, WebP)")
	}
	if file.Size > cfg.ImageMaxSize {
		return shared.BadRequest("file_too_large",
			fmt.Sprintf("Image size must be less than %.0fMB", float64(cfg.ImageMaxSize)/(1<<20)))
	}

	path, cleanup, err := h.saveUpload(file, shared.SafeExtension(file.Filename, contentType, shared.MediaKindImage))
	if err != nil {
		h.logger.Error("failed to save upload", "error", err)
		return shared.InternalError("save_failed", "failed to save uploaded file")
	}
	defer cleanup()

	start := time.Now()
	art, err := h.converter.ImageToASCII(path, Options{
		Width:   cfg.ASCIIWidth,
		Palette: cfg.ASCIIChars,
	})
	if err != nil {
		h.logger.Warn("image conversion failed", "filename", file.Filename, "error", err)
		return c.JSON(http.StatusOK, dto.UploadResponse{
			Success:  false,
			Error:    "Invalid or corrupted image file",
			FileType: shared.MediaKindImage.String(),
		})
	}

	h.record(c, shared.MediaKindImage, file.Filename, cfg, 1, time.Since(start))

	return c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		ASCIIArt: art,
		Snippet:  ImageSnippet(art, cfg.BackgroundColor, cfg.TextColor),
		FileType: shared.MediaKindImage.String(),
	})
}

// @Summary      Conversion history
// @Description  Lists the most recent conversions, newest first
// @Tags         convert
// @Produce      json
// @Param        limit  query  int  false  "Max entries to return (default 20)"
// @Success      200  {object}  dto.ConversionListResponse
// @Router       /conversions [get]
func (h *Handler) ListConversions(c echo.Context) error {
	limit := 20
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	list, err := h.store.Recent(c.Request().Context(), limit)
	if err != nil {
		h.logger.Error("failed to list conversions", "error", err)
		return shared.InternalError("list_failed", "failed to list conversions")
	}

	resp := dto.ConversionListResponse{
		Conversions: make([]dto.ConversionResponse, len(list)),
	}
	for i, conv := range list {
		resp.Conversions[i] = dto.ConversionResponse{
			ID:         conv.ID,
			Kind:       conv.Kind.String(),
			Filename:   conv.Filename,
			Width:      conv.Width,
			FPS:        conv.FPS,
			FrameCount: conv.FrameCount,
			DurationMs: conv.DurationMs,
			CreatedAt:  conv.CreatedAt.Format(time.RFC3339),
		}
	}
	return c.JSON(http.StatusOK, resp)
}
