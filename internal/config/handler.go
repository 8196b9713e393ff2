package config

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/framegeist/framegeist/internal/dto"
	"github.com/framegeist/framegeist/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store  *Store
	logger *slog.Logger
}

func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Get)
	g.POST("", h.Update)
	g.POST("/reset", h.Reset)
}

func toPayload(c Config) *dto.ConfigPayload {
	return &dto.ConfigPayload{
		ImageMaxSize:    c.ImageMaxSize,
		VideoMaxSize:    c.VideoMaxSize,
		ASCIIWidth:      c.ASCIIWidth,
		DefaultFPS:      c.DefaultFPS,
		ASCIIChars:      c.ASCIIChars,
		BackgroundColor: c.BackgroundColor,
		TextColor:       c.TextColor,
	}
}

// @Summary      Get current settings
// @Description  Returns the active conversion settings
// @Tags         config
// @Produce      json
// @Success      200  {object}  dto.ConfigResponse
// @Router       /config [get]
func (h *Handler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.ConfigResponse{
		Success: true,
		Config:  toPayload(h.store.Current()),
	})
}

// @Summary      Update settings
// @Description  Applies a partial update. Validation failures are reported in-band with success=false and leave the settings unchanged.
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ConfigUpdateRequest  true  "Fields to change"
// @Success      200  {object}  dto.ConfigResponse
// @Failure      400  {object}  shared.APIError
// @Router       /config [post]
func (h *Handler) Update(c echo.Context) error {
	var req dto.ConfigUpdateRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_body", "invalid request body")
	}

	cfg, err := h.store.Update(Patch{
		ImageMaxSize:    req.ImageMaxSize,
		VideoMaxSize:    req.VideoMaxSize,
		ASCIIWidth:      req.ASCIIWidth,
		DefaultFPS:      req.DefaultFPS,
		ASCIIChars:      req.ASCIIChars,
		BackgroundColor: req.BackgroundColor,
		TextColor:       req.TextColor,
	})
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusOK, dto.ConfigResponse{
				Success: false,
				Message: verr.Error(),
			})
		}
		h.logger.Error("failed to persist config", "error", err)
		return shared.InternalError("config_save_failed", "failed to save configuration")
	}

	return c.JSON(http.StatusOK, dto.ConfigResponse{
		Success: true,
		Config:  toPayload(cfg),
		Message: "Configuration updated",
	})
}

// @Summary      Reset settings
// @Description  Restores the default conversion settings
// @Tags         config
// @Produce      json
// @Success      200  {object}  dto.ConfigResponse
// @Router       /config/reset [post]
func (h *Handler) Reset(c echo.Context) error {
	cfg, err := h.store.Reset()
	if err != nil {
		h.logger.Error("failed to reset config", "error", err)
		return shared.InternalError("config_reset_failed", "failed to reset configuration")
	}

	return c.JSON(http.StatusOK, dto.ConfigResponse{
		Success: true,
		Config:  toPayload(cfg),
		Message: "Configuration reset to defaults",
	})
}
