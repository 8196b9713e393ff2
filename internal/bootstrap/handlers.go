package bootstrap

import (
	"log/slog"
	"os"

	"github.com/framegeist/framegeist/internal/config"
	"github.com/framegeist/framegeist/internal/convert"
	"github.com/framegeist/framegeist/internal/session"
	"github.com/framegeist/framegeist/internal/stream"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/fx"
)

type HandlerParams struct {
	fx.In

	ConvertHandler *convert.Handler
	StreamHandler  *stream.Handler
	ConfigHandler  *config.Handler
}

func RegisterRoutes(e *echo.Echo, params HandlerParams) {
	api := e.Group("")

	params.ConvertHandler.RegisterRoutes(api)
	params.StreamHandler.RegisterRoutes(api)
	params.ConfigHandler.RegisterRoutes(e.Group("/config"))

	e.GET("/swagger/*", echoSwagger.EchoWrapHandlerV3())
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ProvideLogger(cfg *Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
}

func ProvideConverter(cfg *Config, logger *slog.Logger) *convert.Converter {
	return convert.NewConverter(cfg.FFmpegPath, logger)
}

func ProvideConvertHandler(converter *convert.Converter, store *convert.Store, settings *config.Store, logger *slog.Logger) *convert.Handler {
	return convert.NewHandler(converter, store, settings, logger.With("handler", "convert"))
}

func ProvidePipeline(cfg *Config, logger *slog.Logger) *stream.Pipeline {
	return stream.NewPipeline(cfg.FFmpegPath, cfg.StreamChunkSize, logger)
}

func ProvideStreamHandler(pipeline *stream.Pipeline, sessions session.Store, settings *config.Store, cfg *Config, logger *slog.Logger) (*stream.Handler, error) {
	if cfg.MediaDir != "" {
		if err := os.MkdirAll(cfg.MediaDir, 0o755); err != nil {
			return nil, err
		}
	}
	return stream.NewHandler(pipeline, sessions, settings, cfg.MediaDir, logger.With("handler", "stream")), nil
}

func ProvideConfigHandler(settings *config.Store, logger *slog.Logger) *config.Handler {
	return config.NewHandler(settings, logger.With("handler", "config"))
}

var HandlersModule = fx.Options(
	fx.Provide(
		ProvideLogger,
		ProvideConverter,
		ProvideConvertHandler,
		ProvidePipeline,
		ProvideStreamHandler,
		ProvideConfigHandler,
	),
	fx.Invoke(RegisterRoutes),
)
