package bootstrap

import (
	"log/slog"

	"github.com/framegeist/framegeist/internal/config"
	"github.com/framegeist/framegeist/internal/convert"
	"github.com/framegeist/framegeist/internal/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func ProvideConversionStore(db *gorm.DB) *convert.Store {
	return convert.NewStore(db)
}

// ProvideSessionStore prefers redis so stream ids survive restarts and
// can be shared across replicas.
func ProvideSessionStore(redisClient *redis.Client, cfg *Config, logger *slog.Logger) session.Store {
	if redisClient == nil {
		logger.Warn("REDIS_ADDR not set, stream sessions are process-local")
		return session.NewMemoryStore(cfg.SessionTTL)
	}
	return session.NewRedisStore(redisClient, cfg.SessionTTL)
}

func ProvideSettingsStore(cfg *Config, logger *slog.Logger) *config.Store {
	return config.NewStore(cfg.ConfigFile, logger)
}

func RunMigrations(convStore *convert.Store) error {
	return convStore.Migrate()
}

var StoresModule = fx.Options(
	fx.Provide(
		ProvideConversionStore,
		ProvideSessionStore,
		ProvideSettingsStore,
	),
	fx.Invoke(RunMigrations),
)
