package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerAddress string
	LogLevel      string

	FFmpegPath string
	MediaDir   string
	ConfigFile string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DatabaseURL  string
	DatabasePath string

	SessionTTL      time.Duration
	StreamChunkSize int

	AllowedOrigins []string
}

func LoadConfig() *Config {
	return &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		FFmpegPath: getEnv("FFMPEG_PATH", "ffmpeg"),
		MediaDir:   getEnv("MEDIA_DIR", ""),
		ConfigFile: getEnv("CONFIG_FILE", "framegeist.json"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabasePath: getEnv("DATABASE_PATH", "framegeist.db"),

		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_SECONDS", 600)) * time.Second,
		StreamChunkSize: getEnvInt("STREAM_CHUNK_SIZE", 8192),

		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func parseOrigins(envValue string) []string {
	if envValue == "" {
		return devOrigins()
	}

	var origins []string
	for _, origin := range strings.Split(envValue, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	if len(origins) == 0 {
		return devOrigins()
	}

	return origins
}

// devOrigins covers the localhost ports frontend dev servers commonly
// bind when ALLOWED_ORIGINS is not set.
func devOrigins() []string {
	var origins []string
	for port := 3000; port <= 3005; port++ {
		origins = append(origins,
			fmt.Sprintf("http://localhost:%d", port),
			fmt.Sprintf("http://127.0.0.1:%d", port),
		)
	}
	return origins
}
