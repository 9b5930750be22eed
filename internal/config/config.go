package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env            string
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SessionSecret  string
	SessionTTL     time.Duration
	CookieSecure   bool
	UploadDir      string
	PageSize       int
	LoginRateLimit float64
	SwaggerHost    string
	ResetDB        bool
}

// Load builds Config from environment with sensible defaults. A .env file in the
// working directory is read first when present; real environment variables win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:            getEnv("ENV", "development"),
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		MySQLDSN:       getEnv("MYSQL_DSN", "hawker:hawker@tcp(localhost:3306)/hawker_hero?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		SessionSecret:  getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		CookieSecure:   getEnvBool("COOKIE_SECURE", false),
		UploadDir:      getEnv("UPLOAD_DIR", "public/images"),
		PageSize:       getEnvInt("PAGE_SIZE", 12),
		LoginRateLimit: getEnvFloat("LOGIN_RATE_LIMIT", 5),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
		ResetDB:        getEnvBool("RESET_DB", false),
	}
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
