package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// Remote bookstore API the storefront talks to.
	APIBaseURL string

	// Cart snapshot storage backend: "file", "redis" or "sqlite".
	CartStorage  string
	SnapshotPath string
	SessionPath  string
	SQLitePath   string
	RedisAddr    string

	POSSellerID string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:       getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		APIBaseURL:   getEnv("API_BASE_URL", "http://localhost:9090/api"),
		CartStorage:  getEnv("CART_STORAGE", "file"),
		SnapshotPath: getEnv("CART_SNAPSHOT_PATH", "storefront_cart.json"),
		SessionPath:  getEnv("AUTH_SESSION_PATH", "storefront_session.json"),
		SQLitePath:   getEnv("CART_SQLITE_PATH", "storefront.db"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		POSSellerID:  getEnv("POS_SELLER_ID", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
