package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	Port       string
	DBPath     string
	Timezone   string
	ConfirmTTL time.Duration
	UseHTTPS   bool
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	ttl := 30 * time.Second
	if v := os.Getenv("CONFIRM_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Second
		}
	}

	return &Config{
		Port:       get("PORT", "8080"),
		DBPath:     get("DB_PATH", "campops.db"),
		Timezone:   get("TIMEZONE", "America/Denver"),
		ConfirmTTL: ttl,
		UseHTTPS:   os.Getenv("USE_HTTPS") == "true",
	}
}
