package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	HTTPPort    string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
}

var defaultOrigins = []string{
	"https://frontend-github-io-pi.vercel.app",
	"http://127.0.0.1:5500",
}

// Load reads configuration from the environment (a local .env is picked up
// when present). DATABASE_URL and JWT_SECRET have no defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:         get("APP_ENV", "dev"),
		HTTPPort:    get("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(get("CORS_ORIGINS", strings.Join(defaultOrigins, ","))),
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
