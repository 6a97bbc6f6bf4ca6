package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAccessTTL  = "168h" // 7 days
	defaultRefreshTTL = "720h" // 30 days
	defaultResetTTL   = "1h"
	defaultPort       = "8080"
	defaultUploadsDir = "./uploads"
	defaultStaticBase = "/static/uploads"
	defaultCookiePath = "/api/v1/auth"
	defaultJWTSecret  = "change-me-jwt-secret"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration

	CookieSecure bool
	CookiePath   string

	UploadsDir string
	StaticBase string
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" || c.AppEnv == "prod" }

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "anycomp.db"
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	if cfg.IsProduction() && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}

	var err error
	if cfg.AccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultAccessTTL); err != nil {
		return nil, err
	}
	if cfg.RefreshTTL, err = parseDurationEnv("JWT_REFRESH_TTL", defaultRefreshTTL); err != nil {
		return nil, err
	}
	if cfg.ResetTTL, err = parseDurationEnv("PASSWORD_RESET_TTL", defaultResetTTL); err != nil {
		return nil, err
	}

	// Refresh cookie is secure in production regardless of the env flag.
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", "false") || cfg.IsProduction()
	cfg.CookiePath = getEnv("COOKIE_PATH", defaultCookiePath)

	cfg.UploadsDir = getEnv("UPLOADS_DIR", defaultUploadsDir)
	cfg.StaticBase = getEnv("STATIC_URL_BASE", defaultStaticBase)

	return cfg, nil
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(name, def string) (time.Duration, error) {
	raw := getEnv(name, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s=%q: %w", name, raw, err)
	}
	return d, nil
}

func parseBoolEnv(name, def string) bool {
	v, err := strconv.ParseBool(getEnv(name, def))
	if err != nil {
		return false
	}
	return v
}
