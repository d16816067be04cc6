// Package config handles configuration loading for the recipe service.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// MinSessionSecretLength is the minimum HMAC key size for session cookies.
const MinSessionSecretLength = 32

// CookieConfig holds attributes applied to the session cookie.
type CookieConfig struct {
	Domain   string
	Path     string
	Secure   bool
	SameSite http.SameSite
}

// Config holds all configuration for the recipe service.
type Config struct {
	DatabaseURL    string
	SessionSecret  string
	SessionMaxAge  time.Duration
	Cookie         CookieConfig
	AllowedOrigins []string
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	MigrateOnStart bool
	Port           string
	Environment    string
	LogLevel       slog.Level
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (*Config, error) {
	var missing []string
	required := func(key string) string {
		value := os.Getenv(key)
		if value == "" {
			missing = append(missing, key)
		}
		return value
	}

	maxAge, maxAgeErr := time.ParseDuration(GetEnv("SESSION_MAX_AGE", "168h"))
	sameSite, sameSiteErr := parseSameSite(GetEnv("COOKIE_SAMESITE", "lax"))

	cfg := &Config{
		DatabaseURL:   required("DATABASE_URL"),
		SessionSecret: required("SESSION_SECRET"),
		SessionMaxAge: maxAge,
		Cookie: CookieConfig{
			Domain:   GetEnv("COOKIE_DOMAIN", ""),
			Path:     GetEnv("COOKIE_PATH", "/"),
			Secure:   GetEnvBool("COOKIE_SECURE", false),
			SameSite: sameSite,
		},
		AllowedOrigins: splitList(GetEnv("ALLOWED_ORIGINS", "")),
		RedisHost:      GetEnv("REDIS_HOST", ""),
		RedisPort:      GetEnv("REDIS_PORT", "6379"),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		MigrateOnStart: GetEnvBool("MIGRATE_ON_START", true),
		Port:           GetEnv("PORT", "5555"),
		Environment:    GetEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLevel(GetEnv("LOG_LEVEL", "info")),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SESSION_SECRET must be at least %d bytes", MinSessionSecretLength)
	}
	if maxAgeErr != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX_AGE: %w", maxAgeErr)
	}
	if cfg.SessionMaxAge <= 0 {
		return nil, fmt.Errorf("SESSION_MAX_AGE must be positive, got %s", cfg.SessionMaxAge)
	}
	if sameSiteErr != nil {
		return nil, sameSiteErr
	}
	// Browsers drop SameSite=None cookies that are not Secure.
	if cfg.Cookie.SameSite == http.SameSiteNoneMode && !cfg.Cookie.Secure {
		return nil, errors.New("COOKIE_SAMESITE=none requires COOKIE_SECURE=true")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RedisEnabled reports whether session revocation through Redis is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return 0, fmt.Errorf("invalid COOKIE_SAMESITE %q: want lax, strict or none", value)
	}
}

func parseLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
