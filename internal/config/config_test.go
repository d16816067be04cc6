package config

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recipes")
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.Port != "5555" {
		t.Errorf("Port = %s, want 5555", cfg.Port)
	}
	if cfg.SessionMaxAge != 168*time.Hour {
		t.Errorf("SessionMaxAge = %v, want 168h", cfg.SessionMaxAge)
	}
	if cfg.Cookie.Path != "/" {
		t.Errorf("Cookie.Path = %s, want /", cfg.Cookie.Path)
	}
	if cfg.Cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("Cookie.SameSite = %v, want Lax", cfg.Cookie.SameSite)
	}
	if cfg.Cookie.Secure {
		t.Error("Cookie.Secure should default to false")
	}
	if !cfg.MigrateOnStart {
		t.Error("MigrateOnStart should default to true")
	}
	if cfg.RedisEnabled() {
		t.Error("RedisEnabled() should be false without REDIS_HOST")
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() should be false by default")
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v, want empty", cfg.AllowedOrigins)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recipes")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SESSION_MAX_AGE", "30m")
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SAMESITE", "Strict")
	t.Setenv("COOKIE_DOMAIN", ".example.com")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("MIGRATE_ON_START", "false")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}

	if cfg.SessionMaxAge != 30*time.Minute {
		t.Errorf("SessionMaxAge = %v, want 30m", cfg.SessionMaxAge)
	}
	if cfg.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() should be true")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !cfg.Cookie.Secure {
		t.Error("Cookie.Secure should be true")
	}
	if cfg.Cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("Cookie.SameSite = %v, want Strict", cfg.Cookie.SameSite)
	}
	if cfg.Cookie.Domain != ".example.com" {
		t.Errorf("Cookie.Domain = %s, want .example.com", cfg.Cookie.Domain)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if !cfg.RedisEnabled() || cfg.RedisPort != "6379" {
		t.Errorf("Redis = %s:%s, want redis:6379", cfg.RedisHost, cfg.RedisPort)
	}
	if cfg.MigrateOnStart {
		t.Error("MigrateOnStart should be false")
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := FromEnv()
	if err == nil {
		t.Fatal("FromEnv() should fail without required variables")
	}
	for _, key := range []string{"DATABASE_URL", "SESSION_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q should mention %s", err, key)
		}
	}
}

func TestFromEnv_ShortSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recipes")
	t.Setenv("SESSION_SECRET", "short")

	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() should reject a short session secret")
	}
}

func TestFromEnv_NonPositiveMaxAge(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/recipes")
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SESSION_MAX_AGE", "-1h")

	if _, err := FromEnv(); err == nil {
		t.Error("FromEnv() should reject a negative session max age")
	}
}

func TestFromEnv_MalformedMaxAge(t *testing.T) {
	for _, value := range []string{"7d", "one week", "168"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/recipes")
			t.Setenv("SESSION_SECRET", testSecret)
			t.Setenv("SESSION_MAX_AGE", value)

			_, err := FromEnv()
			if err == nil {
				t.Fatalf("FromEnv() should reject SESSION_MAX_AGE=%q", value)
			}
			if !strings.Contains(err.Error(), "invalid SESSION_MAX_AGE") {
				t.Errorf("error = %v, want invalid SESSION_MAX_AGE", err)
			}
		})
	}
}

func TestFromEnv_SameSite(t *testing.T) {
	tests := []struct {
		name     string
		sameSite string
		secure   string
		want     http.SameSite
		wantErr  string
	}{
		{name: "none over https", sameSite: "none", secure: "true", want: http.SameSiteNoneMode},
		{name: "none without secure", sameSite: "None", secure: "false", wantErr: "requires COOKIE_SECURE=true"},
		{name: "lax without secure", sameSite: "lax", secure: "false", want: http.SameSiteLaxMode},
		{name: "unknown mode", sameSite: "loose", secure: "true", wantErr: "invalid COOKIE_SAMESITE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "postgres://localhost/recipes")
			t.Setenv("SESSION_SECRET", testSecret)
			t.Setenv("COOKIE_SAMESITE", tt.sameSite)
			t.Setenv("COOKIE_SECURE", tt.secure)

			cfg, err := FromEnv()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("FromEnv() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromEnv() error = %v", err)
			}
			if cfg.Cookie.SameSite != tt.want {
				t.Errorf("Cookie.SameSite = %v, want %v", cfg.Cookie.SameSite, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG_ON", "1")
	t.Setenv("FLAG_BAD", "maybe")

	if !GetEnvBool("FLAG_ON", false) {
		t.Error("GetEnvBool(FLAG_ON) = false, want true")
	}
	if !GetEnvBool("FLAG_BAD", true) {
		t.Error("GetEnvBool(FLAG_BAD) should fall back to default")
	}
	if GetEnvBool("FLAG_UNSET_FOR_TEST", false) {
		t.Error("GetEnvBool(unset) should fall back to default")
	}
}
