package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST", "STORE_DRIVER", "METADATA_PROVIDER",
		"RAPIDAPI_KEY", "RAPIDAPI_HOST", "UPSTREAM_TIMEOUT",
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_TIMEOUT",
		"TELEGRAM_BOT_TOKEN", "API_KEY", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
		"CORS_PROFILE", "CORS_ENABLED", "CORS_ALLOWED_ORIGINS", "CORS_ALLOW_CREDENTIALS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("Expected memory store, got %s", cfg.Store.Driver)
	}
	if cfg.Metadata.Provider != ProviderRapidAPI {
		t.Errorf("Expected rapidapi provider, got %s", cfg.Metadata.Provider)
	}
	if cfg.RapidAPI.Timeout != 30*time.Second {
		t.Errorf("Expected 30s upstream timeout, got %s", cfg.RapidAPI.Timeout)
	}
	if cfg.API.RateLimitRequests != 100 || cfg.API.RateLimitWindow != time.Minute {
		t.Errorf("Unexpected rate limit %d per %s", cfg.API.RateLimitRequests, cfg.API.RateLimitWindow)
	}
	if cfg.CORS.Profile != "custom" {
		t.Errorf("Expected custom CORS profile, got %s", cfg.CORS.Profile)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("METADATA_PROVIDER", "YouTube")
	t.Setenv("CORS_PROFILE", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Store.Driver != StoreMongo {
		t.Errorf("Expected mongo store, got %s", cfg.Store.Driver)
	}
	if cfg.MongoDB.Database != "clipgrab" {
		t.Errorf("Expected default mongo database, got %s", cfg.MongoDB.Database)
	}
	if cfg.Metadata.Provider != ProviderYouTube {
		t.Errorf("Expected youtube provider, got %s", cfg.Metadata.Provider)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://b.example" {
		t.Errorf("Unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.AllowCredentials {
		t.Error("Expected production profile to disallow credentials")
	}
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Store driver", key: "STORE_DRIVER", value: "sqlite"},
		{name: "Metadata provider", key: "METADATA_PROVIDER", value: "vimeo"},
		{name: "Upstream timeout", key: "UPSTREAM_TIMEOUT", value: "soon"},
		{name: "Rate limit window", key: "RATE_LIMIT_WINDOW", value: "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Errorf("Expected an error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestRapidAPIConfigured(t *testing.T) {
	testCases := []struct {
		key  string
		want bool
	}{
		{key: "", want: false},
		{key: RapidAPIKeyPlaceholder, want: false},
		{key: "abc123", want: true},
	}

	for _, tc := range testCases {
		if got := (RapidAPIConfig{Key: tc.key}).Configured(); got != tc.want {
			t.Errorf("Configured() with key %q = %v, want %v", tc.key, got, tc.want)
		}
	}
}
