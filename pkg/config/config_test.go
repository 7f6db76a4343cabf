package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.App.LogLevel != "info" {
			t.Errorf("log level = %q, want %q", cfg.App.LogLevel, "info")
		}
		if cfg.JWT.AccessTokenTTL.String() != "15m0s" {
			t.Errorf("access TTL = %v, want 15m", cfg.JWT.AccessTokenTTL)
		}
		if cfg.JWT.RefreshTokenTTL.String() != "24h0m0s" {
			t.Errorf("refresh TTL = %v, want 24h", cfg.JWT.RefreshTokenTTL)
		}
	})

	t.Run("log level override", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.App.LogLevel != "debug" {
			t.Errorf("log level = %q, want %q", cfg.App.LogLevel, "debug")
		}
	})

	t.Run("missing secret rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		if _, err := Load(); err == nil {
			t.Error("Load() succeeded without JWT_SECRET")
		}
	})

	t.Run("refresh TTL shorter than access TTL rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_ACCESS_TOKEN_TTL", "1h")
		t.Setenv("JWT_REFRESH_TOKEN_TTL", "15m")

		if _, err := Load(); err == nil {
			t.Error("Load() accepted refresh TTL shorter than access TTL")
		}
	})
}
