package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONTRARIAN_ADDR",
		"CONTRARIAN_REDIS_URL",
		"CONTRARIAN_TTL_HOURS",
		"CONTRARIAN_REQUEST_TIMEOUT",
		"CONTRARIAN_LOG_LEVEL",
		"CONTRARIAN_ENABLE_METRICS",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.RedisURL != "" {
		t.Errorf("RedisURL = %q, want empty", cfg.RedisURL)
	}
	if cfg.TTL != 24*time.Hour {
		t.Errorf("TTL = %v, want %v", cfg.TTL, 24*time.Hour)
	}
	if cfg.RequestTimeout != 29*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 29*time.Second)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.EnableMetrics {
		t.Error("EnableMetrics = true, want false")
	}
}

func TestLoad_CustomEnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTRARIAN_ADDR", ":9090")
	t.Setenv("CONTRARIAN_REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CONTRARIAN_TTL_HOURS", "48")
	t.Setenv("CONTRARIAN_REQUEST_TIMEOUT", "10")
	t.Setenv("CONTRARIAN_LOG_LEVEL", "debug")
	t.Setenv("CONTRARIAN_ENABLE_METRICS", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
	}
	if cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("RedisURL = %q, want %q", cfg.RedisURL, "redis://localhost:6379/0")
	}
	if cfg.TTL != 48*time.Hour {
		t.Errorf("TTL = %v, want %v", cfg.TTL, 48*time.Hour)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want %v", cfg.RequestTimeout, 10*time.Second)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if !cfg.EnableMetrics {
		t.Error("EnableMetrics = false, want true")
	}
}

func TestLoad_TTLTooLow(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTRARIAN_TTL_HOURS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when TTL hours < 1")
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTRARIAN_TTL_HOURS", "notanumber")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric CONTRARIAN_TTL_HOURS")
	}
}

func TestLoad_RequestTimeoutTooLow(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTRARIAN_REQUEST_TIMEOUT", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when request timeout < 1")
	}
}

func TestLoadDotEnv_SetsVarsFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	os.WriteFile(envFile, []byte("CONTRARIAN_ADDR=:7070\nCONTRARIAN_LOG_LEVEL=warn\n"), 0644)

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":7070")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestLoadDotEnv_EnvVarsTakePrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONTRARIAN_ADDR", ":6060")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	os.WriteFile(envFile, []byte("CONTRARIAN_ADDR=:7070\n"), 0644)

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":6060" {
		t.Errorf("Addr = %q, want %q (env var should take precedence)", cfg.Addr, ":6060")
	}
}

func TestLoadDotEnv_MissingFileIsNotError(t *testing.T) {
	if err := LoadDotEnv("/nonexistent/.env"); err != nil {
		t.Fatalf("missing .env file should not be an error, got: %v", err)
	}
}
