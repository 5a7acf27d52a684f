package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var envVars = []string{
	"PEMINATAN_PORT", "PEMINATAN_METRICS_PORT", "PEMINATAN_STATIC_DIR",
	"PEMINATAN_RATE_LIMIT", "PEMINATAN_REQUEST_TIMEOUT_MS", "PEMINATAN_CORS_ORIGINS",
	"PEMINATAN_HERMES_URL", "PEMINATAN_CATALOG_PATH", "PEMINATAN_LOG_LEVEL",
	"PEMINATAN_LOG_FORMAT",
}

func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8600 {
		t.Errorf("expected port 8600, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8601 {
		t.Errorf("expected metrics port 8601, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.StaticDir != "" {
		t.Errorf("expected no static dir, got %s", cfg.Server.StaticDir)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("expected CORS origins [*], got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Hermes.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Hermes.URL)
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("expected embedded catalog, got %s", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	sw := cfg.Scoring.Weights
	expectedWeights := map[string]float64{
		"academic": 0.40, "riasec": 0.30, "aspiration": 0.20, "availability": 0.10,
	}
	actualWeights := map[string]float64{
		"academic": sw.Academic, "riasec": sw.RIASEC, "aspiration": sw.Aspiration, "availability": sw.Availability,
	}
	var weightSum float64
	for name, expected := range expectedWeights {
		actual := actualWeights[name]
		if math.Abs(actual-expected) > 0.001 {
			t.Errorf("scoring weight %s: expected %f, got %f", name, expected, actual)
		}
		weightSum += actual
	}
	if math.Abs(weightSum-1.0) > 0.001 {
		t.Errorf("scoring weights sum to %f, expected 1.0", weightSum)
	}

	if cfg.RequestTimeout() != 30*time.Second {
		t.Errorf("expected RequestTimeout 30s, got %v", cfg.RequestTimeout())
	}
}

func TestLoadFromFile(t *testing.T) {
	unsetEnv(t)

	path := filepath.Join(t.TempDir(), "peminatan.yaml")
	data := []byte(`
server:
  port: 7000
  static_dir: ./frontend
scoring:
  weights:
    academic: 0.25
    riasec: 0.25
    aspiration: 0.25
    availability: 0.25
logging:
  format: text
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8601 {
		t.Errorf("expected default metrics port to survive, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.StaticDir != "./frontend" {
		t.Errorf("expected static dir, got %s", cfg.Server.StaticDir)
	}
	if cfg.Scoring.Weights.Academic != 0.25 {
		t.Errorf("expected academic 0.25, got %f", cfg.Scoring.Weights.Academic)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected text format, got %s", cfg.Logging.Format)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PEMINATAN_PORT", "9000")
	t.Setenv("PEMINATAN_METRICS_PORT", "9001")
	t.Setenv("PEMINATAN_STATIC_DIR", "/srv/www")
	t.Setenv("PEMINATAN_RATE_LIMIT", "30")
	t.Setenv("PEMINATAN_REQUEST_TIMEOUT_MS", "5000")
	t.Setenv("PEMINATAN_CORS_ORIGINS", "https://bk.sekolah.id, http://localhost:3000")
	t.Setenv("PEMINATAN_HERMES_URL", "")
	t.Setenv("PEMINATAN_CATALOG_PATH", "/etc/peminatan/catalog.yaml")
	t.Setenv("PEMINATAN_LOG_LEVEL", "debug")
	t.Setenv("PEMINATAN_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.StaticDir != "/srv/www" {
		t.Errorf("expected static dir, got '%s'", cfg.Server.StaticDir)
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.RequestTimeout())
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://localhost:3000" {
		t.Errorf("expected two CORS origins, got %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Hermes.URL != "" {
		t.Errorf("expected hermes disabled, got '%s'", cfg.Hermes.URL)
	}
	if cfg.Catalog.Path != "/etc/peminatan/catalog.yaml" {
		t.Errorf("expected catalog path, got '%s'", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format 'text', got '%s'", cfg.Logging.Format)
	}
}
