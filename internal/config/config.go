package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CORS    CORSConfig    `yaml:"cors"`
	Hermes  HermesConfig  `yaml:"hermes"`
	Catalog CatalogConfig `yaml:"catalog"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port"`
	MetricsPort        int    `yaml:"metrics_port"`
	StaticDir          string `yaml:"static_dir"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
	RequestTimeoutMs   int    `yaml:"request_timeout_ms"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// HermesConfig points at the NATS server events are published to. An empty URL
// disables publishing.
type HermesConfig struct {
	URL string `yaml:"url"`
}

// CatalogConfig selects the reference data file. An empty path uses the
// embedded catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

type ScoringConfig struct {
	Weights ScoringWeights `yaml:"weights"`
}

type ScoringWeights struct {
	Academic     float64 `yaml:"academic"`
	RIASEC       float64 `yaml:"riasec"`
	Aspiration   float64 `yaml:"aspiration"`
	Availability float64 `yaml:"availability"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8600,
			MetricsPort:        8601,
			RateLimitPerMinute: 120,
			RequestTimeoutMs:   30000,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Academic:     0.40,
				RIASEC:       0.30,
				Aspiration:   0.20,
				Availability: 0.10,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PEMINATAN_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PEMINATAN_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PEMINATAN_STATIC_DIR"); v != "" {
		cfg.Server.StaticDir = v
	}
	if v := os.Getenv("PEMINATAN_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("PEMINATAN_REQUEST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RequestTimeoutMs = n
		}
	}
	if v := os.Getenv("PEMINATAN_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.AllowedOrigins = origins
	}
	if v, ok := os.LookupEnv("PEMINATAN_HERMES_URL"); ok {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("PEMINATAN_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("PEMINATAN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PEMINATAN_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
