package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file and fills gaps from environment
// variables and defaults. An empty path (or a missing file when the path is
// the default) yields a purely environment-sourced configuration, which is
// how container deployments run.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			// Expand environment variables in the YAML content
			expanded := os.ExpandEnv(string(data))
			if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		case os.IsNotExist(err):
			// Fall through to env/defaults only.
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = envInt("PORT", 8080)
	}

	if cfg.Remote.BaseURL == "" {
		cfg.Remote.BaseURL = envOrDefault("PREDICTION_SERVICE_URL", "http://localhost:8000")
	}
	if cfg.Remote.TimeoutMS == 0 {
		cfg.Remote.TimeoutMS = envInt("PREDICTION_TIMEOUT_MS", 10000)
	}

	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry.MaxAttempts = envInt("PREDICTION_RETRY_COUNT", 3)
	}
	if cfg.Retry.BaseDelayMS == 0 {
		cfg.Retry.BaseDelayMS = envInt("PREDICTION_RETRY_BASE_DELAY_MS", 1000)
	}
	if cfg.Retry.MaxDelayMS == 0 {
		cfg.Retry.MaxDelayMS = 30000
	}
	if cfg.Retry.Jitter == 0 {
		cfg.Retry.Jitter = 0.1
	}

	if cfg.Health.ProbeIntervalMS == 0 {
		cfg.Health.ProbeIntervalMS = envInt("PREDICTION_HEALTH_INTERVAL_MS", 60000)
	}
	if cfg.Health.ConnectivityPollMS == 0 {
		cfg.Health.ConnectivityPollMS = 15000
	}

	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = envOrDefault("PREDICTION_CACHE_BACKEND", "memory")
	}
	if cfg.Cache.TTLMS == 0 {
		cfg.Cache.TTLMS = 300000
	}
	if cfg.Cache.Redis.URL == "" {
		cfg.Cache.Redis.URL = os.Getenv("REDIS_URL")
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = envOrDefault("LOG_LEVEL", "info")
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
