package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Remote.BaseURL != "http://localhost:8000" {
		t.Errorf("base URL = %q", cfg.Remote.BaseURL)
	}
	if cfg.Remote.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Remote.Timeout())
	}
	if cfg.Retry.MaxAttempts != 3 || cfg.Retry.BaseDelay() != time.Second {
		t.Errorf("retry = %+v", cfg.Retry)
	}
	if cfg.Health.ProbeInterval() != time.Minute {
		t.Errorf("probe interval = %v", cfg.Health.ProbeInterval())
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
}

func TestLoadReadsYAMLAndExpandsEnv(t *testing.T) {
	t.Setenv("TEST_PREDICTION_URL", "http://ml.internal:9000")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9999
remote:
  base_url: ${TEST_PREDICTION_URL}
  timeout_ms: 2500
retry:
  max_attempts: 5
cache:
  backend: none
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Remote.BaseURL != "http://ml.internal:9000" {
		t.Errorf("base URL = %q, env not expanded", cfg.Remote.BaseURL)
	}
	if cfg.Remote.Timeout() != 2500*time.Millisecond {
		t.Errorf("timeout = %v", cfg.Remote.Timeout())
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("max attempts = %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("cache backend = %q", cfg.Cache.Backend)
	}

	// Unset values still fall back to defaults.
	if cfg.Retry.BaseDelay() != time.Second {
		t.Errorf("base delay = %v", cfg.Retry.BaseDelay())
	}
}

func TestLoadEnvironmentFallbacks(t *testing.T) {
	t.Setenv("PREDICTION_SERVICE_URL", "http://env.example:8000")
	t.Setenv("PREDICTION_RETRY_COUNT", "7")
	t.Setenv("PREDICTION_TIMEOUT_MS", "1234")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Remote.BaseURL != "http://env.example:8000" {
		t.Errorf("base URL = %q", cfg.Remote.BaseURL)
	}
	if cfg.Retry.MaxAttempts != 7 {
		t.Errorf("max attempts = %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Remote.Timeout() != 1234*time.Millisecond {
		t.Errorf("timeout = %v", cfg.Remote.Timeout())
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
