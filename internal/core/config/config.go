package config

import (
	"time"

	"github.com/pulseai/gateway/internal/cache"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Remote  RemoteConfig  `yaml:"remote"`
	Retry   RetryConfig   `yaml:"retry"`
	Health  HealthConfig  `yaml:"health"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the gateway's own HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// RemoteConfig points at the inference service. Durations are configured in
// milliseconds so plain integers work in both YAML and environment values.
type RemoteConfig struct {
	BaseURL   string `yaml:"base_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

func (c RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// RetryConfig shapes the backoff policy for prediction calls.
type RetryConfig struct {
	MaxAttempts int     `yaml:"max_attempts"`
	BaseDelayMS int     `yaml:"base_delay_ms"`
	MaxDelayMS  int     `yaml:"max_delay_ms"`
	Jitter      float64 `yaml:"jitter"`
}

func (c RetryConfig) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMS) * time.Millisecond
}

func (c RetryConfig) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelayMS) * time.Millisecond
}

// HealthConfig paces the health probe and the connectivity poll.
type HealthConfig struct {
	ProbeIntervalMS    int `yaml:"probe_interval_ms"`
	ConnectivityPollMS int `yaml:"connectivity_poll_ms"`
}

func (c HealthConfig) ProbeInterval() time.Duration {
	return time.Duration(c.ProbeIntervalMS) * time.Millisecond
}

func (c HealthConfig) ConnectivityPoll() time.Duration {
	return time.Duration(c.ConnectivityPollMS) * time.Millisecond
}

// CacheConfig selects and tunes the prediction response cache.
type CacheConfig struct {
	Backend string            `yaml:"backend"` // memory, redis, none
	TTLMS   int               `yaml:"ttl_ms"`
	Redis   cache.RedisConfig `yaml:"redis"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMS) * time.Millisecond
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
