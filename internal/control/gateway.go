// Package control assembles the gateway from configuration and manages its
// lifecycle.
package control

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseai/gateway/internal/cache"
	"github.com/pulseai/gateway/internal/core/config"
	"github.com/pulseai/gateway/internal/gateway"
	"github.com/pulseai/gateway/internal/prediction"
	"github.com/pulseai/gateway/internal/prediction/connectivity"
	"github.com/pulseai/gateway/internal/prediction/health"
	"github.com/pulseai/gateway/internal/prediction/retry"
	"github.com/pulseai/gateway/internal/prediction/transport"
)

// Gateway owns every long-lived component of the service.
type Gateway struct {
	server  *gateway.Server
	client  *prediction.Client
	checker *connectivity.Checker
	store   cache.Store

	errCh chan error
}

// NewGateway wires signal → monitor → transport → retry → cache → client →
// router from the loaded configuration.
func NewGateway(cfg *config.AppConfig) (*Gateway, error) {
	backend := transport.New(cfg.Remote.BaseURL, cfg.Remote.Timeout())
	monitor := health.NewMonitor(backend.CheckHealth, cfg.Health.ProbeInterval())

	checker, err := connectivity.NewChecker(cfg.Remote.BaseURL, cfg.Health.ConnectivityPoll())
	if err != nil {
		return nil, fmt.Errorf("build connectivity checker: %w", err)
	}

	store, err := buildCache(cfg.Cache)
	if err != nil {
		return nil, err
	}

	client := prediction.New(prediction.Options{
		Backend: backend,
		Monitor: monitor,
		Signal:  checker,
		Retry: retry.Config{
			MaxAttempts: cfg.Retry.MaxAttempts,
			BaseDelay:   cfg.Retry.BaseDelay(),
			MaxDelay:    cfg.Retry.MaxDelay(),
			Jitter:      cfg.Retry.Jitter,
		},
		Cache: store,
	})

	return &Gateway{
		server:  gateway.NewServer(client, cfg.Server.Port),
		client:  client,
		checker: checker,
		store:   store,
		errCh:   make(chan error, 1),
	}, nil
}

func buildCache(cfg config.CacheConfig) (cache.Store, error) {
	switch cfg.Backend {
	case "redis":
		store, err := cache.NewRedis(cfg.Redis, cfg.TTL())
		if err != nil {
			return nil, fmt.Errorf("build redis cache: %w", err)
		}
		return store, nil
	case "memory":
		return cache.NewMemory(cfg.TTL()), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// Start launches the connectivity poll and the HTTP server.
func (g *Gateway) Start(ctx context.Context) error {
	g.checker.Start()

	go func() {
		if err := g.server.Start(); err != nil {
			g.errCh <- err
		}
	}()

	slog.Info("Gateway started")
	return nil
}

// Err reports a fatal server error, if any.
func (g *Gateway) Err() <-chan error { return g.errCh }

// Stop shuts everything down gracefully.
func (g *Gateway) Stop(ctx context.Context) error {
	err := g.server.Stop(ctx)

	g.checker.Stop()
	g.client.Close()
	if g.store != nil {
		if cerr := g.store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	slog.Info("Gateway stopped")
	return err
}
