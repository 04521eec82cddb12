// Package prediction is the resilient client the wellness app calls to turn
// lifestyle inputs into a stress assessment. It validates locally, gates on
// the health belief, calls the inference service with retries, and
// substitutes a complete fallback result whenever anything fails. Predict
// never returns an error: degraded mode is signaled by content only.
package prediction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pulseai/gateway/internal/cache"
	"github.com/pulseai/gateway/internal/core/domain"
	"github.com/pulseai/gateway/internal/prediction/connectivity"
	"github.com/pulseai/gateway/internal/prediction/fallback"
	"github.com/pulseai/gateway/internal/prediction/health"
	"github.com/pulseai/gateway/internal/prediction/metrics"
	"github.com/pulseai/gateway/internal/prediction/retry"
	"github.com/pulseai/gateway/internal/prediction/schema"
	"github.com/pulseai/gateway/internal/prediction/validate"
)

const predictPath = "/predict"

// Backend issues a single bounded request against the inference service.
// Satisfied by *transport.Client.
type Backend interface {
	Post(ctx context.Context, path string, payload any) ([]byte, error)
}

// Options wires a Client. Backend and Monitor are required; the rest
// default to safe null implementations.
type Options struct {
	Backend Backend
	Monitor *health.Monitor
	Signal  connectivity.Signal
	Retry   retry.Config
	Cache   cache.Store // optional
	Logger  *slog.Logger
}

// Client is the facade orchestrating the prediction pipeline.
type Client struct {
	backend Backend
	monitor *health.Monitor
	signal  connectivity.Signal
	retry   retry.Config
	cache   cache.Store
	log     *slog.Logger

	unsubscribe func()
}

// New builds a Client and subscribes it to connectivity transitions.
// Call Close to release the subscription.
func New(opts Options) *Client {
	if opts.Signal == nil {
		opts.Signal = connectivity.AlwaysOnline{}
	}
	if opts.Retry.MaxAttempts == 0 && opts.Retry.BaseDelay == 0 {
		opts.Retry = retry.DefaultConfig
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Client{
		backend: opts.Backend,
		monitor: opts.Monitor,
		signal:  opts.Signal,
		retry:   opts.Retry,
		cache:   opts.Cache,
		log:     opts.Logger,
	}
	c.unsubscribe = opts.Signal.OnChange(c.monitor.ConnectivityChanged)
	return c
}

// Close releases the connectivity subscription.
func (c *Client) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// Monitor exposes the health belief for the /healthz surface.
func (c *Client) Monitor() *health.Monitor { return c.monitor }

// Predict runs the full pipeline. It always returns a structurally valid
// result; callers never need a failure branch.
func (c *Client) Predict(ctx context.Context, input domain.AssessmentInput) domain.PredictionResult {
	start := time.Now()
	defer func() {
		metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	}()

	if c.signal.IsOffline() {
		c.log.Warn("Prediction skipped: host offline")
		return c.serveFallback("offline", fallback.Offline())
	}

	c.monitor.ProbeIfDue(ctx)
	c.publishHealth()

	if !c.monitor.Healthy() {
		c.log.Warn("Prediction skipped: service believed unhealthy")
		return c.serveFallback("service_unavailable", fallback.ServiceUnavailable())
	}

	if fieldErrors := validate.Validate(input); len(fieldErrors) > 0 {
		c.log.Info("Assessment rejected by local validation", "fields", len(fieldErrors))
		metrics.PredictionErrorsTotal.WithLabelValues(string(domain.KindValidation)).Inc()
		return c.serveFallback("validation", fallback.ValidationError(fieldErrors))
	}

	key := cache.Key(input)
	if cached := c.cachedResult(ctx, key); cached != nil {
		return *cached
	}

	wire := schema.ToWire(input)
	body, err := retry.Do(ctx, c.retry, func(ctx context.Context) ([]byte, error) {
		return c.backend.Post(ctx, predictPath, wire)
	})
	if err != nil {
		return c.handleCallFailure(err)
	}

	c.monitor.RecordSuccess()
	c.publishHealth()

	result, err := schema.FromWire(body)
	if err != nil {
		c.log.Error("Malformed prediction response", "error", err)
		metrics.PredictionErrorsTotal.WithLabelValues(string(domain.KindUnknown)).Inc()
		return c.serveFallback("malformed_response", fallback.Generic())
	}

	c.storeResult(ctx, key, result)
	metrics.PredictionsTotal.WithLabelValues("success").Inc()
	c.log.Debug("Prediction completed", "level", result.Level, "score", result.Score)
	return result
}

// handleCallFailure classifies the exhausted error, updates the health
// belief for transport-level kinds, and picks the matching fallback.
// Validation rejections never mark the service unhealthy.
func (c *Client) handleCallFailure(err error) domain.PredictionResult {
	kind := domain.KindOf(err)
	metrics.PredictionErrorsTotal.WithLabelValues(string(kind)).Inc()
	c.monitor.RecordFailure(kind)
	c.publishHealth()

	c.log.Warn("Prediction call failed", "kind", kind, "error", err)

	switch kind {
	case domain.KindNetwork, domain.KindTimeout:
		return c.serveFallback("network", fallback.NetworkError())
	case domain.KindServer:
		return c.serveFallback("server", fallback.ServerError())
	case domain.KindValidation:
		var perr *domain.PredictionError
		message := "The service rejected the submitted assessment."
		if errors.As(err, &perr) && perr.Message != "" {
			message = perr.Message
		}
		return c.serveFallback("validation", fallback.ValidationError(map[string]string{"request": message}))
	default:
		return c.serveFallback("unknown", fallback.Generic())
	}
}

func (c *Client) serveFallback(scenario string, result domain.PredictionResult) domain.PredictionResult {
	metrics.PredictionsTotal.WithLabelValues("fallback").Inc()
	metrics.FallbacksTotal.WithLabelValues(scenario).Inc()
	return result
}

func (c *Client) cachedResult(ctx context.Context, key string) *domain.PredictionResult {
	if c.cache == nil {
		return nil
	}
	cached, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Warn("Prediction cache lookup failed", "error", err)
		return nil
	}
	if cached == nil {
		metrics.CacheMissesTotal.Inc()
		return nil
	}
	metrics.CacheHitsTotal.Inc()
	metrics.PredictionsTotal.WithLabelValues("success").Inc()
	c.log.Debug("Prediction served from cache")
	return cached
}

func (c *Client) storeResult(ctx context.Context, key string, result domain.PredictionResult) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, result); err != nil {
		c.log.Warn("Prediction cache store failed", "error", err)
	}
}

func (c *Client) publishHealth() {
	if c.monitor.Healthy() {
		metrics.BackendHealthy.Set(1)
	} else {
		metrics.BackendHealthy.Set(0)
	}
}
