// Package health tracks a best-effort belief about whether the inference
// service is reachable. It is deliberately not a strict circuit breaker:
// the belief is updated opportunistically on every completed call, on
// connectivity signals, and by a probe run at most once per interval.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pulseai/gateway/internal/core/domain"
)

// DefaultProbeInterval gates how often the dedicated probe may run.
const DefaultProbeInterval = 60 * time.Second

// Prober asks the remote service whether it is up.
type Prober func(ctx context.Context) bool

// Monitor holds the health belief for one inference service. The
// gate-then-probe-then-write sequence is intentionally not atomic across
// callers: a duplicated probe inside one interval is a bounded inefficiency,
// and idempotent writes keep the race benign.
type Monitor struct {
	probe    Prober
	interval time.Duration
	now      func() time.Time // injectable for tests

	mu          sync.RWMutex
	healthy     bool
	lastChecked time.Time
}

// NewMonitor starts with an optimistic healthy belief and a zero lastChecked
// so the first ProbeIfDue actually probes.
func NewMonitor(probe Prober, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Monitor{
		probe:    probe,
		interval: interval,
		now:      time.Now,
		healthy:  true,
	}
}

// Healthy returns the current belief.
func (m *Monitor) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy
}

// LastChecked returns when the belief was last refreshed by a probe.
func (m *Monitor) LastChecked() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastChecked
}

// ProbeIfDue runs the probe when the interval has elapsed and overwrites the
// belief with its result. Redundant calls inside the interval are skipped,
// never blocked.
func (m *Monitor) ProbeIfDue(ctx context.Context) {
	m.mu.RLock()
	due := m.now().Sub(m.lastChecked) >= m.interval
	m.mu.RUnlock()
	if !due || m.probe == nil {
		return
	}

	up := m.probe(ctx)

	m.mu.Lock()
	m.healthy = up
	m.lastChecked = m.now()
	m.mu.Unlock()

	slog.Debug("Health probe completed", "healthy", up)
}

// RecordSuccess marks the service healthy after a completed call.
func (m *Monitor) RecordSuccess() {
	m.set(true)
}

// RecordFailure marks the service unhealthy for transport-level failures.
// Validation rejections say nothing about reachability and are ignored.
func (m *Monitor) RecordFailure(kind domain.ErrorKind) {
	switch kind {
	case domain.KindNetwork, domain.KindTimeout, domain.KindServer:
		m.set(false)
	}
}

// ConnectivityChanged reacts to host online/offline transitions. Going
// offline is definitive; coming back online is an optimistic belief that the
// next call or probe will verify.
func (m *Monitor) ConnectivityChanged(online bool) {
	m.set(online)
	slog.Debug("Connectivity changed", "online", online)
}

func (m *Monitor) set(healthy bool) {
	m.mu.Lock()
	m.healthy = healthy
	m.mu.Unlock()
}

// SetClock replaces the time source. Tests use it to drive the probe gate.
func (m *Monitor) SetClock(now func() time.Time) {
	m.now = now
}
