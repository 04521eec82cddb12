package health

import (
	"context"
	"testing"
	"time"

	"github.com/pulseai/gateway/internal/core/domain"
)

// =============================================================================
// Fixtures
// =============================================================================

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type countingProbe struct {
	calls  int
	result bool
}

func (p *countingProbe) probe(ctx context.Context) bool {
	p.calls++
	return p.result
}

func newTestMonitor(probe Prober, interval time.Duration) (*Monitor, *fakeClock) {
	m := NewMonitor(probe, interval)
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	m.SetClock(clock.Now)
	return m, clock
}

// =============================================================================
// Tests
// =============================================================================

func TestMonitorStartsOptimistic(t *testing.T) {
	m, _ := newTestMonitor(nil, time.Minute)
	if !m.Healthy() {
		t.Error("a fresh monitor must believe the service healthy")
	}
}

func TestProbeIfDueGatesOnInterval(t *testing.T) {
	probe := &countingProbe{result: true}
	m, clock := newTestMonitor(probe.probe, time.Minute)

	// lastChecked is zero, so the first call probes.
	m.ProbeIfDue(context.Background())
	if probe.calls != 1 {
		t.Fatalf("probe calls = %d, want 1", probe.calls)
	}

	// Inside the interval: skipped, not blocked.
	m.ProbeIfDue(context.Background())
	m.ProbeIfDue(context.Background())
	if probe.calls != 1 {
		t.Errorf("probe calls = %d, want still 1 inside interval", probe.calls)
	}

	clock.Advance(61 * time.Second)
	m.ProbeIfDue(context.Background())
	if probe.calls != 2 {
		t.Errorf("probe calls = %d, want 2 after interval elapsed", probe.calls)
	}
}

func TestProbeOverwritesBelief(t *testing.T) {
	probe := &countingProbe{result: false}
	m, clock := newTestMonitor(probe.probe, time.Minute)

	m.ProbeIfDue(context.Background())
	if m.Healthy() {
		t.Error("failed probe must mark unhealthy")
	}

	probe.result = true
	clock.Advance(2 * time.Minute)
	m.ProbeIfDue(context.Background())
	if !m.Healthy() {
		t.Error("successful probe must mark healthy again")
	}
}

func TestRecordFailureByKind(t *testing.T) {
	tests := []struct {
		kind          domain.ErrorKind
		wantUnhealthy bool
	}{
		{domain.KindNetwork, true},
		{domain.KindTimeout, true},
		{domain.KindServer, true},
		{domain.KindValidation, false},
		{domain.KindUnknown, false},
	}

	for _, tt := range tests {
		m, _ := newTestMonitor(nil, time.Minute)
		m.RecordFailure(tt.kind)
		if m.Healthy() == tt.wantUnhealthy {
			t.Errorf("RecordFailure(%s): healthy = %v, want %v", tt.kind, m.Healthy(), !tt.wantUnhealthy)
		}
	}
}

func TestRecordSuccessRestoresBelief(t *testing.T) {
	m, _ := newTestMonitor(nil, time.Minute)
	m.RecordFailure(domain.KindNetwork)
	m.RecordSuccess()
	if !m.Healthy() {
		t.Error("completed successful call must mark healthy")
	}
}

func TestConnectivityTransitions(t *testing.T) {
	m, _ := newTestMonitor(nil, time.Minute)

	m.ConnectivityChanged(false)
	if m.Healthy() {
		t.Error("connectivity loss must mark unhealthy immediately")
	}

	m.ConnectivityChanged(true)
	if !m.Healthy() {
		t.Error("connectivity restoration must optimistically mark healthy")
	}
}

func TestProbeIfDueWithoutProbe(t *testing.T) {
	m, _ := newTestMonitor(nil, time.Minute)
	m.ProbeIfDue(context.Background()) // must not panic
	if !m.Healthy() {
		t.Error("belief must be untouched when no probe is configured")
	}
}
