package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseai/gateway/internal/core/domain"
)

func sampleResult() domain.PredictionResult {
	return domain.PredictionResult{
		Level:           domain.LevelLow,
		Score:           20,
		Confidence:      0.9,
		Insights:        []string{"a"},
		Recommendations: []string{"b"},
		WellnessPlan: domain.WellnessPlan{
			Title:   "T",
			Summary: "S",
			Tasks:   []domain.WellnessTask{},
		},
	}
}

func TestKeyIsDeterministic(t *testing.T) {
	input := domain.AssessmentInput{Age: 30, Gender: "Male", SleepDuration: 7.5}
	assert.Equal(t, Key(input), Key(input))
}

func TestKeyDiffersPerInput(t *testing.T) {
	a := domain.AssessmentInput{Age: 30}
	b := domain.AssessmentInput{Age: 31}
	assert.NotEqual(t, Key(a), Key(b))
}

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	got, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got, "missing key must be a miss, not an error")

	require.NoError(t, m.Set(ctx, "k", sampleResult()))

	got, err = m.Get(ctx, "k")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.LevelLow, got.Level)
	assert.Equal(t, 20, got.Score)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	now := time.Unix(1700000000, 0)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "k", sampleResult()))

	now = now.Add(2 * time.Minute)
	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, got, "expired entries must be misses")
}

func TestMemoryPrunesExpiredOnSet(t *testing.T) {
	m := NewMemory(time.Minute)
	ctx := context.Background()

	now := time.Unix(1700000000, 0)
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set(ctx, "old", sampleResult()))
	now = now.Add(2 * time.Minute)
	require.NoError(t, m.Set(ctx, "new", sampleResult()))

	m.mu.RLock()
	_, oldPresent := m.entries["old"]
	m.mu.RUnlock()
	assert.False(t, oldPresent, "expired entries must be pruned on write")
}
