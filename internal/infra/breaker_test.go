package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDown = errors.New("dial tcp: connection refused")

// flakyKV fails while down is set and counts the calls that reach it.
type flakyKV struct {
	MemoryKV
	down  bool
	calls int
}

func (f *flakyKV) Set(ctx context.Context, key, value string) error {
	f.calls++
	if f.down {
		return errDown
	}
	return f.MemoryKV.Set(ctx, key, value)
}

func TestBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	clock := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	b := NewBreaker("redis", BreakerConfig{FailureThreshold: 3, SuccessThreshold: 2, OpenTimeout: time.Minute})
	b.now = func() time.Time { return clock }

	backend := &flakyKV{MemoryKV: MemoryKV{data: map[string]string{}}, down: true}
	kv := NewBreakerKV(backend, b)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, kv.Set(ctx, "k", "v"), errDown)
	}
	assert.Equal(t, BreakerOpen, kv.State())

	// Open: the backend is not called at all.
	assert.ErrorIs(t, kv.Set(ctx, "k", "v"), ErrBackendUnavailable)
	assert.Equal(t, 3, backend.calls)

	// After the cool-down a failing probe re-opens it.
	clock = clock.Add(time.Minute)
	assert.Equal(t, BreakerHalfOpen, kv.State())
	assert.ErrorIs(t, kv.Set(ctx, "k", "v"), errDown)
	assert.Equal(t, BreakerOpen, kv.State())

	// Backend back: two good probes close it.
	backend.down = false
	clock = clock.Add(time.Minute)
	require.NoError(t, kv.Set(ctx, "k", "v"))
	assert.Equal(t, BreakerHalfOpen, kv.State())
	require.NoError(t, kv.Set(ctx, "k", "v2"))
	assert.Equal(t, BreakerClosed, kv.State())

	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", v)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker("postgres", BreakerConfig{FailureThreshold: 2})
	fail := func() error { return errDown }
	ok := func() error { return nil }

	_ = b.Do(fail)
	require.NoError(t, b.Do(ok))
	_ = b.Do(fail)
	assert.Equal(t, BreakerClosed, b.State())
	_ = b.Do(fail)
	assert.Equal(t, BreakerOpen, b.State())
	assert.Equal(t, "open", b.State().String())
}
