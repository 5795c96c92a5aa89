package infra

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ── Storage circuit breaker ───────────────────────────────────────────────────
// Remote backends (redis, postgres) are wrapped so that a dead server makes
// writes fail immediately instead of every request waiting on a timeout.
//
//   - closed:    calls pass through
//   - open:      calls fail with ErrBackendUnavailable
//   - half-open: after the cool-down, calls are let through as probes

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

var ErrBackendUnavailable = errors.New("storage backend unavailable (circuit open)")

type BreakerConfig struct {
	FailureThreshold int           // consecutive failures that open the breaker
	SuccessThreshold int           // consecutive half-open successes that close it
	OpenTimeout      time.Duration // cool-down before probing
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{FailureThreshold: 5, SuccessThreshold: 2, OpenTimeout: 30 * time.Second}
}

type Breaker struct {
	name string
	cfg  BreakerConfig

	mu        sync.Mutex
	state     BreakerState
	failures  int
	successes int
	openedAt  time.Time
	now       func() time.Time
}

// NewBreaker returns a closed breaker. Zero config fields take the defaults.
func NewBreaker(name string, cfg BreakerConfig) *Breaker {
	def := DefaultBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = def.SuccessThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	return &Breaker{name: name, cfg: cfg, now: time.Now}
}

func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentLocked()
}

// Do runs fn unless the breaker is open.
func (b *Breaker) Do(fn func() error) error {
	if b.State() == BreakerOpen {
		return ErrBackendUnavailable
	}

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.failLocked()
		return err
	}
	b.succeedLocked()
	return nil
}

func (b *Breaker) currentLocked() BreakerState {
	if b.state == BreakerOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		b.state = BreakerHalfOpen
		b.successes = 0
	}
	return b.state
}

func (b *Breaker) failLocked() {
	b.failures++
	switch b.state {
	case BreakerClosed:
		if b.failures >= b.cfg.FailureThreshold {
			b.trip()
		}
	case BreakerHalfOpen:
		b.trip()
	}
}

func (b *Breaker) succeedLocked() {
	switch b.state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= b.cfg.SuccessThreshold {
			b.state = BreakerClosed
			b.failures = 0
			b.successes = 0
			log.Info().Str("backend", b.name).Msg("storage breaker closed")
		}
	}
}

func (b *Breaker) trip() {
	b.state = BreakerOpen
	b.openedAt = b.now()
	b.failures = 0
	b.successes = 0
	log.Warn().Str("backend", b.name).Dur("cool_down", b.cfg.OpenTimeout).Msg("storage breaker opened")
}

// BreakerKV guards every call to a remote KVStore with a Breaker.
// A missing key (ok=false) counts as success.
type BreakerKV struct {
	next    KVStore
	breaker *Breaker
}

func NewBreakerKV(next KVStore, breaker *Breaker) *BreakerKV {
	return &BreakerKV{next: next, breaker: breaker}
}

func (k *BreakerKV) Get(ctx context.Context, key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	err := k.breaker.Do(func() error {
		var err error
		value, ok, err = k.next.Get(ctx, key)
		return err
	})
	return value, ok, err
}

func (k *BreakerKV) Set(ctx context.Context, key, value string) error {
	return k.breaker.Do(func() error { return k.next.Set(ctx, key, value) })
}

func (k *BreakerKV) Ping(ctx context.Context) error {
	return k.breaker.Do(func() error { return k.next.Ping(ctx) })
}

func (k *BreakerKV) Close() error { return k.next.Close() }

func (k *BreakerKV) State() BreakerState { return k.breaker.State() }
