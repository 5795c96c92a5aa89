package infra

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sobanhang/internal/config"

	"github.com/rs/zerolog/log"
)

// KVStore is the key-value port the persistence adapter writes through.
// Values are opaque strings; a missing key reads as ok=false with no error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

// OpenKVStore builds the backend selected by STORAGE_DRIVER.
func OpenKVStore(cfg *config.Config) (KVStore, error) {
	switch cfg.StorageDriver {
	case "memory":
		log.Warn().Msg("memory storage driver: state is lost on exit")
		return NewMemoryKV(), nil
	case "file", "":
		return NewFileKV(cfg.StoragePath)
	case "redis":
		rdb, err := NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		return NewBreakerKV(NewRedisKV(rdb, cfg.RedisKeyPrefix), NewBreaker("redis", breakerConfig(cfg))), nil
	case "postgres":
		db, err := NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return NewBreakerKV(NewGormKV(db), NewBreaker("postgres", breakerConfig(cfg))), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func breakerConfig(cfg *config.Config) BreakerConfig {
	return BreakerConfig{
		FailureThreshold: cfg.BreakerFailures,
		OpenTimeout:      time.Duration(cfg.BreakerOpenSeconds) * time.Second,
	}
}

// MemoryKV keeps values in a map. Used for demos and tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Ping(context.Context) error { return nil }

func (m *MemoryKV) Close() error { return nil }
