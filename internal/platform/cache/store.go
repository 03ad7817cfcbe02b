package cache

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
	"golang.org/x/sync/singleflight"
)

// Store namespaces keys, encodes values with sonic and collapses concurrent
// loads of the same key. Backend failures degrade to a cache miss.
type Store struct {
	backend Backend
	ttl     time.Duration
	prefix  string
	flight  singleflight.Group
	logger  *logging.Logger
}

func NewStore(backend Backend, ttl time.Duration, prefix string, logger *logging.Logger) *Store {
	if backend == nil {
		backend = NewMemoryBackend()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		backend: backend,
		ttl:     ttl,
		prefix:  prefix,
		logger:  logger,
	}
}

func (s *Store) key(key string) string {
	return s.prefix + key
}

func (s *Store) Delete(ctx context.Context, keys ...string) {
	if s == nil || len(keys) == 0 {
		return
	}
	full := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		full = append(full, s.key(key))
	}
	if err := s.backend.Delete(ctx, full...); err != nil {
		s.logger.WarnContext(ctx, "cache delete failed", "keys", full, "error", err)
	}
}

func (s *Store) DeletePrefix(ctx context.Context, prefix string) {
	if s == nil || prefix == "" {
		return
	}
	if err := s.backend.DeletePrefix(ctx, s.key(prefix)); err != nil {
		s.logger.WarnContext(ctx, "cache delete prefix failed", "prefix", prefix, "error", err)
	}
}

// GetOrLoad returns the cached value for key or runs loader once across
// concurrent callers and caches its result. A nil store always calls loader.
func GetOrLoad[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	fullKey := s.key(key)
	if value, ok := lookup[T](ctx, s, fullKey); ok {
		return value, nil
	}

	out, err, _ := s.flight.Do(fullKey, func() (any, error) {
		if cached, ok := lookup[T](ctx, s, fullKey); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return zero, loadErr
		}
		raw, encErr := sonic.Marshal(loaded)
		if encErr != nil {
			s.logger.WarnContext(ctx, "cache encode failed", "key", fullKey, "error", encErr)
			return loaded, nil
		}
		if setErr := s.backend.Set(ctx, fullKey, raw, s.ttl); setErr != nil {
			s.logger.WarnContext(ctx, "cache set failed", "key", fullKey, "error", setErr)
		}
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected cached value type %T", out)
	}
	return value, nil
}

func lookup[T any](ctx context.Context, s *Store, fullKey string) (T, bool) {
	var out T
	raw, ok, err := s.backend.Get(ctx, fullKey)
	if err != nil {
		s.logger.WarnContext(ctx, "cache get failed", "key", fullKey, "error", err)
		return out, false
	}
	if !ok {
		return out, false
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		s.logger.WarnContext(ctx, "cache decode failed", "key", fullKey, "error", err)
		return out, false
	}
	return out, true
}
