package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/fantasy-points/internal/platform/logging"
	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
)

// Loader is the read-through contract shared by Store and RedisStore.
type Loader[V any] interface {
	GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error)
}

var (
	_ Loader[int] = (*Store[int])(nil)
	_ Loader[int] = (*RedisStore[int])(nil)
)

// RedisStore keeps sonic-encoded values in redis so several API replicas share
// one warm cache. Redis failures fall back to the loader.
type RedisStore[V any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	flight resilience.SingleFlight[V]
	logger *logging.Logger
}

func NewRedisStore[V any](client *redis.Client, prefix string, ttl time.Duration, logger *logging.Logger) *RedisStore[V] {
	if logger == nil {
		logger = logging.Default()
	}
	return &RedisStore[V]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.Named("redis-cache"),
	}
}

func (s *RedisStore[V]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (V, error)) (V, error) {
	var zero V
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	fullKey := s.prefix + key
	value, err, _ := s.flight.Do(fullKey, func() (V, error) {
		if cached, ok := s.get(ctx, fullKey); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return zero, loadErr
		}
		s.set(ctx, fullKey, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	return value, nil
}

func (s *RedisStore[V]) get(ctx context.Context, key string) (V, bool) {
	var out V
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WarnContext(ctx, "redis get failed", "key", key, "error", err)
		}
		return out, false
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		s.logger.WarnContext(ctx, "redis value undecodable", "key", key, "error", err)
		return out, false
	}
	return out, true
}

func (s *RedisStore[V]) set(ctx context.Context, key string, value V) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "encode cache value", "key", key, "error", err)
		return
	}
	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "redis set failed", "key", key, "error", err)
	}
}
