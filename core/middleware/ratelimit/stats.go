package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Counters holds allowed and denied request totals.
type Counters struct {
	Allowed int64 `json:"allowed"`
	Denied  int64 `json:"denied"`
}

// Stats records limiter decisions. Counters are global so their number stays
// fixed no matter how many distinct paths are requested.
type Stats interface {
	Record(ctx context.Context, allowed bool) error
	Totals(ctx context.Context) (Counters, error)
}

// MemoryStats counts decisions in process memory.
type MemoryStats struct {
	mu    sync.Mutex
	total Counters
}

func NewMemoryStats() *MemoryStats {
	return &MemoryStats{}
}

func (s *MemoryStats) Record(_ context.Context, allowed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if allowed {
		s.total.Allowed++
	} else {
		s.total.Denied++
	}
	return nil
}

func (s *MemoryStats) Totals(_ context.Context) (Counters, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total, nil
}

// RedisStats keeps counters in one Redis hash so every replica reports the same totals.
//
//	<prefix>:total  allowed|denied
type RedisStats struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisStats(rdb redis.Cmdable, prefix string) *RedisStats {
	prefix = strings.Trim(prefix, ":")
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStats{rdb: rdb, prefix: prefix}
}

// NewRedisClient builds a go-redis client from the limiter configuration.
func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func (s *RedisStats) totalKey() string { return s.prefix + ":total" }

func (s *RedisStats) Record(ctx context.Context, allowed bool) error {
	if err := s.rdb.HIncrBy(ctx, s.totalKey(), fieldFor(allowed), 1).Err(); err != nil {
		return fmt.Errorf("failed to record rate limit stats: %w", err)
	}
	return nil
}

func (s *RedisStats) Totals(ctx context.Context) (Counters, error) {
	vals, err := s.rdb.HGetAll(ctx, s.totalKey()).Result()
	if err != nil {
		return Counters{}, fmt.Errorf("failed to read rate limit stats: %w", err)
	}
	var c Counters
	fmt.Sscan(vals["allowed"], &c.Allowed)
	fmt.Sscan(vals["denied"], &c.Denied)
	return c, nil
}

func fieldFor(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}
