package statecodec

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/errors/v5"
	"github.com/redis/go-redis/v9"
)

const replayKeyPrefix = "authstate:tx:"

var _ ReplayStore = &RedisReplayStore{}

// RedisReplayStore keeps consumed transaction ids in redis, shared across
// backend replicas.
type RedisReplayStore struct {
	rdb *redis.Client
}

// NewRedisReplayStore creates a redis-backed ReplayStore.
func NewRedisReplayStore(rdb *redis.Client) *RedisReplayStore {
	return &RedisReplayStore{rdb: rdb}
}

// Consume claims id with SETNX so exactly one caller across all replicas
// observes first use.
func (s *RedisReplayStore) Consume(ctx context.Context, id string, ttl time.Duration) (bool, error) {
	first, err := s.rdb.SetNX(ctx, replayKeyPrefix+id, "1", ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "redis.Client.SetNX()")
	}

	return first, nil
}

var _ ReplayStore = &MemoryReplayStore{}

// MemoryReplayStore is a single-process ReplayStore for development and tests.
type MemoryReplayStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
}

// NewMemoryReplayStore creates an in-memory ReplayStore.
func NewMemoryReplayStore() *MemoryReplayStore {
	return &MemoryReplayStore{seen: make(map[string]time.Time)}
}

// Consume marks id as used, pruning expired entries on the way through.
func (s *MemoryReplayStore) Consume(_ context.Context, id string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, exp := range s.seen {
		if now.After(exp) {
			delete(s.seen, k)
		}
	}

	if _, ok := s.seen[id]; ok {
		return false, nil
	}
	s.seen[id] = now.Add(ttl)

	return true, nil
}
