// Package cache stores generated learning plans keyed by user, role, duration and skill set.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/career-engine/internal/skills"
	"github.com/jonathan/career-engine/internal/types"
)

// DefaultTTL controls how long plans stay cached when no TTL is configured.
const DefaultTTL = time.Hour

// PlanKey builds a deterministic cache key. Skill order and spelling do not affect the key.
func PlanKey(userID, roleID string, durationDays int, skillSet []string) string {
	keys := skills.Normalize(skillSet)
	sort.Strings(keys)
	joined := strings.Join([]string{userID, roleID, strconv.Itoa(durationDays), strings.Join(keys, ",")}, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("career:plan:%x", hash[:12])
}

// RedisPlanCache keeps plans in Redis as JSON.
type RedisPlanCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisPlanCache connects to redisURL and verifies the connection.
func NewRedisPlanCache(ctx context.Context, redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisPlanCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis unreachable: %w", err)
	}
	logger.Info("cache: redis connected", slog.String("addr", opts.Addr), slog.Duration("ttl", ttl))

	return &RedisPlanCache{rdb: rdb, ttl: ttl, logger: logger}, nil
}

// Get returns the cached plan, or nil on a miss.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (*types.LearningPlan, error) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("cache: miss", slog.String("key", key))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read plan cache: %w", err)
	}

	var plan types.LearningPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		// corrupt entry: drop it and report a miss
		c.rdb.Del(ctx, key)
		return nil, nil
	}
	c.logger.Debug("cache: hit", slog.String("key", key))
	return &plan, nil
}

// Set stores plan under key with the cache TTL.
func (c *RedisPlanCache) Set(ctx context.Context, key string, plan *types.LearningPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write plan cache: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *RedisPlanCache) Close() error {
	return c.rdb.Close()
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryPlanCache is an in-process cache with the same semantics as RedisPlanCache.
type MemoryPlanCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryPlanCache returns an empty cache. A nil now uses time.Now.
func NewMemoryPlanCache(ttl time.Duration, now func() time.Time) *MemoryPlanCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryPlanCache{entries: make(map[string]entry), ttl: ttl, now: now}
}

func (c *MemoryPlanCache) Get(_ context.Context, key string) (*types.LearningPlan, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var plan types.LearningPlan
	if err := json.Unmarshal(e.data, &plan); err != nil {
		return nil, nil
	}
	return &plan, nil
}

func (c *MemoryPlanCache) Set(_ context.Context, key string, plan *types.LearningPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}
	c.mu.Lock()
	c.entries[key] = entry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *MemoryPlanCache) Close() error { return nil }
