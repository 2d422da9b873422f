package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyGridPrefix = "week:grid:"

// GridCache caches assembled week grids in Redis, one key per week.
type GridCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewGridCache returns a new GridCache.
func NewGridCache(rdb *redis.Client, ttl time.Duration) *GridCache {
	return &GridCache{rdb: rdb, ttl: ttl}
}

func gridKey(weekID int64) string {
	return keyGridPrefix + strconv.FormatInt(weekID, 10)
}

// Get returns the cached grid for a week, or nil if miss.
func (c *GridCache) Get(ctx context.Context, weekID int64) (*dom.WeekGrid, error) {
	b, err := c.rdb.Get(ctx, gridKey(weekID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var grid dom.WeekGrid
	if err := json.Unmarshal(b, &grid); err != nil {
		return nil, err
	}
	return &grid, nil
}

// Set stores the grid.
func (c *GridCache) Set(ctx context.Context, weekID int64, grid dom.WeekGrid) error {
	b, err := json.Marshal(grid)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, gridKey(weekID), b, c.ttl).Err()
}

// Invalidate drops the cached grid for a week (cache invalidation on write).
func (c *GridCache) Invalidate(ctx context.Context, weekID int64) error {
	return c.rdb.Del(ctx, gridKey(weekID)).Err()
}
