package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const dayCountTTL = 10 * time.Minute

// DayCountCache memoizes per-account distinct-day counts. It is a
// read-through cache: a cold or unreachable Redis means the caller
// falls back to the database, never an error.
type DayCountCache interface {
	Get(ctx context.Context, accountID uuid.UUID) (int64, bool)
	Set(ctx context.Context, accountID uuid.UUID, count int64)
	Invalidate(ctx context.Context, accountID uuid.UUID)
}

type RedisDayCountCache struct {
	client *redis.Client
}

func NewRedisDayCountCache(client *redis.Client) *RedisDayCountCache {
	return &RedisDayCountCache{client: client}
}

func dayCountKey(accountID uuid.UUID) string {
	return fmt.Sprintf("daycount:%s", accountID)
}

func (c *RedisDayCountCache) Get(ctx context.Context, accountID uuid.UUID) (int64, bool) {
	val, err := c.client.Get(ctx, dayCountKey(accountID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

func (c *RedisDayCountCache) Set(ctx context.Context, accountID uuid.UUID, count int64) {
	c.client.Set(ctx, dayCountKey(accountID), count, dayCountTTL)
}

func (c *RedisDayCountCache) Invalidate(ctx context.Context, accountID uuid.UUID) {
	c.client.Del(ctx, dayCountKey(accountID))
}
