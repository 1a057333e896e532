package cache

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryDayCountCache is a map-backed DayCountCache for tests and for
// running without Redis.
type MemoryDayCountCache struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int64
}

func NewMemoryDayCountCache() *MemoryDayCountCache {
	return &MemoryDayCountCache{counts: make(map[uuid.UUID]int64)}
}

func (c *MemoryDayCountCache) Get(_ context.Context, accountID uuid.UUID) (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[accountID]
	return count, ok
}

func (c *MemoryDayCountCache) Set(_ context.Context, accountID uuid.UUID, count int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[accountID] = count
}

func (c *MemoryDayCountCache) Invalidate(_ context.Context, accountID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, accountID)
}
