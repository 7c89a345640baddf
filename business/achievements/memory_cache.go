package achievements

import (
	"context"
	"sync"

	"playNext/domain"
)

type cacheKey struct {
	appID   uint64
	steamID string
}

// MemoryCache is the default in-process StatCache. Entries live for the
// lifetime of the process; the set of (game, player) pairs a single deployment
// sees is bounded by real usage, so no eviction is applied here.
type MemoryCache struct {
	mu    sync.RWMutex
	stats map[cacheKey]domain.AchievementStat
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		stats: make(map[cacheKey]domain.AchievementStat),
	}
}

func (c *MemoryCache) Get(_ context.Context, appID uint64, steamID string) (domain.AchievementStat, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stat, ok := c.stats[cacheKey{appID: appID, steamID: steamID}]
	return stat, ok
}

func (c *MemoryCache) Set(_ context.Context, appID uint64, steamID string, stat domain.AchievementStat) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[cacheKey{appID: appID, steamID: steamID}] = stat
}
