package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"playNext/domain"
	"playNext/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// AchievementCacheRepository shares achievement stats across instances.
// A TTL of 0 keeps entries until redis evicts them.
type AchievementCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAchievementCacheRepository(client *redis.Client, ttl time.Duration) *AchievementCacheRepository {
	return &AchievementCacheRepository{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(appID uint64, steamID string) string {
	return fmt.Sprintf("achstat:%d:%s", appID, steamID)
}

// Get returns the cached stat and whether it was present. Redis failures are
// treated as a miss so a degraded cache never blocks a profile build.
func (r *AchievementCacheRepository) Get(ctx context.Context, appID uint64, steamID string) (domain.AchievementStat, bool) {
	val, err := r.client.Get(ctx, cacheKey(appID, steamID)).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("achievement cache read failed", err)
		}
		return domain.AchievementStat{}, false
	}

	var stat domain.AchievementStat
	if err := json.Unmarshal([]byte(val), &stat); err != nil {
		logger.Warn("achievement cache entry corrupt", err)
		return domain.AchievementStat{}, false
	}

	return stat, true
}

func (r *AchievementCacheRepository) Set(ctx context.Context, appID uint64, steamID string, stat domain.AchievementStat) {
	data, err := json.Marshal(stat)
	if err != nil {
		logger.Warn("failed to marshal achievement stat", err)
		return
	}

	if err := r.client.Set(ctx, cacheKey(appID, steamID), data, r.ttl).Err(); err != nil {
		logger.Warn("achievement cache write failed", err)
	}
}
