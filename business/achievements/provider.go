package achievements

import (
	"context"

	"playNext/domain"
	"playNext/pkg/logger"
	"playNext/pkg/metrics"
)

// StatsFetcher contract interface
type StatsFetcher interface {
	FetchStats(ctx context.Context, appID uint64, steamID string) (domain.AchievementStat, error)
}

// StatCache contract interface. Implementations decide lifetime and eviction;
// the provider only guarantees "fetch at most once per cached key".
type StatCache interface {
	Get(ctx context.Context, appID uint64, steamID string) (domain.AchievementStat, bool)
	Set(ctx context.Context, appID uint64, steamID string, stat domain.AchievementStat)
}

type Provider struct {
	fetcher StatsFetcher
	cache   StatCache
}

func NewProvider(fetcher StatsFetcher, cache StatCache) *Provider {
	return &Provider{
		fetcher: fetcher,
		cache:   cache,
	}
}

// Stats returns the achievement summary for one (game, player) pair. It never
// fails: a fetch error is logged, counted, and degraded to the zero stat so a
// single unavailable game cannot abort a profile build. Both real and degraded
// results are cached. Concurrent fetches for the same key may race; last write
// wins, which is harmless since both derive from the same source.
func (p *Provider) Stats(ctx context.Context, appID uint64, steamID string) domain.AchievementStat {
	if stat, ok := p.cache.Get(ctx, appID, steamID); ok {
		return stat
	}

	stat, err := p.fetcher.FetchStats(ctx, appID, steamID)
	if err != nil {
		logger.Warn("achievement fetch degraded", "app_id", appID, "error", err.Error())
		metrics.AchievementFetchFailures.Inc()
		stat = domain.AchievementStat{}
	}

	p.cache.Set(ctx, appID, steamID, stat)

	return stat
}
