package profile

import (
	"context"
	"errors"
	"fmt"

	"playNext/domain"
	"playNext/pkg/logger"
	"playNext/pkg/vector"
)

// ErrCatalogUnavailable means the feature-vector catalog is empty or could not
// be read; the request cannot proceed.
var ErrCatalogUnavailable = errors.New("game catalog unavailable")

// AchievementProvider contract interface
type AchievementProvider interface {
	Stats(ctx context.Context, appID uint64, steamID string) domain.AchievementStat
}

type Service struct {
	achievements AchievementProvider
}

func NewService(achievements AchievementProvider) *Service {
	return &Service{
		achievements: achievements,
	}
}

// dimensionOf reads the uniform vector length from any catalog entry.
func dimensionOf(vectors map[uint64]domain.FeatureVector) int {
	for _, v := range vectors {
		return len(v)
	}
	return 0
}

// FromLibrary builds the preference vector from owned games weighted by
// playtime share. Weights use total playtime over the whole library as the
// denominator, so games missing from the catalog leave their share
// unredistributed. With achievements enabled, a matched game's weight becomes
// the mean of its playtime share and its completion rate whenever the game
// defines any achievements.
//
// A library with zero total playtime, or with no game present in the catalog,
// yields the zero vector. Callers rank against it as-is; cosine similarity to
// a zero vector is defined as 0 everywhere.
func (s *Service) FromLibrary(
	ctx context.Context,
	library domain.Library,
	steamID string,
	useAchievements bool,
	vectors map[uint64]domain.FeatureVector,
) (domain.FeatureVector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(vectors) == 0 {
		return nil, ErrCatalogUnavailable
	}

	userVector := make(domain.FeatureVector, dimensionOf(vectors))

	var totalPlaytime int64
	for _, playtime := range library {
		totalPlaytime += playtime
	}
	if totalPlaytime == 0 {
		logger.Info("library has no playtime, returning zero profile")
		return userVector, nil
	}

	matched := make([]uint64, 0, len(library))
	for appID := range library {
		if _, ok := vectors[appID]; ok {
			matched = append(matched, appID)
		}
	}
	if len(matched) == 0 {
		logger.Info("no owned game found in catalog, returning zero profile")
		return userVector, nil
	}

	for _, appID := range matched {
		weight := float64(library[appID]) / float64(totalPlaytime)

		if useAchievements {
			stat := s.achievements.Stats(ctx, appID, steamID)
			if stat.Total > 0 {
				weight = (weight + stat.CompletionRate()) / 2
			}
		}

		vector.AddScaled(userVector, vectors[appID], weight)
	}

	vector.Normalize(userVector)

	return userVector, nil
}

// FromPicks builds the preference vector from an explicit ranked selection,
// for users without a library. Rank 1 maps to weight 1, the last rank to
// 1/maxRank. Picks absent from the catalog are skipped.
func (s *Service) FromPicks(
	ctx context.Context,
	picks []domain.RankedPick,
	vectors map[uint64]domain.FeatureVector,
) (domain.FeatureVector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(vectors) == 0 {
		return nil, ErrCatalogUnavailable
	}

	userVector := make(domain.FeatureVector, dimensionOf(vectors))

	maxRank := len(picks)
	for _, pick := range picks {
		v, ok := vectors[pick.AppID]
		if !ok {
			continue
		}

		weight := float64(maxRank-pick.Rank+1) / float64(maxRank)
		vector.AddScaled(userVector, v, weight)
	}

	vector.Normalize(userVector)

	return userVector, nil
}
