package recommend

import (
	"sort"

	"playNext/domain"
	"playNext/pkg/vector"
)

// topK is fixed; callers cannot change the result size.
const topK = 10

// rank scores every catalog game outside the exclude set against the user
// vector and returns at most limit entries, best first. Equal similarities are
// ordered by ascending app id so the ranking is total and reproducible. A
// zero-norm user vector scores 0 against everything.
func rank(
	userVector domain.FeatureVector,
	vectors map[uint64]domain.FeatureVector,
	exclude map[uint64]struct{},
	limit int,
) []domain.ScoredGame {
	scored := make([]domain.ScoredGame, 0, len(vectors))
	for appID, v := range vectors {
		if _, skip := exclude[appID]; skip {
			continue
		}

		scored = append(scored, domain.ScoredGame{
			AppID:      appID,
			Similarity: vector.Cosine(userVector, v),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].AppID < scored[j].AppID
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	return scored
}
