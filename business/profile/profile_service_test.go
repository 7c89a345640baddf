//go:build !integration

package profile

import (
	"context"
	"errors"
	"math"
	"testing"

	"playNext/domain"
)

type stubAchievements struct {
	stats map[uint64]domain.AchievementStat
}

func (s *stubAchievements) Stats(_ context.Context, appID uint64, _ string) domain.AchievementStat {
	return s.stats[appID]
}

func testCatalog() map[uint64]domain.FeatureVector {
	return map[uint64]domain.FeatureVector{
		10: {1, 0},
		20: {0, 1},
		30: {0.6, 0.8},
	}
}

func TestFromLibrary_EmptyCatalog(t *testing.T) {
	svc := NewService(&stubAchievements{})

	_, err := svc.FromLibrary(context.Background(), domain.Library{10: 100}, "76561198000000000", false, nil)
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestFromLibrary_ZeroPlaytimeReturnsZeroVector(t *testing.T) {
	svc := NewService(&stubAchievements{})

	got, err := svc.FromLibrary(context.Background(), domain.Library{10: 0, 20: 0}, "76561198000000000", false, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected vector of length 2, got %d", len(got))
	}
	for i, x := range got {
		if x != 0 {
			t.Errorf("component %d = %v, want 0", i, x)
		}
	}
}

func TestFromLibrary_NoMatchedGamesReturnsZeroVector(t *testing.T) {
	svc := NewService(&stubAchievements{})

	got, err := svc.FromLibrary(context.Background(), domain.Library{999: 500}, "76561198000000000", false, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, x := range got {
		if x != 0 {
			t.Errorf("component %d = %v, want 0", i, x)
		}
	}
}

func TestFromLibrary_SingleGameProfile(t *testing.T) {
	svc := NewService(&stubAchievements{})

	got, err := svc.FromLibrary(context.Background(), domain.Library{10: 100}, "76561198000000000", false, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []float64{1, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFromLibrary_ResultHasUnitNorm(t *testing.T) {
	svc := NewService(&stubAchievements{})

	got, err := svc.FromLibrary(context.Background(), domain.Library{10: 120, 30: 480}, "76561198000000000", false, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	norm := 0.0
	for _, x := range got {
		norm += x * x
	}
	norm = math.Sqrt(norm)

	if math.Abs(norm-1) > 1e-9 {
		t.Errorf("norm = %v, want 1", norm)
	}
}

func TestFromLibrary_UnmatchedPlaytimeStaysInDenominator(t *testing.T) {
	svc := NewService(&stubAchievements{})

	// 999 is not in the catalog but its playtime still dilutes the weights,
	// so the accumulated vector is 0.25*[1,0]; normalization restores [1,0].
	got, err := svc.FromLibrary(context.Background(), domain.Library{10: 100, 999: 300}, "76561198000000000", false, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(got[0]-1) > 1e-9 || math.Abs(got[1]) > 1e-9 {
		t.Errorf("profile = %v, want [1 0]", got)
	}
}

func TestFromLibrary_AchievementBlending(t *testing.T) {
	catalog := map[uint64]domain.FeatureVector{
		10: {1, 0},
		20: {0, 1},
	}
	svc := NewService(&stubAchievements{
		stats: map[uint64]domain.AchievementStat{
			10: {Total: 10, Completed: 10}, // completion rate 1.0
			20: {},                         // no achievement data, base weight kept
		},
	})

	got, err := svc.FromLibrary(context.Background(), domain.Library{10: 50, 20: 50}, "76561198000000000", true, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// weight(10) = (0.5 + 1.0)/2 = 0.75, weight(20) = 0.5 unchanged
	wantRatio := 0.75 / 0.5
	gotRatio := got[0] / got[1]
	if math.Abs(gotRatio-wantRatio) > 1e-9 {
		t.Errorf("weight ratio = %v, want %v", gotRatio, wantRatio)
	}
}

func TestFromPicks_RankWeights(t *testing.T) {
	catalog := map[uint64]domain.FeatureVector{
		10: {1, 0},
		20: {0, 1},
	}
	svc := NewService(&stubAchievements{})

	got, err := svc.FromPicks(context.Background(), []domain.RankedPick{
		{AppID: 10, Rank: 1},
		{AppID: 20, Rank: 2},
	}, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// weight(rank 1) = 1.0, weight(rank 2) = 0.5
	gotRatio := got[0] / got[1]
	if math.Abs(gotRatio-2) > 1e-9 {
		t.Errorf("weight ratio = %v, want 2", gotRatio)
	}
}

func TestFromPicks_WeightsMonotoneInRank(t *testing.T) {
	picks := []domain.RankedPick{
		{AppID: 1, Rank: 1},
		{AppID: 2, Rank: 2},
		{AppID: 3, Rank: 3},
		{AppID: 4, Rank: 4},
	}

	maxRank := len(picks)
	prev := math.Inf(1)
	for _, p := range picks {
		weight := float64(maxRank-p.Rank+1) / float64(maxRank)
		if weight > prev {
			t.Errorf("weight for rank %d = %v, greater than previous %v", p.Rank, weight, prev)
		}
		prev = weight
	}
}

func TestFromPicks_SkipsUnknownGames(t *testing.T) {
	svc := NewService(&stubAchievements{})

	got, err := svc.FromPicks(context.Background(), []domain.RankedPick{
		{AppID: 999, Rank: 1},
		{AppID: 20, Rank: 2},
	}, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// only game 20 contributes; normalized profile is [0,1]
	if math.Abs(got[0]) > 1e-9 || math.Abs(got[1]-1) > 1e-9 {
		t.Errorf("profile = %v, want [0 1]", got)
	}
}

func TestFromPicks_AllUnknownReturnsZeroVector(t *testing.T) {
	svc := NewService(&stubAchievements{})

	got, err := svc.FromPicks(context.Background(), []domain.RankedPick{
		{AppID: 998, Rank: 1},
		{AppID: 999, Rank: 2},
	}, testCatalog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, x := range got {
		if x != 0 {
			t.Errorf("component %d = %v, want 0", i, x)
		}
	}
}
