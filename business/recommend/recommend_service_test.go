//go:build !integration

package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"playNext/business/achievements"
	"playNext/business/profile"
	"playNext/domain"
)

type stubGameRepo struct {
	vectors    map[uint64]domain.FeatureVector
	vectorsErr error
	names      map[uint64]string
}

func (r *stubGameRepo) FindAllVectors(context.Context) (map[uint64]domain.FeatureVector, error) {
	return r.vectors, r.vectorsErr
}

func (r *stubGameRepo) FindNames(_ context.Context, appIDs []uint64) (map[uint64]string, error) {
	out := make(map[uint64]string)
	for _, id := range appIDs {
		if name, ok := r.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func (r *stubGameRepo) FindAllSummaries(context.Context) ([]domain.GameSummary, error) {
	summaries := make([]domain.GameSummary, 0, len(r.names))
	for id, name := range r.names {
		summaries = append(summaries, domain.GameSummary{AppID: id, Name: name})
	}
	return summaries, nil
}

type stubOwnership struct {
	steamID string
	library domain.Library
	err     error
}

func (o *stubOwnership) ResolveUser(context.Context, string) (string, domain.Library, error) {
	return o.steamID, o.library, o.err
}

type noopFetcher struct{}

func (noopFetcher) FetchStats(context.Context, uint64, string) (domain.AchievementStat, error) {
	return domain.AchievementStat{}, nil
}

func newTestService(repo *stubGameRepo, ownership *stubOwnership) *Service {
	provider := achievements.NewProvider(noopFetcher{}, achievements.NewMemoryCache())
	return NewService(repo, ownership, profile.NewService(provider))
}

func testRepo() *stubGameRepo {
	return &stubGameRepo{
		vectors: map[uint64]domain.FeatureVector{
			1: {1, 0},
			2: {0, 1},
			3: {0.6, 0.8},
		},
		names: map[uint64]string{
			1: "Portal",
			2: "Stardew Valley",
			3: "Half-Life",
		},
	}
}

func TestForPlayer_RanksUnownedGames(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{
		steamID: "76561198000000000",
		library: domain.Library{1: 100},
	})

	got, err := svc.ForPlayer(context.Background(), "someone", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	if got[0].AppID != 3 {
		t.Errorf("top recommendation = %d, want 3", got[0].AppID)
	}
	if got[0].Name != "Half-Life" {
		t.Errorf("top name = %q, want Half-Life", got[0].Name)
	}
	if got[0].Similarity != 0.6 {
		t.Errorf("top similarity = %v, want 0.6", got[0].Similarity)
	}
	if got[0].StoreLink != "https://store.steampowered.com/app/3" {
		t.Errorf("store link = %q", got[0].StoreLink)
	}
}

func TestForPlayer_EmptyLibrary(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{
		steamID: "76561198000000000",
		library: domain.Library{},
	})

	_, err := svc.ForPlayer(context.Background(), "someone", false)
	if !errors.Is(err, ErrNoGamesFound) {
		t.Fatalf("expected ErrNoGamesFound, got %v", err)
	}
}

func TestForPlayer_ResolutionFailure(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{
		err: fmt.Errorf("steam api returned status 500"),
	})

	_, err := svc.ForPlayer(context.Background(), "someone", false)
	if !errors.Is(err, ErrUserResolution) {
		t.Fatalf("expected ErrUserResolution, got %v", err)
	}
}

func TestForPlayer_CatalogUnavailable(t *testing.T) {
	repo := testRepo()
	repo.vectorsErr = errors.New("connection refused")

	svc := newTestService(repo, &stubOwnership{
		steamID: "76561198000000000",
		library: domain.Library{1: 100},
	})

	_, err := svc.ForPlayer(context.Background(), "someone", false)
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestForPlayer_ZeroPlaytimeStillRanks(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{
		steamID: "76561198000000000",
		library: domain.Library{1: 0},
	})

	got, err := svc.ForPlayer(context.Background(), "someone", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// zero profile scores 0 against everything; ordering is by app id
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	for _, rec := range got {
		if rec.Similarity != 0 {
			t.Errorf("game %d similarity = %v, want 0", rec.AppID, rec.Similarity)
		}
	}
	if got[0].AppID != 2 || got[1].AppID != 3 {
		t.Errorf("order = [%d %d], want [2 3]", got[0].AppID, got[1].AppID)
	}
}

func TestForPicks_ExcludesPicksAndRanks(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{})

	got, err := svc.ForPicks(context.Background(), []domain.RankedPick{
		{AppID: 1, Rank: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range got {
		if rec.AppID == 1 {
			t.Errorf("picked game 1 must not be recommended")
		}
	}
	if got[0].AppID != 3 {
		t.Errorf("top recommendation = %d, want 3", got[0].AppID)
	}
}

func TestForPicks_EmptySelection(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{})

	_, err := svc.ForPicks(context.Background(), nil)
	if !errors.Is(err, ErrNoPicks) {
		t.Fatalf("expected ErrNoPicks, got %v", err)
	}
}

func TestPlayerData_ReturnsResolvedLibrary(t *testing.T) {
	svc := newTestService(testRepo(), &stubOwnership{
		steamID: "76561198000000000",
		library: domain.Library{1: 100, 2: 30},
	})

	got, err := svc.PlayerData(context.Background(), "someone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.SteamID != "76561198000000000" {
		t.Errorf("steam id = %q", got.SteamID)
	}
	if len(got.Games) != 2 || got.Games[1] != 100 {
		t.Errorf("games = %v", got.Games)
	}
}

func TestDecorate_MissingNameFallsBackToAppID(t *testing.T) {
	repo := testRepo()
	delete(repo.names, 3)

	svc := newTestService(repo, &stubOwnership{
		steamID: "76561198000000000",
		library: domain.Library{1: 100},
	})

	got, err := svc.ForPlayer(context.Background(), "someone", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got[0].AppID != 3 || got[0].Name != "3" {
		t.Errorf("fallback name = %q, want \"3\"", got[0].Name)
	}
}
