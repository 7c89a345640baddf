package recommend

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"playNext/domain"
	"playNext/pkg/logger"
)

// GameRepository contract interface
type GameRepository interface {
	FindAllVectors(ctx context.Context) (map[uint64]domain.FeatureVector, error)
	FindNames(ctx context.Context, appIDs []uint64) (map[uint64]string, error)
	FindAllSummaries(ctx context.Context) ([]domain.GameSummary, error)
}

// OwnershipProvider contract interface
type OwnershipProvider interface {
	ResolveUser(ctx context.Context, username string) (string, domain.Library, error)
}

// ProfileBuilder contract interface
type ProfileBuilder interface {
	FromLibrary(ctx context.Context, library domain.Library, steamID string, useAchievements bool, vectors map[uint64]domain.FeatureVector) (domain.FeatureVector, error)
	FromPicks(ctx context.Context, picks []domain.RankedPick, vectors map[uint64]domain.FeatureVector) (domain.FeatureVector, error)
}

type Service struct {
	gameRepo  GameRepository
	ownership OwnershipProvider
	profiles  ProfileBuilder
}

func NewService(gameRepo GameRepository, ownership OwnershipProvider, profiles ProfileBuilder) *Service {
	return &Service{
		gameRepo:  gameRepo,
		ownership: ownership,
		profiles:  profiles,
	}
}

// ForPlayer resolves the player's library, builds the preference vector and
// ranks the catalog against it, excluding everything the player owns.
func (s *Service) ForPlayer(ctx context.Context, username string, useAchievements bool) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	steamID, library, err := s.ownership.ResolveUser(ctx, username)
	if err != nil {
		logger.Error("failed to resolve player", err)
		return nil, fmt.Errorf("%w: %v", ErrUserResolution, err)
	}
	if len(library) == 0 {
		return nil, ErrNoGamesFound
	}

	vectors, err := s.gameRepo.FindAllVectors(ctx)
	if err != nil {
		logger.Error("failed to load game vectors", err)
		return nil, ErrCatalogUnavailable
	}

	userVector, err := s.profiles.FromLibrary(ctx, library, steamID, useAchievements, vectors)
	if err != nil {
		return nil, err
	}

	exclude := make(map[uint64]struct{}, len(library))
	for appID := range library {
		exclude[appID] = struct{}{}
	}

	scored := rank(userVector, vectors, exclude, topK)

	return s.decorate(ctx, scored)
}

// ForPicks builds the preference vector from an explicit ranked selection and
// ranks the catalog against it, excluding the picks themselves.
func (s *Service) ForPicks(ctx context.Context, picks []domain.RankedPick) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(picks) == 0 {
		return nil, ErrNoPicks
	}

	vectors, err := s.gameRepo.FindAllVectors(ctx)
	if err != nil {
		logger.Error("failed to load game vectors", err)
		return nil, ErrCatalogUnavailable
	}

	userVector, err := s.profiles.FromPicks(ctx, picks, vectors)
	if err != nil {
		return nil, err
	}

	exclude := make(map[uint64]struct{}, len(picks))
	for _, pick := range picks {
		exclude[pick.AppID] = struct{}{}
	}

	scored := rank(userVector, vectors, exclude, topK)

	return s.decorate(ctx, scored)
}

// PlayerData exposes the resolved identity and library for presentation.
func (s *Service) PlayerData(ctx context.Context, username string) (domain.PlayerSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.PlayerSummary{}, fmt.Errorf("context error: %w", err)
	}

	steamID, library, err := s.ownership.ResolveUser(ctx, username)
	if err != nil {
		logger.Error("failed to resolve player", err)
		return domain.PlayerSummary{}, fmt.Errorf("%w: %v", ErrUserResolution, err)
	}
	if len(library) == 0 {
		return domain.PlayerSummary{}, ErrNoGamesFound
	}

	return domain.PlayerSummary{
		SteamID: steamID,
		Games:   library,
	}, nil
}

// Catalog lists the stored games for the selection UI, ordered by name.
func (s *Service) Catalog(ctx context.Context) ([]domain.GameSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	summaries, err := s.gameRepo.FindAllSummaries(ctx)
	if err != nil {
		logger.Error("failed to list catalog", err)
		return nil, ErrCatalogUnavailable
	}

	return summaries, nil
}

// decorate attaches display names and store links to a ranked result. A name
// missing from the catalog is an external-data inconsistency, not a failure;
// the app id stands in for the name.
func (s *Service) decorate(ctx context.Context, scored []domain.ScoredGame) ([]domain.Recommendation, error) {
	appIDs := make([]uint64, 0, len(scored))
	for _, sg := range scored {
		appIDs = append(appIDs, sg.AppID)
	}

	names, err := s.gameRepo.FindNames(ctx, appIDs)
	if err != nil {
		logger.Error("failed to load game names", err)
		names = map[uint64]string{}
	}

	recommendations := make([]domain.Recommendation, 0, len(scored))
	for _, sg := range scored {
		name, ok := names[sg.AppID]
		if !ok {
			logger.Warn("ranked game has no name in catalog", "app_id", sg.AppID)
			name = strconv.FormatUint(sg.AppID, 10)
		}

		recommendations = append(recommendations, domain.Recommendation{
			AppID:      sg.AppID,
			Name:       name,
			Similarity: roundScore(sg.Similarity),
			StoreLink:  domain.StoreLink(sg.AppID),
		})
	}

	return recommendations, nil
}

func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}
