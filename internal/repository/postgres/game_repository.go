package postgres

import (
	"context"
	"fmt"
	"playNext/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		DB: db,
	}
}

// FindAllVectors loads every precomputed feature vector keyed by app id.
func (r *GameRepository) FindAllVectors(ctx context.Context) (map[uint64]domain.FeatureVector, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var games []domain.Game
	err := r.DB.WithContext(ctx).Select("app_id", "vector").Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find game vectors: %w", err)
	}

	vectors := make(map[uint64]domain.FeatureVector, len(games))
	for _, g := range games {
		vectors[g.AppID] = domain.FeatureVector(g.Vector)
	}

	return vectors, nil
}

// FindNames resolves display names for the given app ids.
func (r *GameRepository) FindNames(ctx context.Context, appIDs []uint64) (map[uint64]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if len(appIDs) == 0 {
		return map[uint64]string{}, nil
	}

	var games []domain.Game
	err := r.DB.WithContext(ctx).Select("app_id", "name").Where("app_id IN ?", appIDs).Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find game names: %w", err)
	}

	names := make(map[uint64]string, len(games))
	for _, g := range games {
		names[g.AppID] = g.Name
	}

	return names, nil
}

// FindAllSummaries lists the catalog ordered by name.
func (r *GameRepository) FindAllSummaries(ctx context.Context) ([]domain.GameSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var games []domain.Game
	err := r.DB.WithContext(ctx).Select("app_id", "name").Order("name ASC").Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find games: %w", err)
	}

	summaries := make([]domain.GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, domain.GameSummary{
			AppID: g.AppID,
			Name:  g.Name,
		})
	}

	return summaries, nil
}

// UpsertAll writes ingested games, updating existing rows on conflict.
func (r *GameRepository) UpsertAll(ctx context.Context, games []domain.Game) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(games) == 0 {
		return nil
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "app_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "genres", "categories", "positive_review_ratio", "active_players", "vector", "updated_at",
		}),
	}).CreateInBatches(games, 200).Error
	if err != nil {
		return fmt.Errorf("failed to upsert games: %w", err)
	}

	return nil
}
