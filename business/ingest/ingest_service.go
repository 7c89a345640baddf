package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"playNext/domain"
	"playNext/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameWriter contract interface
type GameWriter interface {
	UpsertAll(ctx context.Context, games []domain.Game) error
}

// RawGame is one entry of the curated catalog dataset.
type RawGame struct {
	AppID               uint64   `json:"appid"`
	Name                string   `json:"name"`
	Genres              []string `json:"genres"`
	Categories          []string `json:"categories"`
	PositiveReviewRatio float64  `json:"positive_review_ratio"`
	ActivePlayers       int64    `json:"active_players"`
}

// Result summarizes one ingestion run.
type Result struct {
	BatchID   string `json:"batch_id"`
	Games     int    `json:"games"`
	Dimension int    `json:"dimension"`
}

type Service struct {
	gameWriter  GameWriter
	datasetPath string
}

func NewService(gameWriter GameWriter, datasetPath string) *Service {
	return &Service{
		gameWriter:  gameWriter,
		datasetPath: datasetPath,
	}
}

// Run loads the dataset, encodes every game into a feature vector and upserts
// the catalog. The vector layout is one-hot genres, one-hot categories, the
// positive review ratio, and log1p of the active player count. Genre and
// category axes are sorted so repeated runs produce the same layout.
func (s *Service) Run(ctx context.Context) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("context error: %w", err)
	}

	batchID := uuid.NewString()

	raw, err := s.loadDataset()
	if err != nil {
		return Result{}, err
	}
	if len(raw) == 0 {
		return Result{}, fmt.Errorf("dataset %s contains no games", s.datasetPath)
	}

	genres, categories := featureAxes(raw)
	dimension := len(genres) + len(categories) + 2

	logger.Info("ingesting catalog",
		"batch_id", batchID,
		"games", len(raw),
		"dimension", dimension,
	)

	now := time.Now()
	games := make([]domain.Game, 0, len(raw))
	for _, rg := range raw {
		games = append(games, domain.Game{
			AppID:               rg.AppID,
			Name:                rg.Name,
			Genres:              datatypes.NewJSONSlice(rg.Genres),
			Categories:          datatypes.NewJSONSlice(rg.Categories),
			PositiveReviewRatio: rg.PositiveReviewRatio,
			ActivePlayers:       rg.ActivePlayers,
			Vector:              datatypes.NewJSONSlice(encode(rg, genres, categories)),
			UpdatedAt:           now,
		})
	}

	if err := s.gameWriter.UpsertAll(ctx, games); err != nil {
		return Result{}, fmt.Errorf("failed to store catalog: %w", err)
	}

	logger.Info("catalog ingested", "batch_id", batchID, "games", len(games))

	return Result{
		BatchID:   batchID,
		Games:     len(games),
		Dimension: dimension,
	}, nil
}

func (s *Service) loadDataset() ([]RawGame, error) {
	data, err := os.ReadFile(s.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", s.datasetPath, err)
	}

	var raw []RawGame
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	return raw, nil
}

// featureAxes collects the distinct genres and categories across the dataset,
// sorted, so every game is encoded against the same axes.
func featureAxes(raw []RawGame) ([]string, []string) {
	genreSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})
	for _, rg := range raw {
		for _, g := range rg.Genres {
			genreSet[g] = struct{}{}
		}
		for _, c := range rg.Categories {
			categorySet[c] = struct{}{}
		}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return genres, categories
}

func encode(rg RawGame, genres, categories []string) []float64 {
	has := func(list []string, want string) float64 {
		for _, v := range list {
			if v == want {
				return 1
			}
		}
		return 0
	}

	v := make([]float64, 0, len(genres)+len(categories)+2)
	for _, g := range genres {
		v = append(v, has(rg.Genres, g))
	}
	for _, c := range categories {
		v = append(v, has(rg.Categories, c))
	}
	v = append(v, rg.PositiveReviewRatio)
	v = append(v, math.Log1p(float64(rg.ActivePlayers)))

	return v
}
