package main

import (
	"context"
	"flag"
	"log"
	"time"

	"playNext/business/ingest"
	"playNext/domain"
	psqlRepo "playNext/internal/repository/postgres"
	"playNext/pkg/config"
	"playNext/pkg/database"
	"playNext/pkg/logger"
)

// One-time catalog ingestion: reads the curated dataset, encodes feature
// vectors and upserts the games table.
func main() {
	datasetFlag := flag.String("dataset", "", "path to the catalog dataset JSON (overrides INGEST_DATASET_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	datasetPath := cfg.Ingest.DatasetPath
	if *datasetFlag != "" {
		datasetPath = *datasetFlag
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := db.AutoMigrate(&domain.Game{}); err != nil {
		logger.Fatal("Failed to migrate games table", "error", err)
	}

	gameRepo := psqlRepo.NewGameRepository(db)
	ingestService := ingest.NewService(gameRepo, datasetPath)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := ingestService.Run(ctx)
	if err != nil {
		logger.Fatal("Ingestion failed", "error", err)
	}

	logger.Info("Ingestion complete",
		"batch_id", result.BatchID,
		"games", result.Games,
		"dimension", result.Dimension,
	)
}
