// Command syncindex rebuilds the places search index from the database.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dailydilli/internal/infra"
	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
	"dailydilli/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	if _, err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	placeRepo := repositories.NewPlaceRepository(db)
	index := services.NewSearchIndex(infra.InitOpenSearch())

	ctx := context.Background()
	places, err := placeRepo.ListApproved(ctx)
	if err != nil {
		zap.L().Fatal("failed to load approved places", zap.Error(err))
	}

	indexed, err := index.BulkIndexPlaces(ctx, places)
	if err != nil {
		zap.L().Fatal("bulk indexing failed", zap.Error(err))
	}

	zap.L().Info("index sync finished",
		zap.Int("indexed", indexed),
		zap.Int("total", len(places)))
}
