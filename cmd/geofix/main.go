// Command geofix backfills coordinates for places that were stored without
// them, resolving each one's address through the geocoder.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"dailydilli/internal/infra"
	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
	"dailydilli/pkg/logger"
)

// requestGap throttles geocoding calls to stay under the API rate limit.
const requestGap = 200 * time.Millisecond

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
	geocoder := services.NewGoogleGeocoder()

	ctx := context.Background()
	places, err := placeRepo.ListMissingCoordinates(ctx)
	if err != nil {
		zap.L().Fatal("failed to load places missing coordinates", zap.Error(err))
	}
	zap.L().Info("backfilling coordinates", zap.Int("pending", len(places)))

	fixed, failed := 0, 0
	for _, place := range places {
		lat, lng, err := geocoder.Coordinates(ctx, place.Location)
		if err != nil {
			zap.L().Warn("geocoding failed",
				zap.String("place_id", place.ID.String()),
				zap.String("location", place.Location),
				zap.Error(err))
			failed++
			continue
		}

		if err := placeRepo.UpdateCoordinates(ctx, place.ID, lat, lng); err != nil {
			zap.L().Warn("failed to store coordinates",
				zap.String("place_id", place.ID.String()),
				zap.Error(err))
			failed++
			continue
		}
		fixed++
		time.Sleep(requestGap)
	}

	zap.L().Info("coordinate backfill finished",
		zap.Int("fixed", fixed),
		zap.Int("failed", failed))
}
