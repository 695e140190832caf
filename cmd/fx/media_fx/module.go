package media_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
)

var Module = fx.Provide(
	provideMediaStore, provideMediaService)

func provideMediaStore() services.MediaStoreInterface {
	store, err := services.NewS3MediaStore(context.Background())
	if err != nil {
		zap.L().Fatal("failed to initialize media store", zap.Error(err))
	}
	return store
}

func provideMediaService(
	placeRepo repositories.PlaceRepository,
	store services.MediaStoreInterface,
) services.MediaServiceInterface {
	return services.NewMediaService(placeRepo, store)
}
