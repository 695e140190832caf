package liked_place_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
)

var Module = fx.Provide(
	provideLikedPlaceRepo, provideLikedPlaceService)

func provideLikedPlaceRepo(db *gorm.DB) repositories.LikedPlaceRepository {
	return repositories.NewLikedPlaceRepository(db)
}

func provideLikedPlaceService(
	likedRepo repositories.LikedPlaceRepository,
	placeRepo repositories.PlaceRepository,
) services.LikedPlaceServiceInterface {
	return services.NewLikedPlaceService(likedRepo, placeRepo)
}
