package place_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, provideGeocoder, providePlaceService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideGeocoder() services.GeocoderInterface {
	return services.NewGoogleGeocoder()
}

func providePlaceService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository,
	geocoder services.GeocoderInterface,
	index services.SearchIndexInterface,
) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, categoryRepo, geocoder, index)
}
