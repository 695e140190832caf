package suggestion_fx

import (
	"math/rand"
	"time"

	"go.uber.org/fx"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
	mem "dailydilli/pkg/memcache"
)

var Module = fx.Provide(
	provideSuggestedCache, provideRand, provideSuggestionService)

func provideSuggestedCache() *mem.TTLCell[[]db_models.Place] {
	return mem.NewTTLCell[[]db_models.Place]()
}

func provideRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func provideSuggestionService(
	placeRepo repositories.PlaceRepository,
	cache *mem.TTLCell[[]db_models.Place],
	rng *rand.Rand,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(placeRepo, cache, rng)
}
