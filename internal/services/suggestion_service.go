package services

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/response_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/memcache"
	"dailydilli/pkg/utils"
)

const (
	suggestedPlacesCount = 8
	suggestedPlacesTTL   = 10 * time.Minute
	nearbyPerGroup       = 3
	earthRadiusKm        = 6371.0
)

type SuggestionServiceInterface interface {
	SuggestedPlaces(ctx context.Context) ([]db_models.Place, error)
	NearbyPlaces(ctx context.Context, placeID uuid.UUID) (*response_models.NearbyPlacesResponse, error)
}

type SuggestionService struct {
	placeRepo repositories.PlaceRepository
	cache     *memcache.TTLCell[[]db_models.Place]

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSuggestionService(
	placeRepo repositories.PlaceRepository,
	cache *memcache.TTLCell[[]db_models.Place],
	rng *rand.Rand,
) SuggestionServiceInterface {
	return &SuggestionService{
		placeRepo: placeRepo,
		cache:     cache,
		rng:       rng,
	}
}

// SuggestedPlaces serves a random sample of approved places, reshuffled at
// most once per cache window.
func (s *SuggestionService) SuggestedPlaces(ctx context.Context) ([]db_models.Place, error) {
	if cached, ok := s.cache.Get(); ok {
		return cached, nil
	}

	places, err := s.placeRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(places), func(i, j int) {
		places[i], places[j] = places[j], places[i]
	})
	s.mu.Unlock()

	if len(places) > suggestedPlacesCount {
		places = places[:suggestedPlacesCount]
	}

	s.cache.Set(places, suggestedPlacesTTL)
	zap.L().Debug("refreshed suggested places cache", zap.Int("count", len(places)))
	return places, nil
}

// NearbyPlaces ranks approved places by distance from the given one and
// returns the closest cafes and the closest places of any other category.
func (s *SuggestionService) NearbyPlaces(ctx context.Context, placeID uuid.UUID) (*response_models.NearbyPlacesResponse, error) {
	origin, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, utils.ErrPlaceNotFound
	}
	if !origin.HasCoordinates() {
		return nil, utils.ErrPlaceHasNoCoordinates
	}

	candidates, err := s.placeRepo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		place    db_models.Place
		distance float64
	}
	var cafes, others []ranked
	for _, candidate := range candidates {
		if candidate.ID == origin.ID || !candidate.HasCoordinates() {
			continue
		}
		entry := ranked{
			place: candidate,
			distance: haversineKm(
				*origin.Latitude, *origin.Longitude,
				*candidate.Latitude, *candidate.Longitude,
			),
		}
		if candidate.Category != nil && candidate.Category.Name == "Cafe" {
			cafes = append(cafes, entry)
		} else {
			others = append(others, entry)
		}
	}

	nearest := func(entries []ranked) []db_models.Place {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].distance < entries[j].distance
		})
		if len(entries) > nearbyPerGroup {
			entries = entries[:nearbyPerGroup]
		}
		places := make([]db_models.Place, 0, len(entries))
		for _, entry := range entries {
			places = append(places, entry.place)
		}
		return places
	}

	return &response_models.NearbyPlacesResponse{
		Cafes:  nearest(cafes),
		Others: nearest(others),
	}, nil
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
