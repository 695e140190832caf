package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailydilli/internal/models/db_models"
	"dailydilli/pkg/memcache"
	"dailydilli/pkg/utils"
)

func newSuggestionService(repo *fakePlaceRepo) SuggestionServiceInterface {
	return NewSuggestionService(repo, memcache.NewTTLCell[[]db_models.Place](), rand.New(rand.NewSource(1)))
}

func TestSuggestedPlacesCapsAtEight(t *testing.T) {
	cafe := makeCategory("Cafe")
	var pool []db_models.Place
	for i := 0; i < 12; i++ {
		pool = append(pool, makePlace("P", &cafe, 28.0+float64(i), 77.0))
	}

	svc := newSuggestionService(&fakePlaceRepo{approved: pool})
	places, err := svc.SuggestedPlaces(context.Background())
	require.NoError(t, err)
	assert.Len(t, places, 8)
}

func TestSuggestedPlacesServedFromCache(t *testing.T) {
	cafe := makeCategory("Cafe")
	repo := &fakePlaceRepo{approved: []db_models.Place{makePlace("Only", &cafe, 28.6, 77.2)}}
	svc := newSuggestionService(repo)

	first, err := svc.SuggestedPlaces(context.Background())
	require.NoError(t, err)

	// mutate the backing data; the cached sample must not change
	repo.approved = append(repo.approved, makePlace("Late", &cafe, 28.7, 77.3))
	second, err := svc.SuggestedPlaces(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, second, 1)
}

func TestNearbyPlacesSplitsAndRanks(t *testing.T) {
	cafe := makeCategory("Cafe")
	history := makeCategory("Historical")

	origin := makePlace("Origin", &history, 28.6000, 77.2000)
	nearCafe := makePlace("Near Cafe", &cafe, 28.6010, 77.2010)
	farCafe := makePlace("Far Cafe", &cafe, 28.9000, 77.5000)
	cafeThree := makePlace("Cafe Three", &cafe, 28.6500, 77.2500)
	cafeFour := makePlace("Cafe Four", &cafe, 28.7000, 77.3000)
	nearFort := makePlace("Near Fort", &history, 28.6020, 77.2020)

	repo := &fakePlaceRepo{approved: []db_models.Place{
		origin, farCafe, nearCafe, cafeFour, cafeThree, nearFort,
	}}
	svc := newSuggestionService(repo)

	nearby, err := svc.NearbyPlaces(context.Background(), origin.ID)
	require.NoError(t, err)

	require.Len(t, nearby.Cafes, 3)
	assert.Equal(t, "Near Cafe", nearby.Cafes[0].Name)
	assert.Equal(t, "Cafe Three", nearby.Cafes[1].Name)
	assert.Equal(t, "Cafe Four", nearby.Cafes[2].Name)

	// origin itself is excluded from the non-cafe group
	require.Len(t, nearby.Others, 1)
	assert.Equal(t, "Near Fort", nearby.Others[0].Name)
}

func TestNearbyPlacesUnknownPlace(t *testing.T) {
	svc := newSuggestionService(&fakePlaceRepo{})
	_, err := svc.NearbyPlaces(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrPlaceNotFound)
}

func TestNearbyPlacesNoCoordinates(t *testing.T) {
	history := makeCategory("Historical")
	origin := makePlace("Origin", &history, 0, 0)
	origin.Latitude, origin.Longitude = nil, nil

	svc := newSuggestionService(&fakePlaceRepo{approved: []db_models.Place{origin}})
	_, err := svc.NearbyPlaces(context.Background(), origin.ID)
	assert.ErrorIs(t, err, utils.ErrPlaceHasNoCoordinates)
}

func TestHaversineKnownDistance(t *testing.T) {
	// New Delhi to Agra is roughly 180 km as the crow flies
	d := haversineKm(28.6139, 77.2090, 27.1767, 78.0081)
	assert.InDelta(t, 180, d, 10)
}
