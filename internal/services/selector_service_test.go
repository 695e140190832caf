package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dailydilli/internal/models/db_models"
	"dailydilli/pkg/utils"
)

func TestNeededPlaces(t *testing.T) {
	assert.Equal(t, 3, NeededPlaces(3))
	assert.Equal(t, 3, NeededPlaces(6))
	assert.Equal(t, 3, NeededPlaces(7.4))
	assert.Equal(t, 4, NeededPlaces(10))
	assert.Equal(t, 4, NeededPlaces(12.4))
	assert.Equal(t, 5, NeededPlaces(12.5))
}

func TestEffectiveCategoryFoodIntentWins(t *testing.T) {
	assert.Equal(t, "Cafe", EffectiveCategory("I'm hungry, show me something", "Historical"))
	assert.Equal(t, "Cafe", EffectiveCategory("best street  food tour", "Adventure"))
	assert.Equal(t, "Cafe", EffectiveCategory("where to have BREAKFAST", ""))
}

func TestEffectiveCategoryNeedsPromptMention(t *testing.T) {
	assert.Equal(t, "Historical", EffectiveCategory("show me historical monuments", "Historical"))
	assert.Equal(t, "", EffectiveCategory("give me a fun evening", "Historical"))
	assert.Equal(t, "", EffectiveCategory("give me a fun evening", ""))
}

func TestEffectiveCategoryNoFalseFoodMatch(t *testing.T) {
	// "meat" and "foodie-adjacent" words without the whole word don't count.
	assert.Equal(t, "", EffectiveCategory("greatest views in town", ""))
}

func TestSelectPlacesStageOneCategoryAndTags(t *testing.T) {
	history := makeCategory("Historical")
	cafe := makeCategory("Cafe")
	fort := makePlace("Old Fort", &history, 28.6, 77.2, "historical")
	bakery := makePlace("Bakery", &cafe, 28.61, 77.21, "cozy")

	placeRepo := &fakePlaceRepo{approved: []db_models.Place{fort, bakery}}
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{history, cafe}}
	selector := NewSelectorService(placeRepo, categoryRepo)

	params := utils.TripParameters{Category: "Historical", DurationInHours: 5, Tags: []string{"historical"}}
	places, category, err := selector.SelectPlaces(context.Background(), "a historical walk", params, nil)
	require.NoError(t, err)

	assert.Equal(t, "Historical", category)
	require.Len(t, places, 1)
	assert.Equal(t, "Old Fort", places[0].Name)
}

func TestSelectPlacesFallsBackToTagsOnly(t *testing.T) {
	cafe := makeCategory("Cafe")
	bakery := makePlace("Bakery", &cafe, 28.61, 77.21, "peaceful")

	placeRepo := &fakePlaceRepo{approved: []db_models.Place{bakery}}
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{makeCategory("Historical")}}
	selector := NewSelectorService(placeRepo, categoryRepo)

	// Category matches nothing, the tag stage should still find the bakery.
	params := utils.TripParameters{Category: "Historical", DurationInHours: 3, Tags: []string{"peaceful"}}
	places, _, err := selector.SelectPlaces(context.Background(), "a peaceful historical day", params, nil)
	require.NoError(t, err)

	require.Len(t, places, 1)
	assert.Equal(t, "Bakery", places[0].Name)
	assert.Equal(t, 2, placeRepo.sampleCalls)
}

func TestSelectPlacesCuratedFallback(t *testing.T) {
	cafe := makeCategory("Cafe")
	history := makeCategory("Historical")
	night := makeCategory("Nightlife")

	pool := []db_models.Place{
		makePlace("Cafe One", &cafe, 28.6, 77.2),
		makePlace("Cafe Two", &cafe, 28.7, 77.3),
		makePlace("Old Fort", &history, 28.61, 77.21),
		makePlace("Jazz Bar", &night, 28.62, 77.22),
	}

	placeRepo := &fakePlaceRepo{approved: pool}
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{cafe, history, night}}
	selector := NewSelectorService(placeRepo, categoryRepo)

	// A tag nothing carries leaves both sampling stages empty.
	params := utils.TripParameters{DurationInHours: 3, Tags: []string{"underwater"}}
	places, _, err := selector.SelectPlaces(context.Background(), "surprise me", params, nil)
	require.NoError(t, err)

	// One pick per fallback category, in order, never two from the same one.
	require.Len(t, places, 3)
	assert.Equal(t, "Cafe", places[0].Category.Name)
	assert.Equal(t, "Historical", places[1].Category.Name)
	assert.Equal(t, "Nightlife", places[2].Category.Name)
}

func TestSelectPlacesUnfilteredPromptSamplesApproved(t *testing.T) {
	adventure := makeCategory("Adventure")
	pool := []db_models.Place{
		makePlace("Zipline Park", &adventure, 28.6, 77.2),
		makePlace("Rock Wall", &adventure, 28.61, 77.21),
		makePlace("Kayak Point", &adventure, 28.62, 77.22),
		makePlace("Trail Head", &adventure, 28.63, 77.23),
	}

	placeRepo := &fakePlaceRepo{approved: pool}
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{adventure}}
	selector := NewSelectorService(placeRepo, categoryRepo)

	// The interpreted category is ignored because the prompt never mentions
	// it, so the first stage runs as a plain random sample of approved rows.
	params := utils.TripParameters{Category: "photogenic", DurationInHours: 10}
	places, category, err := selector.SelectPlaces(context.Background(), "plan my whole day", params, nil)
	require.NoError(t, err)

	assert.Equal(t, "", category)
	assert.Len(t, places, 4)
	assert.Equal(t, 1, placeRepo.sampleCalls)
}

func TestSelectPlacesUnknownCategoryNameReturnsEmpty(t *testing.T) {
	cafe := makeCategory("Cafe")
	bakery := makePlace("Bakery", &cafe, 28.6, 77.2)

	placeRepo := &fakePlaceRepo{approved: []db_models.Place{bakery}}
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{cafe}}
	selector := NewSelectorService(placeRepo, categoryRepo)

	// "Historical" has no row, so no category sticks to the trip.
	params := utils.TripParameters{Category: "Historical", DurationInHours: 3}
	places, category, err := selector.SelectPlaces(context.Background(), "a historical stroll", params, nil)
	require.NoError(t, err)

	assert.Equal(t, "", category)
	require.Len(t, places, 1)
	assert.Equal(t, "Bakery", places[0].Name)
}

func TestSelectPlacesMergesAndNormalizesTags(t *testing.T) {
	cafe := makeCategory("Cafe")
	bakery := makePlace("Bakery", &cafe, 28.6, 77.2, "cozy")

	placeRepo := &fakePlaceRepo{approved: []db_models.Place{bakery}}
	categoryRepo := &fakeCategoryRepo{categories: []db_models.Category{cafe}}
	selector := NewSelectorService(placeRepo, categoryRepo)

	params := utils.TripParameters{DurationInHours: 3, Tags: []string{" Cozy "}}
	_, _, err := selector.SelectPlaces(context.Background(), "somewhere nice", params, []string{"cozy", "QUIET"})
	require.NoError(t, err)

	assert.Equal(t, []string{"cozy", "quiet"}, placeRepo.lastTags)
}
