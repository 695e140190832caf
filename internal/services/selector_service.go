package services

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

// foodIntentPattern flags prompts that are really about eating. Such trips
// are pinned to the Cafe category no matter what the interpreter suggested.
var foodIntentPattern = regexp.MustCompile(`(?i)\b(hungry|eat|food|breakfast|lunch|dinner|snack|street\s*food|cafe)\b`)

// fallbackCategories seeds an itinerary when nothing matches: one pick per
// category, in this order.
var fallbackCategories = []string{"Cafe", "Historical", "Nightlife"}

const hoursPerPlace = 2.5

type SelectorServiceInterface interface {
	// SelectPlaces picks the places for a trip and reports the category the
	// selection actually honoured, which may differ from the interpreted one.
	SelectPlaces(ctx context.Context, prompt string, params utils.TripParameters, extraTags []string) ([]db_models.Place, string, error)
}

type SelectorService struct {
	placeRepo    repositories.PlaceRepository
	categoryRepo repositories.CategoryRepository
}

func NewSelectorService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository,
) SelectorServiceInterface {
	return &SelectorService{
		placeRepo:    placeRepo,
		categoryRepo: categoryRepo,
	}
}

// NeededPlaces sizes an itinerary from its duration, budgeting two and a
// half hours per stop with a floor of three stops.
func NeededPlaces(durationInHours float64) int {
	needed := int(math.Floor(durationInHours / hoursPerPlace))
	if needed < 3 {
		return 3
	}
	return needed
}

// EffectiveCategory decides which category a trip is filtered by. Food
// wording in the prompt wins outright; otherwise the interpreted category is
// trusted only when the prompt itself mentions it.
func EffectiveCategory(prompt, interpreted string) string {
	if foodIntentPattern.MatchString(prompt) {
		return "Cafe"
	}
	if interpreted != "" && strings.Contains(strings.ToLower(prompt), strings.ToLower(interpreted)) {
		return interpreted
	}
	return ""
}

func (s *SelectorService) SelectPlaces(ctx context.Context, prompt string, params utils.TripParameters, extraTags []string) ([]db_models.Place, string, error) {
	needed := NeededPlaces(params.DurationInHours)
	categoryName := EffectiveCategory(prompt, params.Category)
	tags := mergeTags(params.Tags, extraTags)

	var categoryID *uuid.UUID
	if categoryName != "" {
		category, err := s.categoryRepo.FindByName(ctx, categoryName)
		if err != nil {
			return nil, "", err
		}
		if category != nil {
			categoryID = &category.ID
		} else {
			// the trip carries a category only when a matching row exists
			categoryName = ""
		}
	}

	// Stage one always runs with whatever filters resolved. With neither a
	// category nor tags it is a plain random sample of approved places.
	places, err := s.placeRepo.SampleApproved(ctx, categoryID, tags, needed)
	if err != nil {
		return nil, "", err
	}
	if len(places) > 0 {
		return places, categoryName, nil
	}

	// Stage two drops the category and retries on tags alone.
	if categoryID != nil {
		places, err = s.placeRepo.SampleApproved(ctx, nil, tags, needed)
		if err != nil {
			return nil, "", err
		}
		if len(places) > 0 {
			return places, categoryName, nil
		}
	}

	zap.L().Info("no tag or category match for prompt, using curated fallback",
		zap.String("prompt", prompt))
	places, err = s.curatedFallback(ctx)
	if err != nil {
		return nil, "", err
	}
	return places, categoryName, nil
}

// curatedFallback draws a small random pool from the fallback categories and
// keeps at most one place per category, preserving the category order.
func (s *SelectorService) curatedFallback(ctx context.Context) ([]db_models.Place, error) {
	pool, err := s.placeRepo.SampleApprovedByCategoryNames(ctx, fallbackCategories, 9)
	if err != nil {
		return nil, err
	}

	picks := make([]db_models.Place, 0, len(fallbackCategories))
	for _, name := range fallbackCategories {
		for _, place := range pool {
			if place.Category != nil && place.Category.Name == name {
				picks = append(picks, place)
				break
			}
		}
	}
	return picks, nil
}

func mergeTags(groups ...[]string) []string {
	seen := map[string]bool{}
	merged := []string{}
	for _, group := range groups {
		for _, tag := range group {
			normalized := strings.ToLower(strings.TrimSpace(tag))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			merged = append(merged, normalized)
		}
	}
	return merged
}
