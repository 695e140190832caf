package services

import (
	"context"
	"math"

	"github.com/google/uuid"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/response_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

type SafetyServiceInterface interface {
	SubmitFeedback(ctx context.Context, userID, placeID uuid.UUID, feltSafe bool, comment string) (*db_models.PlaceSafetyFeedback, error)
	SafetyStats(ctx context.Context, placeID uuid.UUID) (*response_models.SafetyStatsResponse, error)
}

type SafetyService struct {
	feedbackRepo repositories.SafetyFeedbackRepository
	placeRepo    repositories.PlaceRepository
}

func NewSafetyService(
	feedbackRepo repositories.SafetyFeedbackRepository,
	placeRepo repositories.PlaceRepository,
) SafetyServiceInterface {
	return &SafetyService{
		feedbackRepo: feedbackRepo,
		placeRepo:    placeRepo,
	}
}

func (s *SafetyService) SubmitFeedback(ctx context.Context, userID, placeID uuid.UUID, feltSafe bool, comment string) (*db_models.PlaceSafetyFeedback, error) {
	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	existing, err := s.feedbackRepo.Find(ctx, userID, placeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrDuplicateFeedback
	}

	feedback := &db_models.PlaceSafetyFeedback{
		UserID:   userID,
		PlaceID:  placeID,
		FeltSafe: feltSafe,
		Comment:  comment,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// SafetyStats aggregates feedback from female users only, the demographic
// the safety signal is built for.
func (s *SafetyService) SafetyStats(ctx context.Context, placeID uuid.UUID) (*response_models.SafetyStatsResponse, error) {
	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	entries, err := s.feedbackRepo.ListFemaleByPlace(ctx, placeID)
	if err != nil {
		return nil, err
	}

	stats := &response_models.SafetyStatsResponse{
		PlaceID:              placeID.String(),
		TotalFemaleResponses: len(entries),
	}
	for _, entry := range entries {
		if entry.FeltSafe {
			stats.SafeResponses++
		}
	}
	if stats.TotalFemaleResponses > 0 {
		stats.PercentFeltSafe = int(math.Round(float64(stats.SafeResponses) / float64(stats.TotalFemaleResponses) * 100))
	}
	return stats, nil
}
