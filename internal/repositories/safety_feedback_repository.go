package repositories

import (
	"context"
	"errors"

	"dailydilli/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SafetyFeedbackRepository interface {
	Create(ctx context.Context, feedback *db_models.PlaceSafetyFeedback) error
	Find(ctx context.Context, userID, placeID uuid.UUID) (*db_models.PlaceSafetyFeedback, error)
	ListFemaleByPlace(ctx context.Context, placeID uuid.UUID) ([]db_models.PlaceSafetyFeedback, error)
}

type safetyFeedbackRepository struct {
	db *gorm.DB
}

func NewSafetyFeedbackRepository(db *gorm.DB) SafetyFeedbackRepository {
	return &safetyFeedbackRepository{db: db}
}

func (r *safetyFeedbackRepository) Create(ctx context.Context, feedback *db_models.PlaceSafetyFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *safetyFeedbackRepository) Find(ctx context.Context, userID, placeID uuid.UUID) (*db_models.PlaceSafetyFeedback, error) {
	var feedback db_models.PlaceSafetyFeedback
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

// ListFemaleByPlace returns feedback authored by users whose gender is
// "female"; safety stats aggregate only these rows.
func (r *safetyFeedbackRepository) ListFemaleByPlace(ctx context.Context, placeID uuid.UUID) ([]db_models.PlaceSafetyFeedback, error) {
	var feedbacks []db_models.PlaceSafetyFeedback
	err := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = place_safety_feedbacks.user_id AND users.deleted_at IS NULL").
		Where("place_safety_feedbacks.place_id = ? AND users.gender = ?", placeID, "female").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
