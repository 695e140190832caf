package repositories

import (
	"context"
	"errors"

	"dailydilli/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikedPlaceRepository interface {
	Create(ctx context.Context, like *db_models.LikedPlace) error
	Find(ctx context.Context, userID, placeID uuid.UUID) (*db_models.LikedPlace, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.LikedPlace, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, userID, placeID uuid.UUID) (bool, error)
}

type likedPlaceRepository struct {
	db *gorm.DB
}

func NewLikedPlaceRepository(db *gorm.DB) LikedPlaceRepository {
	return &likedPlaceRepository{db: db}
}

func (r *likedPlaceRepository) Create(ctx context.Context, like *db_models.LikedPlace) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likedPlaceRepository) Find(ctx context.Context, userID, placeID uuid.UUID) (*db_models.LikedPlace, error) {
	var like db_models.LikedPlace
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likedPlaceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.LikedPlace, error) {
	var likes []db_models.LikedPlace
	err := r.db.WithContext(ctx).
		Preload("Place").
		Preload("Place.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *likedPlaceRepository) Delete(ctx context.Context, userID, placeID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&db_models.LikedPlace{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
