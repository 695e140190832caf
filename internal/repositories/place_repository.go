package repositories

import (
	"context"
	"errors"

	"dailydilli/internal/models/db_models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *db_models.Place) error
	Update(ctx context.Context, place *db_models.Place) error
	UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error)
	ListApproved(ctx context.Context) ([]db_models.Place, error)
	ListApprovedByCategoryName(ctx context.Context, category string) ([]db_models.Place, error)
	ListRecentApproved(ctx context.Context, limit int) ([]db_models.Place, error)
	FindApprovedByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Place, error)
	ListMissingCoordinates(ctx context.Context) ([]db_models.Place, error)

	// SampleApproved returns a random sample of approved places optionally
	// narrowed by category and tag overlap.
	SampleApproved(ctx context.Context, categoryID *uuid.UUID, tags []string, limit int) ([]db_models.Place, error)
	// SampleApprovedByCategoryNames random-samples approved places whose
	// category name is in names.
	SampleApprovedByCategoryNames(ctx context.Context, names []string, limit int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Save(place).Error
}

func (r *placeRepository) UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	return r.db.WithContext(ctx).Model(&db_models.Place{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"latitude": lat, "longitude": lng}).Error
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Place{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) ListApproved(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("status = ?", db_models.PlaceStatusApproved).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListApprovedByCategoryName(ctx context.Context, category string) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Joins("JOIN categories ON categories.id = places.category_id").
		Where("places.status = ? AND LOWER(categories.name) = LOWER(?)", db_models.PlaceStatusApproved, category).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListRecentApproved(ctx context.Context, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("status = ?", db_models.PlaceStatusApproved).
		Order("created_at DESC").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) FindApprovedByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Where("id IN ? AND status = ?", ids, db_models.PlaceStatusApproved).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListMissingCoordinates(ctx context.Context) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("latitude IS NULL OR longitude IS NULL").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) SampleApproved(ctx context.Context, categoryID *uuid.UUID, tags []string, limit int) ([]db_models.Place, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Where("status = ?", db_models.PlaceStatusApproved)

	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if len(tags) > 0 {
		q = q.Where("tags && ?", pq.Array(tags))
	}

	var places []db_models.Place
	err := q.Order("random()").Limit(limit).Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) SampleApprovedByCategoryNames(ctx context.Context, names []string, limit int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Preload("Category").
		Joins("JOIN categories ON categories.id = places.category_id").
		Where("places.status = ? AND categories.name IN ?", db_models.PlaceStatusApproved, names).
		Order("random()").
		Limit(limit).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
