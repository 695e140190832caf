package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/request_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

type PlaceServiceInterface interface {
	CreatePlace(ctx context.Context, caller Caller, req request_models.CreatePlaceRequest) (*db_models.Place, error)
	UpdatePlace(ctx context.Context, caller Caller, id uuid.UUID, req request_models.UpdatePlaceRequest) (*db_models.Place, error)
	DeletePlace(ctx context.Context, caller Caller, id uuid.UUID) error
	GetPlace(ctx context.Context, id uuid.UUID) (*db_models.Place, error)
	ListPlaces(ctx context.Context) ([]db_models.Place, error)
	ListPlacesByCategory(ctx context.Context, category string) ([]db_models.Place, error)
}

type PlaceService struct {
	placeRepo    repositories.PlaceRepository
	categoryRepo repositories.CategoryRepository
	geocoder     GeocoderInterface
	index        SearchIndexInterface
}

func NewPlaceService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository,
	geocoder GeocoderInterface,
	index SearchIndexInterface,
) PlaceServiceInterface {
	return &PlaceService{
		placeRepo:    placeRepo,
		categoryRepo: categoryRepo,
		geocoder:     geocoder,
		index:        index,
	}
}

func (s *PlaceService) CreatePlace(ctx context.Context, caller Caller, req request_models.CreatePlaceRequest) (*db_models.Place, error) {
	category, err := s.categoryRepo.FindByName(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	place := &db_models.Place{
		Name:             req.Name,
		CategoryID:       category.ID,
		Category:         category,
		Description:      req.Description,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		Tags:             req.Tags,
		BudgetPerHead:    req.BudgetPerHead,
		EntryFee:         req.EntryFee,
		BestTimeToVisit:  req.BestTimeToVisit,
		ParkingAvailable: req.ParkingAvailable,
		Images:           req.Images,
		UserID:           &caller.UserID,
		Status:           db_models.PlaceStatusApproved,
	}

	if !place.HasCoordinates() {
		s.backfillCoordinates(ctx, place)
	}

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}

	if err := s.index.IndexPlace(ctx, place); err != nil {
		zap.L().Warn("failed to index new place",
			zap.String("place_id", place.ID.String()),
			zap.Error(err))
	}
	return place, nil
}

func (s *PlaceService) UpdatePlace(ctx context.Context, caller Caller, id uuid.UUID, req request_models.UpdatePlaceRequest) (*db_models.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	if !s.canModify(caller, place) {
		return nil, utils.ErrForbidden
	}

	if req.Category != nil {
		category, err := s.categoryRepo.FindByName(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
		place.CategoryID = category.ID
		place.Category = category
	}
	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Tags != nil {
		place.Tags = req.Tags
	}
	if req.BudgetPerHead != nil {
		if !contains(db_models.BudgetTiers, *req.BudgetPerHead) {
			return nil, utils.ErrInvalidInput
		}
		place.BudgetPerHead = *req.BudgetPerHead
	}
	if req.EntryFee != nil {
		place.EntryFee = req.EntryFee
	}
	if req.BestTimeToVisit != nil {
		if !contains(db_models.BestVisitTimes, *req.BestTimeToVisit) {
			return nil, utils.ErrInvalidInput
		}
		place.BestTimeToVisit = *req.BestTimeToVisit
	}
	if req.ParkingAvailable != nil {
		place.ParkingAvailable = *req.ParkingAvailable
	}
	if req.Status != nil {
		if caller.Role != db_models.RoleAdmin {
			return nil, utils.ErrForbidden
		}
		if *req.Status != db_models.PlaceStatusPending && *req.Status != db_models.PlaceStatusApproved {
			return nil, utils.ErrInvalidInput
		}
		place.Status = *req.Status
	}

	if req.Latitude != nil && req.Longitude != nil {
		place.Latitude = req.Latitude
		place.Longitude = req.Longitude
	}
	if req.Location != nil && *req.Location != place.Location {
		place.Location = *req.Location
		if req.Latitude == nil || req.Longitude == nil {
			place.Latitude, place.Longitude = nil, nil
			s.backfillCoordinates(ctx, place)
		}
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	if err := s.index.IndexPlace(ctx, place); err != nil {
		zap.L().Warn("failed to re-index updated place",
			zap.String("place_id", place.ID.String()),
			zap.Error(err))
	}
	return place, nil
}

func (s *PlaceService) DeletePlace(ctx context.Context, caller Caller, id uuid.UUID) error {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}
	if !s.canModify(caller, place) {
		return utils.ErrForbidden
	}

	if err := s.placeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.index.DeletePlace(ctx, id); err != nil {
		zap.L().Warn("failed to remove place from index",
			zap.String("place_id", id.String()),
			zap.Error(err))
	}
	return nil
}

func (s *PlaceService) GetPlace(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	return place, nil
}

func (s *PlaceService) ListPlaces(ctx context.Context) ([]db_models.Place, error) {
	return s.placeRepo.ListApproved(ctx)
}

func (s *PlaceService) ListPlacesByCategory(ctx context.Context, category string) ([]db_models.Place, error) {
	return s.placeRepo.ListApprovedByCategoryName(ctx, category)
}

func (s *PlaceService) canModify(caller Caller, place *db_models.Place) bool {
	if caller.Role == db_models.RoleAdmin {
		return true
	}
	return place.UserID != nil && *place.UserID == caller.UserID
}

func (s *PlaceService) backfillCoordinates(ctx context.Context, place *db_models.Place) {
	lat, lng, err := s.geocoder.Coordinates(ctx, place.Location)
	if err != nil {
		zap.L().Warn("geocoding failed, storing place without coordinates",
			zap.String("location", place.Location),
			zap.Error(err))
		return
	}
	place.Latitude, place.Longitude = &lat, &lng
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
