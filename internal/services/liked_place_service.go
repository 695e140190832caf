package services

import (
	"context"

	"github.com/google/uuid"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

type LikedPlaceServiceInterface interface {
	LikePlace(ctx context.Context, userID, placeID uuid.UUID) (*db_models.LikedPlace, error)
	ListLikedPlaces(ctx context.Context, userID uuid.UUID) ([]db_models.LikedPlace, error)
	UnlikePlace(ctx context.Context, userID, placeID uuid.UUID) error
}

type LikedPlaceService struct {
	likedRepo repositories.LikedPlaceRepository
	placeRepo repositories.PlaceRepository
}

func NewLikedPlaceService(
	likedRepo repositories.LikedPlaceRepository,
	placeRepo repositories.PlaceRepository,
) LikedPlaceServiceInterface {
	return &LikedPlaceService{
		likedRepo: likedRepo,
		placeRepo: placeRepo,
	}
}

func (s *LikedPlaceService) LikePlace(ctx context.Context, userID, placeID uuid.UUID) (*db_models.LikedPlace, error) {
	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	existing, err := s.likedRepo.Find(ctx, userID, placeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrAlreadyLiked
	}

	like := &db_models.LikedPlace{
		UserID:  userID,
		PlaceID: placeID,
	}
	if err := s.likedRepo.Create(ctx, like); err != nil {
		return nil, err
	}
	like.Place = place
	return like, nil
}

func (s *LikedPlaceService) ListLikedPlaces(ctx context.Context, userID uuid.UUID) ([]db_models.LikedPlace, error) {
	return s.likedRepo.ListByUser(ctx, userID)
}

func (s *LikedPlaceService) UnlikePlace(ctx context.Context, userID, placeID uuid.UUID) error {
	removed, err := s.likedRepo.Delete(ctx, userID, placeID)
	if err != nil {
		return err
	}
	if !removed {
		return utils.ErrLikeNotFound
	}
	return nil
}
