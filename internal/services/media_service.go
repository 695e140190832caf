package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

const maxImageBytes = 5 << 20

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type MediaServiceInterface interface {
	UploadPlaceImages(ctx context.Context, caller Caller, placeID uuid.UUID, files []*multipart.FileHeader) (*db_models.Place, error)
	DeletePlaceImage(ctx context.Context, caller Caller, placeID uuid.UUID, imageIndex int) (*db_models.Place, error)
}

type MediaService struct {
	placeRepo repositories.PlaceRepository
	store     MediaStoreInterface
}

func NewMediaService(placeRepo repositories.PlaceRepository, store MediaStoreInterface) MediaServiceInterface {
	return &MediaService{
		placeRepo: placeRepo,
		store:     store,
	}
}

func (s *MediaService) UploadPlaceImages(ctx context.Context, caller Caller, placeID uuid.UUID, files []*multipart.FileHeader) (*db_models.Place, error) {
	if len(files) == 0 {
		return nil, utils.ErrInvalidInput
	}

	place, err := s.loadModifiable(ctx, caller, placeID)
	if err != nil {
		return nil, err
	}

	for _, header := range files {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		contentType, ok := imageContentTypes[ext]
		if !ok {
			return nil, utils.ErrInvalidInput
		}
		if header.Size > maxImageBytes {
			return nil, utils.ErrInvalidInput
		}

		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		key := "place-images/" + uuid.New().String() + ext
		url, err := s.store.Upload(ctx, key, contentType, file)
		file.Close()
		if err != nil {
			return nil, utils.ErrMediaStorage
		}
		place.Images = append(place.Images, url)
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// DeletePlaceImage drops one image by position. The object removal from
// storage is best-effort; the database row is the source of truth.
func (s *MediaService) DeletePlaceImage(ctx context.Context, caller Caller, placeID uuid.UUID, imageIndex int) (*db_models.Place, error) {
	place, err := s.loadModifiable(ctx, caller, placeID)
	if err != nil {
		return nil, err
	}

	if imageIndex < 0 || imageIndex >= len(place.Images) {
		return nil, utils.ErrInvalidInput
	}

	url := place.Images[imageIndex]
	if key := s.store.KeyFromURL(url); key != "" {
		if err := s.store.Delete(ctx, key); err != nil {
			zap.L().Warn("failed to delete image object",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	place.Images = append(place.Images[:imageIndex], place.Images[imageIndex+1:]...)
	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *MediaService) loadModifiable(ctx context.Context, caller Caller, placeID uuid.UUID) (*db_models.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}

	isOwner := place.UserID != nil && *place.UserID == caller.UserID
	if caller.Role != db_models.RoleAdmin && !isOwner {
		return nil, utils.ErrForbidden
	}
	return place, nil
}
