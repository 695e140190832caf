package request_models

import "github.com/google/uuid"

type LikePlaceRequest struct {
	PlaceID uuid.UUID `json:"place_id" binding:"required"`
}

type SafetyFeedbackRequest struct {
	PlaceID  uuid.UUID `json:"place_id" binding:"required"`
	FeltSafe *bool     `json:"felt_safe" binding:"required"`
	Comment  string    `json:"comment"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
