package db_models

import "github.com/google/uuid"

// PlaceSafetyFeedback records one user's felt-safe answer for one place.
// Stats endpoints aggregate only rows whose author's gender is "female".
type PlaceSafetyFeedback struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_place" json:"user_id"`
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	PlaceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_place" json:"place_id"`
	FeltSafe bool      `gorm:"not null" json:"felt_safe"`
	Comment  string    `gorm:"type:text" json:"comment,omitempty"`
}
