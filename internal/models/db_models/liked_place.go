package db_models

import "github.com/google/uuid"

type LikedPlace struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_liked_user_place" json:"user_id"`
	PlaceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_liked_user_place" json:"place_id"`
	Place   *Place    `gorm:"foreignKey:PlaceID" json:"place,omitempty"`
}
