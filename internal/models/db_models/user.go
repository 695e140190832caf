package db_models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	BaseModel
	FirstName       string     `gorm:"not null" json:"first_name"`
	LastName        string     `gorm:"not null" json:"last_name"`
	Email           string     `gorm:"unique;not null" json:"email"`
	Password        string     `gorm:"not null" json:"-"`
	TravellingSince *time.Time `json:"travelling_since,omitempty"`
	Role            string     `gorm:"default:user" json:"role"`
	// Gender is optional; only "female" participates in safety stats.
	Gender string `json:"gender,omitempty"`

	Places      []Place      `gorm:"foreignKey:UserID" json:"-"`
	LikedPlaces []LikedPlace `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
