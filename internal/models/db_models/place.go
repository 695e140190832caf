package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	PlaceStatusPending  = "pending"
	PlaceStatusApproved = "approved"
)

// Budget tiers and best-time-to-visit values mirror the place submission
// form; they are validated at the request layer, stored as plain strings.
var (
	BudgetTiers    = []string{"Low", "Medium", "High", "Luxury"}
	BestVisitTimes = []string{"Morning", "Afternoon", "Evening", "Night"}
)

type Place struct {
	BaseModel
	Name        string    `gorm:"not null" json:"name"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null" json:"category_id"`
	Category    *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Description string    `gorm:"type:text" json:"description"`
	// Location is the human-entered address; coordinates are backfilled from
	// it by the geocoder when absent.
	Location         string         `gorm:"not null" json:"location"`
	Latitude         *float64       `json:"latitude"`
	Longitude        *float64       `json:"longitude"`
	Tags             pq.StringArray `gorm:"type:text[]" json:"tags"`
	BudgetPerHead    string         `gorm:"not null" json:"budget_per_head"`
	EntryFee         *float64       `json:"entry_fee,omitempty"`
	BestTimeToVisit  string         `gorm:"not null" json:"best_time_to_visit"`
	ParkingAvailable bool           `gorm:"not null;default:false" json:"parking_available"`
	Images           pq.StringArray `gorm:"type:text[]" json:"images"`
	UserID           *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	User             *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status           string         `gorm:"not null;default:pending" json:"status"`
}

func (p *Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}
