package request_models

type CreatePlaceRequest struct {
	Name             string   `json:"name" binding:"required"`
	Category         string   `json:"category" binding:"required"`
	Description      string   `json:"description"`
	Location         string   `json:"location" binding:"required"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Tags             []string `json:"tags"`
	BudgetPerHead    string   `json:"budget_per_head" binding:"required,oneof=Low Medium High Luxury"`
	EntryFee         *float64 `json:"entry_fee"`
	BestTimeToVisit  string   `json:"best_time_to_visit" binding:"required,oneof=Morning Afternoon Evening Night"`
	ParkingAvailable bool     `json:"parking_available"`
	Images           []string `json:"images"`
}

type UpdatePlaceRequest struct {
	Name             *string  `json:"name"`
	Category         *string  `json:"category"`
	Description      *string  `json:"description"`
	Location         *string  `json:"location"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Tags             []string `json:"tags"`
	BudgetPerHead    *string  `json:"budget_per_head"`
	EntryFee         *float64 `json:"entry_fee"`
	BestTimeToVisit  *string  `json:"best_time_to_visit"`
	ParkingAvailable *bool    `json:"parking_available"`
	Status           *string  `json:"status"`
}
