package response_models

import "dailydilli/internal/models/db_models"

// TravelLeg is one consecutive pair of itinerary places with its travel
// estimate. Distance and duration are nil when the routing call failed for
// that leg.
type TravelLeg struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Distance        *string `json:"distance"`
	Duration        *string `json:"duration"`
	DurationSeconds *int    `json:"duration_value"`
	MapURL          string  `json:"map_url"`
}

type ItineraryResponse struct {
	Prompt                string            `json:"prompt"`
	DurationInHours       float64           `json:"duration_in_hours"`
	Category              string            `json:"category,omitempty"`
	ModeOfTravel          string            `json:"mode_of_travel"`
	Tags                  []string          `json:"tags"`
	Places                []db_models.Place `json:"places"`
	TravelInfo            []TravelLeg       `json:"travel_info"`
	EstimatedTotalTime    string            `json:"estimated_total_time"`
	EstimatedTotalMinutes int               `json:"estimated_total_time_minutes"`
	FullMapURL            string            `json:"full_map_url"`
}
