package response_models

import "dailydilli/internal/models/db_models"

type SafetyStatsResponse struct {
	PlaceID              string `json:"place_id"`
	TotalFemaleResponses int    `json:"total_female_responses"`
	SafeResponses        int    `json:"safe_responses"`
	PercentFeltSafe      int    `json:"percent_felt_safe"`
}

// NearbyPlacesResponse splits the haversine ranking into the nearest cafes
// and the nearest everything-else.
type NearbyPlacesResponse struct {
	Cafes  []db_models.Place `json:"cafes"`
	Others []db_models.Place `json:"others"`
}
