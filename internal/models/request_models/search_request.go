package request_models

// SearchRequest carries the free-text query plus the structured filters the
// search endpoint accepts as query parameters.
type SearchRequest struct {
	Query            string `form:"query"`
	Category         string `form:"category"`
	BudgetPerHead    string `form:"budget_per_head"`
	Tags             string `form:"tags"` // comma-separated
	ParkingAvailable *bool  `form:"parking_available"`
	BestTimeToVisit  string `form:"best_time_to_visit"`
}
