package request_models

type ItineraryRequest struct {
	Prompt string   `json:"prompt" binding:"required"`
	Tags   []string `json:"tags"`
}
