package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// TripParameters is the structured form of a free-text itinerary prompt.
type TripParameters struct {
	Location        string   `json:"location"`
	DurationInHours float64  `json:"duration_in_hours"`
	Category        string   `json:"category"`
	Budget          string   `json:"budget"`
	ModeOfTravel    string   `json:"mode_of_travel"`
	Tags            []string `json:"tags"`
	PlaceKeywords   []string `json:"place_keywords"`
}

// InterpreterClientInterface wraps the two text-completion calls the app
// makes: itinerary prompt parsing and search query expansion.
type InterpreterClientInterface interface {
	ParseTrip(ctx context.Context, prompt string) (TripParameters, error)
	ExpandQuery(ctx context.Context, query string) ([]string, error)
	Close() error
}

// DefaultTripParameters are substituted wholesale when parsing fails.
func DefaultTripParameters() TripParameters {
	return TripParameters{
		Location:        "Delhi",
		DurationInHours: 3,
		Category:        "photogenic",
		Budget:          "medium",
		ModeOfTravel:    "public",
		Tags:            []string{},
		PlaceKeywords:   []string{},
	}
}

// DecodeTripParameters parses model output, filling each absent field with
// its default. Markdown code fences are stripped first since models add them
// despite instructions.
func DecodeTripParameters(raw string) (TripParameters, error) {
	cleaned := strings.TrimSpace(stripCodeFences(raw))

	var parsed TripParameters
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return DefaultTripParameters(), fmt.Errorf("trip parameters: %w", err)
	}

	defaults := DefaultTripParameters()
	if parsed.Location == "" {
		parsed.Location = defaults.Location
	}
	if parsed.DurationInHours <= 0 {
		parsed.DurationInHours = defaults.DurationInHours
	}
	if parsed.Category == "" {
		parsed.Category = defaults.Category
	}
	if parsed.Budget == "" {
		parsed.Budget = defaults.Budget
	}
	if parsed.ModeOfTravel == "" {
		parsed.ModeOfTravel = defaults.ModeOfTravel
	}
	if parsed.Tags == nil {
		parsed.Tags = []string{}
	}
	if parsed.PlaceKeywords == nil {
		parsed.PlaceKeywords = []string{}
	}
	return parsed, nil
}

// DecodeKeywordList turns a comma-separated completion into lowercased,
// trimmed keywords.
func DecodeKeywordList(raw string) []string {
	parts := strings.Split(stripCodeFences(raw), ",")
	keywords := make([]string, 0, len(parts))
	for _, p := range parts {
		word := strings.ToLower(strings.TrimSpace(p))
		if word != "" {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

const tripPrompt = `You're an intelligent travel assistant. Given a user's free-form query, extract structured values for building a personalized travel itinerary.

User Input: %q

Respond ONLY in strict JSON with the following structure:

{
  "location": string,
  "duration_in_hours": number,
  "category": string,
  "budget": "low" | "medium" | "high" | "luxury",
  "mode_of_travel": "car" | "public" | "bike" | "walking",
  "tags": string[],
  "place_keywords": string[]
}

Defaults if missing:
- location: "Delhi"
- duration_in_hours: 3
- category: "photogenic"
- budget: "medium"
- mode_of_travel: "public"
- tags: []
- place_keywords: []

Return only valid JSON. Do NOT include any explanation or markdown code blocks.`

const expandPrompt = `You are an AI assistant helping users find travel destinations in a recommendation app.

The app supports the following categories:
- Historical
- Cafe
- Adventure
- Romantic
- Shopping
- Religious
- Cultural
- Entertainment
- Nightlife
- Family-friendly

It also supports these tags:
Romantic, Family-Friendly, Budget-Friendly, Luxury, Near Metro, Peaceful, Photogenic, Nature, Historical, Night Views.

A user entered the following search query: %q

Your job is to expand this query into a comma-separated list of relevant search keywords or synonyms that match the above categories or tags. Only return that list. No explanations or extra text.`

// NewInterpreterClient selects the completion provider by name.
func NewInterpreterClient(provider, apiKey, model string) (InterpreterClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIInterpreterClient(apiKey, model), nil
	case "gemini", "":
		return NewGeminiInterpreterClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
