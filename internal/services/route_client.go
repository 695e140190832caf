package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// TravelProfile maps a user facing mode of travel onto the profile names
// the directions API understands. Unknown modes fall back to driving.
func TravelProfile(mode string) string {
	switch mode {
	case "car":
		return "driving"
	case "public":
		return "transit"
	case "bike":
		return "bicycling"
	case "walking":
		return "walking"
	default:
		return "driving"
	}
}

type TravelEstimate struct {
	Distance        string
	Duration        string
	DurationSeconds int
}

type RouteClientInterface interface {
	TravelTime(ctx context.Context, originLat, originLng, destLat, destLng float64, profile string) (TravelEstimate, error)
}

type GoogleRouteClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewGoogleRouteClient() RouteClientInterface {
	return &GoogleRouteClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		baseURL:    "https://maps.googleapis.com/maps/api/distancematrix/json",
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Text string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text  string `json:"text"`
				Value int    `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

func (g *GoogleRouteClient) TravelTime(ctx context.Context, originLat, originLng, destLat, destLng float64, profile string) (TravelEstimate, error) {
	params := url.Values{}
	params.Set("origins", fmt.Sprintf("%f,%f", originLat, originLng))
	params.Set("destinations", fmt.Sprintf("%f,%f", destLat, destLng))
	params.Set("mode", profile)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return TravelEstimate{}, fmt.Errorf("build distance matrix request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return TravelEstimate{}, fmt.Errorf("call distance matrix: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return TravelEstimate{}, fmt.Errorf("distance matrix returned status %d", resp.StatusCode)
	}

	var payload distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return TravelEstimate{}, fmt.Errorf("decode distance matrix response: %w", err)
	}

	if payload.Status != "OK" || len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return TravelEstimate{}, fmt.Errorf("distance matrix returned status %q", payload.Status)
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return TravelEstimate{}, fmt.Errorf("no route between points: %s", element.Status)
	}

	return TravelEstimate{
		Distance:        element.Distance.Text,
		Duration:        element.Duration.Text,
		DurationSeconds: element.Duration.Value,
	}, nil
}
