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

type GeocoderInterface interface {
	Coordinates(ctx context.Context, address string) (lat float64, lng float64, err error)
}

type GoogleGeocoder struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewGoogleGeocoder() GeocoderInterface {
	return &GoogleGeocoder{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		baseURL:    "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GoogleGeocoder) Coordinates(ctx context.Context, address string) (float64, float64, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("call geocoder: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("decode geocode response: %w", err)
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return 0, 0, fmt.Errorf("no geocode result for %q: %s", address, payload.Status)
	}

	loc := payload.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
