package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/request_models"
	"dailydilli/internal/models/response_models"
	"dailydilli/pkg/utils"
)

// dwellMinutes is the assumed time spent at each stop.
const dwellMinutes = 90

// mapURLPlaceLimit caps how many stops go into the combined directions link.
const mapURLPlaceLimit = 10

type ItineraryServiceInterface interface {
	BuildFromPrompt(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	interpreter utils.InterpreterClientInterface
	selector    SelectorServiceInterface
	travel      TravelServiceInterface
}

func NewItineraryService(
	interpreter utils.InterpreterClientInterface,
	selector SelectorServiceInterface,
	travel TravelServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		interpreter: interpreter,
		selector:    selector,
		travel:      travel,
	}
}

func (s *ItineraryService) BuildFromPrompt(ctx context.Context, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	params, err := s.interpreter.ParseTrip(ctx, req.Prompt)
	if err != nil {
		zap.L().Warn("trip interpretation failed, using defaults", zap.Error(err))
		params = utils.DefaultTripParameters()
	}

	places, category, err := s.selector.SelectPlaces(ctx, req.Prompt, params, req.Tags)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, utils.ErrPlaceNotFound
	}

	profile := TravelProfile(params.ModeOfTravel)
	legs := s.travel.Legs(ctx, places, profile)

	totalMinutes := len(places) * dwellMinutes
	travelSeconds := 0
	for _, leg := range legs {
		if leg.DurationSeconds != nil {
			travelSeconds += *leg.DurationSeconds
		}
	}
	totalMinutes += int(math.Round(float64(travelSeconds) / 60))

	return &response_models.ItineraryResponse{
		Prompt:                req.Prompt,
		DurationInHours:       params.DurationInHours,
		Category:              category,
		ModeOfTravel:          params.ModeOfTravel,
		Tags:                  req.Tags,
		Places:                places,
		TravelInfo:            legs,
		EstimatedTotalTime:    FormatTotalTime(totalMinutes),
		EstimatedTotalMinutes: totalMinutes,
		FullMapURL:            FullMapURL(places),
	}, nil
}

// FormatTotalTime renders minutes as "H hr(s) M min(s)" with singular units
// when a component equals one.
func FormatTotalTime(totalMinutes int) string {
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	hourUnit := "hrs"
	if hours == 1 {
		hourUnit = "hr"
	}
	minuteUnit := "mins"
	if minutes == 1 {
		minuteUnit = "min"
	}
	return fmt.Sprintf("%d %s %d %s", hours, hourUnit, minutes, minuteUnit)
}

// FullMapURL builds one directions link covering the first stops of the
// itinerary. Stops without coordinates are skipped.
func FullMapURL(places []db_models.Place) string {
	points := make([]string, 0, mapURLPlaceLimit)
	for _, place := range places {
		if len(points) == mapURLPlaceLimit {
			break
		}
		if !place.HasCoordinates() {
			continue
		}
		points = append(points, fmt.Sprintf("%v,%v", *place.Latitude, *place.Longitude))
	}
	if len(points) == 0 {
		return ""
	}
	return "https://www.google.com/maps/dir/" + strings.Join(points, "/")
}
