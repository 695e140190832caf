package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/response_models"
)

type TravelServiceInterface interface {
	Legs(ctx context.Context, places []db_models.Place, profile string) []response_models.TravelLeg
}

type TravelService struct {
	routes RouteClientInterface
}

func NewTravelService(routes RouteClientInterface) TravelServiceInterface {
	return &TravelService{routes: routes}
}

// Legs estimates travel between each consecutive pair of places. A failed
// lookup leaves that leg's distance and duration unset instead of failing
// the whole itinerary.
func (s *TravelService) Legs(ctx context.Context, places []db_models.Place, profile string) []response_models.TravelLeg {
	if len(places) < 2 {
		return []response_models.TravelLeg{}
	}

	legs := make([]response_models.TravelLeg, 0, len(places)-1)
	for i := 0; i < len(places)-1; i++ {
		from, to := places[i], places[i+1]
		leg := response_models.TravelLeg{
			From: from.Name,
			To:   to.Name,
		}

		if !from.HasCoordinates() || !to.HasCoordinates() {
			legs = append(legs, leg)
			continue
		}

		leg.MapURL = legMapURL(from, to)

		estimate, err := s.routes.TravelTime(ctx, *from.Latitude, *from.Longitude, *to.Latitude, *to.Longitude, profile)
		if err != nil {
			zap.L().Warn("travel time lookup failed for leg",
				zap.String("from", from.Name),
				zap.String("to", to.Name),
				zap.Error(err))
			legs = append(legs, leg)
			continue
		}

		leg.Distance = &estimate.Distance
		leg.Duration = &estimate.Duration
		seconds := estimate.DurationSeconds
		leg.DurationSeconds = &seconds
		legs = append(legs, leg)
	}
	return legs
}

func legMapURL(from, to db_models.Place) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/%v,%v/%v,%v/",
		*from.Latitude, *from.Longitude, *to.Latitude, *to.Longitude)
}
