package safety_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
)

var Module = fx.Provide(
	provideSafetyFeedbackRepo, provideSafetyService)

func provideSafetyFeedbackRepo(db *gorm.DB) repositories.SafetyFeedbackRepository {
	return repositories.NewSafetyFeedbackRepository(db)
}

func provideSafetyService(
	feedbackRepo repositories.SafetyFeedbackRepository,
	placeRepo repositories.PlaceRepository,
) services.SafetyServiceInterface {
	return services.NewSafetyService(feedbackRepo, placeRepo)
}
