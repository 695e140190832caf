package controllers_fx

import (
	"go.uber.org/fx"

	"dailydilli/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewLikedPlaceController),
	fx.Provide(controllers.NewSafetyController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewSearchController),
	fx.Provide(controllers.NewMediaController))
