package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dailydilli/cmd/fx/account_fx"
	"dailydilli/cmd/fx/category_fx"
	"dailydilli/cmd/fx/controllers_fx"
	"dailydilli/cmd/fx/db_fx"
	"dailydilli/cmd/fx/itinerary_fx"
	"dailydilli/cmd/fx/liked_place_fx"
	"dailydilli/cmd/fx/media_fx"
	"dailydilli/cmd/fx/place_fx"
	"dailydilli/cmd/fx/safety_fx"
	"dailydilli/cmd/fx/search_fx"
	"dailydilli/cmd/fx/suggestion_fx"
	"dailydilli/internal/api/controllers"
	"dailydilli/internal/models/db_models"
	"dailydilli/pkg/logger"
	"dailydilli/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	if _, err := logger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		category_fx.Module,
		place_fx.Module,
		liked_place_fx.Module,
		safety_fx.Module,
		itinerary_fx.Module,
		search_fx.Module,
		suggestion_fx.Module,
		media_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	categoryController *controllers.CategoryController,
	placeController *controllers.PlaceController,
	likedPlaceController *controllers.LikedPlaceController,
	safetyController *controllers.SafetyController,
	itineraryController *controllers.ItineraryController,
	searchController *controllers.SearchController,
	mediaController *controllers.MediaController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		categoryController,
		placeController,
		likedPlaceController,
		safetyController,
		itineraryController,
		searchController,
		mediaController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	categoryController *controllers.CategoryController,
	placeController *controllers.PlaceController,
	likedPlaceController *controllers.LikedPlaceController,
	safetyController *controllers.SafetyController,
	itineraryController *controllers.ItineraryController,
	searchController *controllers.SearchController,
	mediaController *controllers.MediaController) {

	auth := middleware.JWTAuthMiddleware()
	adminOnly := middleware.RoleMiddleware(db_models.RoleAdmin)

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/signup", accountController.SignUp)
	users.POST("/signin", accountController.SignIn)
	users.GET("", auth, adminOnly, accountController.ListUsers)
	users.GET("/:id", auth, accountController.GetUser)
	users.PUT("/:id", auth, accountController.UpdateUser)
	users.DELETE("/:id", auth, accountController.DeleteUser)

	categories := api.Group("/categories")
	categories.GET("", categoryController.ListCategories)
	categories.GET("/:id", categoryController.GetCategory)
	categories.POST("", auth, adminOnly, categoryController.CreateCategory)
	categories.PUT("/:id", auth, adminOnly, categoryController.UpdateCategory)
	categories.DELETE("/:id", auth, adminOnly, categoryController.DeleteCategory)

	places := api.Group("/places")
	places.POST("", auth, placeController.CreatePlace)
	places.GET("", placeController.ListPlaces)
	places.GET("/suggested", placeController.SuggestedPlaces)
	places.GET("/category/:name", placeController.ListPlacesByCategory)
	places.GET("/:id", placeController.GetPlace)
	places.GET("/:id/nearby", placeController.NearbyPlaces)
	places.PUT("/:id", auth, placeController.UpdatePlace)
	places.DELETE("/:id", auth, placeController.DeletePlace)

	likedPlaces := api.Group("/likedplaces", auth)
	likedPlaces.POST("", likedPlaceController.LikePlace)
	likedPlaces.GET("", likedPlaceController.ListLikedPlaces)
	likedPlaces.DELETE("/:place_id", likedPlaceController.UnlikePlace)

	safety := api.Group("/safetyfeedback")
	safety.POST("", auth, safetyController.SubmitFeedback)
	safety.GET("/stats/:placeId", safetyController.SafetyStats)

	itinerary := api.Group("/itinerary")
	itinerary.POST("/from-prompt", itineraryController.FromPrompt)

	search := api.Group("/search")
	search.GET("", searchController.SearchPlaces)
	search.POST("/index", auth, adminOnly, searchController.ReindexPlaces)

	media := api.Group("/media", auth)
	media.POST("/places/:id/images", mediaController.UploadPlaceImages)
	media.DELETE("/places/:placeId/images/:imageIndex", mediaController.DeletePlaceImage)
}
