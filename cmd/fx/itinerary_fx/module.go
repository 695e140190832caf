// cmd/fx/itinerary_fx/module.go
package itinerary_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

var Module = fx.Provide(
	ProvideInterpreterClient,
	provideRouteClient,
	provideTravelService,
	provideSelectorService,
	provideItineraryService)

// InterpreterConfig holds configuration for AI interpreter clients
type InterpreterConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideInterpreterClient creates an interpreter client based on environment variables
func ProvideInterpreterClient() (utils.InterpreterClientInterface, error) {
	config := getInterpreterConfig()

	log.Printf("Initializing %s interpreter client with model: %s", config.Provider, config.Model)

	return utils.NewInterpreterClient(config.Provider, config.APIKey, config.Model)
}

func provideRouteClient() services.RouteClientInterface {
	return services.NewGoogleRouteClient()
}

func provideTravelService(routes services.RouteClientInterface) services.TravelServiceInterface {
	return services.NewTravelService(routes)
}

func provideSelectorService(
	placeRepo repositories.PlaceRepository,
	categoryRepo repositories.CategoryRepository,
) services.SelectorServiceInterface {
	return services.NewSelectorService(placeRepo, categoryRepo)
}

func provideItineraryService(
	interpreter utils.InterpreterClientInterface,
	selector services.SelectorServiceInterface,
	travel services.TravelServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(interpreter, selector, travel)
}

// getInterpreterConfig reads configuration from environment variables
func getInterpreterConfig() InterpreterConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-pro")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return InterpreterConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
