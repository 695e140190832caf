package search_fx

import (
	"github.com/opensearch-project/opensearch-go/v2"
	"go.uber.org/fx"

	"dailydilli/internal/infra"
	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

var Module = fx.Provide(
	provideOpenSearchClient, provideSearchIndex, provideSearchService)

func provideOpenSearchClient() *opensearch.Client {
	return infra.InitOpenSearch()
}

func provideSearchIndex(client *opensearch.Client) services.SearchIndexInterface {
	return services.NewSearchIndex(client)
}

func provideSearchService(
	interpreter utils.InterpreterClientInterface,
	index services.SearchIndexInterface,
	placeRepo repositories.PlaceRepository,
) services.SearchServiceInterface {
	return services.NewSearchService(interpreter, index, placeRepo)
}
