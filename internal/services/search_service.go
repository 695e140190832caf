package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/models/request_models"
	"dailydilli/internal/repositories"
	"dailydilli/pkg/utils"
)

const searchResultSize = 10

// contradictionPairs lists keyword pairs that cancel each other out. When an
// expanded query contains both members, the first one is dropped.
var contradictionPairs = [][2]string{
	{"luxury", "budget-friendly"},
	{"peaceful", "crowded"},
}

type SearchServiceInterface interface {
	SearchPlaces(ctx context.Context, req request_models.SearchRequest) ([]db_models.Place, error)
	ReindexAll(ctx context.Context) (int, error)
}

type SearchService struct {
	interpreter utils.InterpreterClientInterface
	index       SearchIndexInterface
	placeRepo   repositories.PlaceRepository
}

func NewSearchService(
	interpreter utils.InterpreterClientInterface,
	index SearchIndexInterface,
	placeRepo repositories.PlaceRepository,
) SearchServiceInterface {
	return &SearchService{
		interpreter: interpreter,
		index:       index,
		placeRepo:   placeRepo,
	}
}

func (s *SearchService) SearchPlaces(ctx context.Context, req request_models.SearchRequest) ([]db_models.Place, error) {
	var keywords []string
	if strings.TrimSpace(req.Query) != "" {
		expanded, err := s.interpreter.ExpandQuery(ctx, req.Query)
		if err != nil {
			zap.L().Warn("query expansion failed, searching without keywords", zap.Error(err))
		} else {
			keywords = FilterContradictions(expanded)
		}
	}

	body := BuildSearchBody(req, keywords)
	ids, err := s.index.SearchPlaces(ctx, body)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return s.placeRepo.ListRecentApproved(ctx, searchResultSize)
	}

	places, err := s.placeRepo.FindApprovedByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(places, ids), nil
}

// ReindexAll pushes every approved place into the search index and returns
// how many documents were written.
func (s *SearchService) ReindexAll(ctx context.Context) (int, error) {
	places, err := s.placeRepo.ListApproved(ctx)
	if err != nil {
		return 0, err
	}
	return s.index.BulkIndexPlaces(ctx, places)
}

// FilterContradictions removes the first member of every contradiction pair
// whose two members both appear in the keyword list.
func FilterContradictions(keywords []string) []string {
	drop := map[string]bool{}
	present := map[string]bool{}
	for _, kw := range keywords {
		present[strings.ToLower(kw)] = true
	}
	for _, pair := range contradictionPairs {
		if present[pair[0]] && present[pair[1]] {
			drop[pair[0]] = true
		}
	}

	filtered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if drop[strings.ToLower(kw)] {
			continue
		}
		filtered = append(filtered, kw)
	}
	return filtered
}

// BuildSearchBody assembles the boolean query sent to the places index.
// Structured filters become must clauses, the free-text query and expanded
// keywords become should clauses scored by relevance.
func BuildSearchBody(req request_models.SearchRequest, keywords []string) map[string]interface{} {
	must := []map[string]interface{}{}
	should := []map[string]interface{}{}

	if req.Category != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"category": req.Category},
		})
	}
	if req.BudgetPerHead != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"budget_per_head": req.BudgetPerHead},
		})
	}
	if req.BestTimeToVisit != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"best_time_to_visit": req.BestTimeToVisit},
		})
	}
	if req.ParkingAvailable != nil {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"parking_available": *req.ParkingAvailable},
		})
	}
	if tags := splitTags(req.Tags); len(tags) > 0 {
		must = append(must, map[string]interface{}{
			"terms": map[string]interface{}{"tags": tags},
		})
	}

	if strings.TrimSpace(req.Query) != "" {
		should = append(should,
			map[string]interface{}{
				"match_phrase": map[string]interface{}{
					"name": map[string]interface{}{
						"query": req.Query,
						"boost": 8,
					},
				},
			},
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":     req.Query,
					"fields":    []string{"name^3", "description", "tags"},
					"fuzziness": "AUTO",
					"boost":     2,
				},
			},
		)
	}
	for _, kw := range keywords {
		should = append(should, map[string]interface{}{
			"match": map[string]interface{}{
				"tags": map[string]interface{}{
					"query":     kw,
					"fuzziness": "AUTO",
				},
			},
		})
	}

	boolQuery := map[string]interface{}{
		"must":   must,
		"should": should,
	}
	if len(should) > 0 {
		boolQuery["minimum_should_match"] = 1
	}

	return map[string]interface{}{
		"size":  searchResultSize,
		"query": map[string]interface{}{"bool": boolQuery},
		"sort": []map[string]interface{}{
			{"_score": map[string]interface{}{"order": "desc"}},
		},
	}
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, strings.ToLower(trimmed))
		}
	}
	return tags
}

func orderByIDs(places []db_models.Place, ids []uuid.UUID) []db_models.Place {
	byID := make(map[uuid.UUID]db_models.Place, len(places))
	for _, place := range places {
		byID[place.ID] = place
	}
	ordered := make([]db_models.Place, 0, len(places))
	for _, id := range ids {
		if place, ok := byID[id]; ok {
			ordered = append(ordered, place)
		}
	}
	return ordered
}
