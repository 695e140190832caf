package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go/v2"
	"go.uber.org/zap"

	"dailydilli/internal/models/db_models"
	"dailydilli/pkg/utils"
)

const placesIndexName = "places_index_v2"

type SearchIndexInterface interface {
	// SearchPlaces runs a raw query body against the places index and
	// returns matching document IDs in engine score order.
	SearchPlaces(ctx context.Context, body map[string]interface{}) ([]uuid.UUID, error)
	IndexPlace(ctx context.Context, place *db_models.Place) error
	DeletePlace(ctx context.Context, id uuid.UUID) error
	BulkIndexPlaces(ctx context.Context, places []db_models.Place) (int, error)
}

type openSearchIndex struct {
	client *opensearch.Client
}

func NewSearchIndex(client *opensearch.Client) SearchIndexInterface {
	return &openSearchIndex{client: client}
}

type placeDocument struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	BudgetPerHead    string   `json:"budget_per_head"`
	BestTimeToVisit  string   `json:"best_time_to_visit"`
	ParkingAvailable bool     `json:"parking_available"`
}

func documentFromPlace(place *db_models.Place) placeDocument {
	doc := placeDocument{
		ID:               place.ID.String(),
		Name:             place.Name,
		Description:      place.Description,
		Location:         place.Location,
		Tags:             place.Tags,
		BudgetPerHead:    place.BudgetPerHead,
		BestTimeToVisit:  place.BestTimeToVisit,
		ParkingAvailable: place.ParkingAvailable,
	}
	if place.Category != nil {
		doc.Category = place.Category.Name
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	return doc
}

func (s *openSearchIndex) SearchPlaces(ctx context.Context, body map[string]interface{}) ([]uuid.UUID, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(placesIndexName),
		s.client.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSearchEngine, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: search returned status %d", utils.ErrSearchEngine, res.StatusCode)
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", utils.ErrSearchEngine, err)
	}

	ids := make([]uuid.UUID, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			zap.L().Warn("skipping search hit with malformed id", zap.String("id", hit.ID))
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *openSearchIndex) IndexPlace(ctx context.Context, place *db_models.Place) error {
	payload, err := json.Marshal(documentFromPlace(place))
	if err != nil {
		return fmt.Errorf("marshal place document: %w", err)
	}

	res, err := s.client.Index(
		placesIndexName,
		bytes.NewReader(payload),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(place.ID.String()),
		s.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSearchEngine, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: index returned status %d", utils.ErrSearchEngine, res.StatusCode)
	}
	return nil
}

// DeletePlace removes a place document. A missing document is logged and
// ignored so callers can treat deletion as idempotent.
func (s *openSearchIndex) DeletePlace(ctx context.Context, id uuid.UUID) error {
	res, err := s.client.Delete(
		placesIndexName,
		id.String(),
		s.client.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrSearchEngine, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		zap.L().Warn("place document already absent from index", zap.String("place_id", id.String()))
		return nil
	}
	if res.IsError() {
		return fmt.Errorf("%w: delete returned status %d", utils.ErrSearchEngine, res.StatusCode)
	}
	return nil
}

func (s *openSearchIndex) BulkIndexPlaces(ctx context.Context, places []db_models.Place) (int, error) {
	if len(places) == 0 {
		return 0, nil
	}

	var buf bytes.Buffer
	for i := range places {
		action := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": placesIndexName,
				"_id":    places[i].ID.String(),
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return 0, fmt.Errorf("marshal bulk action: %w", err)
		}
		docLine, err := json.Marshal(documentFromPlace(&places[i]))
		if err != nil {
			return 0, fmt.Errorf("marshal bulk document: %w", err)
		}
		buf.Write(actionLine)
		buf.WriteByte('\n')
		buf.Write(docLine)
		buf.WriteByte('\n')
	}

	res, err := s.client.Bulk(
		bytes.NewReader(buf.Bytes()),
		s.client.Bulk.WithContext(ctx),
		s.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrSearchEngine, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("%w: bulk returned status %d", utils.ErrSearchEngine, res.StatusCode)
	}

	var parsed struct {
		Errors bool `json:"errors"`
		Items  []struct {
			Index struct {
				Status int `json:"status"`
			} `json:"index"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("%w: decode bulk response: %v", utils.ErrSearchEngine, err)
	}

	indexed := 0
	for _, item := range parsed.Items {
		if item.Index.Status < 300 {
			indexed++
		}
	}
	if parsed.Errors {
		zap.L().Warn("bulk indexing completed with failures",
			zap.Int("indexed", indexed),
			zap.Int("total", len(places)))
	}
	return indexed, nil
}
