package services

import (
	"context"

	"github.com/google/uuid"

	"dailydilli/internal/models/db_models"
	"dailydilli/pkg/utils"
)

// fakePlaceRepo serves canned approved places and records what was asked of
// it, standing in for the postgres-backed repository.
type fakePlaceRepo struct {
	approved []db_models.Place
	recent   []db_models.Place

	sampleCalls   int
	lastSampleCat *uuid.UUID
	lastTags      []string
	updated       []*db_models.Place
}

func (f *fakePlaceRepo) Create(ctx context.Context, place *db_models.Place) error { return nil }

func (f *fakePlaceRepo) Update(ctx context.Context, place *db_models.Place) error {
	f.updated = append(f.updated, place)
	return nil
}

func (f *fakePlaceRepo) UpdateCoordinates(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	return nil
}

func (f *fakePlaceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakePlaceRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Place, error) {
	for i := range f.approved {
		if f.approved[i].ID == id {
			return &f.approved[i], nil
		}
	}
	return nil, nil
}

func (f *fakePlaceRepo) ListApproved(ctx context.Context) ([]db_models.Place, error) {
	return append([]db_models.Place{}, f.approved...), nil
}

func (f *fakePlaceRepo) ListApprovedByCategoryName(ctx context.Context, category string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.approved {
		if p.Category != nil && p.Category.Name == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) ListRecentApproved(ctx context.Context, limit int) ([]db_models.Place, error) {
	out := append([]db_models.Place{}, f.recent...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePlaceRepo) FindApprovedByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Place, error) {
	wanted := map[uuid.UUID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	var out []db_models.Place
	for _, p := range f.approved {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) ListMissingCoordinates(ctx context.Context) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range f.approved {
		if !p.HasCoordinates() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) SampleApproved(ctx context.Context, categoryID *uuid.UUID, tags []string, limit int) ([]db_models.Place, error) {
	f.sampleCalls++
	f.lastSampleCat = categoryID
	f.lastTags = tags

	var out []db_models.Place
	for _, p := range f.approved {
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		if len(tags) > 0 && !tagsOverlap(p.Tags, tags) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakePlaceRepo) SampleApprovedByCategoryNames(ctx context.Context, names []string, limit int) ([]db_models.Place, error) {
	wanted := map[string]bool{}
	for _, n := range names {
		wanted[n] = true
	}
	var out []db_models.Place
	for _, p := range f.approved {
		if p.Category != nil && wanted[p.Category.Name] {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func tagsOverlap(have []string, want []string) bool {
	set := map[string]bool{}
	for _, t := range have {
		set[t] = true
	}
	for _, t := range want {
		if set[t] {
			return true
		}
	}
	return false
}

type fakeCategoryRepo struct {
	categories []db_models.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *db_models.Category) error {
	return nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, category *db_models.Category) error {
	return nil
}
func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*db_models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Name == name {
			return &f.categories[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]db_models.Category, error) {
	return f.categories, nil
}

type fakeInterpreter struct {
	params   utils.TripParameters
	parseErr error
	keywords []string
	expandEr error
}

func (f *fakeInterpreter) ParseTrip(ctx context.Context, prompt string) (utils.TripParameters, error) {
	return f.params, f.parseErr
}

func (f *fakeInterpreter) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	return f.keywords, f.expandEr
}

func (f *fakeInterpreter) Close() error { return nil }

type fakeSearchIndex struct {
	ids       []uuid.UUID
	searchErr error
	lastBody  map[string]interface{}
	bulkCount int
}

func (f *fakeSearchIndex) SearchPlaces(ctx context.Context, body map[string]interface{}) ([]uuid.UUID, error) {
	f.lastBody = body
	return f.ids, f.searchErr
}

func (f *fakeSearchIndex) IndexPlace(ctx context.Context, place *db_models.Place) error { return nil }

func (f *fakeSearchIndex) DeletePlace(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeSearchIndex) BulkIndexPlaces(ctx context.Context, places []db_models.Place) (int, error) {
	f.bulkCount += len(places)
	return len(places), nil
}

// makePlace builds an approved place with coordinates for tests.
func makePlace(name string, category *db_models.Category, lat, lng float64, tags ...string) db_models.Place {
	place := db_models.Place{
		Name:      name,
		Location:  name + " street",
		Latitude:  &lat,
		Longitude: &lng,
		Tags:      tags,
		Status:    db_models.PlaceStatusApproved,
	}
	place.ID = uuid.New()
	if category != nil {
		place.CategoryID = category.ID
		place.Category = category
	}
	return place
}

func makeCategory(name string) db_models.Category {
	category := db_models.Category{Name: name}
	category.ID = uuid.New()
	return category
}
