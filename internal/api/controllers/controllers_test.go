package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dailydilli/internal/models/db_models"
	"dailydilli/internal/repositories"
	"dailydilli/internal/services"
	"dailydilli/pkg/middleware"
	"dailydilli/pkg/utils"
)

type stubGeocoder struct{}

func (stubGeocoder) Coordinates(ctx context.Context, address string) (float64, float64, error) {
	return 28.6139, 77.209, nil
}

type stubSearchIndex struct{}

func (stubSearchIndex) SearchPlaces(ctx context.Context, body map[string]interface{}) ([]uuid.UUID, error) {
	return nil, nil
}
func (stubSearchIndex) IndexPlace(ctx context.Context, place *db_models.Place) error { return nil }
func (stubSearchIndex) DeletePlace(ctx context.Context, id uuid.UUID) error          { return nil }
func (stubSearchIndex) BulkIndexPlaces(ctx context.Context, places []db_models.Place) (int, error) {
	return len(places), nil
}

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&db_models.User{},
		&db_models.Category{},
		&db_models.Place{},
		&db_models.LikedPlace{},
		&db_models.PlaceSafetyFeedback{},
	))

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	placeRepo := repositories.NewPlaceRepository(db)
	likedRepo := repositories.NewLikedPlaceRepository(db)
	feedbackRepo := repositories.NewSafetyFeedbackRepository(db)

	accountController := NewAccountController(services.NewAccountService(userRepo))
	categoryController := NewCategoryController(services.NewCategoryService(categoryRepo))
	placeService := services.NewPlaceService(placeRepo, categoryRepo, stubGeocoder{}, stubSearchIndex{})
	likedController := NewLikedPlaceController(services.NewLikedPlaceService(likedRepo, placeRepo))
	safetyController := NewSafetyController(services.NewSafetyService(feedbackRepo, placeRepo))

	r := gin.New()
	auth := middleware.JWTAuthMiddleware()
	adminOnly := middleware.RoleMiddleware(db_models.RoleAdmin)

	api := r.Group("/api")

	users := api.Group("/users")
	users.POST("/signup", accountController.SignUp)
	users.POST("/signin", accountController.SignIn)

	categories := api.Group("/categories")
	categories.GET("", categoryController.ListCategories)
	categories.POST("", auth, adminOnly, categoryController.CreateCategory)

	placeController := NewPlaceController(placeService, nil)
	places := api.Group("/places")
	places.POST("", auth, placeController.CreatePlace)
	places.GET("/:id", placeController.GetPlace)
	places.DELETE("/:id", auth, placeController.DeletePlace)

	likes := api.Group("/likedplaces", auth)
	likes.POST("", likedController.LikePlace)
	likes.GET("", likedController.ListLikedPlaces)
	likes.DELETE("/:place_id", likedController.UnlikePlace)

	safety := api.Group("/safetyfeedback")
	safety.POST("", auth, safetyController.SubmitFeedback)
	safety.GET("/stats/:placeId", safetyController.SafetyStats)

	return &testEnv{router: r, db: db}
}

func (e *testEnv) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) createUser(t *testing.T, email, role, gender string) (*db_models.User, string) {
	t.Helper()
	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &db_models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  hashed,
		Role:      role,
		Gender:    gender,
	}
	require.NoError(t, e.db.Create(user).Error)

	token, err := utils.CreateToken(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func (e *testEnv) createCategory(t *testing.T, name string) *db_models.Category {
	t.Helper()
	category := &db_models.Category{Name: name}
	require.NoError(t, e.db.Create(category).Error)
	return category
}

func (e *testEnv) createPlace(t *testing.T, name string, category *db_models.Category, owner *db_models.User) *db_models.Place {
	t.Helper()
	lat, lng := 28.6139, 77.209
	place := &db_models.Place{
		Name:            name,
		CategoryID:      category.ID,
		Location:        "Connaught Place",
		Latitude:        &lat,
		Longitude:       &lng,
		BudgetPerHead:   "Low",
		BestTimeToVisit: "Evening",
		Status:          db_models.PlaceStatusApproved,
	}
	if owner != nil {
		place.UserID = &owner.ID
	}
	require.NoError(t, e.db.Create(place).Error)
	return place
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestSignUpAndSignIn(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/users/signup", "", gin.H{
		"first_name": "Asha",
		"last_name":  "Verma",
		"email":      "asha@example.com",
		"password":   "password123",
		"gender":     "female",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "asha@example.com", dataField(t, rec)["email"])

	// duplicate email is rejected
	rec = env.do(http.MethodPost, "/api/users/signup", "", gin.H{
		"first_name": "Asha",
		"last_name":  "Verma",
		"email":      "asha@example.com",
		"password":   "password123",
		"gender":     "female",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/users/signin", "", gin.H{
		"email":    "asha@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, dataField(t, rec)["token"])

	rec = env.do(http.MethodPost, "/api/users/signin", "", gin.H{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUpValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/users/signup", "", gin.H{
		"first_name": "NoEmail",
		"last_name":  "User",
		"password":   "password123",
		"gender":     "male",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/users/signup", "", gin.H{
		"first_name": "Short",
		"last_name":  "Password",
		"email":      "short@example.com",
		"password":   "tiny",
		"gender":     "male",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCategoryAdminGate(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "admin@example.com", db_models.RoleAdmin, "")
	_, userToken := env.createUser(t, "user@example.com", db_models.RoleUser, "")

	rec := env.do(http.MethodPost, "/api/categories", userToken, gin.H{"name": "Cafe"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodPost, "/api/categories", adminToken, gin.H{"name": "Cafe"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodPost, "/api/categories", adminToken, gin.H{"name": "Cafe"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAndFetchPlace(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@example.com", db_models.RoleUser, "")
	env.createCategory(t, "Historical")

	rec := env.do(http.MethodPost, "/api/places", token, gin.H{
		"name":               "Humayun's Tomb",
		"category":           "Historical",
		"location":           "Mathura Road",
		"budget_per_head":    "Low",
		"best_time_to_visit": "Morning",
		"tags":               []string{"historical", "photogenic"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := dataField(t, rec)
	assert.Equal(t, db_models.PlaceStatusApproved, data["status"])
	// coordinates were backfilled through the geocoder
	assert.Equal(t, 28.6139, data["latitude"])

	rec = env.do(http.MethodGet, fmt.Sprintf("/api/places/%v", data["id"]), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Humayun's Tomb", dataField(t, rec)["name"])
}

func TestCreatePlaceUnknownCategory(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "owner@example.com", db_models.RoleUser, "")

	rec := env.do(http.MethodPost, "/api/places", token, gin.H{
		"name":               "Nowhere",
		"category":           "Imaginary",
		"location":           "Nowhere Lane",
		"budget_per_head":    "Low",
		"best_time_to_visit": "Morning",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeletePlaceOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, ownerToken := env.createUser(t, "owner@example.com", db_models.RoleUser, "")
	_, strangerToken := env.createUser(t, "stranger@example.com", db_models.RoleUser, "")
	category := env.createCategory(t, "Cafe")
	place := env.createPlace(t, "Corner Cafe", category, owner)

	rec := env.do(http.MethodDelete, "/api/places/"+place.ID.String(), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(http.MethodDelete, "/api/places/"+place.ID.String(), ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/places/"+place.ID.String(), ownerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeUnlikeFlow(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.createUser(t, "liker@example.com", db_models.RoleUser, "")
	category := env.createCategory(t, "Cafe")
	place := env.createPlace(t, "Corner Cafe", category, user)

	rec := env.do(http.MethodPost, "/api/likedplaces", token, gin.H{"place_id": place.ID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/likedplaces", token, gin.H{"place_id": place.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodGet, "/api/likedplaces", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	assert.Len(t, listEnvelope.Data, 1)

	rec = env.do(http.MethodDelete, "/api/likedplaces/"+place.ID.String(), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/api/likedplaces/"+place.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeUnknownPlace(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "liker@example.com", db_models.RoleUser, "")

	rec := env.do(http.MethodPost, "/api/likedplaces", token, gin.H{"place_id": uuid.New()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSafetyFeedbackStats(t *testing.T) {
	env := newTestEnv(t)
	fem1, tokenF1 := env.createUser(t, "f1@example.com", db_models.RoleUser, "female")
	_, tokenF2 := env.createUser(t, "f2@example.com", db_models.RoleUser, "female")
	_, tokenM := env.createUser(t, "m1@example.com", db_models.RoleUser, "male")
	category := env.createCategory(t, "Historical")
	place := env.createPlace(t, "Old Fort", category, fem1)

	for token, feltSafe := range map[string]bool{tokenF1: true, tokenF2: false, tokenM: true} {
		rec := env.do(http.MethodPost, "/api/safetyfeedback", token, gin.H{
			"place_id":  place.ID,
			"felt_safe": feltSafe,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	// duplicate submission from the same user
	rec := env.do(http.MethodPost, "/api/safetyfeedback", tokenF1, gin.H{
		"place_id":  place.ID,
		"felt_safe": true,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(http.MethodGet, "/api/safetyfeedback/stats/"+place.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := dataField(t, rec)
	assert.Equal(t, float64(2), stats["total_female_responses"])
	assert.Equal(t, float64(1), stats["safe_responses"])
	assert.Equal(t, float64(50), stats["percent_felt_safe"])
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/likedplaces", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(http.MethodGet, "/api/likedplaces", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
