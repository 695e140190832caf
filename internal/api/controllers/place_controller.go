package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dailydilli/internal/models/request_models"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type PlaceController struct {
	placeService      services.PlaceServiceInterface
	suggestionService services.SuggestionServiceInterface
}

func NewPlaceController(
	placeService services.PlaceServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *PlaceController {
	return &PlaceController{
		placeService:      placeService,
		suggestionService: suggestionService,
	}
}

func (p *PlaceController) CreatePlace(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place payload: "+err.Error())
		return
	}

	place, err := p.placeService.CreatePlace(c.Request.Context(), caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, place, "Place created successfully")
}

func (p *PlaceController) ListPlaces(c *gin.Context) {
	places, err := p.placeService.ListPlaces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlaceController) ListPlacesByCategory(c *gin.Context) {
	category := c.Param("name")
	if category == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category name is required")
		return
	}

	places, err := p.placeService.ListPlacesByCategory(c.Request.Context(), category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlaceController) GetPlace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	place, err := p.placeService.GetPlace(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

func (p *PlaceController) UpdatePlace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid update payload: "+err.Error())
		return
	}

	place, err := p.placeService.UpdatePlace(c.Request.Context(), caller, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place updated successfully")
}

func (p *PlaceController) DeletePlace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	if err := p.placeService.DeletePlace(c.Request.Context(), caller, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place deleted successfully")
}

func (p *PlaceController) SuggestedPlaces(c *gin.Context) {
	places, err := p.suggestionService.SuggestedPlaces(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Suggested places fetched successfully")
}

func (p *PlaceController) NearbyPlaces(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	nearby, err := p.suggestionService.NearbyPlaces(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nearby, "Nearby places fetched successfully")
}
