package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dailydilli/internal/models/request_models"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (i *ItineraryController) FromPrompt(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Prompt is required")
		return
	}

	itinerary, err := i.itineraryService.BuildFromPrompt(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
