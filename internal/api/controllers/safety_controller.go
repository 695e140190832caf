package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dailydilli/internal/models/request_models"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type SafetyController struct {
	safetyService services.SafetyServiceInterface
}

func NewSafetyController(safetyService services.SafetyServiceInterface) *SafetyController {
	return &SafetyController{
		safetyService: safetyService,
	}
}

func (s *SafetyController) SubmitFeedback(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.SafetyFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "place_id and felt_safe are required")
		return
	}

	feedback, err := s.safetyService.SubmitFeedback(c.Request.Context(), caller.UserID, req.PlaceID, *req.FeltSafe, req.Comment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, feedback, "Safety feedback recorded")
}

func (s *SafetyController) SafetyStats(c *gin.Context) {
	placeID, err := uuid.Parse(c.Param("placeId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	stats, err := s.safetyService.SafetyStats(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Safety stats fetched successfully")
}
