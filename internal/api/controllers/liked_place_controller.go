package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dailydilli/internal/models/request_models"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type LikedPlaceController struct {
	likedPlaceService services.LikedPlaceServiceInterface
}

func NewLikedPlaceController(likedPlaceService services.LikedPlaceServiceInterface) *LikedPlaceController {
	return &LikedPlaceController{
		likedPlaceService: likedPlaceService,
	}
}

func (l *LikedPlaceController) LikePlace(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var req request_models.LikePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "place_id is required")
		return
	}

	like, err := l.likedPlaceService.LikePlace(c.Request.Context(), caller.UserID, req.PlaceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, like, "Place liked successfully")
}

func (l *LikedPlaceController) ListLikedPlaces(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	likes, err := l.likedPlaceService.ListLikedPlaces(c.Request.Context(), caller.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, likes, "Liked places fetched successfully")
}

func (l *LikedPlaceController) UnlikePlace(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	placeID, err := uuid.Parse(c.Param("place_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	if err := l.likedPlaceService.UnlikePlace(c.Request.Context(), caller.UserID, placeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place unliked successfully")
}
