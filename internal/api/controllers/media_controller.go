package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

func (m *MediaController) UploadPlaceImages(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	placeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Multipart form is required")
		return
	}
	files := form.File["images"]

	place, err := m.mediaService.UploadPlaceImages(c.Request.Context(), caller, placeID, files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, place, "Images uploaded successfully")
}

func (m *MediaController) DeletePlaceImage(c *gin.Context) {
	caller, ok := callerFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Missing authentication")
		return
	}

	placeID, err := uuid.Parse(c.Param("placeId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	imageIndex, err := strconv.Atoi(c.Param("imageIndex"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid image index")
		return
	}

	place, err := m.mediaService.DeletePlaceImage(c.Request.Context(), caller, placeID, imageIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Image removed successfully")
}
