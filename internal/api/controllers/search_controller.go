package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dailydilli/internal/models/request_models"
	"dailydilli/internal/services"
	"dailydilli/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

func (s *SearchController) SearchPlaces(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid search parameters: "+err.Error())
		return
	}

	places, err := s.searchService.SearchPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Search completed successfully")
}

func (s *SearchController) ReindexPlaces(c *gin.Context) {
	indexed, err := s.searchService.ReindexAll(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"indexed": indexed}, "Places reindexed successfully")
}
