package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"dailydilli/internal/services"
)

// callerFromContext rebuilds the authenticated caller from the values the
// JWT middleware stored on the request context.
func callerFromContext(c *gin.Context) (services.Caller, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return services.Caller{}, false
	}
	return services.Caller{
		UserID: userID,
		Role:   c.GetString("role"),
	}, true
}
