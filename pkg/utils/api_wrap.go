package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP codes. Anything
// unrecognised is logged and surfaced as a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrPlaceHasNoCoordinates):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrAlreadyLiked):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrPlaceNotFound),
		errors.Is(err, ErrLikeNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrDuplicateFeedback):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrAIUnavailable),
		errors.Is(err, ErrSearchEngine),
		errors.Is(err, ErrMediaStorage):
		zap.L().Error("upstream dependency error",
			zap.String("trace_id", traceID(c)),
			zap.Error(err))
		RespondError(c, http.StatusBadGateway, err.Error())
	default:
		zap.L().Error("unhandled service error",
			zap.String("trace_id", traceID(c)),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
