package types

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/strollcast/episode-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// SendAppError maps a structured application error to its HTTP status
func SendAppError(c *gin.Context, err *apperrors.AppError) {
	c.JSON(err.GetHTTPCode(), ErrorResponse{Error: err.Message})
}

// MethodNotAllowed responds 405 for unsupported verbs on a known path
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
			Error: "Method not allowed",
		})
	}
}
