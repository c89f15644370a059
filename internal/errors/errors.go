package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body shape for every error response.
type APIError struct {
	Message string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

// NewAPIErrorWithDetails creates a new APIError with details
func NewAPIErrorWithDetails(message string, details interface{}) *APIError {
	return &APIError{Message: message, Details: details}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(message))
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(message))
}

// InternalErrorWithCause sends a 500 response. The underlying error is
// surfaced in the details field only outside release mode.
func InternalErrorWithCause(c *gin.Context, message string, cause error) {
	if message == "" {
		message = "Server error"
	}
	if cause != nil && gin.Mode() != gin.ReleaseMode {
		RespondWithError(c, http.StatusInternalServerError, NewAPIErrorWithDetails(message, cause.Error()))
		return
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(message))
}
