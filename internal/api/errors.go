package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error represents an API error
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a 400 error for a rejected request parameter.
func NewValidationError(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(message string) *Error {
	return NewError(http.StatusNotFound, message)
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// respondError writes an error response. Typed API errors keep their code
// and message; anything else is logged in full and surfaced as a generic
// 500 so driver detail never reaches clients.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	if apiErr, ok := err.(*Error); ok {
		c.JSON(apiErr.Code, gin.H{"message": apiErr.Message})
		return
	}
	logger.Error("Request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
