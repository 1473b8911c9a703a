// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/portfolio-service/internal/content"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MapError converts a content / infrastructure error into an HTTP status and payload.
// Extend here as new error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	switch {
	case errors.Is(err, content.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found", Message: "portfolio content not found"}
	case errors.Is(err, content.ErrPending):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "pending", Message: "portfolio content is still loading"}
	case errors.Is(err, content.ErrFetchFailed):
		return http.StatusBadGateway, ErrorPayload{Error: "upstream_unavailable", Message: "portfolio content could not be fetched"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
