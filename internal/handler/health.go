package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the portfolio document has resolved. *content.Store
// satisfies it; a pending or failed document answers with its error.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves /live and /ready, plus the same probes under /api/v1/health.
type HealthHandler struct {
	store Pinger
}

// NewHealthHandler builds the probes around the content store.
func NewHealthHandler(store Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness answers 200 while the process runs, whatever the upstream state.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness reports ready once the portfolio document has resolved successfully.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
