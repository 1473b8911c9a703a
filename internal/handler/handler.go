package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/portfolio-service/internal/service"
	"github.com/maxviazov/portfolio-service/internal/view"
	"github.com/rs/zerolog"
)

// NewRouter builds the engine with the standard middleware chain and all routes.
func NewRouter(store Pinger, svc service.PortfolioService, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(logger))
	Register(r, store, svc)
	return r
}

// Register mounts all public routes on the given engine.
func Register(r *gin.Engine, store Pinger, svc service.PortfolioService) {
	h := NewHealthHandler(store)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Embedded stylesheet and navbar script
	r.StaticFS(view.StaticPrefix, http.FS(view.Static()))

	NewPageHandler(svc).Register(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewContentHandler(svc).Register(api)
	}
}
