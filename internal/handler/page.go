package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/maxviazov/portfolio-service/internal/service"
	"github.com/maxviazov/portfolio-service/internal/view"
	"github.com/maxviazov/portfolio-service/pkg/response"
)

// PageHandler serves the rendered portfolio page.
type PageHandler struct {
	svc service.PortfolioService
}

func NewPageHandler(svc service.PortfolioService) *PageHandler { return &PageHandler{svc: svc} }

func (h *PageHandler) Register(r gin.IRoutes) {
	r.GET("/", h.page)
}

func (h *PageHandler) page(c *gin.Context) {
	page, err := h.svc.Page(c.Request.Context())

	status := http.StatusOK
	switch page.State {
	case model.PageLoading:
		retry := page.RefreshSeconds
		if retry <= 0 {
			retry = 1
		}
		c.Header("Retry-After", strconv.Itoa(retry))
		c.Header("Cache-Control", "no-store")
	case model.PageFailed:
		status, _ = response.MapError(err)
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.Header("Cache-Control", "no-store")
		if err != nil {
			_ = c.Error(err)
		}
	}

	// Render into a buffer so a template failure can still become a clean 500.
	var buf bytes.Buffer
	if rerr := view.Render(&buf, page); rerr != nil {
		response.WriteError(c, rerr)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// ContentHandler exposes the resolved document as JSON.
type ContentHandler struct {
	svc service.PortfolioService
}

func NewContentHandler(svc service.PortfolioService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) Register(r *gin.RouterGroup) {
	r.GET("/content", h.get)
}

func (h *ContentHandler) get(c *gin.Context) {
	doc, err := h.svc.Document(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, doc)
}
