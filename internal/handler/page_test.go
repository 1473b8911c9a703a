package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/portfolio-service/internal/content"
	"github.com/maxviazov/portfolio-service/internal/handler"
	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/maxviazov/portfolio-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPortfolio lets each test pick the page outcome.
type stubPortfolio struct {
	page model.Page
	err  error
}

func (s *stubPortfolio) Page(ctx context.Context) (model.Page, error) { return s.page, s.err }

func (s *stubPortfolio) Document(ctx context.Context) (model.Document, error) {
	if s.err != nil {
		return model.Document{}, s.err
	}
	if s.page.State == model.PageLoading {
		return model.Document{}, content.ErrPending
	}
	return s.page.Doc, nil
}

func newRouter(svc service.PortfolioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return handler.NewRouter(stubPinger{}, svc, zerolog.Nop())
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestPage_Ready(t *testing.T) {
	svc := &stubPortfolio{page: model.Page{
		State: model.PageReady,
		Doc:   model.Document{Hero: &model.Hero{Name: "Deri Kurniawan"}},
		Meta:  model.SiteMeta{Title: "Home - Deri"},
	}}
	w := get(newRouter(svc), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "Deri Kurniawan")
	assert.Contains(t, body, `data-state="ready"`)
	assert.Contains(t, body, "data-navbar-container")
}

func TestPage_Loading(t *testing.T) {
	svc := &stubPortfolio{page: model.Page{State: model.PageLoading, RefreshSeconds: 2}}
	w := get(newRouter(svc), "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), `data-state="loading"`)
	assert.NotContains(t, w.Body.String(), "<section")
}

func TestPage_FailedStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found marker", content.ErrNotFound, http.StatusNotFound},
		{"network failure", errors.Join(content.ErrFetchFailed, errors.New("refused")), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubPortfolio{page: model.Page{State: model.PageFailed}, err: tc.err}
			w := get(newRouter(svc), "/")

			require.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), "Failed to fetch data")
			assert.NotContains(t, w.Body.String(), "<section")
		})
	}
}

func TestContentAPI(t *testing.T) {
	svc := &stubPortfolio{page: model.Page{State: model.PageReady, Doc: model.Document{
		Stats: []model.Stat{{Value: "5", Label: "Years"}},
	}}}
	w := get(newRouter(svc), handler.APIV1Prefix+"/content")
	require.Equal(t, http.StatusOK, w.Code)

	var doc model.Document
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Len(t, doc.Stats, 1)
	assert.Equal(t, "Years", doc.Stats[0].Label)

	w = get(newRouter(&stubPortfolio{page: model.Page{State: model.PageLoading}}), handler.APIV1Prefix+"/content")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"pending"`)
}

func TestRequestID(t *testing.T) {
	r := newRouter(&stubPortfolio{page: model.Page{State: model.PageLoading}})

	w := get(r, "/live")
	assert.Len(t, w.Header().Get(handler.RequestIDHeader), 36)

	const id = "7f1d1a4e-3c1a-4b55-9d0e-2a9f4c7f6b10"
	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(handler.RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/live", nil)
	req.Header.Set(handler.RequestIDHeader, "not-a-uuid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.NotEqual(t, "not-a-uuid", w.Header().Get(handler.RequestIDHeader))
}

// TestEndToEnd wires the real store and service against a fake BASE_API.
func TestEndToEnd(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[{"hero": {"name": "Deri"}, "projects": [{"title": "Shop"}]}]`))
	}))
	defer upstream.Close()

	src, err := content.NewSource(upstream.URL, content.SourceOptions{}, zerolog.Nop())
	require.NoError(t, err)
	store := content.NewStore(src, content.StoreConfig{}, zerolog.Nop())
	svc := service.NewPortfolioService(store, service.Options{RenderWait: time.Second}, zerolog.Nop())
	gin.SetMode(gin.TestMode)
	r := handler.NewRouter(store, svc, zerolog.Nop())

	for i := 0; i < 3; i++ {
		w := get(r, "/")
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "Shop"))
	}
	assert.EqualValues(t, 1, hits.Load())
	assert.Equal(t, http.StatusOK, get(r, "/ready").Code)
}
