package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maxviazov/portfolio-service/internal/config"
	"github.com/maxviazov/portfolio-service/internal/content"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseAPI string) *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "portfolio-service", Env: "test", Port: 8080},
		Content: config.ContentConfig{
			BaseAPI:      baseAPI,
			FetchTimeout: 5 * time.Second,
			MaxBodyBytes: content.DefaultMaxBodyBytes,
		},
		Site: config.SiteConfig{Title: "Deri - Portfolio"},
	}
}

func upstream(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRender_Ready(t *testing.T) {
	srv := upstream(t, `[{"hero": {"name": "Deri"}, "projects": [{"title": "Shop"}]}]`)
	out := t.TempDir()

	require.NoError(t, render(context.Background(), testConfig(srv.URL), out, zerolog.Nop()))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "Shop")
	assert.Contains(t, string(index), "Deri - Portfolio")
	_, err = os.Stat(filepath.Join(out, "static", "navbar.js"))
	assert.NoError(t, err)
}

func TestRender_NotFoundWritesFailedPage(t *testing.T) {
	srv := upstream(t, `"Not Found"`)
	out := t.TempDir()

	err := render(context.Background(), testConfig(srv.URL), out, zerolog.Nop())
	require.ErrorIs(t, err, content.ErrNotFound)

	index, readErr := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, readErr)
	assert.Contains(t, string(index), "Failed to fetch data")
}

func TestRender_NullDocument(t *testing.T) {
	srv := upstream(t, `null`)
	out := t.TempDir()

	err := render(context.Background(), testConfig(srv.URL), out, zerolog.Nop())
	require.ErrorIs(t, err, errStillLoading)

	_, statErr := os.Stat(filepath.Join(out, "index.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoggerEnv(t *testing.T) {
	assert.Equal(t, "dev", loggerEnv("dev"))
	assert.Equal(t, "dev", loggerEnv("test"))
	assert.Equal(t, "staging", loggerEnv("staging"))
	assert.Equal(t, "prod", loggerEnv("prod"))
}
