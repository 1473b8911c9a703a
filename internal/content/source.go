package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/rs/zerolog"
)

// DefaultMaxBodyBytes caps how much of a document body is read.
const DefaultMaxBodyBytes int64 = 4 << 20

// Source is the minimal contract the Store needs: fetch the document once.
type Source interface {
	Fetch(ctx context.Context) (model.Document, error)
}

// SourceOptions tunes source construction. Zero values fall back to defaults.
type SourceOptions struct {
	Client       *http.Client
	MaxBodyBytes int64
}

// NewSource picks an implementation from the BASE_API scheme:
// http(s) gets an HTTPSource, file gets a FileSource.
func NewSource(baseAPI string, opts SourceOptions, logger zerolog.Logger) (Source, error) {
	u, err := url.Parse(strings.TrimSpace(baseAPI))
	if err != nil {
		return nil, fmt.Errorf("invalid base api %q: %w", baseAPI, err)
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		src, err := NewHTTPSource(baseAPI, opts, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	case "file":
		dir := filepath.FromSlash(u.Host + u.Path)
		if dir == "" {
			return nil, fmt.Errorf("file base api %q has no path", baseAPI)
		}
		return NewFileSource(dir, opts, logger), nil
	default:
		return nil, fmt.Errorf("unsupported base api scheme %q (want http, https or file)", u.Scheme)
	}
}
