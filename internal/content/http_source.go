package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/rs/zerolog"
)

// dataPath is appended to BASE_API to form the document endpoint.
const dataPath = "/data"

// HTTPSource fetches the document from {BASE_API}/data.
type HTTPSource struct {
	endpoint string
	client   *http.Client
	maxBody  int64
	log      zerolog.Logger
}

// NewHTTPSource validates baseAPI and wires an HTTP-backed source.
// A trailing slash on baseAPI is dropped so the endpoint never contains "//data".
func NewHTTPSource(baseAPI string, opts SourceOptions, logger zerolog.Logger) (*HTTPSource, error) {
	base := strings.TrimRight(strings.TrimSpace(baseAPI), "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base api %q: %w", baseAPI, err)
	}
	if u.Host == "" {
		return nil, errors.New("base api must include a host")
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	l := logger.With().Str("module", "content").Str("component", "http_source").Logger()
	return &HTTPSource{endpoint: base + dataPath, client: client, maxBody: maxBody, log: l}, nil
}

// Endpoint returns the absolute URL the source requests.
func (s *HTTPSource) Endpoint() string { return s.endpoint }

// Fetch issues one GET and decodes the body. The response status is logged but
// never decides the outcome: the body alone does.
func (s *HTTPSource) Fetch(ctx context.Context) (model.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error().Err(err).Str("url", s.endpoint).Msg("content request failed")
		return model.Document{}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.log.Warn().Int("status", resp.StatusCode).Str("url", s.endpoint).Msg("content endpoint answered non-2xx")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.maxBody+1))
	if err != nil {
		return model.Document{}, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if int64(len(body)) > s.maxBody {
		return model.Document{}, fmt.Errorf("%w: body exceeds %d bytes", ErrFetchFailed, s.maxBody)
	}

	doc, err := Decode(body)
	if err != nil {
		return model.Document{}, err
	}
	if len(doc.Skipped) > 0 {
		s.log.Warn().Strs("fields", doc.Skipped).Msg("content fields skipped, shape mismatch")
	}
	s.log.Debug().Dur("took", time.Since(start)).Int("bytes", len(body)).Msg("content fetched")
	return doc, nil
}
