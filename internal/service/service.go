// Package service holds the page use cases between transport and content.
// Kept intentionally lean: resolve the document, pick the render state, shape errors.
package service

import (
	"context"
	"time"

	"github.com/maxviazov/portfolio-service/internal/content"
	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/rs/zerolog"
)

// PortfolioService defines the page-oriented use cases.
type PortfolioService interface {
	// Page resolves the render state for one request. Failed pages carry the
	// cause as the error so transports can pick a status code.
	Page(ctx context.Context) (model.Page, error)
	// Document returns the resolved document or content.ErrPending,
	// content.ErrNotFound, content.ErrFetchFailed.
	Document(ctx context.Context) (model.Document, error)
}

// DocumentStore is what the service needs from the content cache.
type DocumentStore interface {
	Get(ctx context.Context) content.Snapshot
}

// Options carries render settings that come from config.
type Options struct {
	// RenderWait bounds how long a request waits for the first fetch.
	RenderWait     time.Duration
	RefreshSeconds int
	Meta           model.SiteMeta
}

type portfolioService struct {
	store DocumentStore
	opts  Options
	log   zerolog.Logger
}

func NewPortfolioService(store DocumentStore, opts Options, logger zerolog.Logger) PortfolioService {
	l := logger.With().Str("module", "service").Str("component", "portfolio").Logger()
	return &portfolioService{store: store, opts: opts, log: l}
}

func (s *portfolioService) Page(ctx context.Context) (model.Page, error) {
	page := model.Page{Meta: s.opts.Meta, RefreshSeconds: s.opts.RefreshSeconds}

	snap := s.snapshot(ctx)
	switch snap.State {
	case content.StateReady:
		page.State = model.PageReady
		page.Doc = snap.Doc
		return page, nil
	case content.StateFailed:
		page.State = model.PageFailed
		return page, snap.Err
	default:
		page.State = model.PageLoading
		return page, nil
	}
}

func (s *portfolioService) Document(ctx context.Context) (model.Document, error) {
	snap := s.snapshot(ctx)
	switch snap.State {
	case content.StateReady:
		return snap.Doc, nil
	case content.StateFailed:
		return model.Document{}, snap.Err
	default:
		return model.Document{}, content.ErrPending
	}
}

func (s *portfolioService) snapshot(ctx context.Context) content.Snapshot {
	if s.opts.RenderWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.RenderWait)
		defer cancel()
	}
	snap := s.store.Get(ctx)
	if snap.State == content.StatePending {
		s.log.Debug().Bool("resolved", snap.Resolved()).Msg("document pending, serving loading state")
	}
	return snap
}
