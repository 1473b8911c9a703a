package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/portfolio-service/internal/config"
	"github.com/maxviazov/portfolio-service/internal/content"
	"github.com/maxviazov/portfolio-service/internal/handler"
	"github.com/maxviazov/portfolio-service/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLogger, err := bootstrap()
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg, appLogger)
	},
}

func serve(ctx context.Context, cfg *config.Config, appLogger zerolog.Logger) error {
	src, store, err := newContent(cfg, appLogger)
	if err != nil {
		return err
	}

	// Warm the store so the first visitor does not pay for the fetch.
	go store.Refresh(ctx)

	if fileSrc, ok := src.(*content.FileSource); ok {
		go func() {
			err := content.Watch(ctx, fileSrc.Dir(), content.DefaultDebounce, func() { store.Refresh(ctx) }, appLogger)
			if err != nil {
				appLogger.Warn().Err(err).Str("dir", fileSrc.Dir()).Msg("content watcher stopped")
			}
		}()
	}

	svc := service.NewPortfolioService(store, service.Options{
		RenderWait:     cfg.Content.RenderWait,
		RefreshSeconds: cfg.Content.LoadingRefresh,
		Meta:           siteMeta(cfg.Site),
	}, appLogger)

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(store, svc, appLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		appLogger.Info().Str("addr", srv.Addr).Str("base_api", cfg.Content.BaseAPI).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	appLogger.Info().Msg("✅ Server stopped")
	return nil
}
