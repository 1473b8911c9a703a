package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/maxviazov/portfolio-service/internal/config"
	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/maxviazov/portfolio-service/internal/service"
	"github.com/maxviazov/portfolio-service/internal/view"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errStillLoading = errors.New("document did not resolve")

var outDir string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch the document once and write a static site",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, appLogger, err := bootstrap()
		if err != nil {
			return err
		}
		return render(cmd.Context(), cfg, outDir, appLogger)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "public", "output directory")
}

// render writes the page even when the fetch failed, then reports the failure
// so CI jobs exit non-zero.
func render(ctx context.Context, cfg *config.Config, dir string, appLogger zerolog.Logger) error {
	_, store, err := newContent(cfg, appLogger)
	if err != nil {
		return err
	}
	store.Refresh(ctx)

	svc := service.NewPortfolioService(store, service.Options{Meta: siteMeta(cfg.Site)}, appLogger)
	page, pageErr := svc.Page(ctx)
	if page.State == model.PageLoading {
		return errStillLoading
	}

	if err := view.Export(dir, page); err != nil {
		return err
	}
	if page.State == model.PageFailed {
		return fmt.Errorf("content unavailable: %w", pageErr)
	}
	appLogger.Info().Str("out", dir).Msg("✅ Site rendered")
	return nil
}
