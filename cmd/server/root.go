package main

import (
	"fmt"
	"os"

	"github.com/maxviazov/portfolio-service/internal/config"
	"github.com/maxviazov/portfolio-service/internal/content"
	"github.com/maxviazov/portfolio-service/internal/logger"
	"github.com/maxviazov/portfolio-service/internal/model"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "config.yaml"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Server-side renderer for a single-page portfolio",
	Long: `portfolio fetches one portfolio document from {BASE_API}/data and renders it
as a single HTML page. Use "serve" to run the HTTP server or "render" to write
a static copy of the page to disk.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml when present)")
	rootCmd.AddCommand(serveCmd, renderCmd)
}

// bootstrap loads config and builds the root logger shared by every command.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("config loading failed: %w", err)
	}

	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = cfg.App.Name
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	if cfg.Logger.Env == "" {
		cfg.Logger.Env = loggerEnv(cfg.App.Env)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("logger initialization failed: %w", err)
	}
	appLogger.Debug().Str("config", path).Msg("config loaded")
	return cfg, appLogger, nil
}

// loggerEnv maps the app environment onto the logger's smaller set.
func loggerEnv(appEnv string) string {
	switch appEnv {
	case "dev", "test":
		return "dev"
	case "staging":
		return "staging"
	default:
		return "prod"
	}
}

func newContent(cfg *config.Config, log zerolog.Logger) (content.Source, *content.Store, error) {
	src, err := content.NewSource(cfg.Content.BaseAPI, content.SourceOptions{MaxBodyBytes: cfg.Content.MaxBodyBytes}, log)
	if err != nil {
		return nil, nil, err
	}
	store := content.NewStore(src, content.StoreConfig{
		FetchTimeout:    cfg.Content.FetchTimeout,
		RefreshInterval: cfg.Content.RefreshInterval,
	}, log)
	return src, store, nil
}

func siteMeta(s config.SiteConfig) model.SiteMeta {
	return model.SiteMeta{
		Title:       s.Title,
		Description: s.Description,
		URL:         s.URL,
		Image:       s.Image,
		SiteName:    s.SiteName,
		Type:        s.Type,
	}
}
