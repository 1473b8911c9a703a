package config

import (
	"time"

	"github.com/maxviazov/portfolio-service/internal/logger"
)

type Config struct {
	App     AppConfig           `mapstructure:"app"`
	Logger  logger.LoggerConfig `mapstructure:"logger"`
	Content ContentConfig       `mapstructure:"content"`
	Site    SiteConfig          `mapstructure:"site"`
}

// AppConfig holds process and HTTP server settings.
type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gte=0"`
}

// ContentConfig controls where the portfolio document comes from and how it is cached.
type ContentConfig struct {
	// BaseAPI is the BASE_API prefix; the document lives at {BaseAPI}/data.
	BaseAPI      string        `mapstructure:"base_api" validate:"required"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout" validate:"gte=0"`
	// RenderWait bounds how long a page request waits for the first fetch before
	// answering with the loading view.
	RenderWait      time.Duration `mapstructure:"render_wait" validate:"gte=0"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval" validate:"gte=0"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" validate:"gt=0"`
	// LoadingRefresh is the meta-refresh period, in seconds, of the loading view.
	LoadingRefresh int `mapstructure:"loading_refresh" validate:"gte=0"`
}

// SiteConfig feeds the page head: title and Open Graph tags.
type SiteConfig struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	URL         string `mapstructure:"url" validate:"omitempty,url"`
	Image       string `mapstructure:"image"`
	SiteName    string `mapstructure:"site_name"`
	Type        string `mapstructure:"type"`
}
