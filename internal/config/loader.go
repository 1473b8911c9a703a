package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrBaseAPIMissing is returned when neither config nor env provide the content base URL.
var ErrBaseAPIMissing = errors.New("content.base_api (BASE_API) is missing or not defined")

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "portfolio-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.read_timeout", "10s")
	v.SetDefault("app.write_timeout", "15s")
	v.SetDefault("app.shutdown_timeout", "10s")

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.env", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.time_format", "")

	v.SetDefault("content.base_api", "")
	v.SetDefault("content.fetch_timeout", "10s")
	v.SetDefault("content.render_wait", "2s")
	v.SetDefault("content.refresh_interval", "0s")
	v.SetDefault("content.max_body_bytes", 4<<20)
	v.SetDefault("content.loading_refresh", 2)

	v.SetDefault("site.title", "Portfolio")
	v.SetDefault("site.description", "")
	v.SetDefault("site.url", "")
	v.SetDefault("site.image", "")
	v.SetDefault("site.site_name", "")
	v.SetDefault("site.type", "portfolio")
}

// Load reads config from path (YAML) and applies APP_* environment overrides.
// An empty path skips the file and relies on defaults and the environment.
// BASE_API is honored as an alias for APP_CONTENT_BASE_API.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	if err := v.BindEnv("content.base_api", "APP_CONTENT_BASE_API", "BASE_API"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks struct tags and the BASE_API scheme. Logger settings are
// validated separately by logger.New once defaults are applied.
func (c *Config) Validate() error {
	c.Content.BaseAPI = strings.TrimSpace(c.Content.BaseAPI)
	if c.Content.BaseAPI == "" {
		return ErrBaseAPIMissing
	}

	v := validator.New()
	if err := v.StructExcept(c, "Logger"); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	u, err := url.Parse(c.Content.BaseAPI)
	if err != nil {
		return fmt.Errorf("content.base_api: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("content.base_api %q has no host", c.Content.BaseAPI)
		}
	case "file":
	default:
		return fmt.Errorf("content.base_api %q: scheme must be http, https or file", c.Content.BaseAPI)
	}
	return nil
}
