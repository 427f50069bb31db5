package scholarpage

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/hanruizeng/scholarpage/content"
)

// SiteConfig holds all configuration for a scholarpage site.
type SiteConfig struct {
	Name        string `envconfig:"SITE_NAME"`                                  // Page title (default: profile name)
	URL         string `envconfig:"SITE_URL" validate:"required,url"`           // Canonical URL (default "http://localhost:3000")
	Description string `envconfig:"SITE_DESCRIPTION"`                           // Meta description (default: title · institution)
	Addr        string `envconfig:"ADDR" validate:"required"`                   // Listen address (default ":3000")
	StaticDir   string `envconfig:"STATIC_DIR" validate:"required"`             // Static assets served under /public (default "public")
	ResumeURL   string `envconfig:"RESUME_URL" validate:"omitempty,uri"`        // Overrides the profile's resume link
	PhotoURL    string `envconfig:"PHOTO_URL" validate:"omitempty,uri"`         // Overrides the profile's headshot
	LogFormat   string `envconfig:"LOG_FORMAT" validate:"omitempty,oneof=json console"`
	LogLevel    string `envconfig:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"` // Expose /metrics

	PageCacheTTL      time.Duration `envconfig:"PAGE_CACHE_TTL" validate:"gte=0"`      // Rendered page TTL (default 5min)
	PartialRateLimit  int           `envconfig:"PARTIAL_RATE_LIMIT" validate:"gte=0"`  // Fragment requests per window and IP (default 120)
	PartialRateWindow time.Duration `envconfig:"PARTIAL_RATE_WINDOW" validate:"gte=0"` // (default 1min)
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = 5 * time.Minute
	}
	if c.PartialRateLimit == 0 {
		c.PartialRateLimit = 120
	}
	if c.PartialRateWindow == 0 {
		c.PartialRateWindow = time.Minute
	}
}

// Validate reports the first invalid field.
func (c SiteConfig) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("scholarpage: config: %w", err)
	}
	return nil
}

// LoadConfig reads a SiteConfig from the environment. A .env file in the
// working directory is loaded first when present.
func LoadConfig() (SiteConfig, error) {
	_ = godotenv.Load()

	var cfg SiteConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("scholarpage: load config: %w", err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs during Setup, after the built-in routes.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger sets the logger used for requests, errors and lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithSite replaces the compiled-in content.
func WithSite(s *content.Site) Option {
	return func(a *App) {
		a.Site = s
	}
}

// withClock fixes the time used for the footer year and build stamps.
func withClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
