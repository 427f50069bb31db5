package scholarpage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()

	assert.Equal(t, "http://localhost:3000", cfg.URL)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL)
	assert.Equal(t, 120, cfg.PartialRateLimit)
	assert.Equal(t, time.Minute, cfg.PartialRateWindow)
	assert.NoError(t, cfg.Validate())
}

func TestSiteConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SiteConfig)
	}{
		{"bad url", func(c *SiteConfig) { c.URL = "example" }},
		{"bad log format", func(c *SiteConfig) { c.LogFormat = "xml" }},
		{"bad log level", func(c *SiteConfig) { c.LogLevel = "loud" }},
		{"negative ttl", func(c *SiteConfig) { c.PageCacheTTL = -time.Second }},
		{"negative rate", func(c *SiteConfig) { c.PartialRateLimit = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg SiteConfig
			cfg.setDefaults()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_URL", "https://hanruizeng.example")
	t.Setenv("ADDR", ":8080")
	t.Setenv("RESUME_URL", "/public/cv.pdf")
	t.Setenv("PAGE_CACHE_TTL", "30s")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://hanruizeng.example", cfg.URL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "/public/cv.pdf", cfg.ResumeURL)
	assert.Equal(t, 30*time.Second, cfg.PageCacheTTL)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "public", cfg.StaticDir)
}

func TestLoadConfigRejectsInvalidEnv(t *testing.T) {
	t.Setenv("SITE_URL", "nope")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("SITE_URL", "https://hanruizeng.example")
	t.Setenv("PAGE_CACHE_TTL", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestNewDerivesMetaFromProfile(t *testing.T) {
	a := New(SiteConfig{})
	assert.Equal(t, "Hanrui Zeng", a.Config.Name)
	assert.Contains(t, a.Config.Description, "Economics")

	a = New(SiteConfig{Name: "HZ", Description: "Economist"})
	assert.Equal(t, "HZ", a.Config.Name)
	assert.Equal(t, "Economist", a.Config.Description)
}

func TestNewNeverSharesDefaultContent(t *testing.T) {
	a := New(SiteConfig{ResumeURL: "/public/cv.pdf"})
	b := New(SiteConfig{})
	assert.Equal(t, "/public/cv.pdf", a.Site.Profile.ResumeLink)
	assert.Empty(t, b.Site.Profile.ResumeLink)
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("console", "debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	l, err = NewLogger("json", "")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = NewLogger("json", "loud")
	assert.Error(t, err)
}
