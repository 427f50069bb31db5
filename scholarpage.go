// Package scholarpage serves a single-page academic profile built with Go,
// Echo, and gomponents.
//
// The page content is compiled in (see package content). The App renders it,
// serves the htmx fragments behind the navigation and citation toggles, and
// publishes sitemap, RSS, robots and metrics endpoints. The same App can
// write the whole site to a directory for static hosting.
package scholarpage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hanruizeng/scholarpage/content"
	"github.com/hanruizeng/scholarpage/views"
)

const (
	maxCachedPages  = 256
	shutdownTimeout = 10 * time.Second
)

// App is the central scholarpage application. It wires together the content,
// page cache, handlers, middleware and metrics.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Site   *content.Site
	Cache  *PageCache
	Logger *zap.Logger

	limiter      *RequestLimiter
	metrics      *Metrics
	customRoutes []func(*App)
	setupOnce    sync.Once
	setupErr     error
	now          func() time.Time
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Logger: zap.NewNop(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Site == nil {
		a.Site = content.Default()
	}
	if a.Config.ResumeURL != "" {
		a.Site.Profile.ResumeLink = a.Config.ResumeURL
	}
	if a.Config.PhotoURL != "" {
		a.Site.Profile.PhotoLink = a.Config.PhotoURL
	}
	if a.Config.Name == "" {
		a.Config.Name = a.Site.Profile.Name
	}
	if a.Config.Description == "" {
		a.Config.Description = profileDescription(a.Site.Profile)
	}

	a.metrics = NewMetrics()
	a.Cache = NewPageCache(a.Config.PageCacheTTL, maxCachedPages)
	return a
}

// Setup validates the configuration and content, then installs middleware
// and routes. It runs once; later calls return the first result.
func (a *App) Setup() error {
	a.setupOnce.Do(func() {
		if err := a.Config.Validate(); err != nil {
			a.setupErr = err
			return
		}
		if err := content.Validate(a.Site); err != nil {
			a.setupErr = fmt.Errorf("scholarpage: %w", err)
			return
		}

		a.limiter = NewRequestLimiter(a.Config.PartialRateLimit, a.Config.PartialRateWindow)

		a.setupMiddleware()
		a.setupRoutes()

		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
	return a.setupErr
}

// Start sets the App up and serves HTTP until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server starting", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("scholarpage: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("scholarpage: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)

	partials := e.Group("/partials", a.rateLimit)
	partials.GET("/nav/:mode/", a.handleNavPartial)
	partials.GET("/publications/:index/:mode/", a.handlePublicationPartial)

	if a.Config.MetricsEnabled {
		e.GET("/metrics", a.metrics.Handler())
	}
}

// Close releases background resources.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}

// Page returns the full page component in state s.
func (a *App) Page(s views.PageState) templ.Component {
	return views.Page(views.PageData{
		Site:  a.Site,
		State: s,
		Meta:  a.pageMeta(),
		Year:  a.now().Year(),
	})
}

func (a *App) pageMeta() views.PageMeta {
	return views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         views.BuildURL(a.Config.URL),
		OGType:      "profile",
	}
}

func profileDescription(p content.Profile) string {
	switch {
	case p.Title != "" && p.Institution != "":
		return p.Title + " · " + p.Institution
	default:
		return p.Title
	}
}
