package scholarpage

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/hanruizeng/scholarpage/views"
)

func (a *App) handleHome(c echo.Context) error {
	state := views.ParseState(c.QueryParams()).Within(len(a.Site.Publications))
	key := state.Key() + "|" + strconv.Itoa(a.now().Year())

	page, hit, err := a.Cache.Get(key, func() ([]byte, error) {
		return RenderBytes(c.Request().Context(), a.Page(state))
	})
	if err != nil {
		return err
	}
	a.metrics.observeCache(hit)
	return writeCachedPage(c, page)
}

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// writeCachedPage sends page, or 304 when the client already holds it.
func writeCachedPage(c echo.Context, page CachedPage) error {
	c.Response().Header().Set(headerETag, page.ETag)
	if etagMatches(c.Request().Header.Get(headerIfNoneMatch), page.ETag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.HTMLBlob(http.StatusOK, page.Body)
}

// etagMatches applies the weak comparison of If-None-Match: header is "*"
// or a comma-separated list of tags, each with or without the W/ prefix.
func etagMatches(header, tag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(tag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == want {
			return true
		}
	}
	return false
}

func (a *App) handleNavPartial(c echo.Context) error {
	var open bool
	switch c.Param("mode") {
	case views.ModeOpen:
		open = true
	case views.ModeClosed:
	default:
		return echo.ErrNotFound
	}
	a.metrics.toggles.WithLabelValues("nav").Inc()
	return Render(c, views.NavigationBar(a.Site.Profile, views.FragmentState(open, -1, false)))
}

func (a *App) handlePublicationPartial(c echo.Context) error {
	i, err := strconv.Atoi(c.Param("index"))
	if err != nil || i < 0 || i >= len(a.Site.Publications) {
		return echo.ErrNotFound
	}
	var visible bool
	switch c.Param("mode") {
	case views.ModeShown:
		visible = true
	case views.ModeHidden:
	default:
		return echo.ErrNotFound
	}
	a.metrics.toggles.WithLabelValues("publication").Inc()
	return Render(c, views.PublicationEntry(i, a.Site.Publications[i], views.FragmentState(false, i, visible)))
}

func (a *App) handleSitemap(c echo.Context) error {
	b, err := buildSitemap(a.Config.URL, a.Site)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", b)
}

func (a *App) handleFeed(c echo.Context) error {
	b, err := buildFeed(a.Config, a.Site)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/rss+xml; charset=utf-8", b)
}

func (a *App) handleRobots(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, buildRobots(a.Config.URL))
}

// handleFavicon prefers favicon.svg from the static directory and falls back
// to the embedded one.
func (a *App) handleFavicon(c echo.Context) error {
	path := filepath.Join(a.Config.StaticDir, "favicon.svg")
	if _, err := os.Stat(path); err == nil {
		return c.File(path)
	}
	b, err := defaultFavicon()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", b)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Name))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = RenderStatus(c, code, views.ServerError(a.Config.Name))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
