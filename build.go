package scholarpage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/hanruizeng/scholarpage/content"
	"github.com/hanruizeng/scholarpage/views"
)

const watchDebounce = 500 * time.Millisecond

// Build writes the site to outDir for static hosting: the page in its
// initial state, every toggle fragment, the sitemap, feed, robots and
// favicon, and a copy of the static directory under public/. outDir is
// emptied first.
func (a *App) Build(ctx context.Context, outDir string) error {
	if err := a.Config.Validate(); err != nil {
		return err
	}
	if err := content.Validate(a.Site); err != nil {
		return fmt.Errorf("scholarpage: %w", err)
	}

	a.Logger.Info("building site", zap.String("out", outDir))
	if err := os.RemoveAll(outDir); err != nil {
		return fmt.Errorf("scholarpage: clean %s: %w", outDir, err)
	}
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return fmt.Errorf("scholarpage: create %s: %w", outDir, err)
	}

	if _, err := os.Stat(a.Config.StaticDir); err == nil {
		if err := copyDirContents(a.Config.StaticDir, filepath.Join(outDir, "public")); err != nil {
			return fmt.Errorf("scholarpage: copy static assets: %w", err)
		}
	} else {
		a.Logger.Warn("static directory not found, skipping copy", zap.String("dir", a.Config.StaticDir))
	}

	pages := map[string]templ.Component{
		"index.html": a.Page(views.PageState{}),
		"partials/nav/" + views.ModeOpen + "/index.html":   views.NavigationBar(a.Site.Profile, views.FragmentState(true, -1, false)),
		"partials/nav/" + views.ModeClosed + "/index.html": views.NavigationBar(a.Site.Profile, views.FragmentState(false, -1, false)),
	}
	for i, p := range a.Site.Publications {
		dir := "partials/publications/" + strconv.Itoa(i) + "/"
		pages[dir+views.ModeShown+"/index.html"] = views.PublicationEntry(i, p, views.FragmentState(false, i, true))
		pages[dir+views.ModeHidden+"/index.html"] = views.PublicationEntry(i, p, views.FragmentState(false, i, false))
	}
	for name, cmp := range pages {
		b, err := RenderBytes(ctx, cmp)
		if err != nil {
			return fmt.Errorf("scholarpage: render %s: %w", name, err)
		}
		if err := writeOutput(outDir, name, b); err != nil {
			return err
		}
	}

	sitemap, err := buildSitemap(a.Config.URL, a.Site)
	if err != nil {
		return err
	}
	feed, err := buildFeed(a.Config, a.Site)
	if err != nil {
		return err
	}
	files := map[string][]byte{
		"sitemap.xml": sitemap,
		"feed.xml":    feed,
		"robots.txt":  buildRobots(a.Config.URL),
	}
	if b, err := os.ReadFile(filepath.Join(a.Config.StaticDir, "favicon.svg")); err == nil {
		files["favicon.svg"] = b
	} else if b, err := defaultFavicon(); err == nil {
		files["favicon.svg"] = b
	} else {
		return err
	}
	for name, b := range files {
		if err := writeOutput(outDir, name, b); err != nil {
			return err
		}
	}

	a.Logger.Info("site built", zap.String("out", outDir), zap.Int("pages", len(pages)))
	return nil
}

// Watch rebuilds outDir whenever a file under the static directory changes,
// until ctx is cancelled. Bursts of events are coalesced.
func (a *App) Watch(ctx context.Context, outDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scholarpage: create watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(a.Config.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scholarpage: watch %s: %w", a.Config.StaticDir, err)
	}
	a.Logger.Info("watching for changes", zap.String("dir", a.Config.StaticDir))

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			a.Logger.Debug("change detected", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case <-rebuild:
			if err := a.Build(ctx, outDir); err != nil {
				a.Logger.Error("rebuild failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.Logger.Error("watcher error", zap.Error(err))
		}
	}
}

func writeOutput(outDir, name string, b []byte) error {
	path := filepath.Join(outDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("scholarpage: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("scholarpage: write %s: %w", path, err)
	}
	return nil
}

// copyDirContents copies the tree under src into dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
