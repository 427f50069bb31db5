package views

import "github.com/hanruizeng/scholarpage/content"

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "profile" or "website"
}

// PageData is everything the page root needs for one render.
type PageData struct {
	Site  *content.Site
	State PageState
	Meta  PageMeta
	Year  int // footer copyright year
}
