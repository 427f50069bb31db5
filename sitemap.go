package scholarpage

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/hanruizeng/scholarpage/content"
	"github.com/hanruizeng/scholarpage/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// lastUpdatedLayout is the format of content.Site.LastUpdated.
const lastUpdatedLayout = "Jan 2, 2006"

// buildSitemap lists the single page, stamped with the content's last
// update when that date parses.
func buildSitemap(base string, site *content.Site) ([]byte, error) {
	u := sitemapURL{Loc: views.BuildURL(base)}
	if t, err := time.Parse(lastUpdatedLayout, site.LastUpdated); err == nil {
		u.LastMod = t.Format("2006-01-02")
	}
	return encodeXML(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{u},
	})
}

// buildRobots allows everything and points crawlers at the sitemap.
func buildRobots(base string) []byte {
	sitemap := strings.TrimSuffix(views.BuildURL(base), "/") + "/sitemap.xml"
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /partials/\n\nSitemap: %s\n", sitemap))
}

func encodeXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	if err := xml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("scholarpage: encode xml: %w", err)
	}
	return buf.Bytes(), nil
}
