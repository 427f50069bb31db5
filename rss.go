package scholarpage

import (
	"encoding/xml"
	"time"

	"github.com/hanruizeng/scholarpage/content"
	"github.com/hanruizeng/scholarpage/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate,omitempty"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// newsDateLayout is the format of content.NewsItem.Date.
const newsDateLayout = "Jan 2006"

// buildFeed publishes the news items, newest first as they are declared.
func buildFeed(cfg SiteConfig, site *content.Site) ([]byte, error) {
	base := views.BuildURL(cfg.URL)
	link := base + "#about"
	items := make([]rssItem, 0, len(site.News))
	for _, n := range site.News {
		pubDate := ""
		if t, err := time.Parse(newsDateLayout, n.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       n.Text,
			Link:        link,
			Description: n.Text,
			PubDate:     pubDate,
			GUID:        rssGUID{Value: "news-" + Slugify(n.Date+" "+n.Text)},
		})
	}
	return encodeXML(rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        base,
			Description: cfg.Description,
			Items:       items,
		},
	})
}
