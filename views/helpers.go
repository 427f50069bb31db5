package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/hanruizeng/scholarpage/content"
)

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
// With no segments the base is returned with a trailing slash on its path.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// ProfileJsonLD produces a Schema.org graph with the page owner as a Person
// and each publication as a ScholarlyArticle. Citation text is not included.
func ProfileJsonLD(site *content.Site, siteURL string) string {
	p := site.Profile
	person := map[string]interface{}{
		"@type":    "Person",
		"@id":      BuildURL(siteURL) + "#person",
		"name":     p.Name,
		"url":      BuildURL(siteURL),
		"jobTitle": p.Title,
	}
	if p.Institution != "" {
		person["affiliation"] = map[string]string{
			"@type": "Organization",
			"name":  p.Institution,
		}
	}
	if p.Email != "" {
		person["email"] = "mailto:" + p.Email
	}
	if isAbsoluteURL(p.PhotoLink) {
		person["image"] = p.PhotoLink
	}
	var sameAs []string
	for _, l := range []string{p.ScholarLink, p.LinkedinLink, p.GithubLink, p.SocialLink} {
		if isAbsoluteURL(l) {
			sameAs = append(sameAs, l)
		}
	}
	if len(sameAs) > 0 {
		person["sameAs"] = sameAs
	}

	graph := []interface{}{person}
	for _, pub := range site.Publications {
		article := map[string]interface{}{
			"@type":         "ScholarlyArticle",
			"headline":      pub.Title,
			"datePublished": strconv.Itoa(pub.Year),
			"author":        map[string]string{"@id": person["@id"].(string)},
		}
		if isAbsoluteURL(pub.Link) {
			article["url"] = pub.Link
		}
		graph = append(graph, article)
	}

	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@graph":   graph,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
