package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hanruizeng/scholarpage/content"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func textOf(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	})
	return b.String()
}

func idCounts(doc *html.Node) map[string]int {
	ids := map[string]int{}
	walk(doc, func(n *html.Node) {
		if id, ok := attr(n, "id"); ok && n.Type == html.ElementNode {
			ids[id]++
		}
	})
	return ids
}

// navHrefs returns the href of every link inside a <nav> element.
func navHrefs(doc *html.Node) []string {
	var hrefs []string
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "nav" {
			return
		}
		walk(n, func(a *html.Node) {
			if a.Type == html.ElementNode && a.Data == "a" {
				href, _ := attr(a, "href")
				hrefs = append(hrefs, href)
			}
		})
	})
	return hrefs
}

func citationBlocks(doc *html.Node) []string {
	var blocks []string
	walk(doc, func(n *html.Node) {
		if _, ok := attr(n, "data-citation"); ok && n.Type == html.ElementNode {
			blocks = append(blocks, textOf(n))
		}
	})
	return blocks
}

func testPage(state PageState) PageData {
	return PageData{
		Site:  content.Default(),
		State: state,
		Meta:  PageMeta{Title: "Hanrui Zeng", URL: "https://example.com/", OGType: "profile"},
		Year:  2026,
	}
}

func TestInitialRender(t *testing.T) {
	out := renderString(t, Page(testPage(PageState{})))
	doc := parse(t, out)

	assert.Empty(t, citationBlocks(doc), "no citation should be visible initially")
	assert.Zero(t, idCounts(doc)[mobileMenuID], "menu should start closed")
	assert.Equal(t, 2, strings.Count(out, ">BibTeX<"))
	assert.NotContains(t, out, ">Hide<")
}

func TestAnchorsPresentExactlyOnce(t *testing.T) {
	for _, state := range []PageState{{}, {MenuOpen: true}} {
		doc := parse(t, renderString(t, Page(testPage(state))))
		ids := idCounts(doc)
		for _, a := range Anchors {
			assert.Equal(t, 1, ids[a.ID], "anchor %q (menu open: %v)", a.ID, state.MenuOpen)
		}
	}
}

func TestNavLinksTargetAnchors(t *testing.T) {
	valid := map[string]bool{}
	for _, a := range Anchors {
		valid["#"+a.ID] = true
	}

	closed := navHrefs(parse(t, renderString(t, Page(testPage(PageState{})))))
	require.Len(t, closed, len(Anchors))

	open := navHrefs(parse(t, renderString(t, Page(testPage(PageState{MenuOpen: true})))))
	require.Len(t, open, 2*len(Anchors))

	for _, href := range append(closed, open...) {
		assert.True(t, valid[href], "nav link %q does not target a page anchor", href)
	}
}

func TestPublicationsRenderInDeclarationOrder(t *testing.T) {
	doc := parse(t, renderString(t, Page(testPage(PageState{}))))
	var titles []string
	walk(doc, func(n *html.Node) {
		if id, ok := attr(n, "id"); ok && strings.HasPrefix(id, "publication-") {
			titles = append(titles, textOf(n))
		}
	})
	require.Len(t, titles, 2)
	assert.Contains(t, titles[0], "Downstream Impacts of Assortment Changes")
	assert.Contains(t, titles[0], "2025")
	assert.Contains(t, titles[1], "Railways and Language Assimilation")
	assert.Contains(t, titles[1], "2024")
}

func TestToggleRailwaysCitation(t *testing.T) {
	site := content.Default()
	var state PageState
	state.ToggleCitation(1)

	out := renderString(t, Page(testPage(state)))
	blocks := citationBlocks(parse(t, out))

	require.Len(t, blocks, 1)
	assert.True(t, strings.HasPrefix(blocks[0], "@unpublished{zeng2024railways,"))
	assert.Equal(t, site.Publications[1].Citation, blocks[0])
	assert.NotContains(t, out, "@article{zeng2025assortment")
	assert.Equal(t, 1, strings.Count(out, ">Hide<"))
}

func TestPublicationEntryToggleLinks(t *testing.T) {
	pub := content.Default().Publications[0]
	out := renderString(t, PublicationEntry(0, pub, PageState{}))
	doc := parse(t, out)

	var toggle *html.Node
	walk(doc, func(n *html.Node) {
		if role, _ := attr(n, "role"); role == "button" {
			toggle = n
		}
	})
	require.NotNil(t, toggle)

	get, _ := attr(toggle, "hx-get")
	href, _ := attr(toggle, "href")
	target, _ := attr(toggle, "hx-target")
	assert.Equal(t, "/partials/publications/0/shown/", get)
	assert.Equal(t, "/?cite=0#publication-0", href)
	assert.Equal(t, "#publication-0", target)
	assert.Equal(t, "BibTeX", textOf(toggle))
}

func TestCitationRenderedVerbatim(t *testing.T) {
	pub := content.Publication{Year: 2020, Title: "T", Citation: "@misc{k,\n  note={<b>&}\n}"}
	var state PageState
	state.ToggleCitation(0)

	blocks := citationBlocks(parse(t, renderString(t, PublicationEntry(0, pub, state))))
	require.Len(t, blocks, 1)
	assert.Equal(t, pub.Citation, blocks[0])
}

func TestNavigationBarOpen(t *testing.T) {
	p := content.Default().Profile
	out := renderString(t, NavigationBar(p, PageState{MenuOpen: true}))
	doc := parse(t, out)

	assert.Equal(t, 1, idCounts(doc)[mobileMenuID])
	assert.Contains(t, out, `hx-get="/partials/nav/closed/"`)
	assert.Contains(t, out, `aria-expanded="true"`)
	assert.Contains(t, textOf(doc), "Hanrui")
}

func TestOptionalAssetsRenderWithoutAddress(t *testing.T) {
	out := renderString(t, Page(testPage(PageState{})))
	assert.Contains(t, out, `alt="Headshot"`)
	assert.NotContains(t, out, `src=""`)
	assert.NotContains(t, out, `href=""`)

	d := testPage(PageState{})
	d.Site.Profile.ResumeLink = "/public/cv.pdf"
	d.Site.Profile.PhotoLink = "/public/headshot.jpg"
	out = renderString(t, Page(d))
	assert.Equal(t, 2, strings.Count(out, `href="/public/cv.pdf"`))
	assert.Contains(t, out, `src="/public/headshot.jpg"`)
}

func TestFooterAndService(t *testing.T) {
	out := textOf(parse(t, renderString(t, Page(testPage(PageState{})))))
	assert.Contains(t, out, "© 2026 Hanrui Zeng. Last updated Sep 4, 2025.")
	assert.Contains(t, out, "Referee: Journal of Applied Econometrics (ad-hoc)")
}

func TestMarkdownDropsRawHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown("Hello *world* <script>alert(1)</script>").Render(&buf))
	assert.Contains(t, buf.String(), "<em>world</em>")
	assert.NotContains(t, buf.String(), "<script>")
}

func TestProfileJsonLD(t *testing.T) {
	site := content.Default()
	raw := ProfileJsonLD(site, "https://example.com")

	var data struct {
		Context string                   `json:"@context"`
		Graph   []map[string]interface{} `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	require.Len(t, data.Graph, 1+len(site.Publications))
	assert.Equal(t, "Person", data.Graph[0]["@type"])
	assert.Equal(t, "Hanrui Zeng", data.Graph[0]["name"])
	assert.Equal(t, "ScholarlyArticle", data.Graph[1]["@type"])
	assert.Equal(t, "2025", data.Graph[1]["datePublished"])
	assert.NotContains(t, raw, "zeng2025assortment")
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://example.com/", BuildURL("https://example.com"))
	assert.Equal(t, "https://example.com/", BuildURL("https://example.com/"))
	assert.Equal(t, "https://example.com/~hz/", BuildURL("https://example.com/~hz"))
	assert.Equal(t, "https://example.com/a/b/", BuildURL("https://example.com", "a", "b"))
}

func TestProfileJsonLDUsesCanonicalURL(t *testing.T) {
	raw := ProfileJsonLD(content.Default(), "https://example.com")
	assert.Contains(t, raw, `"url":"https://example.com/"`)
	assert.Contains(t, raw, `"@id":"https://example.com/#person"`)
}
