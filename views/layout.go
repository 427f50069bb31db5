package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// document wraps body in the HTML shell. htmx and the stylesheet are
// expected in the static directory.
func document(meta PageMeta, jsonLD string, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title)),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				g.If(meta.URL != "", h.Link(h.Rel("canonical"), h.Href(meta.URL))),
				ogTag("og:title", meta.Title),
				ogTag("og:description", meta.Description),
				ogTag("og:url", meta.URL),
				ogTag("og:type", meta.OGType),
				h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href("/favicon.svg")),
				h.Link(h.Rel("stylesheet"), h.Href("/public/styles.css")),
				h.Script(h.Src("/public/htmx.min.js"), h.Defer()),
				g.If(jsonLD != "", h.Script(h.Type("application/ld+json"), g.Raw(jsonLD))),
			),
			h.Body(body...),
		),
	)
}

func ogTag(property, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr("property", property), h.Content(value))
}
