package views

import (
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/hanruizeng/scholarpage/content"
)

// PublicationEntry renders the publication at index i in state s.
func PublicationEntry(i int, p content.Publication, s PageState) templ.Component {
	return Component(publicationEntry(i, p, s))
}

// PublicationID is the element id of entry i, the swap target of its toggle.
func PublicationID(i int) string {
	return "publication-" + strconv.Itoa(i)
}

func publicationEntry(i int, p content.Publication, s PageState) g.Node {
	visible := s.CitationVisible(i)
	id := PublicationID(i)
	next := s.WithCitationToggled(i)

	label, expanded := "BibTeX", "false"
	if visible {
		label, expanded = "Hide", "true"
	}

	return h.Div(h.ID(id),
		Card(
			h.Div(h.Class("flex flex-col gap-2"),
				h.Div(h.Class("text-sm text-gray-500"), g.Text(fmt.Sprintf("%d · %s", p.Year, p.Venue))),
				h.A(h.Href(p.Link), h.Class("text-lg font-medium hover:underline"), g.Text(p.Title)),
				h.Div(h.Class("text-sm text-gray-700"), g.Text(p.Authors)),
				h.Div(h.Class("flex gap-2 mt-2"),
					h.A(h.Href(p.Link), h.Class("text-sm underline"), g.Text("PDF")),
					h.A(
						h.Href(PageURL(next, id)),
						h.Role("button"),
						h.Aria("expanded", expanded),
						hx.Get(PublicationPartialURL(i, !visible)),
						hx.Target("#"+id),
						hx.Swap("outerHTML"),
						h.Class("text-sm underline"),
						g.Text(label),
					),
				),
				g.If(visible,
					h.Pre(
						h.Data("citation", strconv.Itoa(i)),
						h.Class("mt-3 text-xs bg-gray-50 p-3 rounded-lg overflow-x-auto"),
						g.Text(p.Citation),
					),
				),
			),
		),
	)
}
