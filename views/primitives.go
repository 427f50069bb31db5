package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Section is a titled page section carrying an in-page anchor.
func Section(id, title string, children ...g.Node) g.Node {
	return h.Section(
		h.ID(id),
		h.Class("scroll-mt-24 max-w-4xl mx-auto px-4 sm:px-6 lg:px-8 py-10"),
		h.H2(h.Class("text-2xl font-semibold tracking-tight mb-6"), g.Text(title)),
		g.Group(children),
	)
}

// Pill is a small rounded label.
func Pill(children ...g.Node) g.Node {
	return h.Span(
		h.Class("inline-block rounded-full border px-3 py-1 text-xs mr-2 mb-2"),
		g.Group(children),
	)
}

// Card is a bordered container.
func Card(children ...g.Node) g.Node {
	return h.Div(
		h.Class("rounded-2xl border p-6 shadow-sm hover:shadow-md transition-shadow bg-white"),
		g.Group(children),
	)
}

// optionalHref omits the attribute for an unset address.
func optionalHref(addr string) g.Node {
	return g.If(addr != "", h.Href(addr))
}
