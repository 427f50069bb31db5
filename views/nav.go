package views

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/hanruizeng/scholarpage/content"
)

// Anchor is an in-page navigation target.
type Anchor struct {
	ID    string
	Label string
}

// Anchors lists the page sections in render order. Each ID appears exactly
// once on the page and every navigation link points at one of them.
var Anchors = []Anchor{
	{ID: "about", Label: "About"},
	{ID: "research", Label: "Research"},
	{ID: "publications", Label: "Publications"},
	{ID: "teaching", Label: "Teaching"},
	{ID: "cv", Label: "CV"},
	{ID: "contact", Label: "Contact"},
}

const (
	headerID     = "site-header"
	mobileMenuID = "mobile-menu"
)

// NavigationBar renders the site header in state s.
func NavigationBar(p content.Profile, s PageState) templ.Component {
	return Component(navBar(p, s))
}

func navBar(p content.Profile, s PageState) g.Node {
	first, rest := splitName(p.Name)
	return h.Header(
		h.ID(headerID),
		h.Class("sticky top-0 z-40 w-full border-b bg-white/70 backdrop-blur supports-[backdrop-filter]:bg-white/60"),
		h.Div(
			h.Class("max-w-6xl mx-auto flex items-center justify-between px-4 sm:px-6 h-16"),
			h.A(h.Href("#about"), h.Class("font-bold text-lg"),
				g.Text(first), g.Text(" "), h.Span(h.Class("text-gray-500"), g.Text(rest)),
			),
			h.Nav(h.Class("hidden md:flex items-center gap-6 text-sm"), anchorLinks("text-gray-700 hover:text-black")),
			menuToggle(s),
		),
		g.If(s.MenuOpen,
			h.Div(h.ID(mobileMenuID), h.Class("md:hidden border-t"),
				h.Nav(h.Class("max-w-6xl mx-auto px-4 py-3 flex flex-col gap-2 text-sm"), anchorLinks("")),
			),
		),
	)
}

func anchorLinks(class string) g.Node {
	return g.Map(Anchors, func(a Anchor) g.Node {
		return h.A(h.Href("#"+a.ID), g.If(class != "", h.Class(class)), g.Text(a.Label))
	})
}

// menuToggle works as a plain link without JavaScript and as an htmx swap
// of the header when htmx is loaded.
func menuToggle(s PageState) g.Node {
	next := s.WithMenuToggled()
	expanded := "false"
	if s.MenuOpen {
		expanded = "true"
	}
	return h.A(
		h.Href(PageURL(next, "")),
		h.Role("button"),
		h.Aria("controls", mobileMenuID),
		h.Aria("expanded", expanded),
		hx.Get(NavPartialURL(next.MenuOpen)),
		hx.Target("#"+headerID),
		hx.Swap("outerHTML"),
		h.Class("md:hidden inline-flex items-center justify-center rounded-xl border px-3 py-2 text-sm"),
		g.Text("Menu"),
	)
}

// splitName returns the first word of name and the remainder.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
