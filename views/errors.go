package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NotFound renders the 404 page.
func NotFound(siteName string) templ.Component {
	return errorPage(siteName, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(siteName string) templ.Component {
	return errorPage(siteName, "Something went wrong", "Please try again in a moment.")
}

func errorPage(siteName, heading, message string) templ.Component {
	meta := PageMeta{Title: heading + " - " + siteName}
	return Component(document(meta, "",
		h.Div(h.Class("min-h-screen bg-gray-50 text-gray-900"),
			Section("error", heading,
				Card(
					h.P(h.Class("text-sm text-gray-700"), g.Text(message)),
					h.A(h.Href("/"), h.Class("mt-3 "+buttonClass), g.Text("Back to "+siteName)),
				),
			),
		),
	))
}
