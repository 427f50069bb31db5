package views

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hanruizeng/scholarpage/content"
)

const buttonClass = "inline-flex items-center rounded-xl border px-4 py-2 text-sm font-medium"

// Page renders the complete profile document.
func Page(d PageData) templ.Component {
	return Component(document(d.Meta, ProfileJsonLD(d.Site, d.Meta.URL), pageRoot(d)))
}

// pageRoot composes every section in fixed order. Collections are mapped
// one card per element in declaration order.
func pageRoot(d PageData) g.Node {
	s := d.Site
	return h.Div(h.Class("min-h-screen bg-gray-50 text-gray-900"),
		navBar(s.Profile, d.State),
		h.Main(
			hero(s),
			Section("research", "Research", researchList(s.Research)),
			Section("publications", "Publications & Working Papers", publicationList(s.Publications, d.State)),
			Section("teaching", "Teaching", teachingList(s.Teaching)),
			Section("cv", "CV", cvBlock(s)),
			Section("contact", "Contact", contactBlock(s.Profile), footer(s, d.Year)),
		),
	)
}

func hero(s *content.Site) g.Node {
	p := s.Profile
	return h.Section(h.ID("about"), h.Class("max-w-6xl mx-auto px-4 sm:px-6 lg:px-8 py-16"),
		h.Div(h.Class("grid grid-cols-1 md:grid-cols-3 gap-10 items-center"),
			h.Div(h.Class("md:col-span-2"),
				h.H1(h.Class("text-3xl sm:text-4xl font-bold tracking-tight"), g.Text(p.Name)),
				h.P(h.Class("mt-2 text-lg text-gray-700"), g.Text(p.Title+" · "+p.Institution)),
				h.P(h.Class("mt-1 text-sm text-gray-600"), g.Text(p.Location)),
				g.If(p.Bio != "", h.Div(h.Class("mt-6 leading-7 text-gray-800"), Markdown(p.Bio))),
				h.Div(h.Class("mt-4"),
					g.Map(s.ResearchInterests, func(ri string) g.Node { return Pill(g.Text(ri)) }),
				),
				h.Div(h.Class("mt-6 flex flex-wrap gap-3"),
					h.A(optionalHref(p.ResumeLink), h.Class(buttonClass), g.Text("Download CV")),
					h.A(h.Href("#contact"), h.Class(buttonClass), g.Text("Contact")),
					h.A(optionalHref(p.ScholarLink), h.Class(buttonClass), g.Text("Google Scholar")),
				),
			),
			h.Div(h.Class("md:col-span-1"),
				h.Img(g.If(p.PhotoLink != "", h.Src(p.PhotoLink)), h.Alt("Headshot"),
					h.Class("w-48 h-48 rounded-2xl object-cover border shadow mx-auto")),
				h.Div(h.Class("mt-4 text-sm text-gray-600 text-center"),
					h.A(h.Class("underline"), optionalHref(p.GithubLink), g.Text("GitHub")),
					g.Text(" · "),
					h.A(h.Class("underline"), optionalHref(p.LinkedinLink), g.Text("LinkedIn")),
					g.Text(" · "),
					h.A(h.Class("underline"), optionalHref(p.SocialLink), g.Text("X")),
				),
			),
		),
		h.Div(h.Class("mt-8 grid gap-4 sm:grid-cols-2"),
			g.Map(s.News, func(n content.NewsItem) g.Node {
				return Card(
					h.Div(h.Class("text-sm text-gray-500"), g.Text(n.Date)),
					h.Div(h.Class("mt-1"), g.Text(n.Text)),
				)
			}),
		),
	)
}

func researchList(items []content.ResearchHighlight) g.Node {
	return h.Div(h.Class("grid gap-4"),
		g.Map(items, func(r content.ResearchHighlight) g.Node {
			links := make([]g.Node, 0, 2*len(r.Links))
			for i, l := range r.Links {
				if i > 0 {
					links = append(links, g.Text(" · "))
				}
				links = append(links, h.A(h.Class("underline"), optionalHref(l.Href), g.Text(l.Label)))
			}
			return Card(
				h.H3(h.Class("font-medium"), g.Text(r.Title)),
				g.If(r.Summary != "", h.P(h.Class("text-sm text-gray-700 mt-2"), g.Text(r.Summary))),
				g.If(len(links) > 0, h.Div(h.Class("mt-2 text-sm"), g.Group(links))),
			)
		}),
	)
}

func publicationList(pubs []content.Publication, s PageState) g.Node {
	entries := make([]g.Node, len(pubs))
	for i, p := range pubs {
		entries[i] = publicationEntry(i, p, s)
	}
	return h.Div(h.Class("grid gap-4"), g.Group(entries))
}

func teachingList(entries []content.TeachingEntry) g.Node {
	return h.Div(h.Class("grid gap-4"),
		g.Map(entries, func(t content.TeachingEntry) g.Node {
			return Card(
				h.Div(h.Class("flex flex-col sm:flex-row sm:items-center sm:justify-between gap-2"),
					h.Div(
						h.Div(h.Class("text-sm text-gray-500"), g.Text(t.Term)),
						h.Div(h.Class("font-medium"), g.Text(t.Course)),
						h.Div(h.Class("text-sm text-gray-700"), g.Text(t.Role)),
					),
					g.If(t.SyllabusLink != "", h.A(h.Href(t.SyllabusLink), h.Class("text-sm underline"), g.Text("Syllabus"))),
				),
				g.If(t.Notes != "", h.P(h.Class("mt-2 text-sm text-gray-700"), g.Text(t.Notes))),
			)
		}),
	)
}

func cvBlock(s *content.Site) g.Node {
	return h.Div(h.Class("grid gap-4"),
		Card(
			h.P(h.Class("text-sm text-gray-700"), g.Text("Download a full CV or browse key sections above.")),
			h.A(optionalHref(s.Profile.ResumeLink), h.Class("mt-3 "+buttonClass), g.Text("Download CV (PDF)")),
		),
		g.If(len(s.Service) > 0,
			Card(
				h.H3(h.Class("font-medium"), g.Text("Service")),
				h.Ul(h.Class("mt-2 list-disc pl-5 text-sm text-gray-700"),
					g.Map(s.Service, func(it content.ServiceItem) g.Node { return h.Li(g.Text(it.Text)) }),
				),
			),
		),
	)
}

func contactBlock(p content.Profile) g.Node {
	return h.Div(h.Class("grid gap-4"),
		Card(
			h.Div(h.Class("text-sm text-gray-700"),
				g.Text("Email: "), h.A(h.Class("underline"), h.Href("mailto:"+p.Email), g.Text(p.Email)),
			),
			h.Div(h.Class("mt-1 text-sm text-gray-700"),
				g.Text("Google Scholar: "), h.A(h.Class("underline"), optionalHref(p.ScholarLink), g.Text(p.ScholarLink)),
			),
			h.Div(h.Class("mt-1 text-sm text-gray-700"),
				g.Text("LinkedIn: "), h.A(h.Class("underline"), optionalHref(p.LinkedinLink), g.Text(p.LinkedinLink)),
			),
		),
	)
}

func footer(s *content.Site, year int) g.Node {
	text := "© " + strconv.Itoa(year) + " " + s.Profile.Name + "."
	if s.LastUpdated != "" {
		text += " Last updated " + s.LastUpdated + "."
	}
	return h.P(h.Class("text-xs text-gray-500 mt-8"), g.Text(text))
}
