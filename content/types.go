// Package content holds the literal data the profile page is rendered from.
// Nothing in this package is fetched or computed at runtime; a Site is built
// once at startup and shared read-only by every request.
package content

// Profile is the page owner's identity block.
type Profile struct {
	Name        string `validate:"required"`
	Title       string
	Institution string
	Location    string
	Email       string // display only, not validated
	Bio         string // inline markdown, rendered with goldmark

	ScholarLink  string
	LinkedinLink string
	GithubLink   string
	SocialLink   string

	ResumeLink string // optional; empty renders an anchor without href
	PhotoLink  string // optional; empty renders an image without src
}

// NewsItem is a dated one-line announcement shown under the hero.
type NewsItem struct {
	Date string `validate:"required"`
	Text string `validate:"required"`
}

// Link is a labelled outbound or in-page reference.
type Link struct {
	Label string `validate:"required"`
	Href  string
}

// ResearchHighlight is a project card in the research section.
type ResearchHighlight struct {
	Title   string `validate:"required"`
	Summary string
	Links   []Link `validate:"dive"`
}

// Publication is one bibliographic record. Citation is opaque: it is shown
// verbatim and never parsed.
type Publication struct {
	Year     int    `validate:"gte=1000,lte=9999"`
	Title    string `validate:"required"`
	Authors  string
	Venue    string
	Link     string
	Citation string
}

// TeachingEntry is one course appointment.
type TeachingEntry struct {
	Term         string
	Course       string `validate:"required"`
	Role         string
	Notes        string
	SyllabusLink string
}

// ServiceItem is one line of professional service.
type ServiceItem struct {
	Text string `validate:"required"`
}

// Site aggregates every collection rendered on the page. Collections are
// rendered in declaration order.
type Site struct {
	Profile           Profile
	ResearchInterests []string            `validate:"dive,required"`
	News              []NewsItem          `validate:"dive"`
	Research          []ResearchHighlight `validate:"dive"`
	Publications      []Publication       `validate:"dive"`
	Teaching          []TeachingEntry     `validate:"dive"`
	Service           []ServiceItem       `validate:"dive"`
	LastUpdated       string
}
