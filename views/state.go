package views

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Query parameters carrying the page state.
const (
	ParamMenu      = "menu"
	ParamCitations = "cite"
)

// PageState is the transient UI state of one rendered page: whether the
// mobile menu is open, and which publication entries show their citation.
// Citation flags are keyed by publication index so each entry owns its own
// cell. The zero value is the initial state: menu closed, no citations.
type PageState struct {
	MenuOpen  bool
	citations map[int]bool
}

// ToggleMenu flips the mobile menu flag.
func (s *PageState) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// ToggleCitation flips the citation flag of the entry at index i only.
func (s *PageState) ToggleCitation(i int) {
	if s.citations == nil {
		s.citations = make(map[int]bool)
	}
	if s.citations[i] {
		delete(s.citations, i)
		return
	}
	s.citations[i] = true
}

// CitationVisible reports whether the entry at index i shows its citation.
func (s PageState) CitationVisible(i int) bool {
	return s.citations[i]
}

// VisibleCitations returns the indexes of entries showing their citation,
// in ascending order.
func (s PageState) VisibleCitations() []int {
	out := make([]int, 0, len(s.citations))
	for i, ok := range s.citations {
		if ok {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// Clone returns a copy that shares no storage with s.
func (s PageState) Clone() PageState {
	c := PageState{MenuOpen: s.MenuOpen}
	if len(s.citations) > 0 {
		c.citations = make(map[int]bool, len(s.citations))
		for i, ok := range s.citations {
			c.citations[i] = ok
		}
	}
	return c
}

// WithMenuToggled returns a copy of s with the menu flag flipped.
func (s PageState) WithMenuToggled() PageState {
	c := s.Clone()
	c.ToggleMenu()
	return c
}

// WithCitationToggled returns a copy of s with entry i's flag flipped.
func (s PageState) WithCitationToggled(i int) PageState {
	c := s.Clone()
	c.ToggleCitation(i)
	return c
}

// Within returns a copy of s without citation flags for indexes at or past
// n, the number of publications. Those entries do not exist and must not
// reach URLs or cache keys.
func (s PageState) Within(n int) PageState {
	c := PageState{MenuOpen: s.MenuOpen}
	for _, i := range s.VisibleCitations() {
		if i < n {
			c.ToggleCitation(i)
		}
	}
	return c
}

// Values encodes s as query parameters. The initial state encodes to an
// empty set.
func (s PageState) Values() url.Values {
	v := url.Values{}
	if s.MenuOpen {
		v.Set(ParamMenu, "1")
	}
	if idx := s.VisibleCitations(); len(idx) > 0 {
		parts := make([]string, len(idx))
		for n, i := range idx {
			parts[n] = strconv.Itoa(i)
		}
		v.Set(ParamCitations, strings.Join(parts, ","))
	}
	return v
}

// Key is a canonical string form of s, usable as a cache key.
func (s PageState) Key() string {
	return s.Values().Encode()
}

// ParseState decodes a PageState from query parameters. Unknown values and
// malformed or negative indexes are ignored.
func ParseState(v url.Values) PageState {
	var s PageState
	switch v.Get(ParamMenu) {
	case "1", "true", "on":
		s.MenuOpen = true
	}
	for _, raw := range strings.Split(v.Get(ParamCitations), ",") {
		i, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || i < 0 {
			continue
		}
		if !s.CitationVisible(i) {
			s.ToggleCitation(i)
		}
	}
	return s
}

// PageURL is the address of the full page rendered in state s, scrolled to
// fragment when one is given.
func PageURL(s PageState, fragment string) string {
	u := "/"
	if q := s.Values().Encode(); q != "" {
		u += "?" + q
	}
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}

// Path segments selecting a fragment's state.
const (
	ModeOpen   = "open"
	ModeClosed = "closed"
	ModeShown  = "shown"
	ModeHidden = "hidden"
)

// NavPartialURL is the address of the navigation fragment with the menu
// open or closed. The state lives in the path so every fragment can also be
// written out as a static file.
func NavPartialURL(open bool) string {
	mode := ModeClosed
	if open {
		mode = ModeOpen
	}
	return "/partials/nav/" + mode + "/"
}

// PublicationPartialURL is the address of entry i's fragment with its
// citation shown or hidden.
func PublicationPartialURL(i int, visible bool) string {
	mode := ModeHidden
	if visible {
		mode = ModeShown
	}
	return "/partials/publications/" + strconv.Itoa(i) + "/" + mode + "/"
}

// FragmentState is the state a fragment is rendered in: only the flag the
// fragment owns is set.
func FragmentState(menuOpen bool, citation int, visible bool) PageState {
	s := PageState{MenuOpen: menuOpen}
	if citation >= 0 && visible {
		s.ToggleCitation(citation)
	}
	return s
}
