package views

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleMenuIsInvolution(t *testing.T) {
	for _, start := range []bool{false, true} {
		s := PageState{MenuOpen: start}
		s.ToggleMenu()
		assert.Equal(t, !start, s.MenuOpen)
		s.ToggleMenu()
		assert.Equal(t, start, s.MenuOpen)
	}
}

func TestToggleCitationIsInvolution(t *testing.T) {
	var s PageState
	for i := 0; i < 4; i++ {
		before := s.CitationVisible(i)
		s.ToggleCitation(i)
		s.ToggleCitation(i)
		assert.Equal(t, before, s.CitationVisible(i), "entry %d", i)
	}
}

func TestToggleCitationIsolation(t *testing.T) {
	var s PageState
	s.ToggleCitation(2)
	before := map[int]bool{}
	for i := 0; i < 5; i++ {
		before[i] = s.CitationVisible(i)
	}

	s.ToggleCitation(0)

	assert.True(t, s.CitationVisible(0))
	for i := 1; i < 5; i++ {
		assert.Equal(t, before[i], s.CitationVisible(i), "entry %d changed", i)
	}
	assert.False(t, s.MenuOpen)
}

func TestZeroStateIsInitial(t *testing.T) {
	var s PageState
	assert.False(t, s.MenuOpen)
	assert.False(t, s.CitationVisible(0))
	assert.Empty(t, s.VisibleCitations())
	assert.Empty(t, s.Key())
}

func TestWithToggledLeavesOriginal(t *testing.T) {
	var s PageState
	s.ToggleCitation(1)

	next := s.WithCitationToggled(0).WithMenuToggled()

	assert.True(t, next.MenuOpen)
	assert.Equal(t, []int{0, 1}, next.VisibleCitations())
	assert.False(t, s.MenuOpen)
	assert.Equal(t, []int{1}, s.VisibleCitations())
}

func TestStateQueryRoundTrip(t *testing.T) {
	var s PageState
	s.ToggleMenu()
	s.ToggleCitation(3)
	s.ToggleCitation(0)

	v := s.Values()
	assert.Equal(t, "1", v.Get(ParamMenu))
	assert.Equal(t, "0,3", v.Get(ParamCitations))

	got := ParseState(v)
	assert.True(t, got.MenuOpen)
	assert.Equal(t, []int{0, 3}, got.VisibleCitations())
	assert.Equal(t, s.Key(), got.Key())
}

func TestParseStateIgnoresGarbage(t *testing.T) {
	got := ParseState(url.Values{
		ParamMenu:      {"maybe"},
		ParamCitations: {"x,-1, 2,,2"},
	})
	assert.False(t, got.MenuOpen)
	assert.Equal(t, []int{2}, got.VisibleCitations())
}

func TestStateURLs(t *testing.T) {
	var s PageState
	assert.Equal(t, "/", PageURL(s, ""))
	assert.Equal(t, "/#publication-1", PageURL(s, "publication-1"))

	s.ToggleMenu()
	s.ToggleCitation(1)
	assert.Equal(t, "/?cite=1&menu=1", PageURL(s, ""))

	assert.Equal(t, "/partials/nav/open/", NavPartialURL(true))
	assert.Equal(t, "/partials/nav/closed/", NavPartialURL(false))
	assert.Equal(t, "/partials/publications/1/shown/", PublicationPartialURL(1, true))
	assert.Equal(t, "/partials/publications/0/hidden/", PublicationPartialURL(0, false))
}

func TestFragmentState(t *testing.T) {
	s := FragmentState(false, 3, true)
	assert.False(t, s.MenuOpen)
	assert.Equal(t, []int{3}, s.VisibleCitations())

	s = FragmentState(true, -1, true)
	assert.True(t, s.MenuOpen)
	assert.Empty(t, s.VisibleCitations())
}

func TestWithinDropsMissingPublications(t *testing.T) {
	s := ParseState(url.Values{ParamCitations: {"0,2,7"}, ParamMenu: {"1"}})
	w := s.Within(2)
	assert.True(t, w.MenuOpen)
	assert.Equal(t, []int{0}, w.VisibleCitations())
	assert.Equal(t, "cite=0&menu=1", w.Key())
	assert.Equal(t, []int{0, 2, 7}, s.VisibleCitations())

	assert.Equal(t, PageState{}.Key(), ParseState(url.Values{ParamCitations: {"2"}}).Within(2).Key())
}
