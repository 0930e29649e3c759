package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type scrollCall struct {
	top      int
	behavior string
}

type spyScroller struct {
	calls []scrollCall
}

func (s *spyScroller) ScrollTo(top int, behavior string) {
	s.calls = append(s.calls, scrollCall{top: top, behavior: behavior})
}

type fixedRegion struct {
	top      int
	attached bool
}

func (r fixedRegion) Offset() (int, bool) { return r.top, r.attached }

func TestNavigatorSubtractsHeader(t *testing.T) {
	spy := &spyScroller{}
	nav := Navigator{Scroller: spy}

	nav.ScrollTo(fixedRegion{top: 900, attached: true})
	nav.ScrollTo(fixedRegion{top: 0, attached: true})

	assert.Equal(t, []scrollCall{
		{top: 825, behavior: "smooth"},
		{top: -75, behavior: "smooth"},
	}, spy.calls)
}

func TestNavigatorIgnoresUnattachedRegion(t *testing.T) {
	spy := &spyScroller{}
	nav := Navigator{Scroller: spy}

	assert.NotPanics(t, func() {
		nav.ScrollTo(fixedRegion{top: 500, attached: false})
		nav.ScrollTo(nil)
	})
	assert.Empty(t, spy.calls)
}

func TestNavigatorLatestRequestWins(t *testing.T) {
	spy := &spyScroller{}
	nav := Navigator{Scroller: spy}

	nav.ScrollTo(fixedRegion{top: 100, attached: true})
	nav.ScrollTo(fixedRegion{top: 2000, attached: true})

	assert.Len(t, spy.calls, 2)
	assert.Equal(t, 1925, spy.calls[1].top)
}

func TestParseSection(t *testing.T) {
	for _, in := range []string{"home", "Projects", " SKILLS ", "contact"} {
		_, ok := ParseSection(in)
		assert.True(t, ok, in)
	}
	_, ok := ParseSection("about")
	assert.False(t, ok)

	assert.Equal(t, "Projects", SectionProjects.Label())
	assert.Equal(t, "", Section("").Label())
}
