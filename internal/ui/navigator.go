package ui

import "strings"

// HeaderOffset is subtracted from a section's offset so the fixed
// navigation bar does not cover its heading.
const HeaderOffset = 75

// SmoothScroll is the only scroll behavior the site requests.
const SmoothScroll = "smooth"

// Section names one of the scrollable page regions.
type Section string

const (
	SectionHome     Section = "home"
	SectionProjects Section = "projects"
	SectionSkills   Section = "skills"
	SectionContact  Section = "contact"
)

// Sections in navigation order.
var Sections = []Section{SectionHome, SectionProjects, SectionSkills, SectionContact}

// ParseSection accepts a section name in any case.
func ParseSection(s string) (Section, bool) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Sections {
		if sec == known {
			return sec, true
		}
	}
	return "", false
}

// Label is the navigation text.
func (s Section) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Region is a handle on a rendered section. attached is false until the
// section exists on the page.
type Region interface {
	Offset() (top int, attached bool)
}

// Scroller moves the viewport.
type Scroller interface {
	ScrollTo(top int, behavior string)
}

// Navigator scrolls to regions, leaving room for the header.
type Navigator struct {
	Scroller Scroller
}

// ScrollTo requests a smooth scroll to region. Unattached regions are ignored.
func (n Navigator) ScrollTo(region Region) {
	if region == nil || n.Scroller == nil {
		return
	}
	top, ok := region.Offset()
	if !ok {
		return
	}
	n.Scroller.ScrollTo(top-HeaderOffset, SmoothScroll)
}
