package server

import (
	"html/template"
	"strings"
	"time"

	"github.com/marcosmenezes/portfolio/internal/content"
	"github.com/marcosmenezes/portfolio/internal/ui"
)

var templateFuncs = template.FuncMap{
	"upper": strings.ToUpper,
}

type projectCard struct {
	content.Project
	Shown []string
	More  int
}

// modalView is what the project overlay renders. A dangling active id
// renders with every field empty.
type modalView struct {
	Found        bool
	ID           int
	Category     string
	Title        string
	Description  string
	Image        string
	Technologies []string
	HasLive      bool
	HasSource    bool
}

type pageView struct {
	PageID      string
	Profile     content.Profile
	Theme       ui.ThemeTokens
	Dark        bool
	Intro       ui.IntroSnapshot
	Sections    []ui.Section
	Projects    []projectCard
	SkillGroups []content.SkillGroup
	Platforms   []string
	Modal       *modalView
	Year        int
}

func (s *Server) view(page *ui.Page) pageView {
	intro, _ := page.Intro().Snapshot()
	v := pageView{
		PageID:      page.ID(),
		Profile:     s.doc.Profile,
		Theme:       page.Theme(),
		Dark:        page.DarkMode(),
		Intro:       intro,
		Sections:    ui.Sections,
		SkillGroups: s.doc.SkillGroups(),
		Platforms:   ui.Platforms,
		Year:        time.Now().Year(),
	}
	for _, p := range s.catalog.Projects() {
		shown, more := p.Preview()
		v.Projects = append(v.Projects, projectCard{Project: p, Shown: shown, More: more})
	}
	if lookup, active := page.ActiveProject(s.catalog); active {
		m := newModalView(lookup)
		v.Modal = &m
	}
	return v
}

func newModalView(l content.Lookup) modalView {
	if !l.Found {
		return modalView{}
	}
	p := l.Project
	return modalView{
		Found:        true,
		ID:           p.ID,
		Category:     p.Category,
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: p.Technologies,
		HasLive:      p.LiveURL != "",
		HasSource:    p.SourceURL != "",
	}
}

// modalFragment is the data for the "modal" template rendered on its own.
type modalFragment struct {
	Theme ui.ThemeTokens
	Modal *modalView
}
