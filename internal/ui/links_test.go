package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcosmenezes/portfolio/internal/content"
)

type spyOpener struct {
	opened []string
}

func (s *spyOpener) Open(url string) { s.opened = append(s.opened, url) }

func testLinks() Links {
	return Links{
		Email:  "contact.marcosmenezes@gmail.com",
		MapURL: "https://maps.example/hortolandia",
		Socials: map[string]string{
			"github":    "https://www.github.com/Droppicode",
			"linkedin":  "https://www.linkedin.com/in/marcos-menezes-31a10435a/",
			"instagram": "https://www.instagram.com/marcoss.mn/",
			"myspace":   "https://myspace.example/marcos",
		},
	}
}

func TestOpenPlatform(t *testing.T) {
	spy := &spyOpener{}
	links := testLinks()

	links.OpenPlatform(spy, "github")
	links.OpenPlatform(spy, "linkedin")
	links.OpenPlatform(spy, "instagram")

	assert.Equal(t, []string{
		"https://www.github.com/Droppicode",
		"https://www.linkedin.com/in/marcos-menezes-31a10435a/",
		"https://www.instagram.com/marcoss.mn/",
	}, spy.opened)
}

func TestOpenPlatformUnknownKey(t *testing.T) {
	spy := &spyOpener{}
	links := testLinks()

	for _, key := range []string{"myspace", "twitter", "", "GitHub"} {
		links.OpenPlatform(spy, key)
	}
	assert.Empty(t, spy.opened)
}

func TestOpenEmailAndLocation(t *testing.T) {
	spy := &spyOpener{}
	links := testLinks()

	links.OpenEmail(spy)
	links.OpenLocation(spy)

	assert.Equal(t, []string{"mailto:contact.marcosmenezes@gmail.com", "https://maps.example/hortolandia"}, spy.opened)

	empty := &spyOpener{}
	Links{}.OpenEmail(empty)
	Links{}.OpenLocation(empty)
	assert.Empty(t, empty.opened)
}

func TestOpenProject(t *testing.T) {
	p := content.Project{
		ID:        1,
		Title:     "Algorithm Visualizer",
		LiveURL:   "https://droppicode.github.io/Algorithm-Visualizer/",
		SourceURL: "https://github.com/Droppicode/Algorithm-Visualizer",
	}

	spy := &spyOpener{}
	OpenProject(spy, p, LinkLive)
	OpenProject(spy, p, LinkSource)
	OpenProject(spy, p, LinkKind("docs"))
	assert.Equal(t, []string{p.LiveURL, p.SourceURL}, spy.opened)

	// Renaming the project does not change where it links.
	p.Title = "Renamed"
	OpenProject(spy, p, LinkLive)
	assert.Len(t, spy.opened, 3)

	none := &spyOpener{}
	OpenProject(none, content.Project{ID: 2}, LinkLive)
	assert.Empty(t, none.opened)
}

func TestLinksFor(t *testing.T) {
	doc, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	links := LinksFor(doc.Profile)
	assert.Equal(t, doc.Profile.Email, links.Email)
	assert.Equal(t, doc.Profile.MapURL, links.MapURL)
	assert.Len(t, links.Socials, 3)
}
