package ui

import (
	"github.com/marcosmenezes/portfolio/internal/content"
)

// Opener opens url in a new browsing context.
type Opener interface {
	Open(url string)
}

// Platforms the contact section links to.
const (
	PlatformGitHub    = "github"
	PlatformLinkedIn  = "linkedin"
	PlatformInstagram = "instagram"
)

// Platforms in display order.
var Platforms = []string{PlatformGitHub, PlatformLinkedIn, PlatformInstagram}

// LinkKind selects which project URL to open.
type LinkKind string

const (
	LinkLive   LinkKind = "live"
	LinkSource LinkKind = "github"
)

// Links dispatches the contact and social affordances.
type Links struct {
	Email   string
	MapURL  string
	Socials map[string]string
}

// LinksFor builds the dispatcher for a profile.
func LinksFor(p content.Profile) Links {
	return Links{Email: p.Email, MapURL: p.MapURL, Socials: p.Socials}
}

// OpenPlatform opens the profile for one of the known platforms. Any other
// key does nothing.
func (l Links) OpenPlatform(o Opener, platform string) {
	switch platform {
	case PlatformGitHub, PlatformLinkedIn, PlatformInstagram:
	default:
		return
	}
	if url := l.Socials[platform]; url != "" {
		o.Open(url)
	}
}

// OpenEmail opens a mailto URI for the owner's address.
func (l Links) OpenEmail(o Opener) {
	if l.Email == "" {
		return
	}
	o.Open("mailto:" + l.Email)
}

// OpenLocation opens the map search.
func (l Links) OpenLocation(o Opener) {
	if l.MapURL == "" {
		return
	}
	o.Open(l.MapURL)
}

// OpenProject opens the live demo or the source of p.
func OpenProject(o Opener, p content.Project, kind LinkKind) {
	var url string
	switch kind {
	case LinkLive:
		url = p.LiveURL
	case LinkSource:
		url = p.SourceURL
	}
	if url == "" {
		return
	}
	o.Open(url)
}
