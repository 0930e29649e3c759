// Package ui models the state of one mounted portfolio page: the hero
// intro, the theme flag, the active project and the dispatchers that
// turn clicks into scrolls and opened links.
package ui

import (
	"context"
	"sync"
	"time"

	"github.com/marcosmenezes/portfolio/internal/content"
)

// Page owns the transient state of one mounted view. All mutation goes
// through its methods.
type Page struct {
	id    string
	intro *Intro

	mu        sync.Mutex
	darkMode  bool
	activeID  int
	hasActive bool
	lastSeen  time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewPage returns an unmounted page in its initial state: dark theme, no
// active project, intro not loaded.
func NewPage(id string, intro *Intro) *Page {
	return &Page{
		id:       id,
		intro:    intro,
		darkMode: true,
		lastSeen: time.Now(),
	}
}

func (p *Page) ID() string { return p.id }

func (p *Page) Intro() *Intro { return p.intro }

// Start runs the intro in the background until it completes or the page
// is closed. Calling Start twice does nothing.
func (p *Page) Start(ctx context.Context) {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go func() {
		defer close(done)
		_ = p.intro.Run(ctx)
	}()
}

// Close tears the page down and waits for the intro to release its timers.
func (p *Page) Close() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// DarkMode reports the theme flag.
func (p *Page) DarkMode() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.darkMode
}

// ToggleTheme inverts the theme flag and returns the new value.
func (p *Page) ToggleTheme() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.darkMode = !p.darkMode
	return p.darkMode
}

// Theme resolves the current flag to tokens.
func (p *Page) Theme() ThemeTokens {
	return Tokens(p.DarkMode())
}

// ActivateProject marks id as the project shown in the modal. The id is
// not checked against the catalog.
func (p *Page) ActivateProject(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeID = id
	p.hasActive = true
}

// ClearActiveProject closes the modal.
func (p *Page) ClearActiveProject() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeID = 0
	p.hasActive = false
}

// ActiveProjectID returns the active id, if any.
func (p *Page) ActiveProjectID() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeID, p.hasActive
}

// ActiveProject resolves the active id against catalog. The bool is false
// when no project is active; Lookup.Found is false when the active id has
// no catalog entry.
func (p *Page) ActiveProject(catalog *content.Catalog) (content.Lookup, bool) {
	id, ok := p.ActiveProjectID()
	if !ok {
		return content.Lookup{}, false
	}
	return catalog.Lookup(id), true
}

func (p *Page) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

func (p *Page) idleSince() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeen
}
