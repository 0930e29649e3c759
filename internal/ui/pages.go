package ui

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PagesOptions configures a page registry.
type PagesOptions struct {
	Greeting    string
	LoadDelay   time.Duration
	TypingSpeed time.Duration
	// TTL is how long a page may go without requests before it is torn down.
	TTL time.Duration
}

// Pages tracks the mounted pages, one per browser, keyed by page id.
type Pages struct {
	opts PagesOptions
	now  func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	pages map[string]*Page
}

// NewPages returns an empty registry. Zero timings fall back to the defaults.
func NewPages(opts PagesOptions) *Pages {
	if opts.LoadDelay <= 0 {
		opts.LoadDelay = LoadDelay
	}
	if opts.TypingSpeed <= 0 {
		opts.TypingSpeed = TypingSpeed
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pages{
		opts:   opts,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
		pages:  make(map[string]*Page),
	}
}

// Mount creates a fresh page and starts its intro. If previous names a
// mounted page it is torn down first, so a reload resets all state.
func (ps *Pages) Mount(previous string) *Page {
	if previous != "" {
		ps.Unmount(previous)
	}

	page := NewPage(uuid.NewString(), NewIntroWithTimings(ps.opts.Greeting, ps.opts.LoadDelay, ps.opts.TypingSpeed))
	page.touch(ps.now())

	ps.mu.Lock()
	ps.pages[page.ID()] = page
	ps.mu.Unlock()

	page.Start(ps.ctx)
	return page
}

// Get returns a mounted page and records the access.
func (ps *Pages) Get(id string) (*Page, bool) {
	ps.mu.Lock()
	page, ok := ps.pages[id]
	ps.mu.Unlock()
	if ok {
		page.touch(ps.now())
	}
	return page, ok
}

// Unmount tears down a page. Unknown ids are ignored.
func (ps *Pages) Unmount(id string) {
	ps.mu.Lock()
	page, ok := ps.pages[id]
	delete(ps.pages, id)
	ps.mu.Unlock()
	if ok {
		page.Close()
	}
}

// Len is the number of mounted pages.
func (ps *Pages) Len() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return len(ps.pages)
}

// Sweep tears down every page idle for longer than the TTL and returns
// how many were removed.
func (ps *Pages) Sweep() int {
	cutoff := ps.now().Add(-ps.opts.TTL)

	ps.mu.Lock()
	var stale []*Page
	for id, page := range ps.pages {
		if page.idleSince().Before(cutoff) {
			stale = append(stale, page)
			delete(ps.pages, id)
		}
	}
	ps.mu.Unlock()

	for _, page := range stale {
		page.Close()
	}
	return len(stale)
}

// RunJanitor sweeps every interval until ctx ends. onSweep, when set, is
// told how many pages each sweep removed.
func (ps *Pages) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := ps.Sweep()
			if onSweep != nil {
				onSweep(n)
			}
		}
	}
}

// Close tears down every page.
func (ps *Pages) Close() {
	ps.cancel()

	ps.mu.Lock()
	pages := ps.pages
	ps.pages = make(map[string]*Page)
	ps.mu.Unlock()

	for _, page := range pages {
		page.Close()
	}
}
