package ui

import (
	"context"
	"sync"
	"time"
)

const (
	// LoadDelay is how long after mount the page flips to loaded.
	LoadDelay = 500 * time.Millisecond
	// TypingSpeed is the typewriter period.
	TypingSpeed = 100 * time.Millisecond
)

// IntroSnapshot is what the hero shows at a moment in time.
type IntroSnapshot struct {
	Loaded bool
	Text   string
	Done   bool
}

// Intro drives the hero: a one-shot load delay, then the greeting
// typewriter. Readers take a Snapshot and wait on the returned channel,
// which is closed on the next change.
type Intro struct {
	loadDelay time.Duration
	speed     time.Duration
	greeting  *Typewriter

	mu      sync.Mutex
	loaded  bool
	text    string
	done    bool
	changed chan struct{}
}

// NewIntro returns an intro for greeting using the default timings.
func NewIntro(greeting string) *Intro {
	return NewIntroWithTimings(greeting, LoadDelay, TypingSpeed)
}

// NewIntroWithTimings is NewIntro with explicit timings.
func NewIntroWithTimings(greeting string, loadDelay, speed time.Duration) *Intro {
	tw := NewTypewriter(greeting)
	return &Intro{
		loadDelay: loadDelay,
		speed:     speed,
		greeting:  tw,
		done:      tw.State() == Complete,
		changed:   make(chan struct{}),
	}
}

// Greeting is the full text the typewriter is revealing.
func (in *Intro) Greeting() string {
	return in.greeting.Target()
}

// Snapshot returns the current state and a channel closed on the next change.
func (in *Intro) Snapshot() (IntroSnapshot, <-chan struct{}) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return IntroSnapshot{Loaded: in.loaded, Text: in.text, Done: in.done}, in.changed
}

// MarkLoaded flips loaded to true. It reports whether this call made the
// transition; only that call may start the typewriter.
func (in *Intro) MarkLoaded() bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.loaded {
		return false
	}
	in.loaded = true
	in.notifyLocked()
	return true
}

// Run waits out the load delay, marks the page loaded and, on that
// transition only, types the greeting. It returns when typing completes
// or ctx ends; both timers are released on every path.
func (in *Intro) Run(ctx context.Context) error {
	timer := time.NewTimer(in.loadDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if !in.MarkLoaded() {
		return nil
	}

	err := in.greeting.Run(ctx, in.speed, in.setText)
	if err == ErrAlreadyStarted {
		return nil
	}
	return err
}

func (in *Intro) setText(text string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.text = text
	in.done = text == in.greeting.Target()
	in.notifyLocked()
}

func (in *Intro) notifyLocked() {
	close(in.changed)
	in.changed = make(chan struct{})
}
