package ui

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// TypewriterState is where a Typewriter is in its single run.
type TypewriterState int

const (
	NotStarted TypewriterState = iota
	Running
	Complete
)

func (s TypewriterState) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// ErrAlreadyStarted is returned by Run when the typewriter has been run before.
var ErrAlreadyStarted = errors.New("typewriter already started")

// Typewriter reveals a fixed target string one rune at a time.
type Typewriter struct {
	mu       sync.Mutex
	target   []rune
	revealed int
	state    TypewriterState
}

// NewTypewriter returns a typewriter for target. An empty target is
// complete immediately.
func NewTypewriter(target string) *Typewriter {
	tw := &Typewriter{target: []rune(target)}
	if len(tw.target) == 0 {
		tw.state = Complete
	}
	return tw
}

// Target is the full string being revealed.
func (t *Typewriter) Target() string {
	return string(t.target)
}

// Text is the revealed prefix.
func (t *Typewriter) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.target[:t.revealed])
}

func (t *Typewriter) State() TypewriterState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Tick reveals one more rune. It reports false, leaving the text untouched,
// once the whole target is visible.
func (t *Typewriter) Tick() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.revealed >= len(t.target) {
		t.state = Complete
		return string(t.target), false
	}
	t.revealed++
	if t.revealed == len(t.target) {
		t.state = Complete
	} else {
		t.state = Running
	}
	return string(t.target[:t.revealed]), true
}

// Run reveals one rune per period, calling onTick with the new text after
// each reveal. It returns nil when the target is fully revealed and
// ctx.Err() if ctx ends first. The ticker is stopped on every return path.
func (t *Typewriter) Run(ctx context.Context, period time.Duration, onTick func(string)) error {
	t.mu.Lock()
	switch {
	case t.state == Complete && len(t.target) == 0:
		t.mu.Unlock()
		return nil
	case t.state != NotStarted:
		t.mu.Unlock()
		return ErrAlreadyStarted
	}
	t.state = Running
	t.mu.Unlock()

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// ctx may have ended while the tick was pending.
			if ctx.Err() != nil {
				return ctx.Err()
			}
			text, ok := t.Tick()
			if !ok {
				return nil
			}
			if onTick != nil {
				onTick(text)
			}
			if t.State() == Complete {
				return nil
			}
		}
	}
}
