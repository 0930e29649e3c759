package ui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntroRunsToCompletion(t *testing.T) {
	in := NewIntroWithTimings(greeting, time.Millisecond, time.Millisecond)

	snap, _ := in.Snapshot()
	assert.False(t, snap.Loaded)
	assert.Empty(t, snap.Text)

	require.NoError(t, in.Run(context.Background()))

	snap, _ = in.Snapshot()
	assert.True(t, snap.Loaded)
	assert.True(t, snap.Done)
	assert.Equal(t, greeting, snap.Text)
}

func TestIntroMarkLoadedIsEdgeTriggered(t *testing.T) {
	in := NewIntro(greeting)
	assert.True(t, in.MarkLoaded())
	assert.False(t, in.MarkLoaded())
}

func TestIntroDoesNotTypeWithoutTransition(t *testing.T) {
	in := NewIntroWithTimings(greeting, time.Millisecond, time.Millisecond)
	in.MarkLoaded()

	require.NoError(t, in.Run(context.Background()))

	snap, _ := in.Snapshot()
	assert.True(t, snap.Loaded)
	assert.Empty(t, snap.Text)
	assert.False(t, snap.Done)
}

func TestIntroSecondRunDoesNotRestart(t *testing.T) {
	in := NewIntroWithTimings("hi", time.Millisecond, time.Millisecond)
	require.NoError(t, in.Run(context.Background()))

	_, changed := in.Snapshot()
	require.NoError(t, in.Run(context.Background()))

	select {
	case <-changed:
		t.Fatal("second run mutated the intro")
	default:
	}
}

func TestIntroTeardownDuringLoadDelay(t *testing.T) {
	in := NewIntroWithTimings(greeting, time.Hour, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := in.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	snap, _ := in.Snapshot()
	assert.False(t, snap.Loaded)
}

func TestIntroTeardownWhileTyping(t *testing.T) {
	in := NewIntroWithTimings(greeting, time.Millisecond, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	errc := make(chan error, 1)
	go func() { errc <- in.Run(ctx) }()

	// Wait for the first reveal, then tear down.
	for {
		snap, changed := in.Snapshot()
		if snap.Text != "" {
			break
		}
		<-changed
	}
	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)

	snap, changed := in.Snapshot()
	assert.False(t, snap.Done)
	select {
	case <-changed:
		t.Fatal("intro changed after teardown")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestIntroSnapshotChannelSignalsChange(t *testing.T) {
	in := NewIntro(greeting)
	_, changed := in.Snapshot()

	in.MarkLoaded()

	select {
	case <-changed:
	default:
		t.Fatal("change channel not closed")
	}
	snap, _ := in.Snapshot()
	assert.True(t, snap.Loaded)
}

func TestIntroEmptyGreeting(t *testing.T) {
	in := NewIntroWithTimings("", time.Millisecond, time.Millisecond)
	require.NoError(t, in.Run(context.Background()))

	snap, _ := in.Snapshot()
	assert.True(t, snap.Loaded)
	assert.True(t, snap.Done)
	assert.Empty(t, snap.Text)
}
