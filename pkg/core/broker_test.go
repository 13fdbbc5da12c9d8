package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := newBroker(2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.subscribe(ctx)
	require.NoError(t, err)

	// Nobody reads yet: publishing past the buffer must not hang.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			b.publish(Event{Type: EventGoalAdded})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	assert.Len(t, ch, 2)
	_, dropped := b.stats()
	assert.Equal(t, 3, dropped)
}

func TestBroker_UnsubscribeOnCancel(t *testing.T) {
	b := newBroker(0)
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := b.subscribe(ctx)
	require.NoError(t, err)
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed after cancel")
	}

	subs, _ := b.stats()
	assert.Zero(t, subs)
}

func TestBroker_DefaultSize(t *testing.T) {
	assert.Equal(t, defaultEventBuffer, newBroker(0).size)
	assert.Equal(t, 7, newBroker(7).size)
}
