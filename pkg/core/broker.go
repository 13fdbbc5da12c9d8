package core

import (
	"context"
	"sync"

	"github.com/aretw0/lifecycle"
)

const defaultEventBuffer = 100

// broker fans controller events out to subscribers.
// Publishing never blocks: a subscriber whose buffer is full misses the event.
type broker struct {
	mu      sync.Mutex
	subs    map[int]chan Event
	nextID  int
	size    int
	closed  bool
	done    chan struct{}
	dropped int
}

func newBroker(size int) *broker {
	if size <= 0 {
		size = defaultEventBuffer
	}
	return &broker{
		subs: make(map[int]chan Event),
		size: size,
		done: make(chan struct{}),
	}
}

func (b *broker) subscribe(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.size)
	b.subs[id] = ch
	b.mu.Unlock()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			b.unsubscribe(id)
		case <-b.done:
		}
		return nil
	})

	return ch, nil
}

func (b *broker) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *broker) publish(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.dropped++
		}
	}
}

func (b *broker) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *broker) stats() (subscribers, dropped int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs), b.dropped
}
