package jokes

import (
	"context"
	"fmt"
	"sync"
)

// Mailbox holds one buffered payload queue per event kind. The worker pushes a
// payload before signaling its kind, so the UI side can take it without waiting.
type Mailbox struct {
	queues    map[Event]chan string
	done      chan struct{}
	closeOnce sync.Once
}

func NewMailbox(size int, kinds ...Event) *Mailbox {
	if size <= 0 {
		size = 1
	}
	m := &Mailbox{
		queues: make(map[Event]chan string, len(kinds)),
		done:   make(chan struct{}),
	}
	for _, kind := range kinds {
		m.queues[kind] = make(chan string, size)
	}
	return m
}

// Push queues payload for kind. It waits while the queue is full and fails
// once ctx is done or the mailbox is closed.
func (m *Mailbox) Push(ctx context.Context, kind Event, payload string) error {
	queue, ok := m.queues[kind]
	if !ok {
		return fmt.Errorf("%w: no queue for %s", ErrSendFailure, kind)
	}

	select {
	case <-m.done:
		return fmt.Errorf("%w: %s: %w", ErrSendFailure, kind, ErrChannelClosed)
	default:
	}

	select {
	case queue <- payload:
		return nil
	case <-m.done:
		return fmt.Errorf("%w: %s: %w", ErrSendFailure, kind, ErrChannelClosed)
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", ErrSendFailure, kind, ctx.Err())
	}
}

// TryTake returns the oldest payload for kind without blocking.
func (m *Mailbox) TryTake(kind Event) (string, bool) {
	queue, ok := m.queues[kind]
	if !ok {
		return "", false
	}
	select {
	case payload := <-queue:
		return payload, true
	default:
		return "", false
	}
}

func (m *Mailbox) Len(kind Event) int {
	return len(m.queues[kind])
}

func (m *Mailbox) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}
