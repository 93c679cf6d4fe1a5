package conductor

import (
	"context"
	"sync"
)

// Dispatcher runs tasks on the UI thread. Do must not wait for the task to run.
type Dispatcher interface {
	Do(task func())
}

// DispatcherFunc adapts a plain function to a Dispatcher.
type DispatcherFunc func(task func())

func (f DispatcherFunc) Do(task func()) {
	f(task)
}

// Loop is an unbounded FIFO UI-thread task queue for programs that own their
// event loop. Any goroutine may call Do; exactly one goroutine calls Run or
// Drain.
type Loop struct {
	mu       sync.Mutex
	tasks    []func()
	stopped  bool
	wake     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

const DefaultLoopSize = 256

// NewLoop returns an empty loop. size only preallocates; the queue grows as
// needed.
func NewLoop(size int) *Loop {
	if size <= 0 {
		size = DefaultLoopSize
	}
	return &Loop{
		tasks: make([]func(), 0, size),
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Do enqueues task and returns at once. Tasks queued after Stop are dropped.
func (l *Loop) Do(task func()) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) pop() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped || len(l.tasks) == 0 {
		return nil, false
	}
	task := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return task, true
}

// Run executes queued tasks, one per turn, until ctx is cancelled or Stop is
// called. It returns ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		default:
		}

		if task, ok := l.pop(); ok {
			task()
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}
	}
}

// Drain runs every queued task, plus any they enqueue, on the caller and
// reports how many ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		task, ok := l.pop()
		if !ok {
			return n
		}
		task()
		n++
	}
}

func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Stop ends Run and discards queued tasks.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.tasks = nil
		l.mu.Unlock()
		close(l.done)
	})
}

func (l *Loop) Done() <-chan struct{} {
	return l.done
}
