package jokes

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"thread-conductor/internal/logger"
)

// Signaler is the worker's end of the conductor.
type Signaler interface {
	Signal(event Event)
}

type WorkerConfig struct {
	Inbox   <-chan Msg
	Mailbox *Mailbox
	Signal  Signaler
	Jokes   []Joke
	// PunchlineDelay separates the joke from its punchline. Requests that
	// arrive meanwhile wait in the inbox.
	PunchlineDelay time.Duration
	Logger         logger.Logger
}

// Worker serves joke requests on its own goroutine.
type Worker struct {
	inbox   <-chan Msg
	mailbox *Mailbox
	signal  Signaler
	jokes   []Joke
	delay   time.Duration
	logger  logger.Logger

	next    int
	startMu sync.Mutex
	started bool
	done    chan struct{}
	err     error
}

func NewWorker(cfg WorkerConfig) *Worker {
	log := cfg.Logger
	if log == nil {
		log = logger.NoOp{}
	}
	return &Worker{
		inbox:   cfg.Inbox,
		mailbox: cfg.Mailbox,
		signal:  cfg.Signal,
		jokes:   cfg.Jokes,
		delay:   cfg.PunchlineDelay,
		logger:  log,
		done:    make(chan struct{}),
	}
}

// Start launches the worker goroutine. Later calls do nothing.
func (w *Worker) Start(ctx context.Context) {
	w.startMu.Lock()
	defer w.startMu.Unlock()
	if w.started {
		return
	}
	w.started = true

	go func() {
		defer close(w.done)
		defer func() {
			if r := recover(); r != nil {
				w.err = &JoinError{Value: r, Stack: debug.Stack()}
			}
		}()
		w.err = w.run(ctx)
	}()
}

// Join waits for the worker goroutine to exit and returns why it did.
// A clean quit returns nil.
func (w *Worker) Join() error {
	w.startMu.Lock()
	started := w.started
	w.startMu.Unlock()
	if !started {
		return ErrNotStarted
	}

	<-w.done
	return w.err
}

func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) run(ctx context.Context) error {
	w.logger.Info("Worker", "started", map[string]interface{}{
		"jokes":    len(w.jokes),
		"delay_ms": w.delay.Milliseconds(),
	})

	for {
		var (
			msg Msg
			ok  bool
		)
		select {
		case msg, ok = <-w.inbox:
		case <-ctx.Done():
			w.logger.Info("Worker", "context cancelled, exiting", nil)
			return nil
		}
		if !ok {
			return fmt.Errorf("worker inbox: %w", ErrChannelClosed)
		}

		w.logger.Debug("Worker", "message received", map[string]interface{}{"msg": msg.String()})

		switch msg {
		case MsgNewJokeRequest:
			if err := w.tell(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		case MsgReset:
			w.next = 0
			w.signal.Signal(EventReset)
		case MsgQuit:
			w.logger.Info("Worker", "quit received", nil)
			return nil
		default:
			w.logger.Warning("Worker", "ignoring unknown message", map[string]interface{}{"msg": int(msg)})
		}
	}
}

// tell pushes one joke then its punchline, signaling after each push.
func (w *Worker) tell(ctx context.Context) error {
	if len(w.jokes) == 0 {
		w.logger.Warning("Worker", "no jokes to tell", nil)
		return nil
	}
	joke := w.jokes[w.next%len(w.jokes)]

	if err := w.mailbox.Push(ctx, EventJokeUpdate, joke.Setup); err != nil {
		return err
	}
	w.signal.Signal(EventJokeUpdate)

	if w.delay > 0 {
		timer := time.NewTimer(w.delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil
		}
	}

	if err := w.mailbox.Push(ctx, EventPunchlineUpdate, joke.Punchline); err != nil {
		return err
	}
	w.signal.Signal(EventPunchlineUpdate)

	w.next++
	return nil
}
