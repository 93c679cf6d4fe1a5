package jokes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"thread-conductor/conductor"
	"thread-conductor/internal/config"
	"thread-conductor/internal/logger"
	"thread-conductor/internal/shutdown"
)

type Options struct {
	AppID  string
	Title  string
	Jokes  []Joke
	Config config.Config
	Logger logger.Logger
}

// Application owns the worker, its channels and the UI for one run.
type Application struct {
	opts     Options
	cfg      config.Config
	logger   logger.Logger
	inbox    chan Msg
	mailbox  *Mailbox
	shutdown *shutdown.Manager

	worker       *Worker
	cancelWorker context.CancelFunc
}

func NewApplication(opts Options) *Application {
	log := opts.Logger
	if log == nil {
		log = logger.NoOp{}
	}
	if len(opts.Jokes) == 0 {
		opts.Jokes = Classic
	}
	cfg := opts.Config

	return &Application{
		opts:     opts,
		cfg:      cfg,
		logger:   log,
		inbox:    make(chan Msg, cfg.QueueSize),
		mailbox:  NewMailbox(cfg.QueueSize, EventJokeUpdate, EventPunchlineUpdate),
		shutdown: shutdown.NewManager(log, cfg.ShutdownTimeout),
	}
}

// Request hands msg to the worker without blocking the caller, which is
// usually the UI thread. It reports false when the inbox is full.
func (a *Application) Request(msg Msg) bool {
	select {
	case a.inbox <- msg:
		return true
	default:
		a.logger.Warning("Application", "worker busy, request dropped", map[string]interface{}{
			"msg":     msg.String(),
			"backlog": len(a.inbox),
		})
		return false
	}
}

// wire builds the presenter, the conductor and the worker on top of
// dispatcher and starts the worker. after, if set, runs on the UI thread
// after each event has been presented.
func (a *Application) wire(ctx context.Context, dispatcher conductor.Dispatcher, view View, after func(Event, *Presenter)) {
	presenter := NewPresenter(view, a.mailbox, a.logger)
	callback := func(event Event) {
		presenter.Handle(event)
		if after != nil {
			after(event, presenter)
		}
	}

	_, signaler := conductor.New[Event](Codec, dispatcher, callback, conductor.WithLogger(a.logger))
	a.startWorker(ctx, signaler)
}

// startWorker launches the worker and registers it, together with the
// mailbox, for shutdown.
func (a *Application) startWorker(ctx context.Context, signaler Signaler) {
	workerCtx, cancel := context.WithCancel(ctx)
	a.cancelWorker = cancel
	a.worker = NewWorker(WorkerConfig{
		Inbox:          a.inbox,
		Mailbox:        a.mailbox,
		Signal:         signaler,
		Jokes:          a.opts.Jokes,
		PunchlineDelay: a.cfg.PunchlineDelay,
		Logger:         a.logger,
	})

	// stopped in reverse: worker first, then the mailbox
	a.shutdown.Register(shutdown.Func("mailbox", func(context.Context) error {
		a.mailbox.Close()
		return nil
	}))
	a.shutdown.Register(shutdown.Func("worker", a.stopWorker))

	a.worker.Start(workerCtx)
}

// stopWorker asks the worker to quit and waits for it. If it has not exited
// when ctx expires, its context is cancelled as a last resort.
func (a *Application) stopWorker(ctx context.Context) error {
	defer a.cancelWorker()

	select {
	case a.inbox <- MsgQuit:
	case <-a.worker.Done():
	case <-ctx.Done():
		return fmt.Errorf("deliver quit: %w", ErrSendFailure)
	}

	joined := make(chan error, 1)
	go func() {
		joined <- a.worker.Join()
	}()

	select {
	case err := <-joined:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunGUI opens the window and blocks until it is closed, then stops the
// worker. A worker that died abnormally is reported as a *JoinError.
func (a *Application) RunGUI(ctx context.Context) error {
	fyneApp := app.NewWithID(a.opts.AppID)
	window := fyneApp.NewWindow(a.opts.Title)
	window.Resize(fyne.NewSize(a.cfg.WindowWidth, a.cfg.WindowHeight))

	view := NewFyneView(
		func() { a.Request(MsgNewJokeRequest) },
		func() { a.Request(MsgReset) },
	)
	window.SetContent(view.Content())

	dispatcher := conductor.NewFyneDispatcher()
	a.wire(ctx, dispatcher, view, nil)

	// Delivery stops before the fyne loop does; a late signal from the worker
	// would otherwise run on the worker goroutine.
	window.SetCloseIntercept(func() {
		dispatcher.Close()
		window.Close()
	})
	quit := func() {
		dispatcher.Close()
		fyne.Do(fyneApp.Quit)
	}
	fyneApp.Lifecycle().SetOnStopped(dispatcher.Close)
	stopListening := a.shutdown.Listen(quit)
	defer stopListening()

	runDone := make(chan struct{})
	defer close(runDone)
	go func() {
		select {
		case <-ctx.Done():
			quit()
		case <-runDone:
		}
	}()

	a.logger.Info("Application", "starting UI", map[string]interface{}{
		"title":      a.opts.Title,
		"jokes":      len(a.opts.Jokes),
		"go_version": runtime.Version(),
	})

	window.ShowAndRun()
	dispatcher.Close()

	a.logger.Info("Application", "window closed, stopping worker", nil)
	return a.shutdown.Shutdown()
}

// RunHeadless drives the same pipeline with a conductor.Loop on the calling
// goroutine and prints to out. It requests Count jokes and returns once
// their punchlines are shown; with Count zero it runs until interrupted.
func (a *Application) RunHeadless(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	loop := conductor.NewLoop(a.cfg.QueueSize)
	count := a.cfg.Count

	a.wire(ctx, loop, NewConsoleView(out), func(event Event, p *Presenter) {
		if event == EventPunchlineUpdate && count > 0 && p.Shown() >= count {
			loop.Stop()
		}
	})

	stopListening := a.shutdown.Listen(cancel)
	defer stopListening()

	go func() {
		for i := 0; count == 0 || i < count; i++ {
			select {
			case a.inbox <- MsgNewJokeRequest:
			case <-loop.Done():
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	a.logger.Info("Application", "running headless", map[string]interface{}{
		"count": count,
	})

	err := loop.Run(ctx)
	loop.Stop()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}

	return errors.Join(err, a.shutdown.Shutdown())
}
