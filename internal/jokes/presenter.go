package jokes

import "thread-conductor/internal/logger"

// View is the UI surface the presenter drives. Methods are called on the UI
// thread only.
type View interface {
	SetJoke(text string)
	SetPunchline(text string)
	Clear()
}

// Presenter is the conductor callback: it takes the payload announced by an
// event out of the mailbox and shows it.
type Presenter struct {
	view    View
	mailbox *Mailbox
	logger  logger.Logger

	shown int
}

func NewPresenter(view View, mailbox *Mailbox, log logger.Logger) *Presenter {
	if log == nil {
		log = logger.NoOp{}
	}
	return &Presenter{view: view, mailbox: mailbox, logger: log}
}

func (p *Presenter) Handle(event Event) {
	switch event {
	case EventJokeUpdate:
		text, ok := p.take(event)
		if !ok {
			return
		}
		p.view.SetJoke(text)
		// the punchline may arrive later
		p.view.SetPunchline("")
	case EventPunchlineUpdate:
		text, ok := p.take(event)
		if !ok {
			return
		}
		p.view.SetPunchline(text)
		p.shown++
	case EventReset:
		p.view.Clear()
	}
}

// Shown counts punchlines displayed so far. UI thread only.
func (p *Presenter) Shown() int {
	return p.shown
}

func (p *Presenter) take(event Event) (string, bool) {
	text, ok := p.mailbox.TryTake(event)
	if !ok {
		p.logger.Warning("Presenter", "no payload queued for event", map[string]interface{}{
			"event": event.String(),
		})
	}
	return text, ok
}
