package conductor

import (
	"sync/atomic"

	"fyne.io/fyne/v2"
)

// FyneDispatcher marshals tasks onto the fyne main goroutine. Once the
// window is going away fyne may run tasks inline on the caller, so Close must
// be called before the event loop stops; tasks are dropped after that.
type FyneDispatcher struct {
	closed atomic.Bool
}

func NewFyneDispatcher() *FyneDispatcher {
	return &FyneDispatcher{}
}

func (d *FyneDispatcher) Do(task func()) {
	if d.closed.Load() {
		return
	}
	fyne.Do(func() {
		if d.closed.Load() {
			return
		}
		task()
	})
}

// Close stops delivery, including tasks already queued with fyne.
func (d *FyneDispatcher) Close() {
	d.closed.Store(true)
}

func (d *FyneDispatcher) Closed() bool {
	return d.closed.Load()
}
