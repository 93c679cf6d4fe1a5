package conductor

import "sync"

// NameObject is a notification object with a mutable name. Changing the name
// notifies every connected slot on the UI thread, carrying the new value.
// Assigning the value it already holds notifies nobody.
type NameObject struct {
	mu         sync.Mutex
	name       string
	dispatcher Dispatcher
	slots      []func(name string)
}

func NewNameObject(dispatcher Dispatcher) *NameObject {
	return &NameObject{dispatcher: dispatcher}
}

func (o *NameObject) Name() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.name
}

// SetName assigns name and reports whether it changed. A change is handed to
// the dispatcher before SetName returns, so notifications keep assignment order.
func (o *NameObject) SetName(name string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.name == name {
		return false
	}
	o.name = name

	if len(o.slots) == 0 {
		return true
	}
	slots := make([]func(string), len(o.slots))
	copy(slots, o.slots)

	o.dispatcher.Do(func() {
		for _, slot := range slots {
			slot(name)
		}
	})
	return true
}

// rearm changes the name without notifying, so the next SetName of the
// previous value is seen as a change.
func (o *NameObject) rearm(placeholder string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.name = placeholder
}

// OnNameChanged connects slot. Changes made before the call are not replayed.
func (o *NameObject) OnNameChanged(slot func(name string)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.slots = append(o.slots, slot)
}
