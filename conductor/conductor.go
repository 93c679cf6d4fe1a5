// Package conductor carries event notifications from worker goroutines to a
// single UI-thread callback.
//
// A Conductor writes the token of each event into a NameObject. The object
// reports name changes on the UI thread through a Dispatcher, and the slot
// installed by New decodes the token and hands the event kind to the callback.
// Since a name change is only reported when the value differs, signaling the
// same kind twice in a row first writes Sentinel to re-arm change detection.
// The Sentinel write itself is not dispatched, so every Signal costs one UI
// task.
package conductor

import (
	"sync"
	"sync/atomic"

	"thread-conductor/internal/logger"
)

const component = "Conductor"

// ErrorHandler receives tokens the codec could not decode.
type ErrorHandler func(token string, err error)

type options struct {
	log     logger.Logger
	onError ErrorHandler
}

type Option func(*options)

func WithLogger(log logger.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithErrorHandler replaces the default decode failure handling, which logs
// the error and drops the notification.
func WithErrorHandler(h ErrorHandler) Option {
	return func(o *options) {
		o.onError = h
	}
}

func buildOptions(opts []Option) *options {
	o := &options{log: logger.NoOp{}}
	for _, opt := range opts {
		opt(o)
	}
	if o.onError == nil {
		log := o.log
		o.onError = func(token string, err error) {
			log.Error(component, err, map[string]interface{}{"token": token})
		}
	}
	return o
}

// Conductor signals event kinds of type T through a NameObject. It may be
// handed to another goroutine after construction; calls to Signal are
// serialised.
type Conductor[T comparable] struct {
	mu    sync.Mutex
	obj   *NameObject
	codec Codec[T]
	log   logger.Logger

	last  T
	armed bool

	signaled atomic.Uint64
}

// New creates the notification object and a Conductor bound to it, and
// connects callback as the slot receiving decoded kinds on the UI thread.
func New[T comparable](codec Codec[T], dispatcher Dispatcher, callback func(kind T), opts ...Option) (*NameObject, *Conductor[T]) {
	obj := NewNameObject(dispatcher)
	obj.OnNameChanged(NewSlot(codec, callback, opts...))
	return obj, FromNameObject(obj, codec, opts...)
}

// FromNameObject binds a Conductor to an existing object. Slots must be
// connected by the caller, usually with NewSlot.
func FromNameObject[T comparable](obj *NameObject, codec Codec[T], opts ...Option) *Conductor[T] {
	o := buildOptions(opts)
	return &Conductor[T]{
		obj:   obj,
		codec: codec,
		log:   o.log,
	}
}

// NewSlot returns a name-change slot that decodes the token and calls callback
// with the result. Sentinel, which other writers of the object may still
// dispatch, is skipped.
func NewSlot[T comparable](codec Codec[T], callback func(kind T), opts ...Option) func(name string) {
	o := buildOptions(opts)
	return func(name string) {
		if name == Sentinel {
			return
		}
		kind, err := codec.Decode(name)
		if err != nil {
			o.onError(name, err)
			return
		}
		callback(kind)
	}
}

// Signal queues one callback invocation for kind on the UI thread. It does
// not wait for the callback to run.
func (c *Conductor[T]) Signal(kind T) {
	token := c.codec.Encode(kind)

	c.mu.Lock()
	defer c.mu.Unlock()

	if (c.armed && c.last == kind) || c.obj.Name() == token {
		c.obj.rearm(Sentinel)
	}
	c.obj.SetName(token)

	c.last = kind
	c.armed = true
	n := c.signaled.Add(1)

	c.log.Debug(component, "signaled", map[string]interface{}{
		"token": token,
		"count": n,
	})
}

// Signaled reports how many Signal calls have completed.
func (c *Conductor[T]) Signaled() uint64 {
	return c.signaled.Load()
}

// Object returns the underlying notification object.
func (c *Conductor[T]) Object() *NameObject {
	return c.obj
}
