package jokes

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelClosed means the peer side of a channel has gone away.
	ErrChannelClosed = errors.New("channel closed")
	// ErrSendFailure means a payload or request could not be delivered.
	ErrSendFailure    = errors.New("send failed")
	ErrWorkerPanicked = errors.New("worker terminated abnormally")
	ErrNotStarted     = errors.New("worker not started")
)

// JoinError reports a worker goroutine that panicked.
type JoinError struct {
	Value interface{}
	Stack []byte
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("%s: %v", ErrWorkerPanicked, e.Value)
}

func (e *JoinError) Unwrap() error {
	return ErrWorkerPanicked
}
