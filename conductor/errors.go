package conductor

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownToken   = errors.New("unknown event token")
	ErrDuplicateToken = errors.New("duplicate event token")
	ErrReservedToken  = errors.New("token is reserved for the conductor sentinel")
	ErrEmptyToken     = errors.New("empty event token")
)

// UnknownTokenError is returned by Decode when a token does not belong to any
// registered kind. It matches ErrUnknownToken with errors.Is.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownToken, e.Token)
}

func (e *UnknownTokenError) Unwrap() error {
	return ErrUnknownToken
}
