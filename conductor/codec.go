package conductor

import (
	"fmt"
	"sort"
)

// Sentinel is written to the name field to re-arm change detection when the
// same kind is signaled twice in a row. No codec may hand it out.
const Sentinel = "_RESET_CONDUCTOR_"

// Codec maps a closed set of event kinds to string tokens and back.
type Codec[T comparable] interface {
	Encode(kind T) string
	Decode(token string) (T, error)
}

// TokenTable is a Codec backed by a fixed kind to token table.
type TokenTable[T comparable] struct {
	tokens map[T]string
	kinds  map[string]T
}

// NewTokenTable validates the table and returns a codec for it. Every token must
// be non-empty, unique and distinct from Sentinel.
func NewTokenTable[T comparable](table map[T]string) (*TokenTable[T], error) {
	t := &TokenTable[T]{
		tokens: make(map[T]string, len(table)),
		kinds:  make(map[string]T, len(table)),
	}

	for kind, token := range table {
		switch {
		case token == "":
			return nil, fmt.Errorf("kind %v: %w", kind, ErrEmptyToken)
		case token == Sentinel:
			return nil, fmt.Errorf("kind %v: %w", kind, ErrReservedToken)
		}
		if other, exists := t.kinds[token]; exists {
			return nil, fmt.Errorf("%w: %q used by %v and %v", ErrDuplicateToken, token, other, kind)
		}
		t.tokens[kind] = token
		t.kinds[token] = kind
	}

	return t, nil
}

// MustTokenTable is like NewTokenTable but panics on an invalid table. Meant for
// package-level codec variables.
func MustTokenTable[T comparable](table map[T]string) *TokenTable[T] {
	t, err := NewTokenTable(table)
	if err != nil {
		panic(err)
	}
	return t
}

// Encode panics for a kind outside the table; callers own a closed set.
func (t *TokenTable[T]) Encode(kind T) string {
	token, ok := t.tokens[kind]
	if !ok {
		panic(fmt.Sprintf("conductor: no token registered for kind %v", kind))
	}
	return token
}

func (t *TokenTable[T]) Decode(token string) (T, error) {
	kind, ok := t.kinds[token]
	if !ok {
		var zero T
		return zero, &UnknownTokenError{Token: token}
	}
	return kind, nil
}

// Tokens lists the registered tokens in sorted order.
func (t *TokenTable[T]) Tokens() []string {
	out := make([]string, 0, len(t.kinds))
	for token := range t.kinds {
		out = append(out, token)
	}
	sort.Strings(out)
	return out
}

// MustDecode decodes token and panics on failure, for callers that treat a
// codec mismatch as a broken build.
func MustDecode[T comparable](c Codec[T], token string) T {
	kind, err := c.Decode(token)
	if err != nil {
		panic(err)
	}
	return kind
}
