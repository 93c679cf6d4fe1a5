package conductor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorded(t *testing.T) (*Loop, *Conductor[kind], *[]kind) {
	t.Helper()
	loop := NewLoop(64)
	var got []kind
	_, c := New[kind](testCodec, loop, func(k kind) { got = append(got, k) })
	return loop, c, &got
}

func TestSignalSameKindTwiceFiresTwice(t *testing.T) {
	loop, c, got := newRecorded(t)

	c.Signal(kindAlpha)
	c.Signal(kindAlpha)
	loop.Drain()

	assert.Equal(t, []kind{kindAlpha, kindAlpha}, *got)
}

func TestSignalDistinctKindsInOrder(t *testing.T) {
	loop, c, got := newRecorded(t)

	c.Signal(kindAlpha)
	c.Signal(kindBeta)
	loop.Drain()

	assert.Equal(t, []kind{kindAlpha, kindBeta}, *got)
}

func TestSignalMixedSequence(t *testing.T) {
	loop, c, got := newRecorded(t)
	seq := []kind{kindAlpha, kindBeta, kindBeta, kindGamma, kindAlpha, kindAlpha, kindAlpha, kindBeta}

	for _, k := range seq {
		c.Signal(k)
	}
	loop.Drain()

	assert.Equal(t, seq, *got)
	assert.EqualValues(t, len(seq), c.Signaled())
}

func TestSignalStateTransitions(t *testing.T) {
	loop := NewLoop(16)
	obj, c := New[kind](testCodec, loop, func(kind) {})
	var names []string
	obj.OnNameChanged(func(name string) { names = append(names, name) })

	assert.False(t, c.armed)

	c.Signal(kindAlpha)
	assert.True(t, c.armed)
	assert.Equal(t, kindAlpha, c.last)

	c.Signal(kindBeta)
	assert.Equal(t, kindBeta, c.last)

	c.Signal(kindBeta)
	assert.Equal(t, kindBeta, c.last)
	assert.Equal(t, "Beta", obj.Name())

	loop.Drain()
	assert.Equal(t, []string{"Alpha", "Beta", "Beta"}, names)
}

func TestSignalFromWorkerGoroutine(t *testing.T) {
	const n = 200
	loop := NewLoop(16)

	var got []kind
	_, c := New[kind](testCodec, loop, func(k kind) {
		got = append(got, k)
		if len(got) == n {
			loop.Stop()
		}
	})

	want := make([]kind, n)
	for i := range want {
		// runs of repeated kinds exercise the sentinel path
		want[i] = kind((i / 3) % 3)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, k := range want {
			c.Signal(k)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, loop.Run(ctx))
	wg.Wait()

	assert.Equal(t, want, got)
}

func TestSignalReturnsWithoutDraining(t *testing.T) {
	loop, c, got := newRecorded(t)

	returned := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			c.Signal(kindAlpha)
		}
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(5 * time.Second):
		t.Fatalf("Signal blocked: pending=%d signaled=%d", loop.Pending(), c.Signaled())
	}

	// one UI task per Signal, sentinel writes included
	assert.Equal(t, 10, loop.Pending())
	assert.Equal(t, 10, loop.Drain())
	assert.Len(t, *got, 10)
}

func TestSignalReArmsWhenObjectAlreadyHoldsToken(t *testing.T) {
	obj := NewNameObject(inline)
	obj.SetName("Alpha")

	var got []kind
	obj.OnNameChanged(NewSlot[kind](testCodec, func(k kind) { got = append(got, k) }))
	c := FromNameObject[kind](obj, testCodec)

	c.Signal(kindAlpha)

	assert.Equal(t, []kind{kindAlpha}, got)
}

func TestSlotRoutesDecodeErrors(t *testing.T) {
	obj := NewNameObject(inline)

	var badTokens []string
	var callbacks int
	obj.OnNameChanged(NewSlot[kind](testCodec, func(kind) { callbacks++ },
		WithErrorHandler(func(token string, err error) {
			assert.True(t, errors.Is(err, ErrUnknownToken))
			badTokens = append(badTokens, token)
		}),
	))

	// a producer built against a different token table
	other := MustTokenTable(map[kind]string{kindAlpha: "AlphaV2"})
	FromNameObject[kind](obj, other).Signal(kindAlpha)

	assert.Equal(t, 0, callbacks)
	assert.Equal(t, []string{"AlphaV2"}, badTokens)
}

func TestSlotSkipsSentinel(t *testing.T) {
	var errs int
	slot := NewSlot[kind](testCodec, func(kind) { t.Error("callback for sentinel") },
		WithErrorHandler(func(string, error) { errs++ }))

	slot(Sentinel)

	assert.Equal(t, 0, errs)
}

func TestSignalUnregisteredKindLeavesStateIntact(t *testing.T) {
	loop, c, got := newRecorded(t)
	c.Signal(kindAlpha)

	assert.Panics(t, func() { c.Signal(kindUnregistered) })

	c.Signal(kindAlpha)
	loop.Drain()
	assert.Equal(t, []kind{kindAlpha, kindAlpha}, *got)
	assert.EqualValues(t, 2, c.Signaled())
}
