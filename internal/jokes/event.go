package jokes

import "thread-conductor/conductor"

// Event tells the UI which payload just became available.
type Event int

const (
	EventJokeUpdate Event = iota
	EventPunchlineUpdate
	// EventReset carries no payload; the UI clears both labels.
	EventReset
)

// Codec maps events to the tokens written into the notification object.
var Codec = conductor.MustTokenTable(map[Event]string{
	EventJokeUpdate:      "DbJokeUpdate",
	EventPunchlineUpdate: "DbPunchlineUpdate",
	EventReset:           "Reset",
})

func (e Event) String() string {
	switch e {
	case EventJokeUpdate:
		return "joke_update"
	case EventPunchlineUpdate:
		return "punchline_update"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Msg is a request from the UI to the worker.
type Msg int

const (
	MsgNewJokeRequest Msg = iota
	// MsgReset starts the joke cycle over.
	MsgReset
	MsgQuit
)

func (m Msg) String() string {
	switch m {
	case MsgNewJokeRequest:
		return "new_joke_request"
	case MsgReset:
		return "reset"
	case MsgQuit:
		return "quit"
	default:
		return "unknown"
	}
}
