// Package trial implements the typing trial state machine.
//
// Advance is a pure transition function from (state, key, time) to the next
// state and a signal for the display driver. Keys that do not match the next
// expected rune are ignored and never change the state.
package trial

import (
	"fmt"

	"github.com/verte-zerg/gorillatype/internal/passage"
)

// Phase identifies the variant of a State.
type Phase int

const (
	// AwaitingStart is the initial phase; no timing has begun.
	AwaitingStart Phase = iota
	// AwaitingFirstKey waits for the first rune of the passage.
	AwaitingFirstKey
	// InProgress has accepted at least one rune and is timing.
	InProgress
	// Completed is terminal.
	Completed
)

func (p Phase) String() string {
	switch p {
	case AwaitingStart:
		return "awaiting-start"
	case AwaitingFirstKey:
		return "awaiting-first-key"
	case InProgress:
		return "in-progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// State is one value of the trial state machine. Fields that do not apply to
// the current Phase are zero, so states compare with ==.
type State struct {
	Phase Phase
	// Start is set when the first rune is accepted.
	Start Timestamp
	// End is set on completion.
	End Timestamp
	// Cursor is the index of the next expected rune.
	Cursor int
}

// SignalKind tells the driver what happened on a key press.
type SignalKind int

const (
	// SignalNone means nothing changed.
	SignalNone SignalKind = iota
	// SignalReady means the passage should be shown.
	SignalReady
	// SignalAccepted means the rune at Pos was accepted.
	SignalAccepted
	// SignalCompleted means the rune at Pos was accepted and the trial ended.
	SignalCompleted
	// SignalIgnored means the key did not match and was dropped.
	SignalIgnored
)

func (k SignalKind) String() string {
	switch k {
	case SignalNone:
		return "none"
	case SignalReady:
		return "ready"
	case SignalAccepted:
		return "accepted"
	case SignalCompleted:
		return "completed"
	case SignalIgnored:
		return "ignored"
	default:
		return fmt.Sprintf("signal(%d)", int(k))
	}
}

// Signal is emitted by Advance for the display driver.
type Signal struct {
	Kind SignalKind
	Pos  int
}

// Advance applies one key press to state.
func Advance(state State, p passage.Passage, key rune, now Timestamp) (State, Signal) {
	switch state.Phase {
	case AwaitingStart:
		if key != ' ' {
			return state, Signal{}
		}
		return State{Phase: AwaitingFirstKey}, Signal{Kind: SignalReady}
	case AwaitingFirstKey:
		if p.Len() == 0 || key != p.At(0) {
			return state, Signal{Kind: SignalIgnored}
		}
		return accept(p, now, 0, now)
	case InProgress:
		if state.Cursor >= p.Len() || key != p.At(state.Cursor) {
			return state, Signal{Kind: SignalIgnored}
		}
		return accept(p, state.Start, state.Cursor, now)
	default:
		return state, Signal{}
	}
}

func accept(p passage.Passage, start Timestamp, pos int, now Timestamp) (State, Signal) {
	next := pos + 1
	if next >= p.Len() {
		if now < start {
			now = start
		}
		return State{Phase: Completed, Start: start, End: now, Cursor: next}, Signal{Kind: SignalCompleted, Pos: pos}
	}
	return State{Phase: InProgress, Start: start, Cursor: next}, Signal{Kind: SignalAccepted, Pos: pos}
}
