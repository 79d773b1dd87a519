package trial

import (
	"errors"

	"github.com/verte-zerg/gorillatype/internal/passage"
)

// ErrEmptyPassage is returned when a session is created for an empty passage.
var ErrEmptyPassage = errors.New("passage is empty")

// Session threads a State through successive key presses for a driver.
// It is not safe for concurrent use.
type Session struct {
	passage passage.Passage
	clock   Clock
	state   State
	missed  int
}

// NewSession starts a trial over p in the AwaitingStart phase.
func NewSession(p passage.Passage, clock Clock) (*Session, error) {
	if p.Len() == 0 {
		return nil, ErrEmptyPassage
	}
	if clock == nil {
		clock = NewMonotonicClock()
	}
	return &Session{passage: p, clock: clock}, nil
}

// Press feeds one key to the state machine, stamped with the current time.
func (s *Session) Press(key rune) Signal {
	next, sig := Advance(s.state, s.passage, key, s.clock.Now())
	if sig.Kind == SignalIgnored {
		s.missed++
	}
	s.state = next
	return sig
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Passage returns the passage being typed.
func (s *Session) Passage() passage.Passage {
	return s.passage
}

// Missed returns the number of ignored keys since the first-key phase began.
func (s *Session) Missed() int {
	return s.missed
}

// Done reports whether the trial is completed.
func (s *Session) Done() bool {
	return s.state.Phase == Completed
}

// Result computes the trial result. It fails until the trial is completed.
func (s *Session) Result() (Result, error) {
	return NewResult(s.state, s.passage, s.missed)
}
