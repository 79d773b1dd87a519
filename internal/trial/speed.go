package trial

import (
	"errors"
	"time"

	"github.com/verte-zerg/gorillatype/internal/passage"
)

var (
	// ErrDegenerateTiming is returned when a trial finished in zero time.
	ErrDegenerateTiming = errors.New("elapsed time is zero")
	// ErrNotCompleted is returned when speed is requested before completion.
	ErrNotCompleted = errors.New("trial is not completed")
)

const charsPerWord = 5.0

// Speed computes characters per minute typed between start and end.
func Speed(chars int, start, end Timestamp) (float64, error) {
	if end <= start {
		return 0, ErrDegenerateTiming
	}
	minutes := float64(end-start) / 60000.0
	return float64(chars) / minutes, nil
}

// Speed computes characters per minute for a completed state.
func (s State) Speed(p passage.Passage) (float64, error) {
	if s.Phase != Completed {
		return 0, ErrNotCompleted
	}
	return Speed(p.Len(), s.Start, s.End)
}

// Result summarizes a completed trial.
type Result struct {
	Chars   int
	Elapsed time.Duration
	CPM     float64
	WPM     float64
	Missed  int
}

// NewResult builds a Result for a completed state.
func NewResult(s State, p passage.Passage, missed int) (Result, error) {
	cpm, err := s.Speed(p)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Chars:   p.Len(),
		Elapsed: (s.End - s.Start).Duration(),
		CPM:     cpm,
		WPM:     cpm / charsPerWord,
		Missed:  missed,
	}, nil
}
