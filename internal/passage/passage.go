// Package passage holds the text a trial is typed against.
package passage

import (
	"errors"
	"strings"
)

var (
	// ErrEmptySource is returned when a non-zero target is requested for empty text.
	ErrEmptySource = errors.New("source text is empty")
	// ErrNegativeTarget is returned for a target length below zero.
	ErrNegativeTarget = errors.New("target length must be >= 0")
)

// Passage is an immutable sequence of runes. Length and indexing are in runes.
type Passage struct {
	runes []rune
}

// New builds a Passage from a string.
func New(text string) Passage {
	return Passage{runes: []rune(text)}
}

// Len returns the number of runes.
func (p Passage) Len() int {
	return len(p.runes)
}

// At returns the rune at index i.
func (p Passage) At(i int) rune {
	return p.runes[i]
}

// Runes returns a copy of the underlying runes.
func (p Passage) Runes() []rune {
	out := make([]rune, len(p.runes))
	copy(out, p.runes)
	return out
}

func (p Passage) String() string {
	return string(p.runes)
}

// Normalize adjusts source to the target length.
//
// A zero target, or a source already of that length, is returned unchanged.
// Longer sources are cut to target runes behind a leading space. Shorter
// sources are repeated as " "+source segments and cut to exactly target runes.
// The leading space is part of the passage and must be typed.
func Normalize(source Passage, target int) (Passage, error) {
	if target < 0 {
		return Passage{}, ErrNegativeTarget
	}
	n := source.Len()
	switch {
	case target == 0:
		return source, nil
	case n == 0:
		return Passage{}, ErrEmptySource
	case n == target:
		return source, nil
	case n > target:
		out := make([]rune, 0, target+1)
		out = append(out, ' ')
		out = append(out, source.runes[:target]...)
		return Passage{runes: out}, nil
	}

	out := make([]rune, 0, target)
	for len(out) < target {
		out = append(out, ' ')
		out = append(out, source.runes...)
	}
	return Passage{runes: out[:target]}, nil
}

// collapseSpace joins whitespace-separated fields with single spaces.
func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
