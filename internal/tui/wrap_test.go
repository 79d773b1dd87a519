package tui

import (
	"strings"
	"testing"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != cursorStyle.Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesAllAccepted(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), -1)
	for i, r := range []string{"a", "b"} {
		if runes[i].s != correctStyle.Render(r) {
			t.Fatalf("expected correct style for rune %d", i)
		}
	}
}

func TestBuildStyledRunesCursorOnSpace(t *testing.T) {
	runes := buildStyledRunes([]rune(" go"), 0)
	if runes[0].s != cursorStyle.Render(string(cursorSpace)) {
		t.Fatalf("expected visible cursor for leading space")
	}
	if !runes[0].isSpace {
		t.Fatalf("expected space flag to follow the passage rune")
	}
	if runes[1].s != currentWordStyle.Render("g") {
		t.Fatalf("expected next word highlighted while cursor is on a space")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := buildStyledRunes([]rune("one two"), 1)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func plainRunes(text string) []styledRune {
	out := make([]styledRune, 0, len(text))
	for _, r := range text {
		out = append(out, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return out
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	got := wrapStyledRunes(plainRunes("the cat sat"), 8)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
	if lines[0] != "the cat " || lines[1] != "sat" {
		t.Fatalf("unexpected wrap: %q", lines)
	}
}

func TestWrapStyledRunesSplitsLongWord(t *testing.T) {
	got := wrapStyledRunes(plainRunes("abcdefgh"), 3)
	if got != "abc\ndef\ngh" {
		t.Fatalf("unexpected wrap: %q", got)
	}
}

func TestWrapStyledRunesNoWidth(t *testing.T) {
	if got := wrapStyledRunes(plainRunes("a b"), 0); got != "a b" {
		t.Fatalf("expected unwrapped text, got %q", got)
	}
}
