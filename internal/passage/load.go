package passage

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a source file is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file contents are not valid UTF-8")

// Load reads a passage from the file at path.
// Whitespace runs, newlines included, collapse into single spaces.
func Load(path string) (Passage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Passage{}, fmt.Errorf("cannot read file %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return Passage{}, fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	return New(collapseSpace(string(data))), nil
}
