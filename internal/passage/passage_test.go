package passage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeZeroTargetKeepsSource(t *testing.T) {
	for _, text := range []string{"", "cat", "héllo wörld", "a"} {
		src := New(text)
		got, err := Normalize(src, 0)
		require.NoError(t, err)
		assert.Equal(t, text, got.String())
	}
}

func TestNormalizeEqualLength(t *testing.T) {
	src := New("typing")
	got, err := Normalize(src, src.Len())
	require.NoError(t, err)
	assert.Equal(t, "typing", got.String())
	assert.Equal(t, src.Len(), got.Len())
}

func TestNormalizeTruncates(t *testing.T) {
	cases := []struct {
		src    string
		target int
		want   string
	}{
		{src: "the quick brown fox", target: 9, want: " the quick"},
		{src: "abc", target: 1, want: " a"},
		{src: "ünïcödé", target: 3, want: " ünï"},
	}
	for _, tc := range cases {
		got, err := Normalize(New(tc.src), tc.target)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String())
		assert.Equal(t, tc.target+1, got.Len())
	}
}

func TestNormalizeRepeats(t *testing.T) {
	cases := []struct {
		src    string
		target int
		want   string
	}{
		{src: "cat", target: 5, want: " cat "},
		{src: "cat", target: 7, want: " cat ca"},
		{src: "cat", target: 8, want: " cat cat"},
		{src: "ab", target: 10, want: " ab ab ab "},
		{src: "ж", target: 4, want: " ж ж"},
	}
	for _, tc := range cases {
		got, err := Normalize(New(tc.src), tc.target)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String())
	}
}

func TestNormalizeRepeatIsPrefixOfSegments(t *testing.T) {
	src := New("lorem ipsum")
	for target := src.Len() + 1; target < 80; target++ {
		got, err := Normalize(src, target)
		require.NoError(t, err)
		require.Equal(t, target, got.Len())
		unbounded := strings.Repeat(" "+src.String(), target/src.Len()+1)
		require.True(t, strings.HasPrefix(unbounded, got.String()), "target %d: %q", target, got.String())
	}
}

func TestNormalizeErrors(t *testing.T) {
	_, err := Normalize(New(""), 5)
	require.ErrorIs(t, err, ErrEmptySource)

	_, err = Normalize(New("cat"), -1)
	require.ErrorIs(t, err, ErrNegativeTarget)
}

func TestPassageRunesIsCopy(t *testing.T) {
	p := New("abc")
	runes := p.Runes()
	runes[0] = 'x'
	assert.Equal(t, 'a', p.At(0))
}

func TestLoadCollapsesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte("  one\ttwo\n\nthree  \n"), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "one two three", p.String())
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte{'a', 0xff, 0xfe}, 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
