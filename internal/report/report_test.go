package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/gorillatype/internal/trial"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"CPM", "312.5"},
		{"Missed keys", "3"},
	}
	lines := formatTable(headers, rows, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Metric       Value" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "CPM          312.5" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Missed keys      3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"名前", "x"}, [][]string{{"a", "y"}}, nil)
	if lines[1] != "a     y" {
		t.Fatalf("expected wide header to widen column: %q", lines[1])
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, trial.Result{
		Chars:   3,
		Elapsed: 3 * time.Second,
		CPM:     60,
		WPM:     12,
		Missed:  2,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Characters", "3s", "60.0", "12.0", "Missed keys"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}
