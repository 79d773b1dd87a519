// Package report prints trial results as plain text.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/gorillatype/internal/trial"
)

// Render writes a result table for r.
func Render(w io.Writer, r trial.Result) error {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"Characters", fmt.Sprintf("%d", r.Chars)},
		{"Elapsed", r.Elapsed.Round(time.Millisecond).String()},
		{"CPM", fmt.Sprintf("%.1f", r.CPM)},
		{"WPM", fmt.Sprintf("%.1f", r.WPM)},
		{"Missed keys", fmt.Sprintf("%d", r.Missed)},
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
