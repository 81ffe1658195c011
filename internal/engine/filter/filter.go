// Package filter reduces raw build output to the lines worth showing.
package filter

import (
	"iter"
	"strings"
)

// keywords mark a line as actionable. Matching is a case-insensitive substring test.
var keywords = []string{"error", "warning", "building", "linking"}

func matches(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Filter lazily yields the lines of raw that contain a keyword, in order and unchanged.
// Line endings are stripped, so "\r\n" output filters the same as "\n" output.
func Filter(raw string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(raw) {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if matches(line) && !yield(line) {
				return
			}
		}
	}
}
