package extract

import "strings"

// cell returns the trimmed cell at index i, or "" when the row is too
// short. Every positional access in the parsers goes through here so a
// ragged row can never panic a document.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// scanForward walks cells[start:end) and returns the first non-empty cell
// satisfying pred, with its index. end is clamped to the row length.
func scanForward(row []string, start, end int, pred func(string) bool) (string, int, bool) {
	if start < 0 {
		start = 0
	}
	if end > len(row) {
		end = len(row)
	}
	for i := start; i < end; i++ {
		c := cell(row, i)
		if c == "" {
			continue
		}
		if pred(c) {
			return c, i, true
		}
	}
	return "", -1, false
}

// predicate helpers used by the multi-round parser's window scans

func longerThan(n int) func(string) bool {
	return func(s string) bool { return len(s) > n }
}

func inSet(tokens []string) func(string) bool {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return func(s string) bool {
		_, ok := set[s]
		return ok
	}
}

func containsAny(markers []string) func(string) bool {
	return func(s string) bool {
		for _, m := range markers {
			if strings.Contains(s, m) {
				return true
			}
		}
		return false
	}
}
