package common

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate cuts s to at most width cells, ending with "…" when cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// SingleLine collapses newlines and runs of spaces.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Wrap word-wraps s to width cells, hard-breaking words that do not fit.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}

// ClampLines keeps at most n lines, cutting each to width cells.
func ClampLines(s string, n, width int) string {
	lines := strings.Split(s, "\n")
	if n > 0 && len(lines) > n {
		lines = lines[:n]
		lines[n-1] = Truncate(lines[n-1]+" …", width)
	}
	for i, ln := range lines {
		if ansi.StringWidth(ln) > width {
			lines[i] = ansi.Cut(ln, 0, width)
		}
	}
	return strings.Join(lines, "\n")
}

// LineCount returns the number of rendered lines in s.
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

// CompactCount renders large counters as 1.2k.
func CompactCount(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	whole := n / 1000
	tenth := (n % 1000) / 100
	if tenth == 0 || whole >= 100 {
		return strconv.Itoa(whole) + "k"
	}
	return strconv.Itoa(whole) + "." + strconv.Itoa(tenth) + "k"
}
