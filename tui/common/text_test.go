package common

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("short text should be unchanged: %q", got)
	}
	got := Truncate("hello world", 6)
	if ansi.StringWidth(got) > 6 || !strings.HasSuffix(got, "…") {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Fatalf("zero width should yield empty: %q", got)
	}
}

func TestSingleLine(t *testing.T) {
	if got := SingleLine("a\nb   c\t d"); got != "a b c d" {
		t.Fatalf("unexpected collapse: %q", got)
	}
}

func TestWrap_RespectsWidth(t *testing.T) {
	out := Wrap("Just finished building my new React app with Tailwind CSS!", 20)
	for _, ln := range strings.Split(out, "\n") {
		if ansi.StringWidth(ln) > 20 {
			t.Fatalf("line exceeds width: %q", ln)
		}
	}
}

func TestClampLines(t *testing.T) {
	out := ClampLines("one\ntwo\nthree\nfour", 2, 10)
	if LineCount(out) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if !strings.HasPrefix(out, "one\ntwo") {
		t.Fatalf("unexpected clamp result: %q", out)
	}
}

func TestLineCount(t *testing.T) {
	if LineCount("") != 0 || LineCount("a") != 1 || LineCount("a\nb") != 2 {
		t.Fatalf("unexpected line counts")
	}
}

func TestCompactCount(t *testing.T) {
	cases := map[int]string{
		0:      "0",
		209:    "209",
		1000:   "1k",
		1250:   "1.2k",
		15300:  "15.3k",
		120400: "120k",
	}
	for in, want := range cases {
		if got := CompactCount(in); got != want {
			t.Fatalf("CompactCount(%d)=%q want %q", in, got, want)
		}
	}
}
