package tui

import (
	"strings"
	"testing"
)

func plainWords(words ...string) []styledWord {
	out := make([]styledWord, 0, len(words))
	for _, w := range words {
		out = append(out, newStyledWord(w, w))
	}
	return out
}

func TestWrapWordsBreaksBetweenWords(t *testing.T) {
	got := wrapWords(plainWords("uno", "due", "tre", "quattro"), 10)
	want := "uno due\ntre\nquattro"
	if got != want {
		t.Fatalf("unexpected wrap:\n%q\nwant:\n%q", got, want)
	}
}

func TestWrapWordsZeroWidth(t *testing.T) {
	got := wrapWords(plainWords("uno", "due"), 0)
	if got != "uno due" {
		t.Fatalf("zero width must not wrap, got %q", got)
	}
}

func TestWrapWordsLongWordGetsOwnLine(t *testing.T) {
	got := wrapWords(plainWords("a", "straordinariamente", "b"), 6)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
	if lines[1] != "straordinariamente" {
		t.Fatalf("long word should sit on its own line: %q", lines[1])
	}
}

func TestWrapWordsLineWidths(t *testing.T) {
	words := plainWords("casa", "libro", "acqua", "pane", "tempo", "giorno")
	for _, width := range []int{8, 12, 20} {
		for _, line := range strings.Split(wrapWords(words, width), "\n") {
			if len(line) > width && !strings.Contains(line, " ") {
				continue // single long word, allowed to overflow
			}
			if len(line) > width {
				t.Fatalf("line %q exceeds width %d", line, width)
			}
		}
	}
}
