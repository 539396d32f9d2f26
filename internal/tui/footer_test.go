package tui

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/ripasso/ripasso/internal/session"
)

func TestRenderFooterTypingSegments(t *testing.T) {
	ctrl := session.NewController(
		[]string{"casa", "libro", "acqua", "pane", "tempo", "giorno", "notte", "strada", "mare", "sole"},
		nil, 10, rand.New(rand.NewSource(1)))
	m := NewModel(ctrl)
	m.tick = session.TickSnapshot{Running: true, ElapsedSeconds: 12.34, WPM: 44}

	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	if !containsAll(out, []string{"Progress 0/10", "12.3s", "44 WPM", "ctrl+t: mode"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestRenderFooterIdleShowsOnlyHints(t *testing.T) {
	ctrl := session.NewController(nil, nil, 10, rand.New(rand.NewSource(2)))
	m := NewModel(ctrl)

	out := m.renderFooter()
	if strings.Contains(out, "Progress") {
		t.Fatalf("idle footer must not show progress: %s", out)
	}
	if !containsAll(out, []string{"ctrl+r: restart", "ctrl+c: quit"}) {
		t.Fatalf("footer missing key hints: %s", out)
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
