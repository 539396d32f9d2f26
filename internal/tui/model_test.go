package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/ripasso/ripasso/internal/model"
	"github.com/ripasso/ripasso/internal/session"
)

func parlareEntry() model.ConjugationEntry {
	return model.ConjugationEntry{
		Verb: "parlare",
		Answers: map[string]map[string]string{
			"present": {"io": "parlo", "tu": "parli"},
			"past":    {"io": "ho parlato", "tu": "hai parlato"},
		},
	}
}

func conjugationModel(t *testing.T) *Model {
	t.Helper()
	ctrl := session.NewController(nil, []model.ConjugationEntry{parlareEntry()}, 10, rand.New(rand.NewSource(1)))
	if err := ctrl.SelectMode(session.ModeConjugation); err != nil {
		t.Fatalf("select mode failed: %v", err)
	}
	return NewModel(ctrl)
}

func TestConjugationGridSubmit(t *testing.T) {
	m := conjugationModel(t)
	if len(m.cells) != 4 || len(m.gridInput) != 4 {
		t.Fatalf("expected a 2x2 grid, got %d cells", len(m.cells))
	}
	wrong := session.Cell{Person: "tu", Form: "present"}
	entry := parlareEntry()
	for i, cell := range m.cells {
		if cell == wrong {
			continue
		}
		m.gridInput[i].SetValue(entry.Answers[cell.Form][cell.Person])
	}
	m.submitGrid()

	if m.graded == nil {
		t.Fatalf("expected a graded round")
	}
	if m.graded.Correct != 3 || m.graded.Total != 4 {
		t.Fatalf("expected 3/4, got %d/%d", m.graded.Correct, m.graded.Total)
	}
	if !m.wrongCell[wrong] {
		t.Fatalf("expected the wrong cell to be flagged")
	}
	view := m.View()
	if !strings.Contains(view, "Score 3/4") {
		t.Fatalf("graded view missing score: %s", view)
	}
	if !strings.Contains(view, "parli") {
		t.Fatalf("graded view should show the expected answer: %s", view)
	}
}

func TestTickChainStopsWhenNotRunning(t *testing.T) {
	ctrl := session.NewController(
		[]string{"casa", "libro", "acqua", "pane", "tempo", "giorno", "notte", "strada", "mare", "sole"},
		nil, 10, rand.New(rand.NewSource(3)))
	m := NewModel(ctrl)

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("tick must reschedule while the round is running")
	}

	ctrl.Reset()
	_, cmd = m.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("tick must not reschedule once the session leaves running")
	}
}

func TestEmptyDatasetShowsInlineError(t *testing.T) {
	ctrl := session.NewController(nil, nil, 10, rand.New(rand.NewSource(4)))
	m := NewModel(ctrl)
	if m.errMsg == "" {
		t.Fatalf("expected an inline error for an empty dataset")
	}
	if !strings.Contains(m.View(), "dataset is empty") {
		t.Fatalf("view should surface the empty-dataset error")
	}
}
