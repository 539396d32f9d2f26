package session

import (
	"math/rand"
	"strings"
	"time"

	"github.com/ripasso/ripasso/internal/model"
)

// ConjugationState enumerates the conjugation session lifecycle.
type ConjugationState int

// Conjugation session states.
const (
	ConjugationIdle ConjugationState = iota
	ConjugationActive
	ConjugationGraded
)

// String implements fmt.Stringer.
func (s ConjugationState) String() string {
	switch s {
	case ConjugationIdle:
		return "idle"
	case ConjugationActive:
		return "active"
	case ConjugationGraded:
		return "graded"
	default:
		return "unknown"
	}
}

// Cell addresses one slot of the person x form answer grid.
type Cell struct {
	Person string
	Form   string
}

// Mistake records one wrong or missing grid answer.
type Mistake struct {
	Person   string
	Form     string
	Expected string
}

// GradeResult summarizes a graded conjugation round.
type GradeResult struct {
	Correct  int
	Total    int
	Mistakes []Mistake
}

// ConjugationSession owns the sampled verb, its expected answer grid, and
// grading for a single conjugation round.
type ConjugationSession struct {
	rnd *rand.Rand

	entry   model.ConjugationEntry
	persons []string
	forms   []string
	state   ConjugationState
	result  *GradeResult
}

// NewConjugationSession constructs an idle conjugation session. A nil rnd is
// seeded with the current time.
func NewConjugationSession(rnd *rand.Rand) *ConjugationSession {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ConjugationSession{rnd: rnd}
}

// Start picks one entry uniformly at random. It fails with ErrEmptyDataset
// when the dataset is empty, and with the entry's MalformedEntryError when
// the picked grid is not rectangular; either way the session stays idle and
// the round is aborted.
func (s *ConjugationSession) Start(dataset []model.ConjugationEntry) error {
	if len(dataset) == 0 {
		return ErrEmptyDataset
	}
	entry := dataset[s.rnd.Intn(len(dataset))]
	if err := entry.Validate(); err != nil {
		return err
	}
	s.entry = entry
	s.persons = entry.Persons()
	s.forms = entry.Forms()
	s.state = ConjugationActive
	s.result = nil
	return nil
}

// Verb returns the verb of the current round.
func (s *ConjugationSession) Verb() string {
	return s.entry.Verb
}

// Persons returns the grid's persons in row order.
func (s *ConjugationSession) Persons() []string {
	out := make([]string, len(s.persons))
	copy(out, s.persons)
	return out
}

// Forms returns the grid's forms in column order.
func (s *ConjugationSession) Forms() []string {
	out := make([]string, len(s.forms))
	copy(out, s.forms)
	return out
}

// Cells lists every grid slot needing an answer, row-major: person outer,
// form inner. Callers build their input grid from this without the session
// knowing about rendering.
func (s *ConjugationSession) Cells() []Cell {
	cells := make([]Cell, 0, len(s.persons)*len(s.forms))
	for _, person := range s.persons {
		for _, form := range s.forms {
			cells = append(cells, Cell{Person: person, Form: form})
		}
	}
	return cells
}

// Grade compares the submitted answers against the grid. Both sides are
// trimmed and lowercased before the exact comparison; a missing key grades
// as an empty string, counted wrong. Grading is a pure function of the
// stored grid and the input, so calling it again replays the same result
// rather than opening a new attempt.
func (s *ConjugationSession) Grade(answers map[Cell]string) (GradeResult, error) {
	if s.state == ConjugationIdle {
		return GradeResult{}, ErrSessionNotActive
	}
	result := GradeResult{Total: len(s.persons) * len(s.forms)}
	for _, person := range s.persons {
		for _, form := range s.forms {
			expected := s.entry.Answers[form][person]
			submitted := answers[Cell{Person: person, Form: form}]
			if normalizeAnswer(submitted) == normalizeAnswer(expected) {
				result.Correct++
				continue
			}
			result.Mistakes = append(result.Mistakes, Mistake{
				Person:   person,
				Form:     form,
				Expected: expected,
			})
		}
	}
	s.state = ConjugationGraded
	s.result = &result
	return result, nil
}

// Result returns the grade once the round has been graded.
func (s *ConjugationSession) Result() (GradeResult, bool) {
	if s.result == nil {
		return GradeResult{}, false
	}
	return *s.result, true
}

// Reset discards the round and returns to idle.
func (s *ConjugationSession) Reset() {
	s.entry = model.ConjugationEntry{}
	s.persons = nil
	s.forms = nil
	s.state = ConjugationIdle
	s.result = nil
}

// State returns the current lifecycle state.
func (s *ConjugationSession) State() ConjugationState {
	return s.state
}

func normalizeAnswer(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
