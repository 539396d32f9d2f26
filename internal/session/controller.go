package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ripasso/ripasso/internal/model"
	"github.com/ripasso/ripasso/internal/score"
)

// Mode selects which session type is active.
type Mode string

// Practice modes.
const (
	ModeTyping      Mode = "typing"
	ModeConjugation Mode = "conjugation"
)

// ParseMode validates a mode tag.
func ParseMode(tag string) (Mode, error) {
	switch Mode(tag) {
	case ModeTyping:
		return ModeTyping, nil
	case ModeConjugation:
		return ModeConjugation, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", tag, ModeTyping, ModeConjugation)
	}
}

// TickSnapshot carries the display values recomputed on a timer tick. Ticks
// never mutate session state.
type TickSnapshot struct {
	Running        bool
	ElapsedSeconds float64
	WPM            int
}

// Controller routes start, submit, and tick commands to the active session.
// Both sessions share the datasets and the random source; exactly one is
// live at a time.
type Controller struct {
	mode         Mode
	words        []string
	conjugations []model.ConjugationEntry
	typing       *TypingSession
	conjugation  *ConjugationSession
}

// NewController wires the controller over the loaded datasets. The datasets
// are shared read-only; empty datasets are allowed and reject Start later.
func NewController(words []string, conjugations []model.ConjugationEntry, roundSize int, rnd *rand.Rand) *Controller {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		mode:         ModeTyping,
		words:        words,
		conjugations: conjugations,
		typing:       NewTypingSession(roundSize, rnd),
		conjugation:  NewConjugationSession(rnd),
	}
}

// Mode returns the active mode tag.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Typing exposes the typing session for read-only rendering.
func (c *Controller) Typing() *TypingSession {
	return c.typing
}

// Conjugation exposes the conjugation session for read-only rendering.
func (c *Controller) Conjugation() *ConjugationSession {
	return c.conjugation
}

// SelectMode switches the active mode and resets both sessions to their idle
// defaults. It never auto-starts a round.
func (c *Controller) SelectMode(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	c.typing.Reset()
	c.conjugation.Reset()
	c.mode = mode
	return nil
}

// Start begins a round in the active mode. Session failures (empty dataset,
// malformed entry) propagate unchanged.
func (c *Controller) Start(now time.Time) error {
	switch c.mode {
	case ModeConjugation:
		return c.conjugation.Start(c.conjugations)
	default:
		_, err := c.typing.Start(c.words, now)
		return err
	}
}

// SubmitTypedWord routes a typed word to the typing session.
func (c *Controller) SubmitTypedWord(text string, now time.Time) (SubmitOutcome, error) {
	return c.typing.Submit(text, now)
}

// SubmitConjugationGrid routes a filled answer grid to the conjugation
// session.
func (c *Controller) SubmitConjugationGrid(answers map[Cell]string) (GradeResult, error) {
	return c.conjugation.Grade(answers)
}

// Tick recomputes the live timer and WPM projection for the typing session.
// It is read-only and safe to call at any cadence.
func (c *Controller) Tick(now time.Time) TickSnapshot {
	elapsed := c.typing.ElapsedSeconds(now)
	return TickSnapshot{
		Running:        c.typing.State() == TypingRunning,
		ElapsedSeconds: elapsed,
		WPM:            score.WordsPerMinute(c.typing.Snapshot().Correct, elapsed),
	}
}

// Reset returns both sessions to idle, discarding any round in progress.
func (c *Controller) Reset() {
	c.typing.Reset()
	c.conjugation.Reset()
}
