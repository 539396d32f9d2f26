// Package session implements the practice session state machines and routing
// between the typing and conjugation modes.
package session

import (
	"math/rand"
	"strings"
	"time"

	"github.com/ripasso/ripasso/internal/score"
)

// DefaultRoundSize is the number of words in a typing round.
const DefaultRoundSize = 10

// TypingState enumerates the typing session lifecycle.
type TypingState int

// Typing session states.
const (
	TypingIdle TypingState = iota
	TypingRunning
	TypingFinished
)

// String implements fmt.Stringer.
func (s TypingState) String() string {
	switch s {
	case TypingIdle:
		return "idle"
	case TypingRunning:
		return "running"
	case TypingFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// TypingSnapshot is a read-only projection of typing session state for
// rendering.
type TypingSnapshot struct {
	State     TypingState
	Word      string
	Index     int
	RoundSize int
	Correct   int
}

// TypingResult summarizes a finished typing round.
type TypingResult struct {
	Correct        int
	RoundSize      int
	ElapsedSeconds float64
	WPM            int
	Accuracy       int
}

// SubmitOutcome describes the effect of one typed-word submission. A
// mismatch leaves Match false and the session untouched.
type SubmitOutcome struct {
	Match    bool
	Finished bool
	Next     string
	Result   *TypingResult
}

// TypingSession owns timing, word sequence, progress, and scoring for a
// single typing round.
type TypingSession struct {
	rnd       *rand.Rand
	roundSize int

	words     []string
	index     int
	correct   int
	startedAt time.Time
	state     TypingState
	result    TypingResult
}

// NewTypingSession constructs an idle typing session. A nil rnd is seeded
// with the current time.
func NewTypingSession(roundSize int, rnd *rand.Rand) *TypingSession {
	if roundSize <= 0 {
		roundSize = DefaultRoundSize
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &TypingSession{rnd: rnd, roundSize: roundSize}
}

// Start samples a fresh round from the dataset and begins the timer. It
// fails with ErrEmptyDataset when no words are available; no round state is
// created in that case. When the dataset holds fewer words than the round
// size, the round shrinks to the dataset length.
func (s *TypingSession) Start(dataset []string, now time.Time) (TypingSnapshot, error) {
	if len(dataset) == 0 {
		return TypingSnapshot{}, ErrEmptyDataset
	}
	s.words = sampleWords(s.rnd, dataset, s.roundSize)
	s.index = 0
	s.correct = 0
	s.startedAt = now
	s.state = TypingRunning
	s.result = TypingResult{}
	return s.Snapshot(), nil
}

// sampleWords takes up to n words via an unbiased shuffle of the full
// dataset, without replacement.
func sampleWords(rnd *rand.Rand, dataset []string, n int) []string {
	shuffled := make([]string, len(dataset))
	copy(shuffled, dataset)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Submit compares the trimmed input against the current word, case
// sensitively. A match advances the round; a mismatch is a no-op signal, not
// an error.
func (s *TypingSession) Submit(typed string, now time.Time) (SubmitOutcome, error) {
	if s.state != TypingRunning {
		return SubmitOutcome{}, ErrSessionNotActive
	}
	if strings.TrimSpace(typed) != s.words[s.index] {
		return SubmitOutcome{}, nil
	}
	s.correct++
	s.index++
	if s.index == len(s.words) {
		s.state = TypingFinished
		elapsed := now.Sub(s.startedAt).Seconds()
		s.result = TypingResult{
			Correct:        s.correct,
			RoundSize:      len(s.words),
			ElapsedSeconds: elapsed,
			WPM:            score.WordsPerMinute(s.correct, elapsed),
			Accuracy:       score.Accuracy(s.correct, len(s.words)),
		}
		return SubmitOutcome{Match: true, Finished: true, Result: &s.result}, nil
	}
	return SubmitOutcome{Match: true, Next: s.words[s.index]}, nil
}

// ElapsedSeconds derives the elapsed time from timestamps, so the value is
// correct regardless of how often it is sampled. After the round finishes it
// stays frozen at the final duration.
func (s *TypingSession) ElapsedSeconds(now time.Time) float64 {
	switch s.state {
	case TypingRunning:
		return now.Sub(s.startedAt).Seconds()
	case TypingFinished:
		return s.result.ElapsedSeconds
	default:
		return 0
	}
}

// Finish returns the final result. It is only available once every word of
// the round has been typed.
func (s *TypingSession) Finish() (TypingResult, error) {
	if s.state != TypingFinished {
		return TypingResult{}, ErrRoundNotFinished
	}
	return s.result, nil
}

// Reset discards all round state and returns to idle.
func (s *TypingSession) Reset() {
	s.words = nil
	s.index = 0
	s.correct = 0
	s.startedAt = time.Time{}
	s.state = TypingIdle
	s.result = TypingResult{}
}

// State returns the current lifecycle state.
func (s *TypingSession) State() TypingState {
	return s.state
}

// Words returns the words of the current round in order.
func (s *TypingSession) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Snapshot returns a read-only view of the session for rendering.
func (s *TypingSession) Snapshot() TypingSnapshot {
	snap := TypingSnapshot{
		State:     s.state,
		Index:     s.index,
		RoundSize: len(s.words),
		Correct:   s.correct,
	}
	if s.state == TypingRunning && s.index < len(s.words) {
		snap.Word = s.words[s.index]
	}
	return snap
}
