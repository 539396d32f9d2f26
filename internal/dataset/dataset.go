// Package dataset loads vocabulary and conjugation datasets from JSON files.
package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ripasso/ripasso/internal/model"
)

// DefaultLang is the language of the embedded starter datasets.
const DefaultLang = "it"

//go:embed data/words.it.json
var embeddedWords []byte

//go:embed data/conjugations.it.json
var embeddedConjugations []byte

// Source reports where a dataset came from.
type Source string

// Dataset sources.
const (
	SourceFile     Source = "file"
	SourceEmbedded Source = "embedded"
)

// LoadWords reads a vocabulary dataset: a JSON flat array of strings. Blank
// entries are dropped after trimming. An empty array is a valid (if not yet
// usable) dataset; the session layer refuses to start rounds on it.
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word dataset: %w", err)
	}
	return parseWords(data)
}

func parseWords(data []byte) ([]string, error) {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse word dataset: %w", err)
	}
	words := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words, nil
}

// LoadConjugations reads a conjugation dataset: a JSON array of {verb,
// answers} objects. Malformed entries (non-rectangular answer grid) are
// skipped and reported per entry in the second return value; valid entries
// are kept.
func LoadConjugations(path string) ([]model.ConjugationEntry, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read conjugation dataset: %w", err)
	}
	return parseConjugations(data)
}

func parseConjugations(data []byte) ([]model.ConjugationEntry, []error, error) {
	var raw []model.ConjugationEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse conjugation dataset: %w", err)
	}
	entries := make([]model.ConjugationEntry, 0, len(raw))
	var skipped []error
	for _, entry := range raw {
		if err := entry.Validate(); err != nil {
			skipped = append(skipped, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, skipped, nil
}

// LoadWordsWithFallback loads the word dataset from path, falling back to
// the embedded starter set when no file exists and the language matches the
// embedded one.
func LoadWordsWithFallback(path, lang string) ([]string, Source, error) {
	words, err := LoadWords(path)
	if err == nil {
		return words, SourceFile, nil
	}
	if errors.Is(err, os.ErrNotExist) && lang == DefaultLang {
		words, err := parseWords(embeddedWords)
		return words, SourceEmbedded, err
	}
	return nil, SourceFile, err
}

// LoadConjugationsWithFallback loads the conjugation dataset from path,
// falling back to the embedded starter set when no file exists and the
// language matches the embedded one.
func LoadConjugationsWithFallback(path, lang string) ([]model.ConjugationEntry, []error, Source, error) {
	entries, skipped, err := LoadConjugations(path)
	if err == nil {
		return entries, skipped, SourceFile, nil
	}
	if errors.Is(err, os.ErrNotExist) && lang == DefaultLang {
		entries, skipped, err := parseConjugations(embeddedConjugations)
		return entries, skipped, SourceEmbedded, err
	}
	return nil, nil, SourceFile, err
}
