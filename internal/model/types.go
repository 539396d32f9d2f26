// Package model defines shared data structures.
package model

import (
	"fmt"
	"sort"
)

// Config defines practice settings.
type Config struct {
	Mode      string
	Lang      string
	RoundSize int
	DataDir   string
}

// ConjugationEntry holds the answer grid for a single verb. The outer key of
// Answers is the grammatical form (tense), the inner key is the person.
type ConjugationEntry struct {
	Verb    string                       `json:"verb"`
	Answers map[string]map[string]string `json:"answers"`
}

// MalformedEntryError reports a conjugation entry whose answer grid is not a
// rectangular person x form matrix.
type MalformedEntryError struct {
	Verb   string
	Reason string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("malformed conjugation entry %q: %s", e.Verb, e.Reason)
}

// Validate checks the rectangular-grid invariant: a non-empty set of forms,
// each sharing an identical non-empty set of persons.
func (e ConjugationEntry) Validate() error {
	if e.Verb == "" {
		return &MalformedEntryError{Verb: e.Verb, Reason: "verb is empty"}
	}
	if len(e.Answers) == 0 {
		return &MalformedEntryError{Verb: e.Verb, Reason: "answer grid is empty"}
	}
	forms := e.Forms()
	ref := personsOf(e.Answers[forms[0]])
	if len(ref) == 0 {
		return &MalformedEntryError{Verb: e.Verb, Reason: fmt.Sprintf("form %q has no persons", forms[0])}
	}
	for _, form := range forms[1:] {
		got := personsOf(e.Answers[form])
		if !equalStrings(ref, got) {
			return &MalformedEntryError{
				Verb:   e.Verb,
				Reason: fmt.Sprintf("form %q persons %v do not match form %q persons %v", form, got, forms[0], ref),
			}
		}
	}
	return nil
}

// Forms returns the grammatical forms of the grid in deterministic order.
// Map key order carries no meaning in the dataset, so sorted order is used.
func (e ConjugationEntry) Forms() []string {
	forms := make([]string, 0, len(e.Answers))
	for form := range e.Answers {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	return forms
}

// Persons returns the persons shared by every form, in deterministic order.
// Call Validate first; on a malformed grid this returns the first form's persons.
func (e ConjugationEntry) Persons() []string {
	forms := e.Forms()
	if len(forms) == 0 {
		return nil
	}
	return personsOf(e.Answers[forms[0]])
}

func personsOf(row map[string]string) []string {
	persons := make([]string, 0, len(row))
	for person := range row {
		persons = append(persons, person)
	}
	sort.Strings(persons)
	return persons
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
