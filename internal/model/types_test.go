package model

import (
	"errors"
	"reflect"
	"testing"
)

func validEntry() ConjugationEntry {
	return ConjugationEntry{
		Verb: "parlare",
		Answers: map[string]map[string]string{
			"presente":   {"io": "parlo", "tu": "parli"},
			"imperfetto": {"io": "parlavo", "tu": "parlavi"},
		},
	}
}

func TestConjugationEntryValidate(t *testing.T) {
	cases := []struct {
		name    string
		entry   ConjugationEntry
		wantErr bool
	}{
		{name: "valid", entry: validEntry()},
		{
			name:    "empty verb",
			entry:   ConjugationEntry{Answers: validEntry().Answers},
			wantErr: true,
		},
		{
			name:    "empty grid",
			entry:   ConjugationEntry{Verb: "parlare"},
			wantErr: true,
		},
		{
			name: "empty persons",
			entry: ConjugationEntry{
				Verb:    "parlare",
				Answers: map[string]map[string]string{"presente": {}},
			},
			wantErr: true,
		},
		{
			name: "ragged grid",
			entry: ConjugationEntry{
				Verb: "parlare",
				Answers: map[string]map[string]string{
					"presente":   {"io": "parlo", "tu": "parli"},
					"imperfetto": {"io": "parlavo"},
				},
			},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entry.Validate()
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var malformed *MalformedEntryError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedEntryError, got %v", err)
			}
		})
	}
}

func TestFormsAndPersonsDeterministicOrder(t *testing.T) {
	entry := validEntry()
	if got, want := entry.Forms(), []string{"imperfetto", "presente"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected form order: %v", got)
	}
	if got, want := entry.Persons(), []string{"io", "tu"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected person order: %v", got)
	}
}
