package catalog

import (
	"strings"
	"testing"
)

func TestValidateCatalog_Clean(t *testing.T) {
	diags, err := validateCatalog(testObjectives(), testItems())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestValidateCatalog_DuplicateContentID(t *testing.T) {
	items := []Item{
		{ID: "x", Title: "One", Type: TypeVideo},
		{ID: "x", Title: "Two", Type: TypeQuiz},
	}
	_, err := validateCatalog(nil, items)
	if err == nil {
		t.Fatal("expected duplicate content ID error")
	}
	if !strings.Contains(err.Error(), `duplicate content ID: "x"`) {
		t.Errorf("error missing duplicate detail: %v", err)
	}
}

func TestValidateCatalog_ReportsAllErrorsAtOnce(t *testing.T) {
	objectives := []Objective{
		{ID: "a", Description: "A", Subject: "maths", YearGroup: 1},
		{ID: "a", Description: "A dup", Subject: "maths", YearGroup: 1},
	}
	items := []Item{
		{ID: "x", Title: "One", Type: TypeVideo},
		{ID: "x", Title: "Two", Type: TypeQuiz},
	}
	_, err := validateCatalog(objectives, items)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate objective ID") || !strings.Contains(msg, "duplicate content ID") {
		t.Errorf("expected both error classes in one message: %v", msg)
	}
}

func TestValidateCatalog_CycleNamesMembers(t *testing.T) {
	objectives := []Objective{
		{ID: "a", Description: "A", Subject: "s", YearGroup: 1, Prerequisites: []string{"c"}},
		{ID: "b", Description: "B", Subject: "s", YearGroup: 1, Prerequisites: []string{"a"}},
		{ID: "c", Description: "C", Subject: "s", YearGroup: 1, Prerequisites: []string{"b"}},
		{ID: "d", Description: "D", Subject: "s", YearGroup: 1},
	}
	_, err := validateCatalog(objectives, nil)
	if err == nil {
		t.Fatal("expected cycle error")
	}
	for _, id := range []string{"a", "b", "c"} {
		if !strings.Contains(err.Error(), id) {
			t.Errorf("cycle error missing member %q: %v", id, err)
		}
	}
}

func TestValidateCatalog_DanglingEdgeDoesNotMaskCycle(t *testing.T) {
	// b→a→b is a real cycle; a also references a ghost prerequisite.
	objectives := []Objective{
		{ID: "a", Description: "A", Subject: "s", YearGroup: 1, Prerequisites: []string{"b", "ghost"}},
		{ID: "b", Description: "B", Subject: "s", YearGroup: 1, Prerequisites: []string{"a"}},
	}
	_, err := validateCatalog(objectives, nil)
	if err == nil {
		t.Fatal("expected cycle error despite dangling edge")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected cycle error, got: %v", err)
	}
}
