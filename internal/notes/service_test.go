package notes

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/llm"
	"github.com/abhisek/pathweaver/internal/pathway"
)

func testInput() NoteInput {
	objectives := []catalog.Objective{
		{ID: "num-1", Description: "Counting to 100", Subject: "maths", YearGroup: 1},
		{ID: "num-2", Description: "Addition", Subject: "maths", YearGroup: 2},
	}
	p := &pathway.Pathway{
		ID:        "pw-1",
		LearnerID: "learner-1",
		Steps: []pathway.Step{
			{
				Objective: objectives[0],
				Content: []catalog.Item{
					{ID: "vid-1", Title: "Counting song", Type: catalog.TypeVideo, Difficulty: "easy"},
				},
			},
			{Objective: objectives[1]},
		},
	}
	return NoteInput{
		Pathway:     p,
		Objectives:  objectives,
		Preferences: map[string]string{"learning_style": "visual"},
		Completed:   3,
	}
}

const validNoteJSON = `{
	"title": "Your Maths Journey",
	"overview": "This pathway builds counting into addition.",
	"focus": [
		{"objective_id": "num-1", "headline": "Count confidently", "why_it_helps": "Counting underpins everything that follows."},
		{"objective_id": "num-2", "headline": "Add small numbers", "why_it_helps": "Addition extends your counting skills."}
	],
	"tip": "Watch the videos first since you learn visually."
}`

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validNoteJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	note, err := svc.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.PathwayID != "pw-1" || note.LearnerID != "learner-1" {
		t.Errorf("identity not carried over: %+v", note)
	}
	if note.Title != "Your Maths Journey" {
		t.Errorf("title = %q", note.Title)
	}
	if len(note.Focus) != 2 || note.Focus[0].ObjectiveID != "num-1" {
		t.Errorf("focus = %+v", note.Focus)
	}
	if note.Tip == "" || note.GeneratedAt.IsZero() {
		t.Error("tip or timestamp missing")
	}
}

func TestGenerate_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validNoteJSON)},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != StudyNoteSchema {
		t.Error("request missing study note schema")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(req.Messages))
	}

	prompt := req.Messages[0].Content
	for _, want := range []string{"num-1", "num-2", "learning_style: visual", "Counting song", "no activities available"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{broken`)},
	)
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), testInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_EmptyPathwayRejected(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), NoteInput{Pathway: &pathway.Pathway{}})
	if err == nil {
		t.Fatal("expected error for empty pathway")
	}
	if mock.CallCount() != 0 {
		t.Error("provider called for empty pathway")
	}
}
