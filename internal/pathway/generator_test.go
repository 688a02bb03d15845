package pathway

import (
	"context"
	"testing"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	objectives := []catalog.Objective{
		{ID: "num-1", Description: "Counting", Subject: "maths", YearGroup: 1},
		{ID: "num-2", Description: "Addition", Subject: "maths", YearGroup: 2, Prerequisites: []string{"num-1"}},
		{ID: "lit-1", Description: "Phonics", Subject: "literacy", YearGroup: 1},
		{ID: "lit-2", Description: "Sentences", Subject: "literacy", YearGroup: 2, Prerequisites: []string{"lit-1"}},
	}
	items := []catalog.Item{
		{ID: "vid-count", Title: "Counting song", Type: catalog.TypeVideo, Difficulty: "easy", Objectives: []string{"num-1"}},
		{ID: "quiz-count", Title: "Counting quiz", Type: catalog.TypeQuiz, Difficulty: "medium", Objectives: []string{"num-1"}},
		{ID: "ws-add", Title: "Addition worksheet", Type: catalog.TypeWorksheet, Difficulty: "medium", Objectives: []string{"num-2"}},
		// lit-1 has no content on purpose.
	}
	s, err := catalog.Load(objectives, items)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestGenerate_BasicPathway(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")

	p := gen.Generate(context.Background(), state, Options{Seed: 7})

	if p.ID == "" {
		t.Error("pathway ID not set")
	}
	if p.LearnerID != "test-learner" {
		t.Errorf("learner ID = %q", p.LearnerID)
	}
	// Fresh learner: num-1 and lit-1 are the eligible roots.
	if len(p.Steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(p.Steps))
	}
	for _, step := range p.Steps {
		if step.Objective.ID != "num-1" && step.Objective.ID != "lit-1" {
			t.Errorf("unexpected objective %q for fresh learner", step.Objective.ID)
		}
	}
}

func TestGenerate_SeededReproducibility(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")
	opts := Options{Seed: 42}

	first := gen.Generate(context.Background(), state, opts)
	second := gen.Generate(context.Background(), state, opts)

	if len(first.Steps) != len(second.Steps) {
		t.Fatalf("step counts differ: %d vs %d", len(first.Steps), len(second.Steps))
	}
	for i := range first.Steps {
		if first.Steps[i].Objective.ID != second.Steps[i].Objective.ID {
			t.Errorf("step %d objective differs: %q vs %q",
				i, first.Steps[i].Objective.ID, second.Steps[i].Objective.ID)
		}
		if len(first.Steps[i].Content) != len(second.Steps[i].Content) {
			t.Errorf("step %d content counts differ", i)
			continue
		}
		for j := range first.Steps[i].Content {
			if first.Steps[i].Content[j].ID != second.Steps[i].Content[j].ID {
				t.Errorf("step %d item %d differs", i, j)
			}
		}
	}
}

func TestGenerate_KeepsObjectivesWithoutContent(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")

	p := gen.Generate(context.Background(), state, Options{Seed: 7})

	var litStep *Step
	for i := range p.Steps {
		if p.Steps[i].Objective.ID == "lit-1" {
			litStep = &p.Steps[i]
		}
	}
	if litStep == nil {
		t.Fatal("lit-1 missing from pathway")
	}
	if len(litStep.Content) != 0 {
		t.Errorf("lit-1 has %d items, want 0", len(litStep.Content))
	}
}

func TestGenerate_RespectsBounds(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")

	p := gen.Generate(context.Background(), state, Options{MaxObjectives: 1, MaxActivities: 1, Seed: 7})
	if len(p.Steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(p.Steps))
	}
	for _, step := range p.Steps {
		if len(step.Content) > 1 {
			t.Errorf("step %q has %d items, want at most 1", step.Objective.ID, len(step.Content))
		}
	}
}

func TestGenerate_AllCompleted(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")
	for _, id := range []string{"num-1", "num-2", "lit-1", "lit-2"} {
		state.Completed[id] = true
	}

	p := gen.Generate(context.Background(), state, Options{Seed: 7})
	if len(p.Steps) != 0 {
		t.Errorf("got %d steps, want 0", len(p.Steps))
	}
	if p.ID == "" || p.LearnerID != "test-learner" {
		t.Error("empty pathway must still be well-formed")
	}
}

func TestGenerate_UnlocksAfterCompletion(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")
	state.Completed["num-1"] = true
	state.Completed["lit-1"] = true

	p := gen.Generate(context.Background(), state, Options{Seed: 7})
	ids := map[string]bool{}
	for _, step := range p.Steps {
		ids[step.Objective.ID] = true
	}
	if !ids["num-2"] || !ids["lit-2"] {
		t.Errorf("dependents not unlocked: %v", ids)
	}
}

func TestFlatten(t *testing.T) {
	gen := NewGenerator(testCatalog(t), nil)
	state := learner.NewState("test-learner")

	p := gen.Generate(context.Background(), state, Options{Seed: 7})
	flat := p.Flatten()

	if len(flat) != len(p.Steps) {
		t.Fatalf("got %d flat steps, want %d", len(flat), len(p.Steps))
	}
	for i, fs := range flat {
		if fs.ObjectiveID != p.Steps[i].Objective.ID {
			t.Errorf("flat step %d id = %q, want %q", i, fs.ObjectiveID, p.Steps[i].Objective.ID)
		}
		if len(fs.ContentItems) != len(p.Steps[i].Content) {
			t.Errorf("flat step %d has %d items, want %d", i, len(fs.ContentItems), len(p.Steps[i].Content))
		}
	}
}

func TestActivityCount(t *testing.T) {
	p := &Pathway{Steps: []Step{
		{Content: []catalog.Item{{ID: "a"}, {ID: "b"}}},
		{Content: nil},
		{Content: []catalog.Item{{ID: "c"}}},
	}}
	if got := p.ActivityCount(); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}
