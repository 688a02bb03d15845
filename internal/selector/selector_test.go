package selector

import (
	"testing"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

func visualLearner() *learner.State {
	state := learner.NewState("test-learner")
	state.Preferences["learning_style"] = "visual"
	return state
}

func TestSelect_PreferenceThenVariety(t *testing.T) {
	candidates := []catalog.Item{
		{ID: "ws-1", Title: "Worksheet", Type: catalog.TypeWorksheet, Difficulty: "hard"},
		{ID: "quiz-1", Title: "Quiz", Type: catalog.TypeQuiz, Difficulty: "medium"},
		{ID: "vid-1", Title: "Video", Type: catalog.TypeVideo, Difficulty: "easy"},
	}

	selected := Select(candidates, visualLearner(), 2)
	if len(selected) != 2 {
		t.Fatalf("got %d items, want 2", len(selected))
	}
	// Visual expands to video first; quiz fills the remaining slot before
	// the hard worksheet because preference order continues through the
	// remaining types.
	if selected[0].ID != "vid-1" {
		t.Errorf("first pick = %q, want vid-1", selected[0].ID)
	}
	if selected[1].ID != "quiz-1" {
		t.Errorf("second pick = %q, want quiz-1", selected[1].ID)
	}
}

func TestSelect_EasiestOfPreferredType(t *testing.T) {
	candidates := []catalog.Item{
		{ID: "vid-hard", Type: catalog.TypeVideo, Difficulty: "hard"},
		{ID: "vid-easy", Type: catalog.TypeVideo, Difficulty: "easy"},
		{ID: "vid-med", Type: catalog.TypeVideo, Difficulty: "medium"},
	}

	selected := Select(candidates, visualLearner(), 1)
	if len(selected) != 1 || selected[0].ID != "vid-easy" {
		t.Errorf("got %v, want [vid-easy]", selected)
	}
}

func TestSelect_NoDuplicates(t *testing.T) {
	candidates := []catalog.Item{
		{ID: "vid-1", Type: catalog.TypeVideo, Difficulty: "easy"},
		{ID: "quiz-1", Type: catalog.TypeQuiz, Difficulty: "easy"},
	}

	selected := Select(candidates, visualLearner(), 5)
	seen := make(map[string]bool)
	for _, it := range selected {
		if seen[it.ID] {
			t.Fatalf("duplicate selection: %q", it.ID)
		}
		seen[it.ID] = true
	}
	if len(selected) != 2 {
		t.Errorf("got %d items, want 2", len(selected))
	}
}

func TestSelect_NeverExceedsMax(t *testing.T) {
	var candidates []catalog.Item
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		candidates = append(candidates, catalog.Item{ID: id, Type: catalog.TypeQuiz, Difficulty: "easy"})
	}

	selected := Select(candidates, learner.NewState("x"), 3)
	if len(selected) != 3 {
		t.Errorf("got %d items, want 3", len(selected))
	}
}

func TestSelect_FallbackFillAscendingDifficulty(t *testing.T) {
	// All the same type: one preference pick, then phase 3 fills by
	// ascending difficulty.
	candidates := []catalog.Item{
		{ID: "q-hard", Type: catalog.TypeQuiz, Difficulty: "hard"},
		{ID: "q-easy", Type: catalog.TypeQuiz, Difficulty: "easy"},
		{ID: "q-med", Type: catalog.TypeQuiz, Difficulty: "medium"},
	}

	selected := Select(candidates, learner.NewState("x"), 3)
	want := []string{"q-easy", "q-med", "q-hard"}
	if len(selected) != 3 {
		t.Fatalf("got %d items, want 3", len(selected))
	}
	for i, id := range want {
		if selected[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, selected[i].ID, id)
		}
	}
}

func TestSelect_SingleItemAlwaysSelected(t *testing.T) {
	candidates := []catalog.Item{
		{ID: "only", Type: catalog.ContentType("simulation"), Difficulty: "hard"},
	}

	selected := Select(candidates, visualLearner(), 3)
	if len(selected) != 1 || selected[0].ID != "only" {
		t.Errorf("got %v, want the single candidate", selected)
	}
}

func TestSelect_EmptyCandidates(t *testing.T) {
	if got := Select(nil, visualLearner(), 3); got != nil {
		t.Errorf("got %v, want nil", got)
	}
	if got := Select([]catalog.Item{{ID: "x", Type: catalog.TypeQuiz}}, visualLearner(), 0); got != nil {
		t.Errorf("maxItems 0: got %v, want nil", got)
	}
}

func TestSelect_DeterministicAcrossCalls(t *testing.T) {
	candidates := []catalog.Item{
		{ID: "vid-1", Type: catalog.TypeVideo, Difficulty: "medium"},
		{ID: "quiz-1", Type: catalog.TypeQuiz, Difficulty: "easy"},
		{ID: "ws-1", Type: catalog.TypeWorksheet, Difficulty: "easy"},
		{ID: "game-1", Type: catalog.TypeGame, Difficulty: "hard"},
	}
	state := visualLearner()

	first := Select(candidates, state, 3)
	second := Select(candidates, state, 3)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d differs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
