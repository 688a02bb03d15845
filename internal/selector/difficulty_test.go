package selector

import (
	"testing"

	"github.com/abhisek/pathweaver/internal/catalog"
)

func TestDifficultyRank(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"easy", 1},
		{"medium", 2},
		{"hard", 3},
		{"EASY", 1},
		{" Hard ", 3},
		{"", DefaultDifficultyRank},
		{"expert", DefaultDifficultyRank},
	}
	for _, tt := range tests {
		if got := DifficultyRank(tt.label); got != tt.want {
			t.Errorf("DifficultyRank(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestSortByDifficulty_StableForEqualRanks(t *testing.T) {
	items := []catalog.Item{
		{ID: "a", Difficulty: "medium"},
		{ID: "b", Difficulty: "unknown"}, // ranks with medium
		{ID: "c", Difficulty: "easy"},
		{ID: "d", Difficulty: "medium"},
	}

	sorted := sortByDifficulty(items)
	want := []string{"c", "a", "b", "d"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, sorted[i].ID, id)
		}
	}

	// Input order untouched.
	if items[0].ID != "a" {
		t.Error("sortByDifficulty mutated its input")
	}
}
