package selector

import (
	"sort"
	"strings"

	"github.com/abhisek/pathweaver/internal/catalog"
)

// difficultyRanks is the fixed lookup table mapping difficulty labels to
// ordinal ranks for sorting.
var difficultyRanks = map[string]int{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

// DefaultDifficultyRank is substituted for unrecognized difficulty
// labels. Unknown labels sort with "medium" and are never an error.
const DefaultDifficultyRank = 2

// DifficultyRank returns the ordinal rank for a difficulty label.
func DifficultyRank(label string) int {
	if rank, ok := difficultyRanks[strings.ToLower(strings.TrimSpace(label))]; ok {
		return rank
	}
	return DefaultDifficultyRank
}

// sortByDifficulty returns the items ordered by ascending difficulty
// rank. The sort is stable: equal ranks keep catalog iteration order.
func sortByDifficulty(items []catalog.Item) []catalog.Item {
	sorted := make([]catalog.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DifficultyRank(sorted[i].Difficulty) < DifficultyRank(sorted[j].Difficulty)
	})
	return sorted
}
