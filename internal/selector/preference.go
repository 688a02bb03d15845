package selector

import (
	"sort"
	"strings"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

// preferenceExpansions maps a preference value to the content types it
// implies, most preferred first. Unknown values expand to nothing and
// fall through to the catalog-order tail.
var preferenceExpansions = map[string][]catalog.ContentType{
	"visual":        {catalog.TypeVideo, catalog.TypeDiagram, catalog.TypeImage},
	"auditory":      {catalog.TypeAudio, catalog.TypeVideo},
	"reading":       {catalog.TypeArticle, catalog.TypeWorksheet, catalog.TypeText},
	"detailed-text": {catalog.TypeArticle, catalog.TypeWorksheet},
	"kinesthetic":   {catalog.TypeGame, catalog.TypeQuiz},
}

// PreferredTypes derives the ordered content-type list for a learner:
// the expansions of each preference value (categories walked in sorted
// order for determinism), followed by every remaining known type in
// catalog order so all types are eventually considered.
func PreferredTypes(state *learner.State) []catalog.ContentType {
	var ordered []catalog.ContentType
	seen := make(map[catalog.ContentType]bool)

	categories := make([]string, 0, len(state.Preferences))
	for c := range state.Preferences {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		value := strings.ToLower(strings.TrimSpace(state.Preferences[c]))
		for _, t := range preferenceExpansions[value] {
			if !seen[t] {
				seen[t] = true
				ordered = append(ordered, t)
			}
		}
	}

	for _, t := range catalog.AllContentTypes() {
		if !seen[t] {
			seen[t] = true
			ordered = append(ordered, t)
		}
	}
	return ordered
}
