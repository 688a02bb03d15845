// Package selector picks a bounded, varied, preference-ordered subset of
// content for one objective. Selection runs in three greedy phases over
// difficulty-sorted candidates; the used-set is scoped to a single call,
// so an item covering two objectives may be selected for both within one
// pathway.
package selector

import (
	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

// DefaultMaxActivities is the default cap on items selected per objective.
const DefaultMaxActivities = 3

// typePriority is the fixed order variety selection walks when filling
// slots with not-yet-represented types.
var typePriority = catalog.AllContentTypes()

// Select chooses up to maxItems candidates for one objective.
//
// Phase 1 walks the learner's preferred-type list, taking the easiest
// unused item of each type. Phase 2 fills remaining slots with the
// easiest item of each type not yet represented, in fixed priority
// order. Phase 3 fills any slots left with the easiest unused items
// regardless of type. An objective with any content always yields at
// least one item; zero candidates yield an empty selection, which is a
// normal outcome.
func Select(candidates []catalog.Item, state *learner.State, maxItems int) []catalog.Item {
	if maxItems <= 0 || len(candidates) == 0 {
		return nil
	}

	ranked := sortByDifficulty(candidates)
	used := make(map[string]bool, maxItems)
	var selected []catalog.Item

	take := func(it catalog.Item) {
		used[it.ID] = true
		selected = append(selected, it)
	}

	// Phase 1 — preference-driven.
	for _, t := range PreferredTypes(state) {
		if len(selected) >= maxItems {
			break
		}
		if it, ok := firstOfType(ranked, used, t); ok {
			take(it)
		}
	}

	// Phase 2 — variety-driven: only types with no current representative.
	if len(selected) < maxItems {
		represented := make(map[catalog.ContentType]bool, len(selected))
		for _, it := range selected {
			represented[it.Type] = true
		}
		for _, t := range typePriority {
			if len(selected) >= maxItems {
				break
			}
			if represented[t] {
				continue
			}
			if it, ok := firstOfType(ranked, used, t); ok {
				represented[t] = true
				take(it)
			}
		}
	}

	// Phase 3 — fallback fill in ascending difficulty.
	for _, it := range ranked {
		if len(selected) >= maxItems {
			break
		}
		if !used[it.ID] {
			take(it)
		}
	}

	// Absolute fallback: every objective with content gets one activity.
	if len(selected) == 0 {
		take(ranked[0])
	}

	if len(selected) > maxItems {
		selected = selected[:maxItems]
	}
	return selected
}

// firstOfType returns the first unused item of the given type in ranked
// order.
func firstOfType(ranked []catalog.Item, used map[string]bool, t catalog.ContentType) (catalog.Item, bool) {
	for _, it := range ranked {
		if it.Type == t && !used[it.ID] {
			return it, true
		}
	}
	return catalog.Item{}, false
}
