// Package eligibility decides which objectives a learner may attempt
// next: prerequisites satisfied, not yet completed. Everything fails
// closed — a missing objective or a dangling prerequisite makes the
// objective ineligible, never an error.
package eligibility

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

// Resolver answers eligibility queries against one catalog.
type Resolver struct {
	catalog *catalog.Store

	// Diag, when set, receives a line for every fail-closed decision
	// caused by a missing definition. Nil disables diagnostics.
	Diag func(msg string)
}

// New creates a Resolver over the given catalog.
func New(cat *catalog.Store) *Resolver {
	return &Resolver{catalog: cat}
}

// IsEligible reports whether the objective exists and every prerequisite
// is in the learner's completed set.
func (r *Resolver) IsEligible(objectiveID string, state *learner.State) bool {
	obj, ok := r.catalog.Objective(objectiveID)
	if !ok {
		r.diagf("objective %q not in catalog; treated as ineligible", objectiveID)
		return false
	}
	for _, prereqID := range obj.Prerequisites {
		if _, ok := r.catalog.Objective(prereqID); !ok {
			r.diagf("objective %q has unknown prerequisite %q; treated as ineligible", objectiveID, prereqID)
			return false
		}
		if !state.HasCompleted(prereqID) {
			return false
		}
	}
	return true
}

// NextObjectives returns up to maxCount eligible, not-yet-completed
// objectives. The candidate set is shuffled with rng before truncation
// so pathway composition varies session over session; pass a seeded
// generator for reproducible runs. An empty result is a normal outcome.
func (r *Resolver) NextObjectives(state *learner.State, maxCount int, rng *rand.Rand) []catalog.Objective {
	if maxCount <= 0 {
		return nil
	}

	var candidates []catalog.Objective
	for _, obj := range r.catalog.AllObjectives() {
		if state.HasCompleted(obj.ID) {
			continue
		}
		if r.IsEligible(obj.ID, state) {
			candidates = append(candidates, obj)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if len(candidates) > maxCount {
		candidates = candidates[:maxCount]
	}
	return candidates
}

func (r *Resolver) diagf(format string, args ...any) {
	if r.Diag != nil {
		r.Diag(fmt.Sprintf(format, args...))
	}
}
