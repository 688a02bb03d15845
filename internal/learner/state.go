package learner

import (
	"sort"

	"github.com/google/uuid"
)

// State is the per-learner record the engine reads: completed objectives
// and the preference vector. The engine never mutates it directly —
// mutation goes through Service so events and listeners stay consistent.
// Access for a single learner must be externally serialized.
type State struct {
	LearnerID        string
	Completed        map[string]bool
	Preferences      map[string]string
	CurrentObjective string
}

// NewState creates an empty learner state. A fresh id is generated when
// learnerID is empty.
func NewState(learnerID string) *State {
	if learnerID == "" {
		learnerID = uuid.NewString()
	}
	return &State{
		LearnerID:   learnerID,
		Completed:   make(map[string]bool),
		Preferences: make(map[string]string),
	}
}

// HasCompleted reports whether the objective is in the completed set.
func (s *State) HasCompleted(objectiveID string) bool {
	return s.Completed[objectiveID]
}

// CompletedIDs returns the completed objective ids in sorted order.
func (s *State) CompletedIDs() []string {
	ids := make([]string, 0, len(s.Completed))
	for id := range s.Completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Preference returns the value for a preference category, or "" if unset.
func (s *State) Preference(category string) string {
	return s.Preferences[category]
}
