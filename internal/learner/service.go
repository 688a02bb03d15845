package learner

import (
	"context"
	"time"

	"github.com/abhisek/pathweaver/internal/store"
)

// Service owns a learner's state and applies mutations. Each mutator
// updates the state, appends a domain event, and notifies listeners —
// nothing else. Event persistence is best-effort: a nil eventRepo or a
// failed append never blocks the state change.
type Service struct {
	state     *State
	eventRepo store.EventRepo
	listeners []Listener
}

// NewService creates a learner service, restoring state from the
// snapshot when one is provided.
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{
		state:     NewState(""),
		eventRepo: eventRepo,
	}
	if snap != nil && snap.Learner != nil {
		s.loadFromSnapshot(snap.Learner)
	}
	return s
}

// Subscribe registers a listener for subsequent mutations.
func (s *Service) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// State returns the learner state for engine reads.
func (s *Service) State() *State {
	return s.state
}

// MarkObjectiveCompleted adds an objective to the completed set.
// Returns false when the objective was already completed (no event, no
// notification) — the completed set only grows.
func (s *Service) MarkObjectiveCompleted(ctx context.Context, objectiveID string) bool {
	if s.state.Completed[objectiveID] {
		return false
	}
	s.state.Completed[objectiveID] = true
	if s.state.CurrentObjective == objectiveID {
		s.state.CurrentObjective = ""
	}

	ev := CompletionEvent{
		LearnerID:      s.state.LearnerID,
		ObjectiveID:    objectiveID,
		CompletedCount: len(s.state.Completed),
		At:             time.Now(),
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendProgressEvent(ctx, store.ProgressEventData{
			LearnerID:      ev.LearnerID,
			ObjectiveID:    ev.ObjectiveID,
			CompletedCount: ev.CompletedCount,
		})
	}

	for _, l := range s.listeners {
		l.ObjectiveCompleted(ev)
	}
	return true
}

// SetPreference records a preference-capture result (e.g. a
// visual-vs-textual diagnostic outcome).
func (s *Service) SetPreference(ctx context.Context, category, value string) {
	s.state.Preferences[category] = value

	ev := PreferenceEvent{
		LearnerID: s.state.LearnerID,
		Category:  category,
		Value:     value,
		At:        time.Now(),
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendPreferenceEvent(ctx, store.PreferenceEventData{
			LearnerID: ev.LearnerID,
			Category:  ev.Category,
			Value:     ev.Value,
		})
	}

	for _, l := range s.listeners {
		l.PreferenceSet(ev)
	}
}

// SetCurrentObjective moves the learner's "working on" pointer.
func (s *Service) SetCurrentObjective(objectiveID string) {
	s.state.CurrentObjective = objectiveID
}

func (s *Service) loadFromSnapshot(data *store.LearnerSnapshotData) {
	if data.LearnerID != "" {
		s.state.LearnerID = data.LearnerID
	}
	for _, id := range data.Completed {
		s.state.Completed[id] = true
	}
	for k, v := range data.Preferences {
		s.state.Preferences[k] = v
	}
	s.state.CurrentObjective = data.CurrentObjective
}

// SnapshotData exports the learner state for persistence.
func (s *Service) SnapshotData() *store.LearnerSnapshotData {
	data := &store.LearnerSnapshotData{
		LearnerID:        s.state.LearnerID,
		Completed:        s.state.CompletedIDs(),
		Preferences:      make(map[string]string, len(s.state.Preferences)),
		CurrentObjective: s.state.CurrentObjective,
	}
	for k, v := range s.state.Preferences {
		data.Preferences[k] = v
	}
	return data
}
