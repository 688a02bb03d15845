package learner

import "time"

// CompletionEvent describes one objective entering the completed set.
type CompletionEvent struct {
	LearnerID      string
	ObjectiveID    string
	CompletedCount int
	At             time.Time
}

// PreferenceEvent describes one preference-capture outcome.
type PreferenceEvent struct {
	LearnerID string
	Category  string
	Value     string
	At        time.Time
}

// Listener observes learner-state mutations. Mutators return after every
// listener has been notified; listeners must not call back into the
// Service. Achievement evaluation lives behind this interface so state
// mutation stays pure and independently testable.
type Listener interface {
	ObjectiveCompleted(ev CompletionEvent)
	PreferenceSet(ev PreferenceEvent)
}
