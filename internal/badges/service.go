// Package badges evaluates achievement criteria as an observer of
// learner-state mutations. The learner service stays pure: it emits
// events, and this listener does the scanning that the mutators must
// not — no re-entrant criteria sweeps inside state updates.
package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
	"github.com/abhisek/pathweaver/internal/store"
)

// Service awards badges in response to learner events.
type Service struct {
	catalog   *catalog.Store
	state     *learner.State
	eventRepo store.EventRepo

	// SessionBadges accumulates badges awarded since construction,
	// for end-of-session display.
	SessionBadges []Badge

	prefAwarded bool
}

var _ learner.Listener = (*Service)(nil)

// NewService creates a badge service observing the given learner state.
func NewService(cat *catalog.Store, state *learner.State, eventRepo store.EventRepo) *Service {
	return &Service{catalog: cat, state: state, eventRepo: eventRepo}
}

// ObjectiveCompleted evaluates completion-driven criteria.
func (s *Service) ObjectiveCompleted(ev learner.CompletionEvent) {
	if ev.CompletedCount == 1 {
		s.award(Badge{
			Type:      BadgeFirstSteps,
			LearnerID: ev.LearnerID,
			Reason:    "Completed a first objective",
			AwardedAt: time.Now(),
		})
	}

	if threshold, ok := milestoneFor(ev.CompletedCount); ok {
		s.award(Badge{
			Type:      BadgeMilestone,
			LearnerID: ev.LearnerID,
			Reason:    fmt.Sprintf("%d objectives completed", threshold),
			AwardedAt: time.Now(),
		})
	}

	obj, ok := s.catalog.Objective(ev.ObjectiveID)
	if !ok {
		return
	}
	if s.subjectComplete(obj.Subject) {
		s.award(Badge{
			Type:      BadgeSubject,
			LearnerID: ev.LearnerID,
			Subject:   obj.Subject,
			Reason:    fmt.Sprintf("Completed every %s objective", obj.Subject),
			AwardedAt: time.Now(),
		})
	}
}

// PreferenceSet awards the explorer badge on the first captured
// preference.
func (s *Service) PreferenceSet(ev learner.PreferenceEvent) {
	if s.prefAwarded {
		return
	}
	s.prefAwarded = true
	s.award(Badge{
		Type:      BadgeExplorer,
		LearnerID: ev.LearnerID,
		Reason:    fmt.Sprintf("Captured %s preference", ev.Category),
		AwardedAt: time.Now(),
	})
}

// subjectComplete reports whether every catalog objective in the subject
// is in the learner's completed set.
func (s *Service) subjectComplete(subject string) bool {
	objs := s.catalog.BySubject(subject)
	if len(objs) == 0 {
		return false
	}
	for _, o := range objs {
		if !s.state.HasCompleted(o.ID) {
			return false
		}
	}
	return true
}

func (s *Service) award(b Badge) {
	s.SessionBadges = append(s.SessionBadges, b)
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendBadgeEvent(context.Background(), store.BadgeEventData{
		BadgeType: string(b.Type),
		LearnerID: b.LearnerID,
		Subject:   b.Subject,
		Reason:    b.Reason,
	})
}
