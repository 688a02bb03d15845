package badges

import (
	"context"
	"fmt"
	"testing"

	"github.com/abhisek/pathweaver/internal/catalog"
	"github.com/abhisek/pathweaver/internal/learner"
)

func testCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	objectives := []catalog.Objective{
		{ID: "lit-1", Description: "Phonics", Subject: "literacy", YearGroup: 1},
		{ID: "lit-2", Description: "Sentences", Subject: "literacy", YearGroup: 2},
	}
	for i := 1; i <= 5; i++ {
		objectives = append(objectives, catalog.Objective{
			ID:          fmt.Sprintf("num-%d", i),
			Description: fmt.Sprintf("Maths %d", i),
			Subject:     "maths",
			YearGroup:   i,
		})
	}
	s, err := catalog.Load(objectives, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func newTestPair(t *testing.T) (*learner.Service, *Service) {
	t.Helper()
	svc := learner.NewService(nil, nil)
	badgeSvc := NewService(testCatalog(t), svc.State(), nil)
	svc.Subscribe(badgeSvc)
	return svc, badgeSvc
}

func awardedTypes(s *Service) []BadgeType {
	types := make([]BadgeType, len(s.SessionBadges))
	for i, b := range s.SessionBadges {
		types[i] = b.Type
	}
	return types
}

func TestFirstCompletionAwardsFirstSteps(t *testing.T) {
	svc, badgeSvc := newTestPair(t)

	svc.MarkObjectiveCompleted(context.Background(), "num-1")

	types := awardedTypes(badgeSvc)
	if len(types) != 1 || types[0] != BadgeFirstSteps {
		t.Errorf("got %v, want [first-steps]", types)
	}
}

func TestMilestoneAtFiveCompletions(t *testing.T) {
	svc, badgeSvc := newTestPair(t)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		svc.MarkObjectiveCompleted(ctx, fmt.Sprintf("num-%d", i))
	}
	// Four completions: first-steps only, no milestone yet.
	for _, bt := range awardedTypes(badgeSvc) {
		if bt == BadgeMilestone {
			t.Fatal("milestone awarded before threshold")
		}
	}

	svc.MarkObjectiveCompleted(ctx, "num-5")

	var milestones int
	for _, bt := range awardedTypes(badgeSvc) {
		if bt == BadgeMilestone {
			milestones++
		}
	}
	if milestones != 1 {
		t.Errorf("got %d milestone badges, want 1", milestones)
	}
}

func TestSubjectBadgeWhenSubjectComplete(t *testing.T) {
	svc, badgeSvc := newTestPair(t)
	ctx := context.Background()

	svc.MarkObjectiveCompleted(ctx, "lit-1")
	for _, bt := range awardedTypes(badgeSvc) {
		if bt == BadgeSubject {
			t.Fatal("subject badge awarded with objectives remaining")
		}
	}

	svc.MarkObjectiveCompleted(ctx, "lit-2")

	found := false
	for _, b := range badgeSvc.SessionBadges {
		if b.Type == BadgeSubject {
			found = true
			if b.Subject != "literacy" {
				t.Errorf("subject = %q, want literacy", b.Subject)
			}
		}
	}
	if !found {
		t.Error("subject badge not awarded after completing literacy")
	}
}

func TestExplorerAwardedOncePerSession(t *testing.T) {
	svc, badgeSvc := newTestPair(t)
	ctx := context.Background()

	svc.SetPreference(ctx, "learning_style", "visual")
	svc.SetPreference(ctx, "pace", "slow")

	var explorers int
	for _, bt := range awardedTypes(badgeSvc) {
		if bt == BadgeExplorer {
			explorers++
		}
	}
	if explorers != 1 {
		t.Errorf("got %d explorer badges, want 1", explorers)
	}
}

func TestIdempotentCompletionAwardsNothing(t *testing.T) {
	svc, badgeSvc := newTestPair(t)
	ctx := context.Background()

	svc.MarkObjectiveCompleted(ctx, "num-1")
	before := len(badgeSvc.SessionBadges)
	svc.MarkObjectiveCompleted(ctx, "num-1")
	if len(badgeSvc.SessionBadges) != before {
		t.Error("repeat completion awarded a badge")
	}
}
