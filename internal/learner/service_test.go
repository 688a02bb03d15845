package learner

import (
	"context"
	"testing"

	"github.com/abhisek/pathweaver/internal/store"
)

// recordingListener captures every notification for assertions.
type recordingListener struct {
	completions []CompletionEvent
	preferences []PreferenceEvent
}

func (r *recordingListener) ObjectiveCompleted(ev CompletionEvent) {
	r.completions = append(r.completions, ev)
}

func (r *recordingListener) PreferenceSet(ev PreferenceEvent) {
	r.preferences = append(r.preferences, ev)
}

func TestMarkObjectiveCompleted(t *testing.T) {
	svc := NewService(nil, nil)
	listener := &recordingListener{}
	svc.Subscribe(listener)

	ctx := context.Background()

	if !svc.MarkObjectiveCompleted(ctx, "num-1") {
		t.Fatal("first completion should return true")
	}
	if !svc.State().HasCompleted("num-1") {
		t.Error("num-1 not in completed set")
	}
	if len(listener.completions) != 1 {
		t.Fatalf("got %d notifications, want 1", len(listener.completions))
	}
	if listener.completions[0].ObjectiveID != "num-1" || listener.completions[0].CompletedCount != 1 {
		t.Errorf("got event %+v", listener.completions[0])
	}
}

func TestMarkObjectiveCompleted_Idempotent(t *testing.T) {
	svc := NewService(nil, nil)
	listener := &recordingListener{}
	svc.Subscribe(listener)

	ctx := context.Background()
	svc.MarkObjectiveCompleted(ctx, "num-1")

	if svc.MarkObjectiveCompleted(ctx, "num-1") {
		t.Fatal("repeat completion should return false")
	}
	if len(listener.completions) != 1 {
		t.Errorf("repeat completion notified listeners: %d events", len(listener.completions))
	}
	if len(svc.State().Completed) != 1 {
		t.Errorf("completed set grew on repeat: %d entries", len(svc.State().Completed))
	}
}

func TestMarkObjectiveCompleted_ClearsCurrentObjective(t *testing.T) {
	svc := NewService(nil, nil)
	svc.SetCurrentObjective("num-1")

	svc.MarkObjectiveCompleted(context.Background(), "num-1")
	if svc.State().CurrentObjective != "" {
		t.Errorf("current objective not cleared: %q", svc.State().CurrentObjective)
	}
}

func TestSetPreference(t *testing.T) {
	svc := NewService(nil, nil)
	listener := &recordingListener{}
	svc.Subscribe(listener)

	svc.SetPreference(context.Background(), "learning_style", "visual")

	if got := svc.State().Preference("learning_style"); got != "visual" {
		t.Errorf("got %q, want visual", got)
	}
	if len(listener.preferences) != 1 {
		t.Fatalf("got %d notifications, want 1", len(listener.preferences))
	}
	if listener.preferences[0].Category != "learning_style" || listener.preferences[0].Value != "visual" {
		t.Errorf("got event %+v", listener.preferences[0])
	}

	// Overwriting is allowed and notifies again.
	svc.SetPreference(context.Background(), "learning_style", "auditory")
	if got := svc.State().Preference("learning_style"); got != "auditory" {
		t.Errorf("got %q, want auditory", got)
	}
	if len(listener.preferences) != 2 {
		t.Errorf("got %d notifications, want 2", len(listener.preferences))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	svc.MarkObjectiveCompleted(ctx, "num-2")
	svc.MarkObjectiveCompleted(ctx, "num-1")
	svc.SetPreference(ctx, "learning_style", "visual")
	svc.SetCurrentObjective("num-3")

	snap := &store.SnapshotData{Version: 1, Learner: svc.SnapshotData()}
	restored := NewService(snap, nil)

	if restored.State().LearnerID != svc.State().LearnerID {
		t.Errorf("learner ID changed: %q vs %q", restored.State().LearnerID, svc.State().LearnerID)
	}
	if !restored.State().HasCompleted("num-1") || !restored.State().HasCompleted("num-2") {
		t.Error("completed set not restored")
	}
	if restored.State().Preference("learning_style") != "visual" {
		t.Error("preferences not restored")
	}
	if restored.State().CurrentObjective != "num-3" {
		t.Errorf("current objective = %q, want num-3", restored.State().CurrentObjective)
	}
}

func TestCompletedIDs_Sorted(t *testing.T) {
	state := NewState("")
	state.Completed["c"] = true
	state.Completed["a"] = true
	state.Completed["b"] = true

	ids := state.CompletedIDs()
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("got %v, want %v", ids, want)
		}
	}
}

func TestNewState_GeneratesID(t *testing.T) {
	if NewState("").LearnerID == "" {
		t.Error("expected generated learner ID")
	}
	if got := NewState("fixed").LearnerID; got != "fixed" {
		t.Errorf("got %q, want fixed", got)
	}
}
