package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Learner: &LearnerSnapshotData{
				LearnerID:        "learner-1",
				Completed:        []string{"num-1", "num-2"},
				Preferences:      map[string]string{"learning_style": "visual"},
				CurrentObjective: "num-3",
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Learner == nil {
		t.Fatal("learner data missing after round trip")
	}
	if snap.Data.Learner.LearnerID != "learner-1" {
		t.Errorf("learner ID = %q", snap.Data.Learner.LearnerID)
	}
	if len(snap.Data.Learner.Completed) != 2 {
		t.Errorf("completed = %v", snap.Data.Learner.Completed)
	}
	if snap.Data.Learner.Preferences["learning_style"] != "visual" {
		t.Errorf("preferences = %v", snap.Data.Learner.Preferences)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventsShareGlobalSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendProgressEvent(ctx, ProgressEventData{
		LearnerID: "l1", ObjectiveID: "num-1", CompletedCount: 1,
	}); err != nil {
		t.Fatalf("append progress: %v", err)
	}
	if err := repo.AppendPathwayEvent(ctx, PathwayEventData{
		PathwayID: "pw-1", LearnerID: "l1", Objectives: 2, Activities: 4, Seed: 7,
	}); err != nil {
		t.Fatalf("append pathway: %v", err)
	}
	if err := repo.AppendBadgeEvent(ctx, BadgeEventData{
		BadgeType: "first-steps", LearnerID: "l1", Reason: "first",
	}); err != nil {
		t.Fatalf("append badge: %v", err)
	}

	pathways, err := repo.QueryPathwayEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query pathways: %v", err)
	}
	badgeEvents, err := repo.QueryBadgeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query badges: %v", err)
	}
	if len(pathways) != 1 || len(badgeEvents) != 1 {
		t.Fatalf("got %d pathway and %d badge events", len(pathways), len(badgeEvents))
	}

	// Progress=1, pathway=2, badge=3: one shared counter across types.
	if pathways[0].Sequence != 2 {
		t.Errorf("pathway sequence = %d, want 2", pathways[0].Sequence)
	}
	if badgeEvents[0].Sequence != 3 {
		t.Errorf("badge sequence = %d, want 3", badgeEvents[0].Sequence)
	}
}

func TestQueryPathwayEvents_NewestFirstAndLimited(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		err := repo.AppendPathwayEvent(ctx, PathwayEventData{
			PathwayID: "pw", LearnerID: "l1", Objectives: i,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryPathwayEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Sequence <= records[1].Sequence {
		t.Errorf("not newest-first: %d then %d", records[0].Sequence, records[1].Sequence)
	}
	if records[0].Objectives != 3 {
		t.Errorf("newest record objectives = %d, want 3", records[0].Objectives)
	}
}

func TestBadgeCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, bt := range []string{"first-steps", "milestone", "milestone"} {
		if err := repo.AppendBadgeEvent(ctx, BadgeEventData{BadgeType: bt, LearnerID: "l1"}); err != nil {
			t.Fatalf("append %s: %v", bt, err)
		}
	}

	counts, total, err := repo.BadgeCounts(ctx)
	if err != nil {
		t.Fatalf("badge counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if counts["first-steps"] != 1 || counts["milestone"] != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "study-note",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("got %d llm events, want 1", count)
	}
}
