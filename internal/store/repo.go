package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LearnerSnapshotData is the learner state as persisted in snapshots.
type LearnerSnapshotData struct {
	LearnerID        string            `json:"learner_id"`
	Completed        []string          `json:"completed"`
	Preferences      map[string]string `json:"preferences"`
	CurrentObjective string            `json:"current_objective,omitempty"`
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int                  `json:"version"`
	Learner *LearnerSnapshotData `json:"learner,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// ProgressEventData records one objective entering the completed set.
type ProgressEventData struct {
	LearnerID      string
	ObjectiveID    string
	CompletedCount int
}

// PreferenceEventData records one preference-capture outcome.
type PreferenceEventData struct {
	LearnerID string
	Category  string
	Value     string
}

// PathwayEventData records one pathway generation.
type PathwayEventData struct {
	PathwayID  string
	LearnerID  string
	Objectives int
	Activities int
	Seed       int64
}

// PathwayEventRecord is a queried pathway event.
type PathwayEventRecord struct {
	PathwayID  string
	LearnerID  string
	Objectives int
	Activities int
	Seed       int64
	Sequence   int64
	Timestamp  time.Time
}

// BadgeEventData records one badge award.
type BadgeEventData struct {
	BadgeType string
	LearnerID string
	Subject   string
	Reason    string
}

// BadgeEventRecord is a queried badge event.
type BadgeEventRecord struct {
	BadgeType string
	LearnerID string
	Subject   string
	Reason    string
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures a single LLM request for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to domain events. All
// events share one global sequence for cross-type ordering.
type EventRepo interface {
	// AppendProgressEvent records an objective completion.
	AppendProgressEvent(ctx context.Context, data ProgressEventData) error

	// AppendPreferenceEvent records a preference capture.
	AppendPreferenceEvent(ctx context.Context, data PreferenceEventData) error

	// AppendPathwayEvent records a pathway generation.
	AppendPathwayEvent(ctx context.Context, data PathwayEventData) error

	// QueryPathwayEvents returns pathway generations, newest first.
	QueryPathwayEvents(ctx context.Context, opts QueryOpts) ([]PathwayEventRecord, error)

	// AppendBadgeEvent records a badge award.
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error

	// QueryBadgeEvents returns badge awards, newest first.
	QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error)

	// BadgeCounts returns award counts by badge type and the total.
	BadgeCounts(ctx context.Context) (map[string]int, int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
