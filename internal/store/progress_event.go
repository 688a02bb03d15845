package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathweaver/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendProgressEvent(ctx context.Context, data ProgressEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ProgressEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetObjectiveID(data.ObjectiveID).
		SetCompletedCount(data.CompletedCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save progress event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPreferenceEvent(ctx context.Context, data PreferenceEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PreferenceEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetCategory(data.Category).
		SetValue(data.Value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save preference event: %w", err)
	}
	return nil
}
