package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathweaver/ent"
	"github.com/abhisek/pathweaver/ent/pathwayevent"
)

func (r *eventRepo) AppendPathwayEvent(ctx context.Context, data PathwayEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PathwayEvent.Create().
		SetSequence(seqNum).
		SetPathwayID(data.PathwayID).
		SetLearnerID(data.LearnerID).
		SetObjectives(data.Objectives).
		SetActivities(data.Activities).
		SetSeed(data.Seed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pathway event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPathwayEvents(ctx context.Context, opts QueryOpts) ([]PathwayEventRecord, error) {
	query := r.client.PathwayEvent.Query().
		Order(ent.Desc(pathwayevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(pathwayevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(pathwayevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(pathwayevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(pathwayevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pathway events: %w", err)
	}

	records := make([]PathwayEventRecord, len(events))
	for i, e := range events {
		records[i] = PathwayEventRecord{
			PathwayID:  e.PathwayID,
			LearnerID:  e.LearnerID,
			Objectives: e.Objectives,
			Activities: e.Activities,
			Seed:       e.Seed,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
		}
	}
	return records, nil
}
