package store

import (
	"context"
	"fmt"

	"github.com/abhisek/pathweaver/ent"
	"github.com/abhisek/pathweaver/ent/badgeevent"
)

func (r *eventRepo) AppendBadgeEvent(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetBadgeType(data.BadgeType).
		SetLearnerID(data.LearnerID).
		SetReason(data.Reason)

	if data.Subject != "" {
		builder = builder.SetSubject(data.Subject)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryBadgeEvents(ctx context.Context, opts QueryOpts) ([]BadgeEventRecord, error) {
	query := r.client.BadgeEvent.Query().
		Order(ent.Desc(badgeevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(badgeevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(badgeevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(badgeevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(badgeevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge events: %w", err)
	}

	records := make([]BadgeEventRecord, len(events))
	for i, e := range events {
		records[i] = BadgeEventRecord{
			BadgeType: e.BadgeType,
			LearnerID: e.LearnerID,
			Subject:   e.Subject,
			Reason:    e.Reason,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) BadgeCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.BadgeEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query badge counts: %w", err)
	}

	byType := make(map[string]int)
	for _, e := range events {
		byType[e.BadgeType]++
	}
	return byType, len(events), nil
}
