// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathweaver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldLearnerID, v))
}

// ObjectiveID applies equality check predicate on the "objective_id" field. It's identical to ObjectiveIDEQ.
func ObjectiveID(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// CompletedCount applies equality check predicate on the "completed_count" field. It's identical to CompletedCountEQ.
func CompletedCount(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCompletedCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// ObjectiveIDEQ applies the EQ predicate on the "objective_id" field.
func ObjectiveIDEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldObjectiveID, v))
}

// ObjectiveIDNEQ applies the NEQ predicate on the "objective_id" field.
func ObjectiveIDNEQ(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldObjectiveID, v))
}

// ObjectiveIDIn applies the In predicate on the "objective_id" field.
func ObjectiveIDIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldObjectiveID, vs...))
}

// ObjectiveIDNotIn applies the NotIn predicate on the "objective_id" field.
func ObjectiveIDNotIn(vs ...string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldObjectiveID, vs...))
}

// ObjectiveIDGT applies the GT predicate on the "objective_id" field.
func ObjectiveIDGT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldObjectiveID, v))
}

// ObjectiveIDGTE applies the GTE predicate on the "objective_id" field.
func ObjectiveIDGTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldObjectiveID, v))
}

// ObjectiveIDLT applies the LT predicate on the "objective_id" field.
func ObjectiveIDLT(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldObjectiveID, v))
}

// ObjectiveIDLTE applies the LTE predicate on the "objective_id" field.
func ObjectiveIDLTE(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldObjectiveID, v))
}

// ObjectiveIDContains applies the Contains predicate on the "objective_id" field.
func ObjectiveIDContains(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContains(FieldObjectiveID, v))
}

// ObjectiveIDHasPrefix applies the HasPrefix predicate on the "objective_id" field.
func ObjectiveIDHasPrefix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasPrefix(FieldObjectiveID, v))
}

// ObjectiveIDHasSuffix applies the HasSuffix predicate on the "objective_id" field.
func ObjectiveIDHasSuffix(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldHasSuffix(FieldObjectiveID, v))
}

// ObjectiveIDEqualFold applies the EqualFold predicate on the "objective_id" field.
func ObjectiveIDEqualFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEqualFold(FieldObjectiveID, v))
}

// ObjectiveIDContainsFold applies the ContainsFold predicate on the "objective_id" field.
func ObjectiveIDContainsFold(v string) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldContainsFold(FieldObjectiveID, v))
}

// CompletedCountEQ applies the EQ predicate on the "completed_count" field.
func CompletedCountEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedCountNEQ applies the NEQ predicate on the "completed_count" field.
func CompletedCountNEQ(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNEQ(FieldCompletedCount, v))
}

// CompletedCountIn applies the In predicate on the "completed_count" field.
func CompletedCountIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldIn(FieldCompletedCount, vs...))
}

// CompletedCountNotIn applies the NotIn predicate on the "completed_count" field.
func CompletedCountNotIn(vs ...int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldNotIn(FieldCompletedCount, vs...))
}

// CompletedCountGT applies the GT predicate on the "completed_count" field.
func CompletedCountGT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGT(FieldCompletedCount, v))
}

// CompletedCountGTE applies the GTE predicate on the "completed_count" field.
func CompletedCountGTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldGTE(FieldCompletedCount, v))
}

// CompletedCountLT applies the LT predicate on the "completed_count" field.
func CompletedCountLT(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLT(FieldCompletedCount, v))
}

// CompletedCountLTE applies the LTE predicate on the "completed_count" field.
func CompletedCountLTE(v int) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.FieldLTE(FieldCompletedCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressEvent) predicate.ProgressEvent {
	return predicate.ProgressEvent(sql.NotPredicates(p))
}
