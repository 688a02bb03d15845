// Code generated by ent, DO NOT EDIT.

package pathwayevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathweaver/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldTimestamp, v))
}

// PathwayID applies equality check predicate on the "pathway_id" field. It's identical to PathwayIDEQ.
func PathwayID(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldPathwayID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldLearnerID, v))
}

// Objectives applies equality check predicate on the "objectives" field. It's identical to ObjectivesEQ.
func Objectives(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldObjectives, v))
}

// Activities applies equality check predicate on the "activities" field. It's identical to ActivitiesEQ.
func Activities(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldActivities, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldSeed, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldTimestamp, v))
}

// PathwayIDEQ applies the EQ predicate on the "pathway_id" field.
func PathwayIDEQ(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldPathwayID, v))
}

// PathwayIDNEQ applies the NEQ predicate on the "pathway_id" field.
func PathwayIDNEQ(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldPathwayID, v))
}

// PathwayIDIn applies the In predicate on the "pathway_id" field.
func PathwayIDIn(vs ...string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldPathwayID, vs...))
}

// PathwayIDNotIn applies the NotIn predicate on the "pathway_id" field.
func PathwayIDNotIn(vs ...string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldPathwayID, vs...))
}

// PathwayIDGT applies the GT predicate on the "pathway_id" field.
func PathwayIDGT(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldPathwayID, v))
}

// PathwayIDGTE applies the GTE predicate on the "pathway_id" field.
func PathwayIDGTE(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldPathwayID, v))
}

// PathwayIDLT applies the LT predicate on the "pathway_id" field.
func PathwayIDLT(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldPathwayID, v))
}

// PathwayIDLTE applies the LTE predicate on the "pathway_id" field.
func PathwayIDLTE(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldPathwayID, v))
}

// PathwayIDContains applies the Contains predicate on the "pathway_id" field.
func PathwayIDContains(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldContains(FieldPathwayID, v))
}

// PathwayIDHasPrefix applies the HasPrefix predicate on the "pathway_id" field.
func PathwayIDHasPrefix(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldHasPrefix(FieldPathwayID, v))
}

// PathwayIDHasSuffix applies the HasSuffix predicate on the "pathway_id" field.
func PathwayIDHasSuffix(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldHasSuffix(FieldPathwayID, v))
}

// PathwayIDEqualFold applies the EqualFold predicate on the "pathway_id" field.
func PathwayIDEqualFold(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEqualFold(FieldPathwayID, v))
}

// PathwayIDContainsFold applies the ContainsFold predicate on the "pathway_id" field.
func PathwayIDContainsFold(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldContainsFold(FieldPathwayID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldContainsFold(FieldLearnerID, v))
}

// ObjectivesEQ applies the EQ predicate on the "objectives" field.
func ObjectivesEQ(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldObjectives, v))
}

// ObjectivesNEQ applies the NEQ predicate on the "objectives" field.
func ObjectivesNEQ(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldObjectives, v))
}

// ObjectivesIn applies the In predicate on the "objectives" field.
func ObjectivesIn(vs ...int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldObjectives, vs...))
}

// ObjectivesNotIn applies the NotIn predicate on the "objectives" field.
func ObjectivesNotIn(vs ...int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldObjectives, vs...))
}

// ObjectivesGT applies the GT predicate on the "objectives" field.
func ObjectivesGT(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldObjectives, v))
}

// ObjectivesGTE applies the GTE predicate on the "objectives" field.
func ObjectivesGTE(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldObjectives, v))
}

// ObjectivesLT applies the LT predicate on the "objectives" field.
func ObjectivesLT(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldObjectives, v))
}

// ObjectivesLTE applies the LTE predicate on the "objectives" field.
func ObjectivesLTE(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldObjectives, v))
}

// ActivitiesEQ applies the EQ predicate on the "activities" field.
func ActivitiesEQ(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldActivities, v))
}

// ActivitiesNEQ applies the NEQ predicate on the "activities" field.
func ActivitiesNEQ(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldActivities, v))
}

// ActivitiesIn applies the In predicate on the "activities" field.
func ActivitiesIn(vs ...int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldActivities, vs...))
}

// ActivitiesNotIn applies the NotIn predicate on the "activities" field.
func ActivitiesNotIn(vs ...int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldActivities, vs...))
}

// ActivitiesGT applies the GT predicate on the "activities" field.
func ActivitiesGT(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldActivities, v))
}

// ActivitiesGTE applies the GTE predicate on the "activities" field.
func ActivitiesGTE(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldActivities, v))
}

// ActivitiesLT applies the LT predicate on the "activities" field.
func ActivitiesLT(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldActivities, v))
}

// ActivitiesLTE applies the LTE predicate on the "activities" field.
func ActivitiesLTE(v int) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldActivities, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.FieldLTE(FieldSeed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PathwayEvent) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PathwayEvent) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PathwayEvent) predicate.PathwayEvent {
	return predicate.PathwayEvent(sql.NotPredicates(p))
}
