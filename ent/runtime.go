// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathweaver/ent/badgeevent"
	"github.com/abhisek/pathweaver/ent/llmrequestevent"
	"github.com/abhisek/pathweaver/ent/pathwayevent"
	"github.com/abhisek/pathweaver/ent/preferenceevent"
	"github.com/abhisek/pathweaver/ent/progressevent"
	"github.com/abhisek/pathweaver/ent/schema"
	"github.com/abhisek/pathweaver/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeType is the schema descriptor for badge_type field.
	badgeeventDescBadgeType := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badgeevent.BadgeTypeValidator = badgeeventDescBadgeType.Validators[0].(func(string) error)
	// badgeeventDescLearnerID is the schema descriptor for learner_id field.
	badgeeventDescLearnerID := badgeeventFields[1].Descriptor()
	// badgeevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	badgeevent.LearnerIDValidator = badgeeventDescLearnerID.Validators[0].(func(string) error)
	// badgeeventDescSubject is the schema descriptor for subject field.
	badgeeventDescSubject := badgeeventFields[2].Descriptor()
	// badgeevent.DefaultSubject holds the default value on creation for the subject field.
	badgeevent.DefaultSubject = badgeeventDescSubject.Default.(string)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[3].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	pathwayeventMixin := schema.PathwayEvent{}.Mixin()
	pathwayeventMixinFields0 := pathwayeventMixin[0].Fields()
	_ = pathwayeventMixinFields0
	pathwayeventFields := schema.PathwayEvent{}.Fields()
	_ = pathwayeventFields
	// pathwayeventDescTimestamp is the schema descriptor for timestamp field.
	pathwayeventDescTimestamp := pathwayeventMixinFields0[1].Descriptor()
	// pathwayevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pathwayevent.DefaultTimestamp = pathwayeventDescTimestamp.Default.(func() time.Time)
	// pathwayeventDescPathwayID is the schema descriptor for pathway_id field.
	pathwayeventDescPathwayID := pathwayeventFields[0].Descriptor()
	// pathwayevent.PathwayIDValidator is a validator for the "pathway_id" field. It is called by the builders before save.
	pathwayevent.PathwayIDValidator = pathwayeventDescPathwayID.Validators[0].(func(string) error)
	// pathwayeventDescLearnerID is the schema descriptor for learner_id field.
	pathwayeventDescLearnerID := pathwayeventFields[1].Descriptor()
	// pathwayevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	pathwayevent.LearnerIDValidator = pathwayeventDescLearnerID.Validators[0].(func(string) error)
	preferenceeventMixin := schema.PreferenceEvent{}.Mixin()
	preferenceeventMixinFields0 := preferenceeventMixin[0].Fields()
	_ = preferenceeventMixinFields0
	preferenceeventFields := schema.PreferenceEvent{}.Fields()
	_ = preferenceeventFields
	// preferenceeventDescTimestamp is the schema descriptor for timestamp field.
	preferenceeventDescTimestamp := preferenceeventMixinFields0[1].Descriptor()
	// preferenceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	preferenceevent.DefaultTimestamp = preferenceeventDescTimestamp.Default.(func() time.Time)
	// preferenceeventDescLearnerID is the schema descriptor for learner_id field.
	preferenceeventDescLearnerID := preferenceeventFields[0].Descriptor()
	// preferenceevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	preferenceevent.LearnerIDValidator = preferenceeventDescLearnerID.Validators[0].(func(string) error)
	// preferenceeventDescCategory is the schema descriptor for category field.
	preferenceeventDescCategory := preferenceeventFields[1].Descriptor()
	// preferenceevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	preferenceevent.CategoryValidator = preferenceeventDescCategory.Validators[0].(func(string) error)
	// preferenceeventDescValue is the schema descriptor for value field.
	preferenceeventDescValue := preferenceeventFields[2].Descriptor()
	// preferenceevent.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	preferenceevent.ValueValidator = preferenceeventDescValue.Validators[0].(func(string) error)
	progresseventMixin := schema.ProgressEvent{}.Mixin()
	progresseventMixinFields0 := progresseventMixin[0].Fields()
	_ = progresseventMixinFields0
	progresseventFields := schema.ProgressEvent{}.Fields()
	_ = progresseventFields
	// progresseventDescTimestamp is the schema descriptor for timestamp field.
	progresseventDescTimestamp := progresseventMixinFields0[1].Descriptor()
	// progressevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	progressevent.DefaultTimestamp = progresseventDescTimestamp.Default.(func() time.Time)
	// progresseventDescLearnerID is the schema descriptor for learner_id field.
	progresseventDescLearnerID := progresseventFields[0].Descriptor()
	// progressevent.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	progressevent.LearnerIDValidator = progresseventDescLearnerID.Validators[0].(func(string) error)
	// progresseventDescObjectiveID is the schema descriptor for objective_id field.
	progresseventDescObjectiveID := progresseventFields[1].Descriptor()
	// progressevent.ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	progressevent.ObjectiveIDValidator = progresseventDescObjectiveID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
