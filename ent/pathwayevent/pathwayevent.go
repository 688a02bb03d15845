// Code generated by ent, DO NOT EDIT.

package pathwayevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pathwayevent type in the database.
	Label = "pathway_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldPathwayID holds the string denoting the pathway_id field in the database.
	FieldPathwayID = "pathway_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldObjectives holds the string denoting the objectives field in the database.
	FieldObjectives = "objectives"
	// FieldActivities holds the string denoting the activities field in the database.
	FieldActivities = "activities"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// Table holds the table name of the pathwayevent in the database.
	Table = "pathway_events"
)

// Columns holds all SQL columns for pathwayevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldPathwayID,
	FieldLearnerID,
	FieldObjectives,
	FieldActivities,
	FieldSeed,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// PathwayIDValidator is a validator for the "pathway_id" field. It is called by the builders before save.
	PathwayIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
)

// OrderOption defines the ordering options for the PathwayEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByPathwayID orders the results by the pathway_id field.
func ByPathwayID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPathwayID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByObjectives orders the results by the objectives field.
func ByObjectives(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectives, opts...).ToFunc()
}

// ByActivities orders the results by the activities field.
func ByActivities(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivities, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}
