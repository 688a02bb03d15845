// Code generated by ent, DO NOT EDIT.

package progressevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressevent type in the database.
	Label = "progress_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldObjectiveID holds the string denoting the objective_id field in the database.
	FieldObjectiveID = "objective_id"
	// FieldCompletedCount holds the string denoting the completed_count field in the database.
	FieldCompletedCount = "completed_count"
	// Table holds the table name of the progressevent in the database.
	Table = "progress_events"
)

// Columns holds all SQL columns for progressevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldObjectiveID,
	FieldCompletedCount,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// ObjectiveIDValidator is a validator for the "objective_id" field. It is called by the builders before save.
	ObjectiveIDValidator func(string) error
)

// OrderOption defines the ordering options for the ProgressEvent queries.
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

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByObjectiveID orders the results by the objective_id field.
func ByObjectiveID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjectiveID, opts...).ToFunc()
}

// ByCompletedCount orders the results by the completed_count field.
func ByCompletedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCount, opts...).ToFunc()
}
