// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/pathweaver/ent/pathwayevent"
)

// PathwayEvent is the model entity for the PathwayEvent schema.
type PathwayEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// PathwayID holds the value of the "pathway_id" field.
	PathwayID string `json:"pathway_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Number of steps in the generated pathway
	Objectives int `json:"objectives,omitempty"`
	// Total content items across all steps
	Activities int `json:"activities,omitempty"`
	// Shuffle seed used, for reproducing a run
	Seed         int64 `json:"seed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PathwayEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pathwayevent.FieldID, pathwayevent.FieldSequence, pathwayevent.FieldObjectives, pathwayevent.FieldActivities, pathwayevent.FieldSeed:
			values[i] = new(sql.NullInt64)
		case pathwayevent.FieldPathwayID, pathwayevent.FieldLearnerID:
			values[i] = new(sql.NullString)
		case pathwayevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PathwayEvent fields.
func (_m *PathwayEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pathwayevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pathwayevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pathwayevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pathwayevent.FieldPathwayID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pathway_id", values[i])
			} else if value.Valid {
				_m.PathwayID = value.String
			}
		case pathwayevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case pathwayevent.FieldObjectives:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field objectives", values[i])
			} else if value.Valid {
				_m.Objectives = int(value.Int64)
			}
		case pathwayevent.FieldActivities:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field activities", values[i])
			} else if value.Valid {
				_m.Activities = int(value.Int64)
			}
		case pathwayevent.FieldSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				_m.Seed = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PathwayEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PathwayEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PathwayEvent.
// Note that you need to call PathwayEvent.Unwrap() before calling this method if this PathwayEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PathwayEvent) Update() *PathwayEventUpdateOne {
	return NewPathwayEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PathwayEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PathwayEvent) Unwrap() *PathwayEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PathwayEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PathwayEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PathwayEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("pathway_id=")
	builder.WriteString(_m.PathwayID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("objectives=")
	builder.WriteString(fmt.Sprintf("%v", _m.Objectives))
	builder.WriteString(", ")
	builder.WriteString("activities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activities))
	builder.WriteString(", ")
	builder.WriteString("seed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seed))
	builder.WriteByte(')')
	return builder.String()
}

// PathwayEvents is a parsable slice of PathwayEvent.
type PathwayEvents []*PathwayEvent
