// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BadgeEvent is the predicate function for badgeevent builders.
type BadgeEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PathwayEvent is the predicate function for pathwayevent builders.
type PathwayEvent func(*sql.Selector)

// PreferenceEvent is the predicate function for preferenceevent builders.
type PreferenceEvent func(*sql.Selector)

// ProgressEvent is the predicate function for progressevent builders.
type ProgressEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
