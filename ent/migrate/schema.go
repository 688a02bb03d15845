// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "badge_type", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Default: ""},
		{Name: "reason", Type: field.TypeString},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_badge_type",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
			{
				Name:    "badgeevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PathwayEventsColumns holds the columns for the "pathway_events" table.
	PathwayEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "pathway_id", Type: field.TypeString},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "objectives", Type: field.TypeInt},
		{Name: "activities", Type: field.TypeInt},
		{Name: "seed", Type: field.TypeInt64},
	}
	// PathwayEventsTable holds the schema information for the "pathway_events" table.
	PathwayEventsTable = &schema.Table{
		Name:       "pathway_events",
		Columns:    PathwayEventsColumns,
		PrimaryKey: []*schema.Column{PathwayEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathwayevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PathwayEventsColumns[1]},
			},
			{
				Name:    "pathwayevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PathwayEventsColumns[2]},
			},
			{
				Name:    "pathwayevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PathwayEventsColumns[4]},
			},
			{
				Name:    "pathwayevent_pathway_id",
				Unique:  false,
				Columns: []*schema.Column{PathwayEventsColumns[3]},
			},
		},
	}
	// PreferenceEventsColumns holds the columns for the "preference_events" table.
	PreferenceEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
	}
	// PreferenceEventsTable holds the schema information for the "preference_events" table.
	PreferenceEventsTable = &schema.Table{
		Name:       "preference_events",
		Columns:    PreferenceEventsColumns,
		PrimaryKey: []*schema.Column{PreferenceEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "preferenceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PreferenceEventsColumns[1]},
			},
			{
				Name:    "preferenceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PreferenceEventsColumns[2]},
			},
			{
				Name:    "preferenceevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{PreferenceEventsColumns[3]},
			},
			{
				Name:    "preferenceevent_category",
				Unique:  false,
				Columns: []*schema.Column{PreferenceEventsColumns[4]},
			},
		},
	}
	// ProgressEventsColumns holds the columns for the "progress_events" table.
	ProgressEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "objective_id", Type: field.TypeString},
		{Name: "completed_count", Type: field.TypeInt},
	}
	// ProgressEventsTable holds the schema information for the "progress_events" table.
	ProgressEventsTable = &schema.Table{
		Name:       "progress_events",
		Columns:    ProgressEventsColumns,
		PrimaryKey: []*schema.Column{ProgressEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[1]},
			},
			{
				Name:    "progressevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[2]},
			},
			{
				Name:    "progressevent_learner_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[3]},
			},
			{
				Name:    "progressevent_objective_id",
				Unique:  false,
				Columns: []*schema.Column{ProgressEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BadgeEventsTable,
		LlmRequestEventsTable,
		PathwayEventsTable,
		PreferenceEventsTable,
		ProgressEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
