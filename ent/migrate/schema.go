// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FocusSessionEventsColumns holds the columns for the "focus_session_events" table.
	FocusSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject_id", Type: field.TypeString, Default: ""},
		{Name: "subject_name", Type: field.TypeString, Default: ""},
		{Name: "mode", Type: field.TypeString},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// FocusSessionEventsTable holds the schema information for the "focus_session_events" table.
	FocusSessionEventsTable = &schema.Table{
		Name:       "focus_session_events",
		Columns:    FocusSessionEventsColumns,
		PrimaryKey: []*schema.Column{FocusSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "focussessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FocusSessionEventsColumns[1]},
			},
			{
				Name:    "focussessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FocusSessionEventsColumns[2]},
			},
			{
				Name:    "focussessionevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{FocusSessionEventsColumns[3]},
			},
			{
				Name:    "focussessionevent_mode",
				Unique:  false,
				Columns: []*schema.Column{FocusSessionEventsColumns[5]},
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
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
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
	// TopicCompletionEventsColumns holds the columns for the "topic_completion_events" table.
	TopicCompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "subject_name", Type: field.TypeString, Default: ""},
		{Name: "topic", Type: field.TypeString},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
		{Name: "xp_after", Type: field.TypeInt, Default: 0},
		{Name: "level_after", Type: field.TypeInt, Default: 0},
	}
	// TopicCompletionEventsTable holds the schema information for the "topic_completion_events" table.
	TopicCompletionEventsTable = &schema.Table{
		Name:       "topic_completion_events",
		Columns:    TopicCompletionEventsColumns,
		PrimaryKey: []*schema.Column{TopicCompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topiccompletionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TopicCompletionEventsColumns[1]},
			},
			{
				Name:    "topiccompletionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TopicCompletionEventsColumns[2]},
			},
			{
				Name:    "topiccompletionevent_subject_id",
				Unique:  false,
				Columns: []*schema.Column{TopicCompletionEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FocusSessionEventsTable,
		LlmRequestEventsTable,
		TopicCompletionEventsTable,
	}
)

func init() {
}
