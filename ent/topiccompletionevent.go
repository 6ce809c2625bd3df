// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/topiccompletionevent"
)

// TopicCompletionEvent is the model entity for the TopicCompletionEvent schema.
type TopicCompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Global append order, spanning all event tables
	Sequence int64 `json:"sequence,omitempty"`
	// Wall-clock time the event was appended
	Timestamp time.Time `json:"timestamp,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// SubjectName holds the value of the "subject_name" field.
	SubjectName string `json:"subject_name,omitempty"`
	// Roadmap topic that was completed
	Topic string `json:"topic,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded int `json:"xp_awarded,omitempty"`
	// Subject XP total after the award
	XpAfter int `json:"xp_after,omitempty"`
	// Subject level after the award
	LevelAfter   int `json:"level_after,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicCompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topiccompletionevent.FieldID, topiccompletionevent.FieldSequence, topiccompletionevent.FieldXpAwarded, topiccompletionevent.FieldXpAfter, topiccompletionevent.FieldLevelAfter:
			values[i] = new(sql.NullInt64)
		case topiccompletionevent.FieldSubjectID, topiccompletionevent.FieldSubjectName, topiccompletionevent.FieldTopic:
			values[i] = new(sql.NullString)
		case topiccompletionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicCompletionEvent fields.
func (_m *TopicCompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topiccompletionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topiccompletionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case topiccompletionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case topiccompletionevent.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case topiccompletionevent.FieldSubjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_name", values[i])
			} else if value.Valid {
				_m.SubjectName = value.String
			}
		case topiccompletionevent.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case topiccompletionevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case topiccompletionevent.FieldXpAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_after", values[i])
			} else if value.Valid {
				_m.XpAfter = int(value.Int64)
			}
		case topiccompletionevent.FieldLevelAfter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level_after", values[i])
			} else if value.Valid {
				_m.LevelAfter = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicCompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TopicCompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicCompletionEvent.
// Note that you need to call TopicCompletionEvent.Unwrap() before calling this method if this TopicCompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicCompletionEvent) Update() *TopicCompletionEventUpdateOne {
	return NewTopicCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicCompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicCompletionEvent) Unwrap() *TopicCompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicCompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicCompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TopicCompletionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("subject_name=")
	builder.WriteString(_m.SubjectName)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("xp_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAfter))
	builder.WriteString(", ")
	builder.WriteString("level_after=")
	builder.WriteString(fmt.Sprintf("%v", _m.LevelAfter))
	builder.WriteByte(')')
	return builder.String()
}

// TopicCompletionEvents is a parsable slice of TopicCompletionEvent.
type TopicCompletionEvents []*TopicCompletionEvent
