// Code generated by ent, DO NOT EDIT.

package topiccompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topiccompletionevent type in the database.
	Label = "topic_completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldSubjectName holds the string denoting the subject_name field in the database.
	FieldSubjectName = "subject_name"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// FieldXpAfter holds the string denoting the xp_after field in the database.
	FieldXpAfter = "xp_after"
	// FieldLevelAfter holds the string denoting the level_after field in the database.
	FieldLevelAfter = "level_after"
	// Table holds the table name of the topiccompletionevent in the database.
	Table = "topic_completion_events"
)

// Columns holds all SQL columns for topiccompletionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSubjectID,
	FieldSubjectName,
	FieldTopic,
	FieldXpAwarded,
	FieldXpAfter,
	FieldLevelAfter,
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
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// DefaultSubjectName holds the default value on creation for the "subject_name" field.
	DefaultSubjectName string
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultXpAwarded holds the default value on creation for the "xp_awarded" field.
	DefaultXpAwarded int
	// DefaultXpAfter holds the default value on creation for the "xp_after" field.
	DefaultXpAfter int
	// DefaultLevelAfter holds the default value on creation for the "level_after" field.
	DefaultLevelAfter int
)

// OrderOption defines the ordering options for the TopicCompletionEvent queries.
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

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// BySubjectName orders the results by the subject_name field.
func BySubjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectName, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

// ByXpAfter orders the results by the xp_after field.
func ByXpAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAfter, opts...).ToFunc()
}

// ByLevelAfter orders the results by the level_after field.
func ByLevelAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelAfter, opts...).ToFunc()
}
