// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FocusSessionEvent is the predicate function for focussessionevent builders.
type FocusSessionEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// TopicCompletionEvent is the predicate function for topiccompletionevent builders.
type TopicCompletionEvent func(*sql.Selector)
