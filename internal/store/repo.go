package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures one LLM request for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// FocusSessionEventData captures one completed timer cycle.
type FocusSessionEventData struct {
	SubjectID    string
	SubjectName  string
	Mode         string
	DurationSecs int
}

// FocusSessionEventRecord is a stored timer cycle event.
type FocusSessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	FocusSessionEventData
}

// TopicCompletionEventData captures one topic being marked complete.
type TopicCompletionEventData struct {
	SubjectID   string
	SubjectName string
	Topic       string
	XPAwarded   int
	XPAfter     int
	LevelAfter  int
}

// LLMUsageStats aggregates LLM usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SubjectFocusStats aggregates completed focus cycles for one subject.
type SubjectFocusStats struct {
	SubjectID   string
	SubjectName string
	Sessions    int
	FocusSecs   int
}

// EventRepo provides append and query access to the telemetry log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendFocusSession records a completed timer cycle.
	AppendFocusSession(ctx context.Context, data FocusSessionEventData) error

	// AppendTopicCompletion records a topic completion and XP award.
	AppendTopicCompletion(ctx context.Context, data TopicCompletionEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// FocusStatsBySubject aggregates completed focus cycles per subject.
	FocusStatsBySubject(ctx context.Context) ([]SubjectFocusStats, error)
}
