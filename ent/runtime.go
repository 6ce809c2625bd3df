// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/focussessionevent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/llmrequestevent"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/schema"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/topiccompletionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	focussessioneventMixin := schema.FocusSessionEvent{}.Mixin()
	focussessioneventMixinFields0 := focussessioneventMixin[0].Fields()
	_ = focussessioneventMixinFields0
	focussessioneventFields := schema.FocusSessionEvent{}.Fields()
	_ = focussessioneventFields
	// focussessioneventDescTimestamp is the schema descriptor for timestamp field.
	focussessioneventDescTimestamp := focussessioneventMixinFields0[1].Descriptor()
	// focussessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	focussessionevent.DefaultTimestamp = focussessioneventDescTimestamp.Default.(func() time.Time)
	// focussessioneventDescSubjectID is the schema descriptor for subject_id field.
	focussessioneventDescSubjectID := focussessioneventFields[0].Descriptor()
	// focussessionevent.DefaultSubjectID holds the default value on creation for the subject_id field.
	focussessionevent.DefaultSubjectID = focussessioneventDescSubjectID.Default.(string)
	// focussessioneventDescSubjectName is the schema descriptor for subject_name field.
	focussessioneventDescSubjectName := focussessioneventFields[1].Descriptor()
	// focussessionevent.DefaultSubjectName holds the default value on creation for the subject_name field.
	focussessionevent.DefaultSubjectName = focussessioneventDescSubjectName.Default.(string)
	// focussessioneventDescMode is the schema descriptor for mode field.
	focussessioneventDescMode := focussessioneventFields[2].Descriptor()
	// focussessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	focussessionevent.ModeValidator = focussessioneventDescMode.Validators[0].(func(string) error)
	// focussessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	focussessioneventDescDurationSecs := focussessioneventFields[3].Descriptor()
	// focussessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	focussessionevent.DefaultDurationSecs = focussessioneventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	topiccompletioneventMixin := schema.TopicCompletionEvent{}.Mixin()
	topiccompletioneventMixinFields0 := topiccompletioneventMixin[0].Fields()
	_ = topiccompletioneventMixinFields0
	topiccompletioneventFields := schema.TopicCompletionEvent{}.Fields()
	_ = topiccompletioneventFields
	// topiccompletioneventDescTimestamp is the schema descriptor for timestamp field.
	topiccompletioneventDescTimestamp := topiccompletioneventMixinFields0[1].Descriptor()
	// topiccompletionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	topiccompletionevent.DefaultTimestamp = topiccompletioneventDescTimestamp.Default.(func() time.Time)
	// topiccompletioneventDescSubjectID is the schema descriptor for subject_id field.
	topiccompletioneventDescSubjectID := topiccompletioneventFields[0].Descriptor()
	// topiccompletionevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	topiccompletionevent.SubjectIDValidator = topiccompletioneventDescSubjectID.Validators[0].(func(string) error)
	// topiccompletioneventDescSubjectName is the schema descriptor for subject_name field.
	topiccompletioneventDescSubjectName := topiccompletioneventFields[1].Descriptor()
	// topiccompletionevent.DefaultSubjectName holds the default value on creation for the subject_name field.
	topiccompletionevent.DefaultSubjectName = topiccompletioneventDescSubjectName.Default.(string)
	// topiccompletioneventDescTopic is the schema descriptor for topic field.
	topiccompletioneventDescTopic := topiccompletioneventFields[2].Descriptor()
	// topiccompletionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	topiccompletionevent.TopicValidator = topiccompletioneventDescTopic.Validators[0].(func(string) error)
	// topiccompletioneventDescXpAwarded is the schema descriptor for xp_awarded field.
	topiccompletioneventDescXpAwarded := topiccompletioneventFields[3].Descriptor()
	// topiccompletionevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	topiccompletionevent.DefaultXpAwarded = topiccompletioneventDescXpAwarded.Default.(int)
	// topiccompletioneventDescXpAfter is the schema descriptor for xp_after field.
	topiccompletioneventDescXpAfter := topiccompletioneventFields[4].Descriptor()
	// topiccompletionevent.DefaultXpAfter holds the default value on creation for the xp_after field.
	topiccompletionevent.DefaultXpAfter = topiccompletioneventDescXpAfter.Default.(int)
	// topiccompletioneventDescLevelAfter is the schema descriptor for level_after field.
	topiccompletioneventDescLevelAfter := topiccompletioneventFields[5].Descriptor()
	// topiccompletionevent.DefaultLevelAfter holds the default value on creation for the level_after field.
	topiccompletionevent.DefaultLevelAfter = topiccompletioneventDescLevelAfter.Default.(int)
}
