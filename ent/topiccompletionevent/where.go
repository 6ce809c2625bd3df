// Code generated by ent, DO NOT EDIT.

package topiccompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldSubjectName, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldTopic, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAfter applies equality check predicate on the "xp_after" field. It's identical to XpAfterEQ.
func XpAfter(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldXpAfter, v))
}

// LevelAfter applies equality check predicate on the "level_after" field. It's identical to LevelAfterEQ.
func LevelAfter(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldContainsFold(FieldSubjectName, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// XpAfterEQ applies the EQ predicate on the "xp_after" field.
func XpAfterEQ(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldXpAfter, v))
}

// XpAfterNEQ applies the NEQ predicate on the "xp_after" field.
func XpAfterNEQ(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldXpAfter, v))
}

// XpAfterIn applies the In predicate on the "xp_after" field.
func XpAfterIn(vs ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldXpAfter, vs...))
}

// XpAfterNotIn applies the NotIn predicate on the "xp_after" field.
func XpAfterNotIn(vs ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldXpAfter, vs...))
}

// XpAfterGT applies the GT predicate on the "xp_after" field.
func XpAfterGT(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldXpAfter, v))
}

// XpAfterGTE applies the GTE predicate on the "xp_after" field.
func XpAfterGTE(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldXpAfter, v))
}

// XpAfterLT applies the LT predicate on the "xp_after" field.
func XpAfterLT(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldXpAfter, v))
}

// XpAfterLTE applies the LTE predicate on the "xp_after" field.
func XpAfterLTE(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldXpAfter, v))
}

// LevelAfterEQ applies the EQ predicate on the "level_after" field.
func LevelAfterEQ(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldEQ(FieldLevelAfter, v))
}

// LevelAfterNEQ applies the NEQ predicate on the "level_after" field.
func LevelAfterNEQ(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNEQ(FieldLevelAfter, v))
}

// LevelAfterIn applies the In predicate on the "level_after" field.
func LevelAfterIn(vs ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldIn(FieldLevelAfter, vs...))
}

// LevelAfterNotIn applies the NotIn predicate on the "level_after" field.
func LevelAfterNotIn(vs ...int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldNotIn(FieldLevelAfter, vs...))
}

// LevelAfterGT applies the GT predicate on the "level_after" field.
func LevelAfterGT(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGT(FieldLevelAfter, v))
}

// LevelAfterGTE applies the GTE predicate on the "level_after" field.
func LevelAfterGTE(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldGTE(FieldLevelAfter, v))
}

// LevelAfterLT applies the LT predicate on the "level_after" field.
func LevelAfterLT(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLT(FieldLevelAfter, v))
}

// LevelAfterLTE applies the LTE predicate on the "level_after" field.
func LevelAfterLTE(v int) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.FieldLTE(FieldLevelAfter, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicCompletionEvent) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicCompletionEvent) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicCompletionEvent) predicate.TopicCompletionEvent {
	return predicate.TopicCompletionEvent(sql.NotPredicates(p))
}
