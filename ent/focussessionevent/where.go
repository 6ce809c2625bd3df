// Code generated by ent, DO NOT EDIT.

package focussessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldSubjectName, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldMode, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldContainsFold(FieldSubjectID, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldContainsFold(FieldSubjectName, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldContainsFold(FieldMode, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FocusSessionEvent) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FocusSessionEvent) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FocusSessionEvent) predicate.FocusSessionEvent {
	return predicate.FocusSessionEvent(sql.NotPredicates(p))
}
