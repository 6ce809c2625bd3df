package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FocusSessionEvent records one completed timer cycle. Focus cycles carry
// the subject that was selected when the timer ran out; break cycles have
// no subject.
type FocusSessionEvent struct {
	ent.Schema
}

func (FocusSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FocusSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			Default("").
			Comment("Subject selected when the cycle completed, empty for breaks"),
		field.String("subject_name").
			Default("").
			Comment("Subject display name at completion time"),
		field.String("mode").
			NotEmpty().
			Comment("focus, short_break or long_break"),
		field.Int("duration_secs").
			Default(0).
			Comment("Configured cycle length in seconds"),
	}
}

func (FocusSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("mode"),
	}
}
