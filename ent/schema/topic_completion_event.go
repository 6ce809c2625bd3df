package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicCompletionEvent records a roadmap topic being marked complete and
// the XP state after the award.
type TopicCompletionEvent struct {
	ent.Schema
}

func (TopicCompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TopicCompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_id").
			NotEmpty(),
		field.String("subject_name").
			Default(""),
		field.String("topic").
			NotEmpty().
			Comment("Roadmap topic that was completed"),
		field.Int("xp_awarded").
			Default(0),
		field.Int("xp_after").
			Default(0).
			Comment("Subject XP total after the award"),
		field.Int("level_after").
			Default(0).
			Comment("Subject level after the award"),
	}
}

func (TopicCompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
	}
}
