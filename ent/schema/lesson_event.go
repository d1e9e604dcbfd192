package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records that a lesson was completed.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("subject").NotEmpty(),
		field.String("language").NotEmpty(),
		field.String("lesson_title").NotEmpty(),
		field.Int("steps").
			Comment("Number of steps in the lesson"),
		field.Bool("fallback").
			Comment("Whether the lesson was served from the offline fallback table"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject"),
	}
}
