package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered quiz question.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Subject session this answer belongs to"),
		field.String("subject").
			NotEmpty(),
		field.String("question_kind").
			NotEmpty().
			Comment("multiple_choice, pointing, speaking, or true_false"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.String("learner_answer").
			NotEmpty().
			Comment("What the child answered"),
		field.Bool("correct").
			Comment("Whether the evaluation judged the answer correct"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject"),
		index.Fields("correct"),
	}
}
