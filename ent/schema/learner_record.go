package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LearnerRecord is the single durable learner row: profile, parent
// contact, and the adaptive context. One row per database; a wipe
// deletes it and forces re-onboarding.
type LearnerRecord struct {
	ent.Schema
}

func (LearnerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Child's name"),
		field.Int("age").
			Range(3, 8).
			Comment("Child's age in years"),
		field.String("preferred_language").
			Default("english").
			Comment("Language lessons are delivered in"),
		field.String("learning_level").
			Default("beginner").
			Comment("beginner, intermediate, or advanced"),
		field.String("parent_name").
			Default("").
			Comment("Guardian's name"),
		field.String("parent_email").
			Default("").
			Comment("Guardian's email"),
		field.JSON("context", map[string]any{}).
			Comment("AdaptiveContext: previous lessons, strengths, weaknesses, progress"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last mutation time"),
	}
}
