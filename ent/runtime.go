// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/totli/ent/answerevent"
	"github.com/abhisek/totli/ent/learnerrecord"
	"github.com/abhisek/totli/ent/lessonevent"
	"github.com/abhisek/totli/ent/llmrequestevent"
	"github.com/abhisek/totli/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescSubject is the schema descriptor for subject field.
	answereventDescSubject := answereventFields[1].Descriptor()
	// answerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	answerevent.SubjectValidator = answereventDescSubject.Validators[0].(func(string) error)
	// answereventDescQuestionKind is the schema descriptor for question_kind field.
	answereventDescQuestionKind := answereventFields[2].Descriptor()
	// answerevent.QuestionKindValidator is a validator for the "question_kind" field. It is called by the builders before save.
	answerevent.QuestionKindValidator = answereventDescQuestionKind.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[3].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[4].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[5].Descriptor()
	// answerevent.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	answerevent.LearnerAnswerValidator = answereventDescLearnerAnswer.Validators[0].(func(string) error)
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
	learnerrecordFields := schema.LearnerRecord{}.Fields()
	_ = learnerrecordFields
	// learnerrecordDescName is the schema descriptor for name field.
	learnerrecordDescName := learnerrecordFields[0].Descriptor()
	// learnerrecord.NameValidator is a validator for the "name" field. It is called by the builders before save.
	learnerrecord.NameValidator = learnerrecordDescName.Validators[0].(func(string) error)
	// learnerrecordDescAge is the schema descriptor for age field.
	learnerrecordDescAge := learnerrecordFields[1].Descriptor()
	// learnerrecord.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	learnerrecord.AgeValidator = learnerrecordDescAge.Validators[0].(func(int) error)
	// learnerrecordDescPreferredLanguage is the schema descriptor for preferred_language field.
	learnerrecordDescPreferredLanguage := learnerrecordFields[2].Descriptor()
	// learnerrecord.DefaultPreferredLanguage holds the default value on creation for the preferred_language field.
	learnerrecord.DefaultPreferredLanguage = learnerrecordDescPreferredLanguage.Default.(string)
	// learnerrecordDescLearningLevel is the schema descriptor for learning_level field.
	learnerrecordDescLearningLevel := learnerrecordFields[3].Descriptor()
	// learnerrecord.DefaultLearningLevel holds the default value on creation for the learning_level field.
	learnerrecord.DefaultLearningLevel = learnerrecordDescLearningLevel.Default.(string)
	// learnerrecordDescParentName is the schema descriptor for parent_name field.
	learnerrecordDescParentName := learnerrecordFields[4].Descriptor()
	// learnerrecord.DefaultParentName holds the default value on creation for the parent_name field.
	learnerrecord.DefaultParentName = learnerrecordDescParentName.Default.(string)
	// learnerrecordDescParentEmail is the schema descriptor for parent_email field.
	learnerrecordDescParentEmail := learnerrecordFields[5].Descriptor()
	// learnerrecord.DefaultParentEmail holds the default value on creation for the parent_email field.
	learnerrecord.DefaultParentEmail = learnerrecordDescParentEmail.Default.(string)
	// learnerrecordDescUpdatedAt is the schema descriptor for updated_at field.
	learnerrecordDescUpdatedAt := learnerrecordFields[7].Descriptor()
	// learnerrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerrecord.DefaultUpdatedAt = learnerrecordDescUpdatedAt.Default.(func() time.Time)
	// learnerrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerrecord.UpdateDefaultUpdatedAt = learnerrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescSubject is the schema descriptor for subject field.
	lessoneventDescSubject := lessoneventFields[1].Descriptor()
	// lessonevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	lessonevent.SubjectValidator = lessoneventDescSubject.Validators[0].(func(string) error)
	// lessoneventDescLanguage is the schema descriptor for language field.
	lessoneventDescLanguage := lessoneventFields[2].Descriptor()
	// lessonevent.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	lessonevent.LanguageValidator = lessoneventDescLanguage.Validators[0].(func(string) error)
	// lessoneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessoneventDescLessonTitle := lessoneventFields[3].Descriptor()
	// lessonevent.LessonTitleValidator is a validator for the "lesson_title" field. It is called by the builders before save.
	lessonevent.LessonTitleValidator = lessoneventDescLessonTitle.Validators[0].(func(string) error)
}
