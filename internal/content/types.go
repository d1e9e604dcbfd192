// Package content generates lessons, quiz questions, and answer evaluations
// through an LLM provider, with deterministic built-in fallbacks so the
// child-facing flow is never blocked on network health.
package content

// Step kinds.
const (
	StepText        = "text"
	StepImage       = "image"
	StepInteractive = "interactive"
)

// Question kinds.
const (
	QuestionMultipleChoice = "multiple_choice"
	QuestionPointing       = "pointing"
	QuestionSpeaking       = "speaking"
	QuestionTrueFalse      = "true_false"
)

// Lesson is a generated micro-lesson: an ordered sequence of presentation
// steps plus suggested activities. Immutable once generated; scoped to one
// subject session.
type Lesson struct {
	Title      string
	Objective  string
	Content    []LessonStep
	Activities []Activity
	Duration   string
	Difficulty string
}

// LessonStep is one renderable unit of a lesson.
type LessonStep struct {
	Kind        string // "text", "image", "interactive"
	Data        string
	Interaction string
}

// Activity is a suggested hands-on exercise attached to a lesson.
type Activity struct {
	Kind             string // "pointing", "speaking", "touching"
	Instruction      string
	ExpectedResponse string
}

// Question is one quiz turn. Exactly one Question is live per test turn;
// it is replaced wholesale on "next question".
type Question struct {
	Question      string
	Kind          string // "multiple_choice", "pointing", "speaking", "true_false"
	Options       []string
	CorrectAnswer string
	Image         string
	Hint          string
	Difficulty    string
}

// Evaluation is the judgment of a submitted answer. Produced once per
// submission and immediately consumed; never persisted standalone.
type Evaluation struct {
	IsCorrect     bool
	Feedback      string
	Explanation   string
	Encouragement string
}

// Exchange is one logged request/response pair kept for prompt context.
type Exchange struct {
	Kind     string // "lesson" or "question"
	Subject  string
	Language string
	Payload  any
}
