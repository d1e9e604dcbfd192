package session

import (
	"github.com/abhisek/totli/internal/content"
)

// Phase is the lesson-mode phase of the session.
type Phase int

const (
	// PhaseIdle means no subject is active.
	PhaseIdle Phase = iota
	// PhaseLessonActive means a lesson is being walked step by step.
	PhaseLessonActive
	// PhaseLessonComplete means the final step was advanced past and the
	// completion has been recorded. The screen returns to subject
	// selection from here.
	PhaseLessonComplete
)

// TestPhase is the orthogonal test-mode phase.
type TestPhase int

const (
	// TestNone means test mode is not active.
	TestNone TestPhase = iota
	// TestAwaitingAnswer means a question is displayed and unanswered.
	TestAwaitingAnswer
	// TestShowingFeedback means an evaluation is displayed.
	TestShowingFeedback
)

// State is a snapshot of the session. Engine operations return copies,
// so screens never share mutable state with the engine.
type State struct {
	// SessionID identifies one subject visit, minted at EnterSubject.
	SessionID string
	Subject   string

	Lesson    *content.Lesson
	StepIndex int
	// LessonFallback marks the lesson as offline fallback content.
	LessonFallback bool

	Question   *content.Question
	Answer     string
	Evaluation *content.Evaluation

	Phase     Phase
	TestPhase TestPhase

	// Loading is set while a content request is in flight. Operations
	// that would issue another request are no-ops while it is set.
	Loading bool
}

// InTest reports whether test mode is active.
func (s State) InTest() bool { return s.TestPhase != TestNone }

// clone returns a copy with the pointer fields duplicated so callers
// cannot mutate engine-held content.
func (s State) clone() State {
	out := s
	if s.Lesson != nil {
		l := *s.Lesson
		l.Content = append([]content.LessonStep(nil), s.Lesson.Content...)
		l.Activities = append([]content.Activity(nil), s.Lesson.Activities...)
		out.Lesson = &l
	}
	if s.Question != nil {
		q := *s.Question
		q.Options = append([]string(nil), s.Question.Options...)
		out.Question = &q
	}
	if s.Evaluation != nil {
		e := *s.Evaluation
		out.Evaluation = &e
	}
	return out
}
