// Package session drives one learner's subject visit: walking lesson
// steps, running test turns, and folding outcomes into the durable
// adaptive context. The engine owns all session state; screens call its
// operations and render the returned snapshots.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/totli/internal/content"
	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/store"
)

// ContentClient is the generation surface the engine depends on.
// Satisfied by *content.Client. Both return values are always usable;
// fromFallback marks offline fallback content.
type ContentClient interface {
	GenerateLesson(ctx context.Context, subject, language string, profile learner.Profile, actx learner.AdaptiveContext) (_ content.Lesson, fromFallback bool)
	GenerateQuestion(ctx context.Context, subject, language, difficulty string, previousAnswers []string) (_ content.Question, fromFallback bool)
	EvaluateAnswer(ctx context.Context, q content.Question, answer, language string) (_ content.Evaluation, fromFallback bool)
}

// Engine is the session state machine. All operations are safe for use
// from bubbletea command goroutines; at most one content request is in
// flight at a time, gated by the Loading flag rather than cancellation.
type Engine struct {
	content  ContentClient
	learners store.LearnerRepo
	events   store.EventRepo

	mu      sync.Mutex
	rec     *learner.Record
	state   State
	answers []string
}

// NewEngine builds an engine around a loaded learner record. The events
// repo may be nil, in which case telemetry appends are skipped.
func NewEngine(c ContentClient, learners store.LearnerRepo, events store.EventRepo, rec *learner.Record) *Engine {
	return &Engine{content: c, learners: learners, events: events, rec: rec}
}

// State returns a snapshot of the current session.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Record returns the learner record the engine mutates.
func (e *Engine) Record() *learner.Record {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rec
}

func (e *Engine) language() string {
	if e.rec != nil && e.rec.Profile.PreferredLanguage != "" {
		return e.rec.Profile.PreferredLanguage
	}
	return "english"
}

func (e *Engine) difficulty() string {
	level := ""
	if e.rec != nil {
		level = e.rec.Profile.LearningLevel
	}
	switch level {
	case "intermediate":
		return "medium"
	case "advanced":
		return "hard"
	default:
		return "easy"
	}
}

// EnterSubject starts a new session for subject and requests its
// lesson. A no-op while a request is already in flight.
func (e *Engine) EnterSubject(ctx context.Context, subject string) (State, error) {
	e.mu.Lock()
	if e.state.Loading {
		s := e.state.clone()
		e.mu.Unlock()
		return s, nil
	}
	sid := uuid.NewString()
	e.state = State{SessionID: sid, Subject: subject, Loading: true}
	e.answers = nil
	lang := e.language()
	profile := e.rec.Profile
	actx := e.rec.Context
	e.mu.Unlock()

	lesson, fromFallback := e.content.GenerateLesson(ctx, subject, lang, profile, actx)

	e.mu.Lock()
	if e.state.SessionID != sid {
		// Learner navigated away mid-request; discard the result.
		s := e.state.clone()
		e.mu.Unlock()
		return s, nil
	}
	e.state.Lesson = &lesson
	e.state.StepIndex = 0
	e.state.LessonFallback = fromFallback
	e.state.Phase = PhaseLessonActive
	e.state.Loading = false
	s := e.state.clone()
	e.mu.Unlock()

	if e.events != nil {
		_ = e.events.AppendLesson(ctx, store.LessonEventData{
			SessionID:   sid,
			Subject:     subject,
			Language:    lang,
			LessonTitle: lesson.Title,
			Steps:       len(lesson.Content),
			Fallback:    fromFallback,
		})
	}
	return s, nil
}

// AdvanceStep moves to the next lesson step. Advancing past the last
// step completes the lesson: exactly one completion entry is appended
// to the adaptive context and the phase becomes PhaseLessonComplete.
// A no-op while a test turn is live.
func (e *Engine) AdvanceStep(ctx context.Context) (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Loading || e.state.Phase != PhaseLessonActive || e.state.Lesson == nil || e.state.TestPhase != TestNone {
		return e.state.clone(), nil
	}

	if e.state.StepIndex < len(e.state.Lesson.Content)-1 {
		e.state.StepIndex++
		return e.state.clone(), nil
	}

	e.state.Phase = PhaseLessonComplete
	subject := e.state.Subject
	e.rec.Context.PreviousLessons = append(e.rec.Context.PreviousLessons, learner.CompletedLesson{
		Subject:     subject,
		CompletedAt: time.Now(),
		Progress:    100,
	})
	if e.rec.Context.Progress == nil {
		e.rec.Context.Progress = make(map[string]float64)
	}
	e.rec.Context.Progress[subject] = 100

	s := e.state.clone()
	if err := e.learners.Save(ctx, e.rec); err != nil {
		return s, fmt.Errorf("save learner record: %w", err)
	}
	return s, nil
}

// StartTest requests the first test question. Only available while a
// lesson is active.
func (e *Engine) StartTest(ctx context.Context) (State, error) {
	e.mu.Lock()
	if e.state.Loading || e.state.Phase != PhaseLessonActive || e.state.TestPhase != TestNone {
		s := e.state.clone()
		e.mu.Unlock()
		return s, nil
	}
	e.state.Loading = true
	sid := e.state.SessionID
	e.mu.Unlock()
	return e.requestQuestion(ctx, sid)
}

// NextQuestion discards the current feedback and requests a fresh
// question.
func (e *Engine) NextQuestion(ctx context.Context) (State, error) {
	e.mu.Lock()
	if e.state.Loading || e.state.TestPhase != TestShowingFeedback {
		s := e.state.clone()
		e.mu.Unlock()
		return s, nil
	}
	e.state.Question = nil
	e.state.Answer = ""
	e.state.Evaluation = nil
	e.state.Loading = true
	sid := e.state.SessionID
	e.mu.Unlock()
	return e.requestQuestion(ctx, sid)
}

// requestQuestion runs the shared question-generation transition. The
// caller must have set the Loading flag under lock and captured the
// session ID there, so a teardown between lock windows is detected.
func (e *Engine) requestQuestion(ctx context.Context, sid string) (State, error) {
	e.mu.Lock()
	subject := e.state.Subject
	lang := e.language()
	difficulty := e.difficulty()
	prev := append([]string(nil), e.answers...)
	e.mu.Unlock()

	q, _ := e.content.GenerateQuestion(ctx, subject, lang, difficulty, prev)

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state.SessionID != sid {
		return e.state.clone(), nil
	}
	e.state.Question = &q
	e.state.Answer = ""
	e.state.Evaluation = nil
	e.state.TestPhase = TestAwaitingAnswer
	e.state.Loading = false
	return e.state.clone(), nil
}

// SubmitAnswer evaluates the learner's answer and folds the outcome
// into strengths or weaknesses. Empty or whitespace-only answers are
// rejected locally: no request is issued and the state is unchanged.
func (e *Engine) SubmitAnswer(ctx context.Context, answer string) (State, error) {
	trimmed := strings.TrimSpace(answer)

	e.mu.Lock()
	if trimmed == "" || e.state.Loading || e.state.TestPhase != TestAwaitingAnswer || e.state.Question == nil {
		s := e.state.clone()
		e.mu.Unlock()
		return s, nil
	}
	sid := e.state.SessionID
	subject := e.state.Subject
	lang := e.language()
	q := *e.state.Question
	e.state.Loading = true
	e.mu.Unlock()

	ev, _ := e.content.EvaluateAnswer(ctx, q, trimmed, lang)

	e.mu.Lock()
	if e.state.SessionID != sid {
		s := e.state.clone()
		e.mu.Unlock()
		return s, nil
	}
	e.state.Answer = trimmed
	e.state.Evaluation = &ev
	e.state.TestPhase = TestShowingFeedback
	e.state.Loading = false
	e.answers = append(e.answers, trimmed)

	if ev.IsCorrect {
		e.rec.Context.Strengths = append(e.rec.Context.Strengths, subject)
	} else {
		e.rec.Context.Weaknesses = append(e.rec.Context.Weaknesses, subject)
	}
	s := e.state.clone()
	saveErr := e.learners.Save(ctx, e.rec)
	e.mu.Unlock()

	if e.events != nil {
		_ = e.events.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     sid,
			Subject:       subject,
			QuestionKind:  q.Kind,
			QuestionText:  q.Question,
			CorrectAnswer: q.CorrectAnswer,
			LearnerAnswer: trimmed,
			Correct:       ev.IsCorrect,
		})
	}
	if saveErr != nil {
		return s, fmt.Errorf("save learner record: %w", saveErr)
	}
	return s, nil
}

// LeaveSubject tears the session down. This is the only place live
// lesson and question state is discarded.
func (e *Engine) LeaveSubject() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = State{}
	e.answers = nil
	return e.state
}
