package session

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/totli/internal/content"
	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/store"
)

type fakeContent struct {
	lesson      content.Lesson
	lessonFB    bool
	question    content.Question
	evaluation  content.Evaluation
	lessonCalls int
	qCalls      int
	evalCalls   int
	lastAnswer  string
	lastPrev    []string
}

func (f *fakeContent) GenerateLesson(ctx context.Context, subject, language string, profile learner.Profile, actx learner.AdaptiveContext) (content.Lesson, bool) {
	f.lessonCalls++
	return f.lesson, f.lessonFB
}

func (f *fakeContent) GenerateQuestion(ctx context.Context, subject, language, difficulty string, previousAnswers []string) (content.Question, bool) {
	f.qCalls++
	f.lastPrev = append([]string(nil), previousAnswers...)
	return f.question, false
}

func (f *fakeContent) EvaluateAnswer(ctx context.Context, q content.Question, answer, language string) (content.Evaluation, bool) {
	f.evalCalls++
	f.lastAnswer = answer
	f.evaluation.IsCorrect = answer == q.CorrectAnswer
	return f.evaluation, false
}

type memLearnerRepo struct {
	rec   *learner.Record
	saves int
}

func (m *memLearnerRepo) Load(ctx context.Context) (*learner.Record, error) { return m.rec, nil }

func (m *memLearnerRepo) Save(ctx context.Context, rec *learner.Record) error {
	m.rec = rec
	m.saves++
	return nil
}

func (m *memLearnerRepo) Wipe(ctx context.Context) error { m.rec = nil; return nil }

type memEventRepo struct {
	lessons []store.LessonEventData
	answers []store.AnswerEventData
}

func (m *memEventRepo) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	return nil
}

func (m *memEventRepo) AppendLesson(ctx context.Context, data store.LessonEventData) error {
	m.lessons = append(m.lessons, data)
	return nil
}

func (m *memEventRepo) AppendAnswer(ctx context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}

func (m *memEventRepo) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (m *memEventRepo) GetLLMEvent(ctx context.Context, id int) (*store.LLMEvent, error) {
	return nil, nil
}

func (m *memEventRepo) LLMUsageByPurpose(ctx context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (m *memEventRepo) LLMUsageByModel(ctx context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (m *memEventRepo) AnswerAccuracyBySubject(ctx context.Context) ([]store.SubjectAccuracy, error) {
	return nil, nil
}

func threeStepLesson() content.Lesson {
	return content.Lesson{
		Title: "Counting Fun",
		Content: []content.LessonStep{
			{Kind: content.StepText, Data: "One"},
			{Kind: content.StepText, Data: "Two"},
			{Kind: content.StepText, Data: "Three"},
		},
	}
}

func sunQuestion() content.Question {
	return content.Question{
		Question:      "What color is the sun?",
		Kind:          content.QuestionMultipleChoice,
		Options:       []string{"Red", "Yellow", "Blue", "Green"},
		CorrectAnswer: "Yellow",
	}
}

func newTestEngine(fc *fakeContent) (*Engine, *memLearnerRepo, *memEventRepo) {
	rec := &learner.Record{
		Profile: learner.Profile{Name: "Zara", Age: 5, PreferredLanguage: "english", LearningLevel: "beginner"},
	}
	lr := &memLearnerRepo{rec: rec}
	er := &memEventRepo{}
	return NewEngine(fc, lr, er, rec), lr, er
}

func TestEnterSubjectStartsLesson(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson()}
	e, _, er := newTestEngine(fc)

	s, err := e.EnterSubject(context.Background(), "math")
	if err != nil {
		t.Fatalf("EnterSubject: %v", err)
	}
	if s.Phase != PhaseLessonActive {
		t.Errorf("Phase = %v, want PhaseLessonActive", s.Phase)
	}
	if s.StepIndex != 0 {
		t.Errorf("StepIndex = %d, want 0", s.StepIndex)
	}
	if s.Lesson == nil || s.Lesson.Title != "Counting Fun" {
		t.Errorf("Lesson = %+v, want Counting Fun", s.Lesson)
	}
	if s.SessionID == "" {
		t.Error("SessionID is empty")
	}
	if got := Progress(s.StepIndex, len(s.Lesson.Content)); got != 0 {
		t.Errorf("progress = %v, want 0", got)
	}
	if len(er.lessons) != 1 {
		t.Fatalf("lesson events = %d, want 1", len(er.lessons))
	}
	if er.lessons[0].Subject != "math" || er.lessons[0].Steps != 3 || er.lessons[0].Fallback {
		t.Errorf("lesson event = %+v", er.lessons[0])
	}
}

func TestEnterSubjectRecordsFallbackFlag(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), lessonFB: true}
	e, _, er := newTestEngine(fc)

	s, _ := e.EnterSubject(context.Background(), "math")
	if !s.LessonFallback {
		t.Error("LessonFallback = false, want true")
	}
	if len(er.lessons) != 1 || !er.lessons[0].Fallback {
		t.Errorf("lesson event fallback not recorded: %+v", er.lessons)
	}
}

func TestAdvanceThroughLessonCompletesOnce(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson()}
	e, lr, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")

	s, _ := e.AdvanceStep(ctx)
	if s.StepIndex != 1 || s.Phase != PhaseLessonActive {
		t.Fatalf("after first advance: step %d phase %v", s.StepIndex, s.Phase)
	}
	s, _ = e.AdvanceStep(ctx)
	if s.StepIndex != 2 || s.Phase != PhaseLessonActive {
		t.Fatalf("after second advance: step %d phase %v", s.StepIndex, s.Phase)
	}

	s, err := e.AdvanceStep(ctx)
	if err != nil {
		t.Fatalf("final advance: %v", err)
	}
	if s.Phase != PhaseLessonComplete {
		t.Errorf("Phase = %v, want PhaseLessonComplete", s.Phase)
	}

	got := lr.rec.Context.PreviousLessons
	if len(got) != 1 {
		t.Fatalf("previousLessons = %d entries, want 1", len(got))
	}
	if got[0].Subject != "math" || got[0].Progress != 100 {
		t.Errorf("completion entry = %+v", got[0])
	}
	if lr.saves != 1 {
		t.Errorf("saves = %d, want 1", lr.saves)
	}

	// Advancing past completion stays put.
	s, _ = e.AdvanceStep(ctx)
	if s.Phase != PhaseLessonComplete || len(lr.rec.Context.PreviousLessons) != 1 {
		t.Error("advance after completion mutated state")
	}
}

func TestProgressAcrossSteps(t *testing.T) {
	tests := []struct {
		step, steps int
		want        float64
	}{
		{0, 3, 0},
		{1, 3, 100.0 / 3},
		{2, 3, 200.0 / 3},
		{3, 3, 100},
		{0, 0, 0},
		{5, 3, 100},
	}
	for _, tt := range tests {
		if got := Progress(tt.step, tt.steps); got != tt.want {
			t.Errorf("Progress(%d, %d) = %v, want %v", tt.step, tt.steps, got, tt.want)
		}
	}
}

func TestStartTestRequiresActiveLesson(t *testing.T) {
	fc := &fakeContent{question: sunQuestion()}
	e, _, _ := newTestEngine(fc)

	s, _ := e.StartTest(context.Background())
	if s.TestPhase != TestNone {
		t.Errorf("TestPhase = %v, want TestNone", s.TestPhase)
	}
	if fc.qCalls != 0 {
		t.Errorf("question requests = %d, want 0", fc.qCalls)
	}
}

func TestStartTestServesQuestion(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, _, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	s, err := e.StartTest(ctx)
	if err != nil {
		t.Fatalf("StartTest: %v", err)
	}
	if s.TestPhase != TestAwaitingAnswer {
		t.Errorf("TestPhase = %v, want TestAwaitingAnswer", s.TestPhase)
	}
	if s.Question == nil || s.Question.Question != "What color is the sun?" {
		t.Errorf("Question = %+v", s.Question)
	}
}

func TestSubmitAnswerEmptyIsNoOp(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, lr, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)
	before := e.State()

	for _, answer := range []string{"", "   ", "\t\n"} {
		s, err := e.SubmitAnswer(ctx, answer)
		if err != nil {
			t.Fatalf("SubmitAnswer(%q): %v", answer, err)
		}
		if s.TestPhase != before.TestPhase || s.Answer != "" || s.Evaluation != nil {
			t.Errorf("SubmitAnswer(%q) changed state: %+v", answer, s)
		}
	}
	if fc.evalCalls != 0 {
		t.Errorf("evaluation requests = %d, want 0", fc.evalCalls)
	}
	if lr.saves != 0 {
		t.Errorf("saves = %d, want 0", lr.saves)
	}
}

func TestSubmitCorrectAnswerAppendsStrength(t *testing.T) {
	fc := &fakeContent{
		lesson:     threeStepLesson(),
		question:   sunQuestion(),
		evaluation: content.Evaluation{Feedback: "Great job!"},
	}
	e, lr, er := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)

	s, err := e.SubmitAnswer(ctx, "Yellow")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if s.TestPhase != TestShowingFeedback {
		t.Errorf("TestPhase = %v, want TestShowingFeedback", s.TestPhase)
	}
	if s.Evaluation == nil || !s.Evaluation.IsCorrect {
		t.Fatalf("Evaluation = %+v, want correct", s.Evaluation)
	}
	if got := lr.rec.Context.Strengths; len(got) != 1 || got[0] != "math" {
		t.Errorf("Strengths = %v, want [math]", got)
	}
	if len(lr.rec.Context.Weaknesses) != 0 {
		t.Errorf("Weaknesses = %v, want empty", lr.rec.Context.Weaknesses)
	}
	if len(er.answers) != 1 || !er.answers[0].Correct || er.answers[0].LearnerAnswer != "Yellow" {
		t.Errorf("answer events = %+v", er.answers)
	}
}

func TestSubmitWrongAnswersAccumulateWeaknesses(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, lr, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)

	for i := 0; i < 3; i++ {
		if _, err := e.SubmitAnswer(ctx, "Red"); err != nil {
			t.Fatalf("SubmitAnswer #%d: %v", i+1, err)
		}
		if _, err := e.NextQuestion(ctx); err != nil {
			t.Fatalf("NextQuestion #%d: %v", i+1, err)
		}
	}

	got := lr.rec.Context.Weaknesses
	if len(got) != 3 {
		t.Fatalf("Weaknesses = %v, want 3 entries", got)
	}
	for _, w := range got {
		if w != "math" {
			t.Errorf("weakness = %q, want math", w)
		}
	}
	if len(lr.rec.Context.Strengths) != 0 {
		t.Errorf("Strengths = %v, want empty", lr.rec.Context.Strengths)
	}
}

func TestNextQuestionClearsFeedback(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, _, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)
	e.SubmitAnswer(ctx, "Yellow")

	s, err := e.NextQuestion(ctx)
	if err != nil {
		t.Fatalf("NextQuestion: %v", err)
	}
	if s.TestPhase != TestAwaitingAnswer {
		t.Errorf("TestPhase = %v, want TestAwaitingAnswer", s.TestPhase)
	}
	if s.Answer != "" || s.Evaluation != nil {
		t.Errorf("feedback not cleared: answer %q evaluation %+v", s.Answer, s.Evaluation)
	}
	if fc.qCalls != 2 {
		t.Errorf("question requests = %d, want 2", fc.qCalls)
	}
	if len(fc.lastPrev) != 1 || fc.lastPrev[0] != "Yellow" {
		t.Errorf("previous answers = %v, want [Yellow]", fc.lastPrev)
	}
}

func TestNextQuestionOnlyFromFeedback(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, _, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)

	s, _ := e.NextQuestion(ctx)
	if s.TestPhase != TestAwaitingAnswer {
		t.Errorf("TestPhase = %v", s.TestPhase)
	}
	if fc.qCalls != 1 {
		t.Errorf("question requests = %d, want 1", fc.qCalls)
	}
}

func TestLeaveSubjectResetsEverything(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, lr, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)
	e.SubmitAnswer(ctx, "Yellow")

	s := e.LeaveSubject()
	if s.Phase != PhaseIdle || s.TestPhase != TestNone {
		t.Errorf("phases after leave: %v %v", s.Phase, s.TestPhase)
	}
	if s.Lesson != nil || s.Question != nil || s.Evaluation != nil || s.SessionID != "" {
		t.Errorf("state not torn down: %+v", s)
	}

	// The durable context survives teardown.
	if len(lr.rec.Context.Strengths) != 1 {
		t.Errorf("Strengths lost on leave: %v", lr.rec.Context.Strengths)
	}
}

func TestSnapshotsAreCopies(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson()}
	e, _, _ := newTestEngine(fc)

	s, _ := e.EnterSubject(context.Background(), "math")
	s.Lesson.Content[0].Data = "mutated"
	s.Lesson.Title = "mutated"

	again := e.State()
	if again.Lesson.Content[0].Data != "One" || again.Lesson.Title != "Counting Fun" {
		t.Error("snapshot mutation leaked into engine state")
	}
}

// blockingContent parks calls on gate channels so tests can interleave
// engine operations with an in-flight request.
type blockingContent struct {
	fakeContent
	lessonGate chan struct{}
	evalGate   chan struct{}
}

func (b *blockingContent) GenerateLesson(ctx context.Context, subject, language string, profile learner.Profile, actx learner.AdaptiveContext) (content.Lesson, bool) {
	if b.lessonGate != nil {
		<-b.lessonGate
	}
	return b.fakeContent.GenerateLesson(ctx, subject, language, profile, actx)
}

func (b *blockingContent) EvaluateAnswer(ctx context.Context, q content.Question, answer, language string) (content.Evaluation, bool) {
	if b.evalGate != nil {
		<-b.evalGate
	}
	return b.fakeContent.EvaluateAnswer(ctx, q, answer, language)
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("timed out waiting for engine state")
}

func TestLeaveSubjectDiscardsStaleLessonReply(t *testing.T) {
	bc := &blockingContent{lessonGate: make(chan struct{})}
	bc.lesson = threeStepLesson()
	rec := &learner.Record{
		Profile: learner.Profile{Name: "Zara", Age: 5, PreferredLanguage: "english", LearningLevel: "beginner"},
	}
	lr := &memLearnerRepo{rec: rec}
	er := &memEventRepo{}
	e := NewEngine(bc, lr, er, rec)
	ctx := context.Background()

	done := make(chan State, 1)
	go func() {
		s, _ := e.EnterSubject(ctx, "math")
		done <- s
	}()
	waitUntil(t, func() bool { return e.State().Loading })

	// Learner backs out while the lesson request is still in flight.
	e.LeaveSubject()
	close(bc.lessonGate)

	s := <-done
	if s.Lesson != nil || s.Phase != PhaseIdle || s.SessionID != "" {
		t.Errorf("stale reply applied: %+v", s)
	}
	after := e.State()
	if after.Lesson != nil || after.Loading {
		t.Errorf("engine state not idle after late reply: %+v", after)
	}
	if len(er.lessons) != 0 {
		t.Errorf("discarded lesson still logged: %d events", len(er.lessons))
	}
}

func TestSubmitAnswerIgnoredWhileEvaluationInFlight(t *testing.T) {
	bc := &blockingContent{evalGate: make(chan struct{})}
	bc.lesson = threeStepLesson()
	bc.question = sunQuestion()
	rec := &learner.Record{
		Profile: learner.Profile{Name: "Zara", Age: 5, PreferredLanguage: "english", LearningLevel: "beginner"},
	}
	lr := &memLearnerRepo{rec: rec}
	er := &memEventRepo{}
	e := NewEngine(bc, lr, er, rec)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)

	done := make(chan State, 1)
	go func() {
		s, _ := e.SubmitAnswer(ctx, "Yellow")
		done <- s
	}()
	waitUntil(t, func() bool { return e.State().Loading })

	// A second submit while the first evaluation is in flight is a no-op.
	s, _ := e.SubmitAnswer(ctx, "Blue")
	if s.TestPhase != TestAwaitingAnswer || !s.Loading {
		t.Errorf("second submit changed state: %+v", s)
	}

	close(bc.evalGate)
	first := <-done
	if first.TestPhase != TestShowingFeedback || first.Answer != "Yellow" {
		t.Errorf("first submit result: %+v", first)
	}
	if bc.evalCalls != 1 {
		t.Errorf("evaluation requests = %d, want 1", bc.evalCalls)
	}
	if len(er.answers) != 1 {
		t.Errorf("answer events = %d, want 1", len(er.answers))
	}
	if len(rec.Context.Strengths) != 1 {
		t.Errorf("Strengths = %v, want one entry", rec.Context.Strengths)
	}
}

func TestAdvanceStepNoOpDuringTest(t *testing.T) {
	fc := &fakeContent{lesson: threeStepLesson(), question: sunQuestion()}
	e, _, _ := newTestEngine(fc)
	ctx := context.Background()

	e.EnterSubject(ctx, "math")
	e.StartTest(ctx)

	s, _ := e.AdvanceStep(ctx)
	if s.StepIndex != 0 || s.Phase != PhaseLessonActive {
		t.Errorf("advance during question changed state: %+v", s)
	}

	e.SubmitAnswer(ctx, "Yellow")
	s, _ = e.AdvanceStep(ctx)
	if s.StepIndex != 0 || s.TestPhase != TestShowingFeedback {
		t.Errorf("advance during feedback changed state: %+v", s)
	}
	if len(e.Record().Context.PreviousLessons) != 0 {
		t.Errorf("lesson completed from test mode: %v", e.Record().Context.PreviousLessons)
	}
}
