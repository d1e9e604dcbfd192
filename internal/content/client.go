package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/llm"
)

// Client generates lessons, questions, and evaluations through an LLM
// provider. Every method degrades to a deterministic fallback payload on
// failure: no retries happen here beyond the provider's single attempt,
// and callers never see a generation error. Failed calls still reach the
// event log through the provider's logging middleware.
type Client struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	history []Exchange
}

// NewClient creates a content client.
func NewClient(provider llm.Provider, cfg Config) *Client {
	return &Client{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title      string           `json:"title"`
	Objective  string           `json:"objective"`
	Content    []stepOutput     `json:"content"`
	Activities []activityOutput `json:"activities"`
	Duration   string           `json:"duration"`
	Difficulty string           `json:"difficulty"`
}

type stepOutput struct {
	Type        string `json:"type"`
	Data        string `json:"data"`
	Interaction string `json:"interaction"`
}

type activityOutput struct {
	Type             string `json:"type"`
	Instruction      string `json:"instruction"`
	ExpectedResponse string `json:"expectedResponse"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Image         string   `json:"image"`
	Hint          string   `json:"hint"`
	Difficulty    string   `json:"difficulty"`
}

type evaluationOutput struct {
	IsCorrect     bool   `json:"isCorrect"`
	Feedback      string `json:"feedback"`
	Explanation   string `json:"explanation"`
	Encouragement string `json:"encouragement"`
}

// GenerateLesson produces a lesson for the subject, personalized by the
// learner profile and adaptive context. On any failure it returns the
// built-in fallback lesson for the subject with fromFallback=true; the
// error itself is never surfaced.
func (c *Client) GenerateLesson(ctx context.Context, subject, language string, profile learner.Profile, actx learner.AdaptiveContext) (_ Lesson, fromFallback bool) {
	if c.provider == nil {
		return FallbackLesson(subject), true
	}
	ctx = llm.WithPurpose(ctx, "lesson")

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(subject, language, profile, actx)},
		},
		Schema:      LessonSchema,
		MaxTokens:   c.cfg.LessonMaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		warnFallback("lesson", err)
		return FallbackLesson(subject), true
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		warnFallback("lesson", err)
		return FallbackLesson(subject), true
	}
	if len(out.Content) == 0 {
		warnFallback("lesson", fmt.Errorf("lesson has no steps"))
		return FallbackLesson(subject), true
	}

	lesson := Lesson{
		Title:      out.Title,
		Objective:  out.Objective,
		Duration:   out.Duration,
		Difficulty: out.Difficulty,
	}
	for _, s := range out.Content {
		lesson.Content = append(lesson.Content, LessonStep{Kind: s.Type, Data: s.Data, Interaction: s.Interaction})
	}
	for _, a := range out.Activities {
		lesson.Activities = append(lesson.Activities, Activity{Kind: a.Type, Instruction: a.Instruction, ExpectedResponse: a.ExpectedResponse})
	}

	c.record(Exchange{Kind: "lesson", Subject: subject, Language: language, Payload: lesson})
	return lesson, false
}

// GenerateQuestion produces one quiz question. On any failure it returns
// the subject-agnostic fallback question with fromFallback=true.
func (c *Client) GenerateQuestion(ctx context.Context, subject, language, difficulty string, previousAnswers []string) (_ Question, fromFallback bool) {
	if c.provider == nil {
		return FallbackQuestion(), true
	}
	ctx = llm.WithPurpose(ctx, "question")

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionUserMessage(subject, language, difficulty, previousAnswers)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   c.cfg.QuestionMaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		warnFallback("question", err)
		return FallbackQuestion(), true
	}

	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		warnFallback("question", err)
		return FallbackQuestion(), true
	}

	q := Question{
		Question:      out.Question,
		Kind:          out.Type,
		Options:       out.Options,
		CorrectAnswer: out.CorrectAnswer,
		Image:         out.Image,
		Hint:          out.Hint,
		Difficulty:    out.Difficulty,
	}

	c.record(Exchange{Kind: "question", Subject: subject, Language: language, Payload: q})
	return q, false
}

// EvaluateAnswer judges a submitted answer against a question. On any
// failure it returns the encouraging fallback evaluation (isCorrect=false)
// with fromFallback=true.
func (c *Client) EvaluateAnswer(ctx context.Context, q Question, answer, language string) (_ Evaluation, fromFallback bool) {
	if c.provider == nil {
		return FallbackEvaluation(), true
	}
	ctx = llm.WithPurpose(ctx, "evaluation")

	req := llm.Request{
		System: evaluationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvaluationUserMessage(q, answer, language)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   c.cfg.EvaluationMaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		warnFallback("evaluation", err)
		return FallbackEvaluation(), true
	}

	var out evaluationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		warnFallback("evaluation", err)
		return FallbackEvaluation(), true
	}

	return Evaluation{
		IsCorrect:     out.IsCorrect,
		Feedback:      out.Feedback,
		Explanation:   out.Explanation,
		Encouragement: out.Encouragement,
	}, false
}

// History returns a copy of the logged exchanges.
func (c *Client) History() []Exchange {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Exchange, len(c.history))
	copy(out, c.history)
	return out
}

// ClearHistory drops the logged exchanges.
func (c *Client) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}

func (c *Client) record(e Exchange) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, e)
}

func warnFallback(kind string, err error) {
	fmt.Fprintf(os.Stderr, "warning: %s generation failed, serving fallback: %v\n", kind, err)
}
