package store

import (
	"context"
	"time"

	"github.com/abhisek/totli/internal/learner"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LearnerRepo manages the single durable learner record.
type LearnerRepo interface {
	// Load returns the learner record, or nil if onboarding hasn't
	// happened yet.
	Load(ctx context.Context) (*learner.Record, error)

	// Save writes the record, creating or replacing the single row.
	Save(ctx context.Context, rec *learner.Record) error

	// Wipe deletes the learner record. The next launch re-triggers
	// onboarding.
	Wipe(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a recorded LLM request.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LessonEventData captures one generated lesson.
type LessonEventData struct {
	SessionID   string
	Subject     string
	Language    string
	LessonTitle string
	Steps       int
	Fallback    bool
}

// AnswerEventData captures one answered quiz question.
type AnswerEventData struct {
	SessionID     string
	Subject       string
	QuestionKind  string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
}

// SubjectAccuracy aggregates answer outcomes for one subject.
type SubjectAccuracy struct {
	Subject  string
	Attempts int
	Correct  int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendLesson records a generated lesson and whether it came
	// from the offline fallback table.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// AppendAnswer records an answered quiz question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AnswerAccuracyBySubject aggregates answer outcomes per subject.
	AnswerAccuracyBySubject(ctx context.Context) ([]SubjectAccuracy, error)
}
