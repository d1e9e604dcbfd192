package content

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/llm"
)

var testProfile = learner.Profile{
	Name:          "Zara",
	Age:           5,
	LearningLevel: "beginner",
}

const lessonJSON = `{
	"title": "Colors Around Us",
	"objective": "Learn three color names",
	"content": [
		{"type": "text", "data": "Red is the color of apples!", "interaction": "Say red"},
		{"type": "image", "data": "A big red apple", "interaction": "Point at the apple"}
	],
	"activities": [
		{"type": "pointing", "instruction": "Point at something red", "expectedResponse": "points at a red object"}
	],
	"duration": "5 minutes",
	"difficulty": "beginner"
}`

func TestGenerateLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(lessonJSON)})
	c := NewClient(mock, DefaultConfig())

	actx := learner.AdaptiveContext{
		PreviousLessons: []learner.CompletedLesson{
			{Subject: "math", CompletedAt: time.Now(), Progress: 100},
		},
		Strengths:  []string{"math"},
		Weaknesses: []string{"urdu"},
	}

	lesson, fromFallback := c.GenerateLesson(context.Background(), "english", "English", testProfile, actx)

	if fromFallback {
		t.Fatal("expected generated lesson, got fallback")
	}
	if lesson.Title != "Colors Around Us" {
		t.Fatalf("expected generated title, got %q", lesson.Title)
	}
	if len(lesson.Content) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(lesson.Content))
	}
	if lesson.Content[0].Kind != StepText {
		t.Errorf("expected first step kind %q, got %q", StepText, lesson.Content[0].Kind)
	}
	if len(lesson.Activities) != 1 {
		t.Fatalf("expected 1 activity, got %d", len(lesson.Activities))
	}

	// The prompt must carry the profile and adaptive context.
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Zara", "age 5", "beginner", "Strengths: math", "Weaknesses: urdu"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateLessonFallbackPerSubject(t *testing.T) {
	subjects := append([]string{}, learner.Subjects...)
	subjects = append(subjects, "geology") // unknown subject falls back to english

	for _, subject := range subjects {
		t.Run(subject, func(t *testing.T) {
			mock := llm.NewMockProvider() // empty queue: every call fails
			c := NewClient(mock, DefaultConfig())

			lesson, fromFallback := c.GenerateLesson(context.Background(), subject, "English", testProfile, learner.AdaptiveContext{})

			if !fromFallback {
				t.Fatal("expected fromFallback=true")
			}
			want := FallbackLesson(subject)
			if lesson.Title != want.Title {
				t.Fatalf("expected fallback title %q, got %q", want.Title, lesson.Title)
			}
			if len(lesson.Content) < 1 {
				t.Fatal("fallback lesson must have at least one step")
			}
		})
	}
}

func TestGenerateLessonFallbackOnBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	c := NewClient(mock, DefaultConfig())

	lesson, fromFallback := c.GenerateLesson(context.Background(), "math", "English", testProfile, learner.AdaptiveContext{})
	if !fromFallback {
		t.Fatal("expected fromFallback=true")
	}
	if lesson.Title != FallbackLesson("math").Title {
		t.Fatalf("expected math fallback, got %q", lesson.Title)
	}
}

func TestGenerateLessonFallbackOnEmptySteps(t *testing.T) {
	empty := `{"title":"t","objective":"o","content":[],"activities":[],"duration":"5 minutes","difficulty":"beginner"}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(empty)})
	c := NewClient(mock, DefaultConfig())

	lesson, fromFallback := c.GenerateLesson(context.Background(), "arabic", "Arabic", testProfile, learner.AdaptiveContext{})
	if !fromFallback {
		t.Fatal("expected fromFallback=true")
	}
	if lesson.Title != FallbackLesson("arabic").Title {
		t.Fatalf("expected arabic fallback, got %q", lesson.Title)
	}
}

func TestGenerateQuestion(t *testing.T) {
	qJSON := `{
		"question": "What color is grass?",
		"type": "multiple_choice",
		"options": ["Red", "Green", "Blue", "Pink"],
		"correctAnswer": "Green",
		"image": "A grassy field",
		"hint": "Look outside!",
		"difficulty": "beginner"
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(qJSON)})
	c := NewClient(mock, DefaultConfig())

	q, fromFallback := c.GenerateQuestion(context.Background(), "english", "English", "beginner", []string{"Yellow"})

	if fromFallback {
		t.Fatal("expected generated question, got fallback")
	}
	if q.Question != "What color is grass?" {
		t.Fatalf("expected generated question, got %q", q.Question)
	}
	if q.Kind != QuestionMultipleChoice {
		t.Errorf("expected kind %q, got %q", QuestionMultipleChoice, q.Kind)
	}
	if q.CorrectAnswer != "Green" {
		t.Errorf("expected correct answer Green, got %q", q.CorrectAnswer)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Yellow") {
		t.Error("prompt missing previous answer")
	}
}

func TestGenerateQuestionFallback(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClient(mock, DefaultConfig())

	q, fromFallback := c.GenerateQuestion(context.Background(), "math", "English", "beginner", nil)

	if !fromFallback {
		t.Fatal("expected fromFallback=true")
	}
	if q.Question != "What color is the sun?" {
		t.Fatalf("expected fallback question, got %q", q.Question)
	}
	if q.CorrectAnswer != "Yellow" {
		t.Errorf("expected fallback answer Yellow, got %q", q.CorrectAnswer)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 fallback options, got %d", len(q.Options))
	}
}

func TestEvaluateAnswer(t *testing.T) {
	evalJSON := `{"isCorrect": true, "feedback": "Great job!", "explanation": "Grass is green.", "encouragement": "You're doing wonderfully!"}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(evalJSON)})
	c := NewClient(mock, DefaultConfig())

	q := Question{Question: "What color is grass?", CorrectAnswer: "Green"}
	eval, fromFallback := c.EvaluateAnswer(context.Background(), q, "Green", "English")

	if fromFallback {
		t.Fatal("expected generated evaluation, got fallback")
	}
	if !eval.IsCorrect {
		t.Fatal("expected isCorrect=true")
	}
	if eval.Feedback != "Great job!" {
		t.Errorf("expected generated feedback, got %q", eval.Feedback)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"What color is grass?", "Child's answer: Green", "Correct answer: Green"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestEvaluateAnswerFallback(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClient(mock, DefaultConfig())

	eval, fromFallback := c.EvaluateAnswer(context.Background(), FallbackQuestion(), "Blue", "English")

	if !fromFallback {
		t.Fatal("expected fromFallback=true")
	}
	if eval.IsCorrect {
		t.Fatal("fallback evaluation must have isCorrect=false")
	}
	if eval.Feedback != "Good try! Let's try again." {
		t.Errorf("unexpected fallback feedback: %q", eval.Feedback)
	}
	if eval.Explanation != "Keep learning!" {
		t.Errorf("unexpected fallback explanation: %q", eval.Explanation)
	}
}

func TestHistory(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClient(mock, DefaultConfig())

	// Failed generations are not logged.
	c.GenerateQuestion(context.Background(), "math", "English", "beginner", nil)
	if n := len(c.History()); n != 0 {
		t.Fatalf("expected empty history after fallback, got %d entries", n)
	}

	mock.AddResponse(llm.MockResponse{Content: json.RawMessage(lessonJSON)})
	c.GenerateLesson(context.Background(), "english", "English", testProfile, learner.AdaptiveContext{})

	hist := c.History()
	if len(hist) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(hist))
	}
	if hist[0].Kind != "lesson" || hist[0].Subject != "english" {
		t.Errorf("unexpected history entry: %+v", hist[0])
	}

	c.ClearHistory()
	if n := len(c.History()); n != 0 {
		t.Fatalf("expected empty history after clear, got %d", n)
	}
}
