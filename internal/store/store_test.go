package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/totli/internal/learner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testRecord() *learner.Record {
	return &learner.Record{
		Profile: learner.Profile{
			Name:              "Zara",
			Age:               5,
			PreferredLanguage: "english",
			LearningLevel:     "beginner",
		},
		Parent: learner.ParentContact{
			Name:  "Amna",
			Email: "amna@example.com",
		},
		Context: learner.AdaptiveContext{
			PreviousLessons: []learner.CompletedLesson{
				{Subject: "math", CompletedAt: time.Now().UTC().Truncate(time.Second), Progress: 100},
			},
			Strengths:  []string{"math"},
			Weaknesses: []string{"urdu", "urdu"},
			Progress:   map[string]float64{"math": 100},
		},
	}
}

func TestLearnerRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	// No record before onboarding.
	rec, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record when none exists")
	}

	want := testRecord()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec == nil {
		t.Fatal("expected non-nil record")
	}
	if rec.Profile.Name != "Zara" || rec.Profile.Age != 5 {
		t.Errorf("profile = %+v", rec.Profile)
	}
	if rec.Parent.Email != "amna@example.com" {
		t.Errorf("parent = %+v", rec.Parent)
	}
	if len(rec.Context.PreviousLessons) != 1 || rec.Context.PreviousLessons[0].Subject != "math" {
		t.Errorf("previous lessons = %+v", rec.Context.PreviousLessons)
	}
	// Duplicate weakness entries survive the round trip untouched.
	if len(rec.Context.Weaknesses) != 2 {
		t.Errorf("weaknesses = %v, want 2 entries", rec.Context.Weaknesses)
	}
}

func TestLearnerRecordSaveReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	rec := testRecord()
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	rec.Profile.Age = 6
	rec.Context.Strengths = append(rec.Context.Strengths, "english")
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Profile.Age != 6 {
		t.Errorf("age = %d, want 6", got.Profile.Age)
	}
	if len(got.Context.Strengths) != 2 {
		t.Errorf("strengths = %v, want 2 entries", got.Context.Strengths)
	}

	// Still a single row.
	count, err := s.Client().LearnerRecord.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("learner records = %d, want 1", count)
	}
}

func TestLearnerRecordWipe(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearnerRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testRecord()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	rec, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after wipe: %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil record after wipe")
	}

	// Wipe with no record is a no-op.
	if err := repo.Wipe(ctx); err != nil {
		t.Fatalf("second wipe: %v", err)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"lesson", "question", "evaluation"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    200,
			Success:      i != 2,
			ErrorMessage: map[bool]string{true: "", false: "boom"}[i != 2],
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Newest first.
	if events[0].Purpose != "evaluation" {
		t.Errorf("first event purpose = %q, want evaluation", events[0].Purpose)
	}
	if events[0].Success {
		t.Error("expected failed evaluation event")
	}

	// Sequences are strictly decreasing in query order.
	for i := 1; i < len(events); i++ {
		if events[i].Sequence >= events[i-1].Sequence {
			t.Errorf("sequence not decreasing: %d then %d", events[i-1].Sequence, events[i].Sequence)
		}
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Purpose != "evaluation" {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			Purpose:      "lesson",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    300,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("purposes = %d, want 1", len(byPurpose))
	}
	if byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 {
		t.Errorf("usage = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].OutputTokens != 150 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestAppendLessonAndAnswerEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLesson(ctx, LessonEventData{
		SessionID:   "sess-1",
		Subject:     "math",
		Language:    "english",
		LessonTitle: "Let's Count!",
		Steps:       3,
		Fallback:    true,
	})
	if err != nil {
		t.Fatalf("append lesson: %v", err)
	}

	answers := []AnswerEventData{
		{SessionID: "sess-1", Subject: "math", QuestionKind: "multiple_choice", QuestionText: "2+2?", CorrectAnswer: "4", LearnerAnswer: "4", Correct: true},
		{SessionID: "sess-1", Subject: "math", QuestionKind: "multiple_choice", QuestionText: "1+1?", CorrectAnswer: "2", LearnerAnswer: "3", Correct: false},
		{SessionID: "sess-2", Subject: "english", QuestionKind: "true_false", QuestionText: "Cats say moo?", CorrectAnswer: "False", LearnerAnswer: "False", Correct: true},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	acc, err := repo.AnswerAccuracyBySubject(ctx)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	bySubject := map[string]SubjectAccuracy{}
	for _, a := range acc {
		bySubject[a.Subject] = a
	}
	if m := bySubject["math"]; m.Attempts != 2 || m.Correct != 1 {
		t.Errorf("math accuracy = %+v", m)
	}
	if e := bySubject["english"]; e.Attempts != 1 || e.Correct != 1 {
		t.Errorf("english accuracy = %+v", e)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='learner_records'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "learner_records" {
		t.Errorf("table name = %q, want 'learner_records'", name)
	}
}
