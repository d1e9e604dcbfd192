package store

import (
	"context"
	"fmt"

	"github.com/abhisek/totli/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubject(data.Subject).
		SetQuestionKind(data.QuestionKind).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerAccuracyBySubject(ctx context.Context) ([]SubjectAccuracy, error) {
	subjects, err := r.client.AnswerEvent.Query().
		GroupBy(answerevent.FieldSubject).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("group answer subjects: %w", err)
	}

	out := make([]SubjectAccuracy, 0, len(subjects))
	for _, subject := range subjects {
		attempts, err := r.client.AnswerEvent.Query().
			Where(answerevent.Subject(subject)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count attempts for %s: %w", subject, err)
		}
		correct, err := r.client.AnswerEvent.Query().
			Where(answerevent.Subject(subject), answerevent.Correct(true)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count correct for %s: %w", subject, err)
		}
		out = append(out, SubjectAccuracy{Subject: subject, Attempts: attempts, Correct: correct})
	}
	return out, nil
}
