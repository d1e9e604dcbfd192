package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/totli/ent"
	"github.com/abhisek/totli/internal/learner"
)

// learnerRepo implements LearnerRepo using the ent client. The table holds
// at most one row; Save replaces it wholesale.
type learnerRepo struct {
	client *ent.Client
}

// contextJSON is the persisted shape of learner.AdaptiveContext.
type contextJSON struct {
	PreviousLessons []completedLessonJSON `json:"previousLessons"`
	Strengths       []string              `json:"strengths"`
	Weaknesses      []string              `json:"weaknesses"`
	Progress        map[string]float64    `json:"progress"`
}

type completedLessonJSON struct {
	Subject     string    `json:"subject"`
	CompletedAt time.Time `json:"completedAt"`
	Progress    float64   `json:"progress"`
}

func (r *learnerRepo) Load(ctx context.Context) (*learner.Record, error) {
	row, err := r.client.LearnerRecord.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner record: %w", err)
	}

	actx, err := contextFromMap(row.Context)
	if err != nil {
		return nil, fmt.Errorf("decode adaptive context: %w", err)
	}

	return &learner.Record{
		Profile: learner.Profile{
			Name:              row.Name,
			Age:               row.Age,
			PreferredLanguage: row.PreferredLanguage,
			LearningLevel:     row.LearningLevel,
		},
		Parent: learner.ParentContact{
			Name:  row.ParentName,
			Email: row.ParentEmail,
		},
		Context: actx,
	}, nil
}

func (r *learnerRepo) Save(ctx context.Context, rec *learner.Record) error {
	ctxMap, err := contextToMap(rec.Context)
	if err != nil {
		return fmt.Errorf("encode adaptive context: %w", err)
	}

	existing, err := r.client.LearnerRecord.Query().First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query learner record: %w", err)
	}

	if existing == nil {
		_, err = r.client.LearnerRecord.Create().
			SetName(rec.Profile.Name).
			SetAge(rec.Profile.Age).
			SetPreferredLanguage(rec.Profile.PreferredLanguage).
			SetLearningLevel(rec.Profile.LearningLevel).
			SetParentName(rec.Parent.Name).
			SetParentEmail(rec.Parent.Email).
			SetContext(ctxMap).
			Save(ctx)
	} else {
		_, err = existing.Update().
			SetName(rec.Profile.Name).
			SetAge(rec.Profile.Age).
			SetPreferredLanguage(rec.Profile.PreferredLanguage).
			SetLearningLevel(rec.Profile.LearningLevel).
			SetParentName(rec.Parent.Name).
			SetParentEmail(rec.Parent.Email).
			SetContext(ctxMap).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("save learner record: %w", err)
	}
	return nil
}

func (r *learnerRepo) Wipe(ctx context.Context) error {
	_, err := r.client.LearnerRecord.Delete().Exec(ctx)
	if err != nil {
		return fmt.Errorf("wipe learner record: %w", err)
	}
	return nil
}

// contextToMap converts an AdaptiveContext to map[string]any for ent JSON storage.
func contextToMap(actx learner.AdaptiveContext) (map[string]any, error) {
	cj := contextJSON{
		Strengths:  actx.Strengths,
		Weaknesses: actx.Weaknesses,
		Progress:   actx.Progress,
	}
	for _, l := range actx.PreviousLessons {
		cj.PreviousLessons = append(cj.PreviousLessons, completedLessonJSON(l))
	}

	b, err := json.Marshal(cj)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// contextFromMap converts the stored JSON map back to an AdaptiveContext.
func contextFromMap(m map[string]any) (learner.AdaptiveContext, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return learner.AdaptiveContext{}, err
	}
	var cj contextJSON
	if err := json.Unmarshal(b, &cj); err != nil {
		return learner.AdaptiveContext{}, err
	}

	actx := learner.AdaptiveContext{
		Strengths:  cj.Strengths,
		Weaknesses: cj.Weaknesses,
		Progress:   cj.Progress,
	}
	for _, l := range cj.PreviousLessons {
		actx.PreviousLessons = append(actx.PreviousLessons, learner.CompletedLesson(l))
	}
	return actx, nil
}
