// Package learner defines the durable per-learner data model: the profile
// captured at onboarding, the parent contact, and the adaptive context that
// accumulates session outcomes to personalize future content.
package learner

import (
	"fmt"
	"strings"
	"time"
)

// Age bounds for the target audience.
const (
	MinAge = 3
	MaxAge = 8
)

// Subjects is the fixed set of learning domains.
var Subjects = []string{"english", "urdu", "math", "arabic"}

// LearningLevels are the coarse ability tiers a parent picks at onboarding.
var LearningLevels = []string{"beginner", "intermediate", "advanced"}

// Profile describes the child. Created at onboarding and mutated only
// through explicit profile edits, never by the session engine.
type Profile struct {
	Name              string
	Age               int
	PreferredLanguage string
	LearningLevel     string
}

// ParentContact is the guardian's contact info captured at onboarding.
type ParentContact struct {
	Name  string
	Email string
}

// CompletedLesson records one finished lesson.
type CompletedLesson struct {
	Subject     string
	CompletedAt time.Time
	Progress    float64
}

// AdaptiveContext is the per-learner signal set embedded in content
// requests. PreviousLessons, Strengths, and Weaknesses are append-only:
// repeated entries are kept as-is, so frequency carries signal.
type AdaptiveContext struct {
	PreviousLessons []CompletedLesson
	Strengths       []string
	Weaknesses      []string
	Progress        map[string]float64
}

// Record is the single durable unit of learner state.
type Record struct {
	Profile Profile
	Parent  ParentContact
	Context AdaptiveContext
}

// KnownSubject reports whether s is one of the fixed subjects.
func KnownSubject(s string) bool {
	for _, sub := range Subjects {
		if sub == s {
			return true
		}
	}
	return false
}

// Validate checks the profile fields gathered at onboarding.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("age must be between %d and %d, got %d", MinAge, MaxAge, p.Age)
	}
	if p.LearningLevel != "" && !validLevel(p.LearningLevel) {
		return fmt.Errorf("unknown learning level: %q", p.LearningLevel)
	}
	return nil
}

func validLevel(level string) bool {
	for _, l := range LearningLevels {
		if l == level {
			return true
		}
	}
	return false
}
