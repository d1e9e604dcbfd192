package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/totli/internal/learner"
)

const lessonSystemPrompt = `You are a friendly, patient teacher for young children (ages 3-8). Create short, engaging, interactive lessons. Use simple words, keep every step small, and encourage interaction.`

const questionSystemPrompt = `You are a friendly teacher writing one simple test question for a young child (ages 3-8). The question must have a single unambiguous correct answer.`

const evaluationSystemPrompt = `You are a warm, encouraging teacher evaluating a young child's answer. Be positive even when the answer is wrong. Never scold, never use difficult words.`

// History caps applied when serializing the adaptive context into prompts.
// The stored context itself is unbounded; only the prompt view is truncated.
const (
	maxPromptLessons = 10
	maxPromptTags    = 15
)

func buildLessonUserMessage(subject, language string, profile learner.Profile, actx learner.AdaptiveContext) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create a lesson for %s in %s.\n", subject, language))
	b.WriteString(fmt.Sprintf("Child: %s, age %d\n", profile.Name, profile.Age))
	if profile.LearningLevel != "" {
		b.WriteString(fmt.Sprintf("Learning level: %s\n", profile.LearningLevel))
	}

	writeContext(&b, actx)

	b.WriteString(`
Instructions:
1. Break the lesson into 3-6 small steps. Each step is one of: text (something to read aloud), image (a description of a picture to imagine), or interactive (a tiny task).
2. Add 1-3 activities the child can do with a grown-up.
3. Avoid repeating topics from the previous lessons listed above. Lean into the child's strengths and gently revisit weaknesses.
4. Keep all text cheerful and age-appropriate.`)

	return b.String()
}

func buildQuestionUserMessage(subject, language, difficulty string, previousAnswers []string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Create one test question for %s in %s at %s level.\n", subject, language, difficulty))

	if len(previousAnswers) > 0 {
		b.WriteString("Previous answers this session:\n")
		for _, a := range previousAnswers {
			b.WriteString(fmt.Sprintf("- %s\n", a))
		}
	}

	b.WriteString(`
Instructions:
1. Pick a question type that fits the subject: multiple_choice, pointing, speaking, or true_false.
2. For multiple_choice and true_false, include the options and make exactly one correct.
3. Include a short hint and a one-line image description.
4. Make it answerable by a 3-8 year old.`)

	return b.String()
}

func buildEvaluationUserMessage(q Question, answer, language string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Evaluate this answer from a young child (lesson language: %s):\n\n", language))
	b.WriteString(fmt.Sprintf("Question: %s\n", q.Question))
	b.WriteString(fmt.Sprintf("Child's answer: %s\n", answer))
	b.WriteString(fmt.Sprintf("Correct answer: %s\n", q.CorrectAnswer))

	b.WriteString(`
Instructions:
1. Decide whether the child's answer matches the correct answer. Accept close phrasings and obvious typos.
2. Write one sentence of encouraging feedback and one simple explanation.
3. Add a short motivational message.`)

	return b.String()
}

// writeContext serializes the adaptive context, most recent entries first.
func writeContext(b *strings.Builder, actx learner.AdaptiveContext) {
	lessons := actx.PreviousLessons
	if len(lessons) > maxPromptLessons {
		lessons = lessons[len(lessons)-maxPromptLessons:]
	}
	if len(lessons) > 0 {
		b.WriteString("Previous lessons:\n")
		for _, l := range lessons {
			b.WriteString(fmt.Sprintf("- %s (completed %s)\n", l.Subject, l.CompletedAt.Format("2006-01-02")))
		}
	}

	if tags := capTags(actx.Strengths); len(tags) > 0 {
		b.WriteString(fmt.Sprintf("Strengths: %s\n", strings.Join(tags, ", ")))
	}
	if tags := capTags(actx.Weaknesses); len(tags) > 0 {
		b.WriteString(fmt.Sprintf("Weaknesses: %s\n", strings.Join(tags, ", ")))
	}
}

func capTags(tags []string) []string {
	if len(tags) > maxPromptTags {
		return tags[len(tags)-maxPromptTags:]
	}
	return tags
}
