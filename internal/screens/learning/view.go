package learning

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/totli/internal/content"
	"github.com/abhisek/totli/internal/session"
	"github.com/abhisek/totli/internal/ui/components"
	"github.com/abhisek/totli/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧"}

func (s *Screen) View(width, height int) string {
	var body string
	switch {
	case s.state.Loading || s.state.Lesson == nil:
		body = s.renderLoading()
	case s.state.Phase == session.PhaseLessonComplete:
		body = s.renderComplete()
	case s.state.TestPhase == session.TestShowingFeedback:
		body = s.renderFeedback(width)
	case s.state.TestPhase == session.TestAwaitingAnswer:
		body = s.renderQuestion(width)
	default:
		body = s.renderLesson(width)
	}

	if s.notice != "" {
		body += "\n\n" + theme.Hint.Render(s.notice)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *Screen) renderLoading() string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame) +
		" " + theme.Body.Render("Getting something fun ready...")
}

func (s *Screen) renderLesson(width int) string {
	lesson := s.state.Lesson
	step := lesson.Content[s.state.StepIndex]

	var lines []string
	lines = append(lines, theme.Title.Render(lesson.Title))
	if lesson.Objective != "" {
		lines = append(lines, theme.Subtitle.Render(lesson.Objective))
	}
	lines = append(lines, "")
	lines = append(lines, s.renderStep(step))
	lines = append(lines, "")

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	pct := session.Progress(s.state.StepIndex, len(lesson.Content)) / 100
	bar := components.NewProgressBar(
		fmt.Sprintf("Step %d of %d", s.state.StepIndex+1, len(lesson.Content)),
		pct, true, barWidth,
	)
	lines = append(lines, bar.View())

	if s.state.LessonFallback {
		lines = append(lines, "", theme.Hint.Render("(offline lesson)"))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *Screen) renderStep(step content.LessonStep) string {
	switch step.Kind {
	case content.StepImage:
		art := lipgloss.NewStyle().Foreground(theme.Accent).Render(step.Data)
		if step.Interaction != "" {
			art += "\n" + theme.Hint.Render(step.Interaction)
		}
		return art
	case content.StepInteractive:
		body := theme.Body.Render(step.Data)
		if step.Interaction != "" {
			body += "\n\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render("👉 "+step.Interaction)
		}
		return body
	default:
		return theme.Body.Render(step.Data)
	}
}

func (s *Screen) renderQuestion(width int) string {
	q := s.state.Question

	var lines []string
	lines = append(lines, theme.Title.Render("Quiz time!"))
	lines = append(lines, "")
	lines = append(lines, theme.Body.Bold(true).Render(q.Question))
	if q.Image != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(q.Image))
	}
	lines = append(lines, "")

	if s.isMultipleChoice() {
		for i, opt := range q.Options {
			if i == s.choice {
				lines = append(lines, theme.Selected.Render("  ▸ "+opt))
			} else {
				lines = append(lines, theme.Unselected.Render("    "+opt))
			}
		}
	} else {
		lines = append(lines, s.input.View())
	}

	if s.listening {
		status := "🎤 Listening..."
		if s.partial != "" {
			status += " " + s.partial
		}
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Secondary).Render(status))
	}
	if q.Hint != "" {
		lines = append(lines, "", theme.Hint.Render("Hint: "+q.Hint))
	}

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *Screen) renderFeedback(width int) string {
	ev := s.state.Evaluation

	var lines []string
	if ev.IsCorrect {
		lines = append(lines, theme.Correct.Render("🎉 Correct!"))
	} else {
		lines = append(lines, theme.Incorrect.Render("Not quite!"))
	}
	lines = append(lines, "")
	if ev.Feedback != "" {
		lines = append(lines, theme.Body.Render(ev.Feedback))
	}
	if ev.Explanation != "" {
		lines = append(lines, theme.Body.Render(ev.Explanation))
	}
	if ev.Encouragement != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Accent).Render(ev.Encouragement))
	}
	lines = append(lines, "", theme.Hint.Render("Press N for another question"))

	return theme.Card.Render(strings.Join(lines, "\n"))
}

func (s *Screen) renderComplete() string {
	lines := []string{
		theme.Title.Render("🌟 Lesson complete! 🌟"),
		"",
		theme.Body.Render("Great job! You finished the whole lesson."),
		"",
		theme.Hint.Render("Press any key to pick another subject"),
	}
	return theme.Card.Render(strings.Join(lines, "\n"))
}
