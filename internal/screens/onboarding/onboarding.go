// Package onboarding collects the learner profile and parent contact
// on first launch, then hands off to the subject menu.
package onboarding

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/router"
	"github.com/abhisek/totli/internal/screen"
	"github.com/abhisek/totli/internal/store"
	"github.com/abhisek/totli/internal/ui/components"
	"github.com/abhisek/totli/internal/ui/layout"
	"github.com/abhisek/totli/internal/ui/theme"
)

// form fields, in order
const (
	fieldName = iota
	fieldAge
	fieldLanguage
	fieldLevel
	fieldParentName
	fieldParentEmail
	fieldCount
)

var languages = []string{"english", "urdu", "arabic", "spanish"}

// savedMsg reports the result of persisting the new record.
type savedMsg struct {
	Record *learner.Record
	Err    error
}

// Screen is the onboarding form.
type Screen struct {
	learners store.LearnerRepo
	next     func(rec *learner.Record) screen.Screen

	field    int
	name     components.TextInput
	age      components.TextInput
	parent   components.TextInput
	email    components.TextInput
	langIdx  int
	levelIdx int
	errMsg   string
	saving   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the onboarding form. next builds the screen shown after
// the record is saved.
func New(learners store.LearnerRepo, next func(rec *learner.Record) screen.Screen) *Screen {
	return &Screen{
		learners: learners,
		next:     next,
		name:     components.NewTextInput("Child's name...", false, 30),
		age:      components.NewTextInput("Age (3-8)...", true, 2),
		parent:   components.NewTextInput("Parent's name...", false, 30),
		email:    components.NewTextInput("Parent's email...", false, 50),
	}
}

func (s *Screen) Title() string { return "Welcome" }

func (s *Screen) Init() tea.Cmd { return s.name.Init() }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "Tab", Description: "Skip back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Could not save: %v", msg.Err)
			return s, nil
		}
		nextScreen := s.next(msg.Record)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: nextScreen}
		}

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s.advance()
		case "tab":
			if s.field > 0 {
				s.field--
			}
			return s, s.focusField()
		case "left", "h":
			s.cycleChoice(-1)
			return s, nil
		case "right", "l":
			s.cycleChoice(1)
			return s, nil
		}
	}

	var cmd tea.Cmd
	switch s.field {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldAge:
		s.age, cmd = s.age.Update(msg)
	case fieldParentName:
		s.parent, cmd = s.parent.Update(msg)
	case fieldParentEmail:
		s.email, cmd = s.email.Update(msg)
	}
	return s, cmd
}

// focusField moves keyboard focus to the text input for the current
// field, if it has one.
func (s *Screen) focusField() tea.Cmd {
	s.name.Model.Blur()
	s.age.Model.Blur()
	s.parent.Model.Blur()
	s.email.Model.Blur()
	switch s.field {
	case fieldName:
		return s.name.Model.Focus()
	case fieldAge:
		return s.age.Model.Focus()
	case fieldParentName:
		return s.parent.Model.Focus()
	case fieldParentEmail:
		return s.email.Model.Focus()
	}
	return nil
}

func (s *Screen) cycleChoice(dir int) {
	switch s.field {
	case fieldLanguage:
		s.langIdx = (s.langIdx + dir + len(languages)) % len(languages)
	case fieldLevel:
		n := len(learner.LearningLevels)
		s.levelIdx = (s.levelIdx + dir + n) % n
	}
}

func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	if s.field < fieldCount-1 {
		s.field++
		return s, s.focusField()
	}

	rec := &learner.Record{
		Profile: learner.Profile{
			Name:              strings.TrimSpace(s.name.Value()),
			PreferredLanguage: languages[s.langIdx],
			LearningLevel:     learner.LearningLevels[s.levelIdx],
		},
		Parent: learner.ParentContact{
			Name:  strings.TrimSpace(s.parent.Value()),
			Email: strings.TrimSpace(s.email.Value()),
		},
	}
	if age, err := s.age.NumericValue(); err == nil {
		rec.Profile.Age = age
	}
	if err := rec.Profile.Validate(); err != nil {
		s.errMsg = err.Error()
		s.field = fieldName
		if rec.Profile.Name != "" {
			s.field = fieldAge
		}
		return s, s.focusField()
	}

	s.saving = true
	return s, func() tea.Msg {
		err := s.learners.Save(context.Background(), rec)
		return savedMsg{Record: rec, Err: err}
	}
}

func (s *Screen) View(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	row := func(field int, name, value string) string {
		st := label
		marker := "  "
		if s.field == field {
			st = active
			marker = "▸ "
		}
		return marker + st.Render(name) + "  " + value
	}

	lines := []string{
		theme.Title.Render("Let's get to know you!"),
		"",
		row(fieldName, "Child's name ", s.name.View()),
		row(fieldAge, "Age          ", s.age.View()),
		row(fieldLanguage, "Language     ", s.choiceView(languages, s.langIdx, fieldLanguage)),
		row(fieldLevel, "Level        ", s.choiceView(learner.LearningLevels, s.levelIdx, fieldLevel)),
		"",
		theme.Subtitle.Render("For the grown-up:"),
		row(fieldParentName, "Your name    ", s.parent.View()),
		row(fieldParentEmail, "Your email   ", s.email.View()),
	}

	if s.saving {
		lines = append(lines, "", theme.Hint.Render("Saving..."))
	}
	if s.errMsg != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *Screen) choiceView(options []string, selected, field int) string {
	parts := make([]string, len(options))
	for i, opt := range options {
		if i == selected {
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if s.field == field {
				style = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
			}
			parts[i] = style.Render("[" + opt + "]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(opt)
		}
	}
	return strings.Join(parts, " ")
}
