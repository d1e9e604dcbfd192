// Package subjects is the main menu: one entry per learning domain,
// with completed-lesson counts pulled from the adaptive context.
package subjects

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/router"
	"github.com/abhisek/totli/internal/screen"
	"github.com/abhisek/totli/internal/screens/learning"
	"github.com/abhisek/totli/internal/session"
	"github.com/abhisek/totli/internal/speech"
	"github.com/abhisek/totli/internal/ui/components"
	"github.com/abhisek/totli/internal/ui/layout"
	"github.com/abhisek/totli/internal/ui/theme"
)

var subjectLabels = map[string]string{
	"english": "🔤 English",
	"urdu":    "📖 Urdu",
	"math":    "🔢 Math",
	"arabic":  "🌙 Arabic",
}

// Screen is the subject selection menu.
type Screen struct {
	engine *session.Engine
	bridge *speech.Bridge
	menu   components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the subject menu.
func New(engine *session.Engine, bridge *speech.Bridge) *Screen {
	s := &Screen{engine: engine, bridge: bridge}

	items := make([]components.MenuItem, 0, len(learner.Subjects)+1)
	for _, subject := range learner.Subjects {
		subject := subject
		items = append(items, components.MenuItem{
			Label: subjectLabels[subject],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: learning.New(engine, bridge, subject),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "👋 Bye for now",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) Title() string { return "Pick a subject" }

func (s *Screen) Init() tea.Cmd { return s.menu.Init() }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	rec := s.engine.Record()

	greeting := "Hello!"
	if rec != nil && rec.Profile.Name != "" {
		greeting = fmt.Sprintf("Hello, %s!", rec.Profile.Name)
	}

	lines := []string{
		theme.Title.Render(greeting),
		theme.Subtitle.Render("What do you want to learn today?"),
		"",
		s.menu.View(),
	}

	if counts := completedCounts(rec); len(counts) > 0 {
		lines = append(lines, "", theme.Hint.Render(counts))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// completedCounts summarizes finished lessons per subject for the menu
// footer, e.g. "math ×3  english ×1".
func completedCounts(rec *learner.Record) string {
	if rec == nil || len(rec.Context.PreviousLessons) == 0 {
		return ""
	}
	counts := make(map[string]int)
	for _, l := range rec.Context.PreviousLessons {
		counts[l.Subject]++
	}
	parts := make([]string, 0, len(counts))
	for _, subject := range learner.Subjects {
		if n := counts[subject]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s ×%d", subject, n))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Finished lessons: " + strings.Join(parts, "  ")
}
