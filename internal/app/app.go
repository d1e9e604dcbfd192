// Package app assembles the TUI: it loads the learner record, builds
// the session engine and speech bridge, and runs the Bubble Tea
// program over the screen router.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/totli/internal/content"
	"github.com/abhisek/totli/internal/learner"
	"github.com/abhisek/totli/internal/llm"
	"github.com/abhisek/totli/internal/router"
	"github.com/abhisek/totli/internal/screen"
	"github.com/abhisek/totli/internal/screens/onboarding"
	"github.com/abhisek/totli/internal/screens/subjects"
	"github.com/abhisek/totli/internal/screens/welcome"
	"github.com/abhisek/totli/internal/session"
	"github.com/abhisek/totli/internal/speech"
	"github.com/abhisek/totli/internal/store"
	"github.com/abhisek/totli/internal/ui/layout"
)

// Options carries the dependencies built by the cmd layer.
type Options struct {
	LearnerRepo store.LearnerRepo
	EventRepo   store.EventRepo
	// Provider may be nil; content generation then always serves the
	// built-in fallbacks.
	Provider llm.Provider
	// Bridge may be nil for a silent app.
	Bridge *speech.Bridge
}

// Model is the root Bubble Tea model.
type Model struct {
	router *router.Router
	engine *session.Engine
	width  int
	height int
}

func newModel(opts Options, rec *learner.Record) Model {
	client := content.NewClient(opts.Provider, content.DefaultConfig())
	bridge := opts.Bridge
	if bridge == nil {
		bridge = speech.NewBridge(nil, nil)
	}

	if rec == nil {
		rec = &learner.Record{}
	}
	engine := session.NewEngine(client, opts.LearnerRepo, opts.EventRepo, rec)

	onboarded := rec.Profile.Name != ""
	var first screen.Screen
	if onboarded {
		first = welcome.New(func() screen.Screen {
			return subjects.New(engine, bridge)
		})
	} else {
		first = welcome.New(func() screen.Screen {
			return onboarding.New(opts.LearnerRepo, func(saved *learner.Record) screen.Screen {
				*rec = *saved
				return subjects.New(engine, bridge)
			})
		})
	}

	return Model{
		router: router.New(first),
		engine: engine,
	}
}

func (m Model) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	rec := m.engine.Record()
	name, lang := "", ""
	if rec != nil {
		name = rec.Profile.Name
		lang = rec.Profile.PreferredLanguage
	}
	header := layout.RenderHeader(title, name, lang, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); hints != nil {
			footerHints = append(hints, footerHints...)
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run loads the learner record and starts the Bubble Tea program.
func Run(opts Options) error {
	rec, err := opts.LearnerRepo.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load learner record: %w", err)
	}

	p := tea.NewProgram(newModel(opts, rec))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
