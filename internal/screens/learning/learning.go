// Package learning is the lesson and test screen for one subject. It
// drives the session engine, voices steps and questions through the
// speech bridge, and accepts spoken answers when a recognizer is
// available.
package learning

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/totli/internal/content"
	"github.com/abhisek/totli/internal/router"
	"github.com/abhisek/totli/internal/screen"
	"github.com/abhisek/totli/internal/session"
	"github.com/abhisek/totli/internal/speech"
	"github.com/abhisek/totli/internal/ui/components"
	"github.com/abhisek/totli/internal/ui/layout"
)

const spinnerInterval = 150 * time.Millisecond

// Screen runs lesson and test mode for one subject.
type Screen struct {
	engine  *session.Engine
	bridge  *speech.Bridge
	subject string

	state     session.State
	input     components.TextInput
	choice    int
	voiceOn   bool
	listening bool
	partial   string
	notice    string
	spinner   int

	// hear buffers recognition callbacks into the update loop.
	hear chan tea.Msg
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the learning screen and kicks off the lesson request.
func New(engine *session.Engine, bridge *speech.Bridge, subject string) *Screen {
	return &Screen{
		engine:  engine,
		bridge:  bridge,
		subject: subject,
		input:   components.NewTextInput("Type your answer...", false, 40),
		hear:    make(chan tea.Msg, 16),
	}
}

func (s *Screen) Title() string {
	if s.subject == "" {
		return ""
	}
	return strings.ToUpper(s.subject[:1]) + s.subject[1:]
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			st, _ := s.engine.EnterSubject(context.Background(), s.subject)
			return lessonReadyMsg{State: st}
		},
		s.spinnerTick(),
		s.input.Init(),
	)
}

func (s *Screen) spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.state.Loading {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.state.Phase == session.PhaseLessonComplete {
		return []layout.KeyHint{{Key: "any key", Description: "Back to subjects"}}
	}
	switch s.state.TestPhase {
	case session.TestAwaitingAnswer:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Answer"}}
		if s.bridge.CanSpeak() {
			hints = append(hints, layout.KeyHint{Key: "V", Description: "Read aloud"})
		}
		if s.bridge.CanListen() {
			hints = append(hints, layout.KeyHint{Key: "M", Description: "Speak answer"})
		}
		return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	case session.TestShowingFeedback:
		return []layout.KeyHint{
			{Key: "N", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Next step"},
		{Key: "T", Description: "Take a test"},
	}
	if s.bridge.CanSpeak() {
		hints = append(hints, layout.KeyHint{Key: "V", Description: "Read aloud"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		s.state = msg.State
		var cmd tea.Cmd
		if s.voiceOn {
			cmd = s.speakCurrent()
		}
		return s, cmd

	case stateMsg:
		s.state = msg.State
		var cmd tea.Cmd
		if s.voiceOn {
			cmd = s.speakCurrent()
		}
		return s, cmd

	case spinnerTickMsg:
		s.spinner++
		if s.state.Loading || s.state.Lesson == nil {
			return s, s.spinnerTick()
		}
		return s, nil

	case spokenMsg:
		if msg.Err != nil {
			s.notice = "No sound right now"
		}
		return s, nil

	case heardMsg:
		return s.handleHeard(msg)

	case listenEndedMsg:
		s.listening = false
		s.partial = ""
		if msg.Err != nil {
			s.notice = "Couldn't hear you"
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.state.TestPhase == session.TestAwaitingAnswer && !s.isMultipleChoice() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s, s.leave()
	}

	if s.state.Phase == session.PhaseLessonComplete {
		return s, s.leave()
	}
	if s.state.Loading {
		return s, nil
	}

	switch s.state.TestPhase {
	case session.TestAwaitingAnswer:
		return s.handleTestKey(key, msg)
	case session.TestShowingFeedback:
		if key == "n" || key == "enter" {
			return s, tea.Batch(s.opCmd(s.engine.NextQuestion), s.spinnerTick())
		}
		return s, nil
	}

	// Lesson mode.
	switch key {
	case "enter", " ", "right":
		return s, s.opCmd(s.engine.AdvanceStep)
	case "t":
		return s, tea.Batch(s.opCmd(s.engine.StartTest), s.spinnerTick())
	case "v":
		return s.toggleVoice()
	}
	return s, nil
}

func (s *Screen) handleTestKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "v":
		return s.toggleVoice()
	case "m":
		return s.toggleListening()
	}

	if s.isMultipleChoice() {
		options := s.state.Question.Options
		switch key {
		case "up", "k":
			if s.choice > 0 {
				s.choice--
			}
		case "down", "j":
			if s.choice < len(options)-1 {
				s.choice++
			}
		case "enter":
			return s, s.submit(options[s.choice])
		}
		return s, nil
	}

	if key == "enter" {
		return s, s.submit(s.input.Value())
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) isMultipleChoice() bool {
	return s.state.Question != nil && len(s.state.Question.Options) > 0
}

// opCmd runs one engine operation off the update loop and reports the
// resulting snapshot.
func (s *Screen) opCmd(op func(context.Context) (session.State, error)) tea.Cmd {
	return func() tea.Msg {
		st, _ := op(context.Background())
		return stateMsg{State: st}
	}
}

func (s *Screen) submit(answer string) tea.Cmd {
	if strings.TrimSpace(answer) == "" {
		return nil
	}
	s.stopListening()
	s.input.Model.SetValue("")
	return tea.Batch(
		func() tea.Msg {
			st, _ := s.engine.SubmitAnswer(context.Background(), answer)
			return stateMsg{State: st}
		},
		s.spinnerTick(),
	)
}

// leave tears the session down. This is the only exit path.
func (s *Screen) leave() tea.Cmd {
	s.stopListening()
	s.bridge.StopSpeaking()
	s.engine.LeaveSubject()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *Screen) toggleVoice() (screen.Screen, tea.Cmd) {
	if !s.bridge.CanSpeak() {
		s.notice = "Voice is not set up"
		return s, nil
	}
	s.voiceOn = !s.voiceOn
	if !s.voiceOn {
		s.bridge.StopSpeaking()
		return s, nil
	}
	return s, s.speakCurrent()
}

// speakCurrent voices whatever is on screen: the current lesson step,
// the live question, or the evaluation feedback.
func (s *Screen) speakCurrent() tea.Cmd {
	text := s.currentText()
	if text == "" {
		return nil
	}
	lang := s.engine.Record().Profile.PreferredLanguage
	return func() tea.Msg {
		err := s.bridge.SpeakInLanguage(context.Background(), text, lang)
		return spokenMsg{Err: err}
	}
}

func (s *Screen) currentText() string {
	switch {
	case s.state.Evaluation != nil:
		return s.state.Evaluation.Feedback
	case s.state.Question != nil:
		return s.state.Question.Question
	case s.state.Lesson != nil && s.state.StepIndex < len(s.state.Lesson.Content):
		step := s.state.Lesson.Content[s.state.StepIndex]
		if step.Kind == content.StepText {
			return step.Data
		}
		return step.Interaction
	}
	return ""
}

func (s *Screen) toggleListening() (screen.Screen, tea.Cmd) {
	if !s.bridge.CanListen() {
		s.notice = "Microphone is not set up"
		return s, nil
	}
	if s.listening {
		s.stopListening()
		return s, nil
	}

	// Drop leftovers from a previous session so the new wait loop does
	// not consume a stale end-of-session message.
	for {
		select {
		case <-s.hear:
			continue
		default:
		}
		break
	}

	lang := s.engine.Record().Profile.PreferredLanguage
	handlers := speech.Handlers{
		OnResult: func(text string, final bool) {
			select {
			case s.hear <- heardMsg{Text: text, Final: final}:
			default:
			}
		},
		OnError: func(err error) {
			select {
			case s.hear <- listenEndedMsg{Err: err}:
			default:
			}
		},
		OnEnd: func() {
			select {
			case s.hear <- listenEndedMsg{}:
			default:
			}
		},
	}
	if err := s.bridge.StartListening(context.Background(), lang, handlers); err != nil {
		s.notice = "Couldn't start the microphone"
		return s, nil
	}
	s.listening = true
	s.partial = ""
	return s, s.waitForHearing()
}

func (s *Screen) stopListening() {
	if s.listening {
		_ = s.bridge.StopListening()
		s.listening = false
		s.partial = ""
	}
}

// waitForHearing delivers the next recognition callback as a message.
func (s *Screen) waitForHearing() tea.Cmd {
	return func() tea.Msg {
		return <-s.hear
	}
}

func (s *Screen) handleHeard(msg heardMsg) (screen.Screen, tea.Cmd) {
	if !msg.Final {
		s.partial = msg.Text
		return s, s.waitForHearing()
	}

	s.stopListening()
	heard := strings.TrimSpace(msg.Text)
	if heard == "" {
		return s, nil
	}

	if s.isMultipleChoice() {
		// Match the spoken answer to an option.
		for i, opt := range s.state.Question.Options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.Trim(heard, ".!? ")) {
				s.choice = i
				return s, s.submit(opt)
			}
		}
		s.notice = "I heard: " + heard
		return s, nil
	}

	s.input.Model.SetValue(heard)
	return s, nil
}
