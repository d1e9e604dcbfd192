package learning

import (
	"time"

	"github.com/abhisek/totli/internal/session"
)

// lessonReadyMsg is sent when the lesson request finishes.
type lessonReadyMsg struct {
	State session.State
}

// stateMsg is sent when any other engine operation finishes.
type stateMsg struct {
	State session.State
}

// spokenMsg is sent when an utterance finishes or fails.
type spokenMsg struct {
	Err error
}

// heardMsg carries one recognition result.
type heardMsg struct {
	Text  string
	Final bool
}

// listenEndedMsg is sent when the recognition session ends.
type listenEndedMsg struct {
	Err error
}

// spinnerTickMsg animates the loading indicator.
type spinnerTickMsg time.Time
