// Package speech turns lesson text into audio and learner audio into
// text. A Bridge fronts two pluggable engines, a Synthesizer for
// speaking and a Recognizer for listening. Either engine may be absent,
// in which case the corresponding operations quietly do nothing so the
// rest of the app never has to care whether audio is available.
package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Error wraps an engine failure with the operation that caused it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("speech %s: %v", e.Op, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// Handlers receives recognition callbacks. Any field may be nil.
type Handlers struct {
	// OnResult is called with recognized text. Final marks an
	// end-of-utterance result, otherwise the text is a partial.
	OnResult func(text string, final bool)
	OnError  func(err error)
	// OnEnd is called once when the recognition session finishes,
	// whether it stopped cleanly or failed.
	OnEnd func()
}

// Synthesizer renders one utterance. Speak blocks until playback
// completes or ctx is canceled.
type Synthesizer interface {
	Speak(ctx context.Context, text string, voice VoiceConfig) error
	Close() error
}

// Recognizer streams microphone audio to a transcription engine and
// reports results through Handlers. Start returns once the session is
// established; results arrive asynchronously until Stop.
type Recognizer interface {
	Start(ctx context.Context, language string, h Handlers) error
	Stop() error
	Close() error
}

// Bridge coordinates speaking and listening for the session screens.
// At most one utterance plays at a time: a new Speak supersedes the
// current one, and the superseded call returns nil rather than an
// error. Listening follows the same rule, a new StartListening stops
// the previous session first.
type Bridge struct {
	synth Synthesizer
	rec   Recognizer

	mu        sync.Mutex
	gen       uint64
	cancel    context.CancelFunc
	listening bool
}

// NewBridge wires a bridge over the given engines. Either may be nil.
func NewBridge(synth Synthesizer, rec Recognizer) *Bridge {
	return &Bridge{synth: synth, rec: rec}
}

// CanSpeak reports whether a synthesis engine is configured.
func (b *Bridge) CanSpeak() bool { return b != nil && b.synth != nil }

// CanListen reports whether a recognition engine is configured.
func (b *Bridge) CanListen() bool { return b != nil && b.rec != nil }

// Speak voices text in English.
func (b *Bridge) Speak(ctx context.Context, text string) error {
	return b.SpeakInLanguage(ctx, text, "english")
}

// SpeakInLanguage voices text using the voice settings for language.
// It blocks until playback finishes, the context is canceled, or a
// later Speak supersedes this one. A superseded utterance is not an
// error.
func (b *Bridge) SpeakInLanguage(ctx context.Context, text, language string) error {
	if !b.CanSpeak() || text == "" {
		return nil
	}

	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
	}
	b.gen++
	myGen := b.gen
	ctx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.mu.Unlock()

	err := b.synth.Speak(ctx, text, VoiceFor(language))

	b.mu.Lock()
	superseded := b.gen != myGen
	if !superseded && b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.mu.Unlock()

	if err == nil || superseded || errors.Is(err, context.Canceled) {
		return nil
	}
	return &Error{Op: "speak", Err: err}
}

// StopSpeaking interrupts the current utterance, if any. Calling it
// with nothing playing is a no-op.
func (b *Bridge) StopSpeaking() {
	if b == nil {
		return
	}
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.mu.Unlock()
}

// StartListening begins a recognition session for language. An active
// session is stopped first.
func (b *Bridge) StartListening(ctx context.Context, language string, h Handlers) error {
	if !b.CanListen() {
		return nil
	}

	b.mu.Lock()
	wasListening := b.listening
	b.listening = true
	b.mu.Unlock()

	if wasListening {
		if err := b.rec.Stop(); err != nil {
			b.mu.Lock()
			b.listening = false
			b.mu.Unlock()
			return &Error{Op: "listen", Err: err}
		}
	}

	if err := b.rec.Start(ctx, language, h); err != nil {
		b.mu.Lock()
		b.listening = false
		b.mu.Unlock()
		return &Error{Op: "listen", Err: err}
	}
	return nil
}

// StopListening ends the recognition session if one is active.
func (b *Bridge) StopListening() error {
	if !b.CanListen() {
		return nil
	}
	b.mu.Lock()
	wasListening := b.listening
	b.listening = false
	b.mu.Unlock()
	if !wasListening {
		return nil
	}
	if err := b.rec.Stop(); err != nil {
		return &Error{Op: "listen", Err: err}
	}
	return nil
}

// Close releases both engines.
func (b *Bridge) Close() error {
	b.StopSpeaking()
	var errs []error
	if b.rec != nil {
		errs = append(errs, b.rec.Close())
	}
	if b.synth != nil {
		errs = append(errs, b.synth.Close())
	}
	return errors.Join(errs...)
}
