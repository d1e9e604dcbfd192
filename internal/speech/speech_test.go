package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSynth struct {
	mu      sync.Mutex
	started chan struct{}
	block   bool
	err     error
	calls   []string
	voices  []VoiceConfig
}

func (f *fakeSynth) Speak(ctx context.Context, text string, voice VoiceConfig) error {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.voices = append(f.voices, voice)
	f.mu.Unlock()
	if f.started != nil {
		select {
		case f.started <- struct{}{}:
		default:
		}
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeSynth) Close() error { return nil }

func (f *fakeSynth) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeRec struct {
	mu       sync.Mutex
	starts   int
	stops    int
	startErr error
}

func (f *fakeRec) Start(ctx context.Context, language string, h Handlers) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	return nil
}

func (f *fakeRec) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	return nil
}

func (f *fakeRec) Close() error { return nil }

func TestBridgeWithoutEngines(t *testing.T) {
	b := NewBridge(nil, nil)
	if b.CanSpeak() {
		t.Error("CanSpeak() = true without a synthesizer")
	}
	if b.CanListen() {
		t.Error("CanListen() = true without a recognizer")
	}
	if err := b.Speak(context.Background(), "hello"); err != nil {
		t.Errorf("Speak without engine: %v", err)
	}
	b.StopSpeaking()
	if err := b.StartListening(context.Background(), "english", Handlers{}); err != nil {
		t.Errorf("StartListening without engine: %v", err)
	}
	if err := b.StopListening(); err != nil {
		t.Errorf("StopListening without engine: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSpeakUsesVoiceForLanguage(t *testing.T) {
	synth := &fakeSynth{}
	b := NewBridge(synth, nil)
	if err := b.SpeakInLanguage(context.Background(), "salaam", "urdu"); err != nil {
		t.Fatalf("SpeakInLanguage: %v", err)
	}
	if got := synth.voices[0].Tag; got != "ur-PK" {
		t.Errorf("voice tag = %q, want ur-PK", got)
	}
}

func TestSpeakEmptyTextSkipsEngine(t *testing.T) {
	synth := &fakeSynth{}
	b := NewBridge(synth, nil)
	if err := b.Speak(context.Background(), ""); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if synth.callCount() != 0 {
		t.Errorf("engine called %d times for empty text", synth.callCount())
	}
}

func TestStopSpeakingInterruptsUtterance(t *testing.T) {
	synth := &fakeSynth{block: true, started: make(chan struct{}, 1)}
	b := NewBridge(synth, nil)

	done := make(chan error, 1)
	go func() {
		done <- b.Speak(context.Background(), "first")
	}()

	select {
	case <-synth.started:
	case <-time.After(2 * time.Second):
		t.Fatal("utterance never started")
	}

	b.StopSpeaking()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("interrupted utterance returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("utterance never returned")
	}
}

func TestSpeakSupersedesPriorUtterance(t *testing.T) {
	synth := &fakeSynth{block: true, started: make(chan struct{}, 2)}
	b := NewBridge(synth, nil)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- b.Speak(context.Background(), "first")
	}()
	select {
	case <-synth.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first utterance never started")
	}

	secondDone := make(chan error, 1)
	go func() {
		secondDone <- b.Speak(context.Background(), "second")
	}()

	select {
	case err := <-firstDone:
		if err != nil {
			t.Errorf("superseded utterance returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("superseded utterance never returned")
	}

	b.StopSpeaking()
	select {
	case err := <-secondDone:
		if err != nil {
			t.Errorf("second utterance returned error after stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second utterance never returned")
	}
}

func TestStopSpeakingWithNothingPlaying(t *testing.T) {
	b := NewBridge(&fakeSynth{}, nil)
	b.StopSpeaking()
	b.StopSpeaking()
}

func TestSpeakEngineError(t *testing.T) {
	wantErr := errors.New("no audio device")
	b := NewBridge(&fakeSynth{err: wantErr}, nil)
	err := b.Speak(context.Background(), "hello")
	if err == nil {
		t.Fatal("Speak returned nil, want error")
	}
	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if se.Op != "speak" {
		t.Errorf("Op = %q, want speak", se.Op)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("error chain does not contain engine error")
	}
}

func TestStartListeningStopsPreviousSession(t *testing.T) {
	rec := &fakeRec{}
	b := NewBridge(nil, rec)
	if err := b.StartListening(context.Background(), "english", Handlers{}); err != nil {
		t.Fatalf("first StartListening: %v", err)
	}
	if err := b.StartListening(context.Background(), "english", Handlers{}); err != nil {
		t.Fatalf("second StartListening: %v", err)
	}
	if rec.starts != 2 {
		t.Errorf("starts = %d, want 2", rec.starts)
	}
	if rec.stops != 1 {
		t.Errorf("stops = %d, want 1", rec.stops)
	}
}

func TestStopListeningIdempotent(t *testing.T) {
	rec := &fakeRec{}
	b := NewBridge(nil, rec)
	if err := b.StopListening(); err != nil {
		t.Fatalf("StopListening before start: %v", err)
	}
	if rec.stops != 0 {
		t.Errorf("stops = %d before any session", rec.stops)
	}
	if err := b.StartListening(context.Background(), "english", Handlers{}); err != nil {
		t.Fatalf("StartListening: %v", err)
	}
	if err := b.StopListening(); err != nil {
		t.Fatalf("StopListening: %v", err)
	}
	if err := b.StopListening(); err != nil {
		t.Fatalf("second StopListening: %v", err)
	}
	if rec.stops != 1 {
		t.Errorf("stops = %d, want 1", rec.stops)
	}
}

func TestStartListeningEngineError(t *testing.T) {
	rec := &fakeRec{startErr: errors.New("connect refused")}
	b := NewBridge(nil, rec)
	err := b.StartListening(context.Background(), "english", Handlers{})
	if err == nil {
		t.Fatal("StartListening returned nil, want error")
	}
	if err := b.StopListening(); err != nil {
		t.Errorf("StopListening after failed start: %v", err)
	}
	if rec.stops != 0 {
		t.Errorf("stops = %d after failed start", rec.stops)
	}
}

func TestVoiceFor(t *testing.T) {
	tests := []struct {
		language string
		wantTag  string
	}{
		{"english", "en-US"},
		{"urdu", "ur-PK"},
		{"arabic", "ar-SA"},
		{"spanish", "es-ES"},
		{"klingon", "en-US"},
		{"", "en-US"},
	}
	for _, tt := range tests {
		if got := VoiceFor(tt.language).Tag; got != tt.wantTag {
			t.Errorf("VoiceFor(%q).Tag = %q, want %q", tt.language, got, tt.wantTag)
		}
	}
}
