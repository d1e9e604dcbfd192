package speech

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	msginterfaces "github.com/deepgram/deepgram-go-sdk/pkg/api/speak/v1/websocket/interfaces"
	clientinterfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces/v1"
	"github.com/deepgram/deepgram-go-sdk/pkg/client/speak"
)

const (
	speakSampleRate = 24000
	defaultTTSModel = "aura-2-thalia-en"
)

// DeepgramSynthesizer streams text through Deepgram's speak websocket
// and plays the returned PCM through a Player.
type DeepgramSynthesizer struct {
	apiKey string
	model  string
	player Player
}

// NewDeepgramSynthesizer builds a synthesizer. It returns nil when the
// API key is empty or no player is available, so callers can hand the
// result straight to NewBridge.
func NewDeepgramSynthesizer(apiKey, model string, player Player) *DeepgramSynthesizer {
	if apiKey == "" || player == nil {
		return nil
	}
	if model == "" {
		model = defaultTTSModel
	}
	return &DeepgramSynthesizer{apiKey: apiKey, model: model, player: player}
}

// Speak renders text and blocks until playback completes or ctx is
// canceled. The voice rate and pitch are not adjustable over the speak
// websocket, only the model and language tag influence the output.
func (d *DeepgramSynthesizer) Speak(ctx context.Context, text string, voice VoiceConfig) error {
	if text == "" {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pcmCh := make(chan []byte, 4096)
	errCh := make(chan error, 1)

	go d.stream(ctx, text, pcmCh, errCh)

	playErr := d.player.Play(ctx, pcmCh, speakSampleRate)
	streamErr := <-errCh
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if streamErr != nil {
		return streamErr
	}
	return playErr
}

func (d *DeepgramSynthesizer) Close() error { return nil }

// stream drives one speak websocket session, pushing audio chunks into
// pcmCh. The session ends once audio has arrived and then gone quiet
// for an idle window, or when a hard deadline passes.
func (d *DeepgramSynthesizer) stream(ctx context.Context, text string, pcmCh chan<- []byte, errCh chan<- error) {
	defer close(pcmCh)
	defer close(errCh)

	options := &clientinterfaces.WSSpeakOptions{
		Model:      d.model,
		Encoding:   "linear16",
		SampleRate: speakSampleRate,
	}

	var lastRecvUnix int64
	var seenAudio int32

	cb := &speakCallback{onBinary: func(data []byte) error {
		if len(data) == 0 {
			return nil
		}
		atomic.StoreInt64(&lastRecvUnix, time.Now().UnixNano())
		atomic.StoreInt32(&seenAudio, 1)
		b := make([]byte, len(data))
		copy(b, data)
		select {
		case pcmCh <- b:
		case <-ctx.Done():
		}
		return nil
	}}

	dg, err := speak.NewWSUsingCallback(ctx, d.apiKey, &clientinterfaces.ClientOptions{}, options, cb)
	if err != nil {
		errCh <- fmt.Errorf("deepgram: create ws client: %w", err)
		return
	}

	stopped := false
	stopClient := func() {
		if !stopped {
			stopped = true
			dg.Stop()
		}
	}
	defer stopClient()

	if ok := dg.Connect(); !ok {
		errCh <- fmt.Errorf("deepgram: connect failed")
		return
	}

	if err := dg.SpeakWithText(text); err != nil {
		errCh <- fmt.Errorf("deepgram: speak text: %w", err)
		return
	}
	if err := dg.Flush(); err != nil {
		errCh <- fmt.Errorf("deepgram: flush: %w", err)
		return
	}

	idleWindow := 400 * time.Millisecond
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.Now().Add(12 * time.Second)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if atomic.LoadInt32(&seenAudio) == 1 {
				last := time.Unix(0, atomic.LoadInt64(&lastRecvUnix))
				if time.Since(last) > idleWindow {
					return
				}
			}
			if time.Now().After(deadline) {
				return
			}
		}
	}
}

type speakCallback struct{ onBinary func([]byte) error }

func (s *speakCallback) Open(*msginterfaces.OpenResponse) error         { return nil }
func (s *speakCallback) Metadata(*msginterfaces.MetadataResponse) error { return nil }
func (s *speakCallback) Flush(*msginterfaces.FlushedResponse) error     { return nil }
func (s *speakCallback) Clear(*msginterfaces.ClearedResponse) error     { return nil }
func (s *speakCallback) Close(*msginterfaces.CloseResponse) error       { return nil }
func (s *speakCallback) Warning(*msginterfaces.WarningResponse) error   { return nil }
func (s *speakCallback) Error(*msginterfaces.ErrorResponse) error       { return nil }
func (s *speakCallback) UnhandledEvent([]byte) error                    { return nil }
func (s *speakCallback) Binary(byMsg []byte) error {
	if s.onBinary != nil {
		return s.onBinary(byMsg)
	}
	return nil
}
