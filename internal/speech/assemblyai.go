package speech

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const listenSampleRate = 16000

// AssemblyAIRecognizer streams microphone audio to AssemblyAI's
// realtime websocket and delivers transcripts through Handlers. The
// streaming service recognizes English only, so the language argument
// to Start is accepted but does not change the session.
type AssemblyAIRecognizer struct {
	apiKey string
	mic    *microphone

	mu     sync.Mutex
	conn   *websocket.Conn
	cancel context.CancelFunc
}

type aaiTurnMessage struct {
	Type          string `json:"type"`
	Transcript    string `json:"transcript"`
	TurnFormatted bool   `json:"turn_is_formatted"`
	EndOfTurn     bool   `json:"end_of_turn"`
	Error         string `json:"error"`
}

// NewAssemblyAIRecognizer builds a recognizer, or returns nil when the
// API key is empty or no recorder binary is available.
func NewAssemblyAIRecognizer(apiKey string) *AssemblyAIRecognizer {
	if apiKey == "" {
		return nil
	}
	mic := newMicrophone()
	if mic == nil {
		return nil
	}
	return &AssemblyAIRecognizer{apiKey: apiKey, mic: mic}
}

// Start opens the websocket session and begins streaming microphone
// audio. Results arrive on h until Stop or a stream error.
func (r *AssemblyAIRecognizer) Start(ctx context.Context, _ string, h Handlers) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn != nil {
		return fmt.Errorf("recognition already running")
	}

	params := url.Values{}
	params.Set("sample_rate", fmt.Sprint(listenSampleRate))
	params.Set("format_turns", "true")
	params.Set("encoding", "pcm_s16le")
	wsURL := "wss://streaming.assemblyai.com/v3/ws?" + params.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, wsURL, map[string][]string{
		"Authorization": {r.apiKey},
	})
	if err != nil {
		return fmt.Errorf("connect transcription: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	audio, err := r.mic.open(ctx, listenSampleRate)
	if err != nil {
		cancel()
		conn.Close()
		return err
	}

	r.conn = conn
	r.cancel = cancel

	var endOnce sync.Once
	end := func() {
		endOnce.Do(func() {
			if h.OnEnd != nil {
				h.OnEnd()
			}
		})
	}

	go r.pumpAudio(ctx, conn, audio, h, end)
	go r.readMessages(ctx, conn, h, end)
	return nil
}

// Stop terminates the session. Safe to call when not listening.
func (r *AssemblyAIRecognizer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	_ = r.conn.WriteJSON(map[string]string{"type": "Terminate"})
	_ = r.conn.Close()
	r.conn = nil
	r.cancel()
	r.cancel = nil
	return nil
}

func (r *AssemblyAIRecognizer) Close() error { return r.Stop() }

// pumpAudio forwards recorder PCM to the websocket in small chunks.
func (r *AssemblyAIRecognizer) pumpAudio(ctx context.Context, conn *websocket.Conn, audio io.ReadCloser, h Handlers, end func()) {
	defer audio.Close()
	buf := make([]byte, 3200)
	for {
		if ctx.Err() != nil {
			return
		}
		n, err := audio.Read(buf)
		if n > 0 {
			if werr := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
				return
			}
		}
		if err != nil {
			if ctx.Err() == nil && err != io.EOF && h.OnError != nil {
				h.OnError(fmt.Errorf("microphone read: %w", err))
			}
			end()
			return
		}
	}
}

// readMessages parses server turns and dispatches transcripts.
func (r *AssemblyAIRecognizer) readMessages(ctx context.Context, conn *websocket.Conn, h Handlers, end func()) {
	defer end()
	for {
		var msg aaiTurnMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil && h.OnError != nil {
				h.OnError(fmt.Errorf("transcription stream: %w", err))
			}
			return
		}
		switch msg.Type {
		case "Turn":
			if msg.Transcript == "" {
				continue
			}
			if h.OnResult != nil {
				h.OnResult(msg.Transcript, msg.EndOfTurn || msg.TurnFormatted)
			}
		case "Termination":
			return
		case "Error":
			if h.OnError != nil {
				h.OnError(fmt.Errorf("transcription: %s", msg.Error))
			}
			return
		}
	}
}
