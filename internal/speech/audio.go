package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Player sinks raw PCM audio. Play consumes pcm until the channel
// closes or ctx is canceled.
type Player interface {
	Play(ctx context.Context, pcm <-chan []byte, sampleRate int) error
}

// commandPlayer pipes 16-bit little-endian mono PCM into an external
// player process. The command comes from TOTLI_AUDIO_PLAYER or
// defaults to aplay.
type commandPlayer struct {
	command string
}

// NewCommandPlayer returns a Player backed by an external process, or
// nil when no player binary is available on PATH.
func NewCommandPlayer() Player {
	cmd := os.Getenv("TOTLI_AUDIO_PLAYER")
	if cmd == "" {
		cmd = "aplay"
	}
	name := strings.Fields(cmd)
	if len(name) == 0 {
		return nil
	}
	if _, err := exec.LookPath(name[0]); err != nil {
		return nil
	}
	return &commandPlayer{command: cmd}
}

func (p *commandPlayer) Play(ctx context.Context, pcm <-chan []byte, sampleRate int) error {
	parts := strings.Fields(p.command)
	args := parts[1:]
	if len(parts) == 1 && parts[0] == "aplay" {
		args = []string{"-q", "-f", "S16_LE", "-r", strconv.Itoa(sampleRate), "-c", "1", "-t", "raw", "-"}
	}

	cmd := exec.CommandContext(ctx, parts[0], args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("player stdin: %w", err)
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start player: %w", err)
	}

	writeErr := func() error {
		defer stdin.Close()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case chunk, ok := <-pcm:
				if !ok {
					return nil
				}
				if _, err := stdin.Write(chunk); err != nil {
					return err
				}
			}
		}
	}()

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if writeErr != nil {
		return fmt.Errorf("write audio: %w", writeErr)
	}
	if waitErr != nil {
		return fmt.Errorf("player: %w", waitErr)
	}
	return nil
}

// microphone captures 16-bit little-endian mono PCM from an external
// recorder process. The command comes from TOTLI_MIC_COMMAND or
// defaults to arecord.
type microphone struct {
	command string
}

func newMicrophone() *microphone {
	cmd := os.Getenv("TOTLI_MIC_COMMAND")
	if cmd == "" {
		cmd = "arecord"
	}
	name := strings.Fields(cmd)
	if len(name) == 0 {
		return nil
	}
	if _, err := exec.LookPath(name[0]); err != nil {
		return nil
	}
	return &microphone{command: cmd}
}

// open starts the recorder at sampleRate and returns its PCM stream.
// Canceling ctx terminates the process.
func (m *microphone) open(ctx context.Context, sampleRate int) (io.ReadCloser, error) {
	parts := strings.Fields(m.command)
	args := parts[1:]
	if len(parts) == 1 && parts[0] == "arecord" {
		args = []string{"-q", "-f", "S16_LE", "-r", strconv.Itoa(sampleRate), "-c", "1", "-t", "raw", "-"}
	}

	cmd := exec.CommandContext(ctx, parts[0], args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("microphone stdout: %w", err)
	}
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start microphone: %w", err)
	}
	go cmd.Wait()
	return stdout, nil
}
