//go:build tone

package sound

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"
	"github.com/tomz197/snake/internal/game"
)

// Tone plays synthesized cues through the system audio device.
type Tone struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger
	cues   map[game.Event][]byte
}

// NewTone opens the audio device and renders the cue buffers.
func NewTone(logger *log.Logger) (*Tone, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrToneUnavailable, err)
	}
	return &Tone{ctx: ctx, ready: ready, logger: logger, cues: cues()}, nil
}

// Notify plays the cue for ev in the background. Cues are skipped until the
// device reports ready.
func (t *Tone) Notify(ev game.Event) {
	samples, ok := t.cues[ev]
	if !ok {
		return
	}
	select {
	case <-t.ready:
	default:
		t.logger.Debug("audio device not ready, dropping cue", "event", ev)
		return
	}
	go func() {
		player := t.ctx.NewPlayer(bytes.NewReader(samples))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Err(); err != nil {
			t.logger.Debug("audio playback failed", "event", ev, "err", err)
		}
		if err := player.Close(); err != nil {
			t.logger.Debug("closing audio player", "err", err)
		}
	}()
}
