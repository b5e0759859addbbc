// Package sound plays audible cues for game events. Every backend swallows
// its own failures: a broken speaker must never stop the game.
package sound

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/game"
)

// ErrToneUnavailable is returned by NewTone when no audio device can be opened.
var ErrToneUnavailable = errors.New("tone output unavailable")

// bellGap separates the repeated bells of a multi-bell cue.
const bellGap = 100 * time.Millisecond

// Notifier receives game events worth a sound.
type Notifier interface {
	Notify(ev game.Event)
}

// New picks a backend: silence when disabled, synthesized tones when asked
// for and available, otherwise the terminal bell on w.
func New(enabled, tone bool, w io.Writer, logger *log.Logger) Notifier {
	if !enabled {
		return Nop{}
	}
	if tone {
		t, err := NewTone(logger)
		if err == nil {
			return t
		}
		logger.Warn("falling back to terminal bell", "err", err)
	}
	return NewBell(w, logger)
}

// Nop ignores every event.
type Nop struct{}

func (Nop) Notify(game.Event) {}

// Bell rings the terminal bell (BEL, 0x07).
type Bell struct {
	w      io.Writer
	logger *log.Logger
	gap    time.Duration
}

// NewBell creates a Bell writing to w.
func NewBell(w io.Writer, logger *log.Logger) *Bell {
	return &Bell{w: w, logger: logger, gap: bellGap}
}

// Notify rings once for food, twice for a win and three times for game over.
func (b *Bell) Notify(ev game.Event) {
	switch ev {
	case game.EventFoodEaten:
		b.ring(1)
	case game.EventWon:
		b.ring(2)
	case game.EventGameOver:
		b.ring(3)
	}
}

func (b *Bell) ring(n int) {
	for i := 0; i < n; i++ {
		if i > 0 {
			time.Sleep(b.gap)
		}
		if _, err := io.WriteString(b.w, "\a"); err != nil {
			b.logger.Debug("bell write failed", "err", err)
			return
		}
	}
}
