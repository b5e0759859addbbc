//go:build !tone

package sound

import (
	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/game"
)

// Tone is only available in builds with the "tone" tag, which needs cgo and
// the platform audio headers.
type Tone struct{}

// NewTone always fails in this build.
func NewTone(*log.Logger) (*Tone, error) {
	return nil, ErrToneUnavailable
}

func (*Tone) Notify(game.Event) {}
