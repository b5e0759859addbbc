// Package loop drives a game: it polls input, advances the engine on a fixed
// tick, forwards events to the sound backend and redraws after every change.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
)

// InputSource yields player commands. Poll blocks for at most timeout and
// reports false when nothing arrived in time.
type InputSource interface {
	Poll(timeout time.Duration) (input.Command, bool)
}

// Renderer draws a snapshot of the game.
type Renderer interface {
	Draw(v game.View) error
}

// Sound reacts to game events. Notify runs on the loop goroutine, so
// implementations should return quickly.
type Sound interface {
	Notify(ev game.Event)
}

// Options configures a Loop. Zero values select the defaults.
type Options struct {
	Tick        time.Duration // time between steps
	IdleTimeout time.Duration // end the loop after this long without input; 0 disables
	Logger      *log.Logger
}

// Loop owns a game and its collaborators for the lifetime of one session.
type Loop struct {
	game     *game.Game
	input    InputSource
	renderer Renderer
	sound    Sound
	logger   *log.Logger

	tick time.Duration
	idle time.Duration
	now  func() time.Time

	turned    bool             // a turn was already applied for the coming step
	turns     []game.Direction // turns held back for later steps
	lastInput time.Time
	drawErr   bool // last Draw failed; suppresses repeated logging
}

// New creates a loop for g.
func New(g *game.Game, in InputSource, r Renderer, s Sound, opts Options) *Loop {
	tick := opts.Tick
	if tick <= 0 {
		tick = config.TickDuration
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:     g,
		input:    in,
		renderer: r,
		sound:    s,
		logger:   logger,
		tick:     tick,
		idle:     opts.IdleTimeout,
		now:      time.Now,
		turns:    make([]game.Direction, 0, config.MaxQueuedTurns),
	}
}

// Run blocks until the player quits, the idle timeout expires or ctx is
// cancelled. Only cancellation is reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	lastTick := l.now()
	l.lastInput = lastTick
	l.draw()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		wait := l.tick - l.now().Sub(lastTick)
		if wait < 0 {
			wait = 0
		}

		changed := false
		if cmd, ok := l.input.Poll(wait); ok {
			l.lastInput = l.now()
			if cmd == input.Quit {
				l.logger.Debug("quit requested", "score", l.game.Score())
				return nil
			}
			changed = l.handle(cmd)
		} else if l.idle > 0 && l.now().Sub(l.lastInput) >= l.idle {
			l.logger.Info("idle timeout", "idle", l.idle)
			return nil
		}

		// Redraw on every tick, even when paused, so resizes are picked up.
		if now := l.now(); now.Sub(lastTick) >= l.tick {
			lastTick = now
			l.advance()
			changed = true
		}

		if changed {
			l.draw()
		}
	}
}

// handle applies one command and reports whether the game may have changed.
func (l *Loop) handle(cmd input.Command) bool {
	switch cmd {
	case input.MoveUp:
		l.turn(game.Up)
	case input.MoveDown:
		l.turn(game.Down)
	case input.MoveLeft:
		l.turn(game.Left)
	case input.MoveRight:
		l.turn(game.Right)
	case input.Pause:
		l.game.TogglePause()
	case input.Restart:
		l.game.Restart()
		l.turned = false
		l.turns = l.turns[:0]
		l.logger.Debug("game restarted", "best", l.game.HighScore())
	default:
		return false
	}
	return true
}

// turn applies at most one heading change per step. Further turns pressed
// within the same tick wait for the following steps, so a quick up-left
// from a rightward heading is not rejected as a reversal.
func (l *Loop) turn(d game.Direction) {
	if l.game.Status() != game.StatusRunning {
		return
	}
	if !l.turned {
		h := l.game.Heading()
		if d == h || d == h.Opposite() {
			return
		}
		l.game.SetDirection(d)
		l.turned = true
		return
	}
	if len(l.turns) < config.MaxQueuedTurns {
		l.turns = append(l.turns, d)
		return
	}
	l.turns[len(l.turns)-1] = d
}

// advance performs one step and releases the next held-back turn.
func (l *Loop) advance() {
	ev := l.game.Step()
	if ev == game.EventNone {
		return
	}
	l.sound.Notify(ev)

	switch ev {
	case game.EventGameOver, game.EventWon:
		l.logger.Info("game finished",
			"status", l.game.Status(),
			"score", l.game.Score(),
			"length", l.game.Len(),
			"best", l.game.HighScore(),
		)
		l.turned = false
		l.turns = l.turns[:0]
		return
	}

	l.turned = false
	for len(l.turns) > 0 && !l.turned {
		d := l.turns[0]
		l.turns = append(l.turns[:0], l.turns[1:]...)
		l.turn(d)
	}
}

// draw renders the current state. Failures are logged once per streak and
// never stop the game.
func (l *Loop) draw() {
	if err := l.renderer.Draw(l.game.View()); err != nil {
		if !l.drawErr {
			l.logger.Warn("draw failed", "err", err)
		}
		l.drawErr = true
		return
	}
	l.drawErr = false
}
