// Package game implements the snake rules: movement, growth, collisions,
// food placement and the pause/restart state machine.
package game

import (
	"time"

	"github.com/tomz197/snake/internal/physics"
)

// PointsPerFood is the score awarded for each food eaten.
const PointsPerFood = 10

// InitialLength is the starting snake length, clamped to the board width.
const InitialLength = 3

// Status is the phase of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusGameOver
	StatusWon // every cell is covered by the snake
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	case StatusWon:
		return "won"
	}
	return "unknown"
}

// Event is the outcome of a single Step.
type Event int

const (
	EventNone Event = iota // nothing happened (not running)
	EventMoved
	EventFoodEaten
	EventGameOver
	EventWon
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventFoodEaten:
		return "food eaten"
	case EventGameOver:
		return "game over"
	case EventWon:
		return "won"
	}
	return "unknown"
}

// Option configures a Game.
type Option func(*Game)

// WithPicker sets the food placement source.
func WithPicker(p Picker) Option {
	return func(g *Game) {
		g.picker = p
	}
}

// Game owns the full state of one snake session. It is not safe for
// concurrent use; the loop that drives it is its only owner.
type Game struct {
	cfg     Config
	grid    *physics.Grid // cells covered by the snake
	snake   *body
	heading Direction // direction of the last completed step
	pending Direction // direction the next step will take
	food    Position
	hasFood bool
	score   int
	best    int
	status  Status
	picker  Picker
}

// New creates a game from cfg and starts it.
func New(cfg Config, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		grid:  physics.NewGrid(cfg.Width(), cfg.Height()),
		snake: newBody(InitialLength),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.picker == nil {
		g.picker = NewRandomPicker(uint64(time.Now().UnixNano()))
	}
	g.Restart()
	return g
}

// Restart resets the snake, score and food regardless of the current status.
// The session high score is kept.
func (g *Game) Restart() {
	g.snake.Reset()
	g.grid.Clear()

	length := InitialLength
	if w := g.cfg.Width()/2 + 1; length > w {
		length = w
	}
	head := Position{X: g.cfg.Width() / 2, Y: g.cfg.Height() / 2}
	for i := 0; i < length; i++ {
		g.occupy(head.Add(-i, 0))
	}

	g.heading = Right
	g.pending = Right
	g.score = 0
	g.status = StatusRunning
	if !g.placeFood() {
		g.finish(StatusWon)
	}
}

// SetDirection requests a new heading for the next step. Reversing into the
// neck is ignored, as is any request while the game is not running.
func (g *Game) SetDirection(d Direction) {
	if g.status != StatusRunning {
		return
	}
	if d == g.heading.Opposite() {
		return
	}
	g.pending = d
}

// TogglePause switches between running and paused. Finished games stay finished.
func (g *Game) TogglePause() {
	switch g.status {
	case StatusRunning:
		g.status = StatusPaused
	case StatusPaused:
		g.status = StatusRunning
	}
}

// Step advances the game by one tick and reports what happened.
func (g *Game) Step() Event {
	if g.status != StatusRunning {
		return EventNone
	}

	g.heading = g.pending
	dx, dy := g.heading.Delta()
	next := g.snake.Head().Add(dx, dy)

	if g.cfg.WallWrapping() {
		next.X = physics.Wrap(next.X, g.cfg.Width())
		next.Y = physics.Wrap(next.Y, g.cfg.Height())
	} else if !g.grid.InBounds(next.X, next.Y) {
		g.finish(StatusGameOver)
		return EventGameOver
	}

	// The tail leaves its cell this step unless the snake grows, and growth
	// only happens on food, which never sits on the snake.
	if g.grid.Occupied(next.X, next.Y) && next != g.snake.Tail() {
		g.finish(StatusGameOver)
		return EventGameOver
	}

	if g.hasFood && next == g.food {
		g.snake.PushFront(next)
		g.grid.Set(next.X, next.Y)
		g.score += PointsPerFood
		if !g.placeFood() {
			g.finish(StatusWon)
			return EventWon
		}
		return EventFoodEaten
	}

	tail := g.snake.PopBack()
	g.grid.Unset(tail.X, tail.Y)
	g.snake.PushFront(next)
	g.grid.Set(next.X, next.Y)
	return EventMoved
}

// occupy appends a segment at the tail end.
func (g *Game) occupy(p Position) {
	g.snake.PushBack(p)
	g.grid.Set(p.X, p.Y)
}

// placeFood puts food on a random free cell. It returns false when the
// board has no free cell left.
func (g *Game) placeFood() bool {
	free := g.grid.Free()
	if free == 0 {
		g.hasFood = false
		return false
	}
	n := g.picker.Pick(free)
	if n < 0 || n >= free {
		n = 0
	}
	col, row, _ := g.grid.NthFree(n)
	g.food = Position{X: col, Y: row}
	g.hasFood = true
	return true
}

func (g *Game) finish(s Status) {
	g.status = s
	if g.score > g.best {
		g.best = g.score
	}
}

func (g *Game) Config() Config { return g.cfg }
func (g *Game) Status() Status { return g.status }
func (g *Game) Score() int { return g.score }
func (g *Game) HighScore() int { return g.best }
func (g *Game) Heading() Direction { return g.heading }
func (g *Game) Head() Position { return g.snake.Head() }
func (g *Game) Len() int { return g.snake.Len() }
func (g *Game) Food() (Position, bool) { return g.food, g.hasFood }

// Snake returns a copy of the segments, head first.
func (g *Game) Snake() []Position {
	return g.snake.Slice()
}
