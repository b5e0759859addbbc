package game

// View is a read-only snapshot of a game for renderers. It shares no memory
// with the Game it was taken from.
type View struct {
	Config    Config
	Snake     []Position // head first
	Food      Position
	HasFood   bool
	Score     int
	HighScore int
	Status    Status
	Heading   Direction
}

// View returns a snapshot of the current state.
func (g *Game) View() View {
	return View{
		Config:    g.cfg,
		Snake:     g.snake.Slice(),
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.score,
		HighScore: g.best,
		Status:    g.status,
		Heading:   g.heading,
	}
}

// Width returns the board width.
func (v View) Width() int {
	return v.Config.Width()
}

// Height returns the board height.
func (v View) Height() int {
	return v.Config.Height()
}
