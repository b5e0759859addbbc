package loop

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/loop/config"
)

// ScreenOptions configures a Screen.
type ScreenOptions struct {
	TermSizeFunc draw.TermSizeFunc
	// Renderer decides the color profile. Nil detects it from the writer.
	Renderer *lipgloss.Renderer
}

// Screen renders games as ANSI text. The frame is diffed against the previous
// one so only changed cells are sent.
type Screen struct {
	w        io.Writer
	cw       *draw.ChunkWriter
	canvas   *draw.Canvas
	termSize draw.TermSizeFunc
	styles   styles
}

type styles struct {
	border lipgloss.Style
	head   lipgloss.Style
	body   lipgloss.Style
	food   lipgloss.Style
	label  lipgloss.Style
	score  lipgloss.Style
	best   lipgloss.Style
	length lipgloss.Style
	alert  lipgloss.Style
	plain  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, cfg game.Config) styles {
	plain := r.NewStyle()
	bold := plain.Bold(true)
	st := styles{
		border: plain,
		head:   bold,
		body:   plain,
		food:   bold,
		label:  plain,
		score:  bold,
		best:   bold,
		length: bold,
		alert:  bold,
		plain:  plain,
	}
	if !cfg.ColorsEnabled() {
		return st
	}
	st.border = plain.Foreground(lipgloss.Color(cfg.BorderColor()))
	st.head = bold.Foreground(lipgloss.Color(cfg.SnakeColor()))
	st.body = plain.Foreground(lipgloss.Color(cfg.SnakeColor()))
	st.food = bold.Foreground(lipgloss.Color(cfg.FoodColor()))
	st.label = plain.Foreground(lipgloss.Color("#bcbcbc"))
	st.score = bold.Foreground(lipgloss.Color("#ffd700"))
	st.best = bold.Foreground(lipgloss.Color("#d787ff"))
	st.length = bold.Foreground(lipgloss.Color("#5fd7ff"))
	st.alert = bold.Foreground(lipgloss.Color("#ff5f5f"))
	return st
}

// NewScreen creates a renderer writing to w, styled for cfg.
func NewScreen(w io.Writer, cfg game.Config, opts ScreenOptions) *Screen {
	termSize := opts.TermSizeFunc
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}
	return &Screen{
		w:        w,
		cw:       draw.NewChunkWriter(w, 0, 0),
		canvas:   draw.NewCanvas(0, 0),
		termSize: termSize,
		styles:   newStyles(r, cfg),
	}
}

// Start switches to the alternate screen and hides the cursor.
func (s *Screen) Start() {
	draw.EnterAltScreen(s.w)
	draw.HideCursor(s.w)
	draw.ClearScreen(s.w)
	s.canvas.ForceRedraw()
}

// Close restores the cursor and the main screen.
func (s *Screen) Close() {
	draw.ShowCursor(s.w)
	draw.ExitAltScreen(s.w)
}

// Draw renders v. A terminal resize clears the screen and repaints everything.
func (s *Screen) Draw(v game.View) error {
	tw, th, err := s.termSize()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if tw != s.canvas.Width() || th != s.canvas.Height() {
		draw.ClearScreen(s.cw)
		s.canvas.Resize(tw, th)
	}

	s.canvas.Clear()
	s.layout(v)
	s.canvas.Render(s.cw)
	return s.cw.Flush()
}

func (s *Screen) layout(v game.View) {
	boardW := v.Width()*draw.CellWidth + 2
	boardH := v.Height() + 2
	needW := boardW + config.SidePanelWidth
	needH := max(boardH, config.StatsHeight+config.ControlsHeight)

	tw, th := s.canvas.Width(), s.canvas.Height()
	if tw < needW || th < needH {
		s.drawTooSmall(needW, needH)
		return
	}

	left := (tw - needW) / 2
	top := (th - needH) / 2
	s.drawBoard(v, left, top, boardW, boardH)
	s.drawStats(v, left+boardW, top)
	s.drawControls(left+boardW, top+config.StatsHeight)
	s.drawOverlay(v, left+boardW/2, top+boardH/2)
}

func (s *Screen) drawTooSmall(needW, needH int) {
	tw, th := s.canvas.Width(), s.canvas.Height()
	s.canvas.TextCentered(tw/2, th/2-1, "Terminal too small", s.styles.alert)
	s.canvas.TextCentered(tw/2, th/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, tw, th), s.styles.plain)
	s.canvas.TextCentered(tw/2, th/2+1, "resize or press Q to quit", s.styles.plain)
}

func (s *Screen) drawBoard(v game.View, left, top, boardW, boardH int) {
	s.canvas.Box(left, top, boardW, boardH, "Snake", s.styles.border)

	cell := func(p game.Position) (int, int) {
		return left + 1 + p.X*draw.CellWidth, top + 1 + p.Y
	}
	if v.HasFood {
		col, row := cell(v.Food)
		s.canvas.SetRune(col, row, draw.GlyphFood, s.styles.food)
	}
	// Body first so the head wins if they ever share a cell.
	for i := len(v.Snake) - 1; i > 0; i-- {
		col, row := cell(v.Snake[i])
		s.canvas.SetRune(col, row, draw.GlyphBody, s.styles.body)
	}
	if len(v.Snake) > 0 {
		col, row := cell(v.Snake[0])
		s.canvas.SetRune(col, row, draw.GlyphHead, s.styles.head)
	}
}

func (s *Screen) drawStats(v game.View, col, row int) {
	s.canvas.Box(col, row, config.SidePanelWidth, config.StatsHeight, "Stats", s.styles.border)

	walls := "solid"
	if v.Config.WallWrapping() {
		walls = "wrap"
	}
	lines := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Score:", fmt.Sprint(v.Score), s.styles.score},
		{"High Score:", fmt.Sprint(v.HighScore), s.styles.best},
		{"Length:", fmt.Sprint(len(v.Snake)), s.styles.length},
		{"Walls:", walls, s.styles.plain},
		{"State:", v.Status.String(), s.styles.plain},
	}
	for i, l := range lines {
		s.canvas.Text(col+2, row+1+i, l.label, s.styles.label)
		s.canvas.Text(col+14, row+1+i, l.value, l.style)
	}
}

func (s *Screen) drawControls(col, row int) {
	s.canvas.Box(col, row, config.SidePanelWidth, config.ControlsHeight, "Controls", s.styles.border)
	for i, line := range draw.ControlLines {
		s.canvas.Text(col+2, row+1+i, line, s.styles.plain)
	}
}

// drawOverlay puts a message box centered on (cx, cy) for paused and
// finished games.
func (s *Screen) drawOverlay(v game.View, cx, cy int) {
	var title string
	var lines []string
	switch v.Status {
	case game.StatusPaused:
		title = "PAUSED"
		lines = []string{"Press Space to resume"}
	case game.StatusGameOver:
		title = "GAME OVER"
		lines = []string{fmt.Sprintf("Final Score: %d", v.Score), "", "R restart  Q quit"}
	case game.StatusWon:
		title = "YOU WIN"
		lines = []string{"Board cleared!", fmt.Sprintf("Final Score: %d", v.Score), "", "R restart  Q quit"}
	default:
		return
	}

	inner := len([]rune(title)) + 4
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w := inner + 4
	h := len(lines) + 2
	col := cx - w/2
	row := cy - h/2

	s.canvas.Fill(col, row, w, h)
	s.canvas.Box(col, row, w, h, title, s.styles.alert)
	for i, l := range lines {
		s.canvas.TextCentered(cx, row+1+i, l, s.styles.plain)
	}
}
