// Package tui is a full-screen backend built on tcell. It is both the input
// source and the renderer for a local game, and is an alternative to the
// plain ANSI screen when the terminal is better served by terminfo.
package tui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop/config"
)

// Screen wraps a tcell screen.
type Screen struct {
	screen  tcell.Screen
	cmds    chan input.Command
	quit    chan struct{}
	resized atomic.Bool
	once    sync.Once
	styles  styles
}

type styles struct {
	plain  tcell.Style
	border tcell.Style
	head   tcell.Style
	body   tcell.Style
	food   tcell.Style
	value  tcell.Style
	alert  tcell.Style
}

func newStyles(cfg game.Config) styles {
	plain := tcell.StyleDefault
	bold := plain.Bold(true)
	st := styles{
		plain:  plain,
		border: plain,
		head:   bold,
		body:   plain,
		food:   bold,
		value:  bold,
		alert:  bold,
	}
	if !cfg.ColorsEnabled() {
		return st
	}
	st.border = plain.Foreground(tcell.GetColor(string(cfg.BorderColor())))
	st.head = bold.Foreground(tcell.GetColor(string(cfg.SnakeColor())))
	st.body = plain.Foreground(tcell.GetColor(string(cfg.SnakeColor())))
	st.food = bold.Foreground(tcell.GetColor(string(cfg.FoodColor())))
	st.value = bold.Foreground(tcell.ColorGold)
	st.alert = bold.Foreground(tcell.ColorRed)
	return st
}

// New opens the controlling terminal.
func New(cfg game.Config) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewWithScreen(s, cfg)
}

// NewWithScreen initializes s and starts reading its events.
func NewWithScreen(s tcell.Screen, cfg game.Config) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	s.HideCursor()
	s.Clear()

	sc := &Screen{
		screen: s,
		cmds:   make(chan input.Command, 32),
		quit:   make(chan struct{}),
		styles: newStyles(cfg),
	}
	go sc.readEvents()
	return sc, nil
}

// readEvents forwards key presses until the screen is finalized.
func (s *Screen) readEvents() {
	defer close(s.cmds)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			s.resized.Store(true)
		case *tcell.EventKey:
			cmd := keyCommand(e)
			if cmd == input.None {
				continue
			}
			select {
			case s.cmds <- cmd:
			case <-s.quit:
				return
			}
		}
	}
}

func keyCommand(e *tcell.EventKey) input.Command {
	switch e.Key() {
	case tcell.KeyUp:
		return input.MoveUp
	case tcell.KeyDown:
		return input.MoveDown
	case tcell.KeyLeft:
		return input.MoveLeft
	case tcell.KeyRight:
		return input.MoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		return input.RuneCommand(e.Rune())
	}
	return input.None
}

// Poll waits up to timeout for a command. After Close it always returns Quit.
func (s *Screen) Poll(timeout time.Duration) (input.Command, bool) {
	if timeout <= 0 {
		select {
		case cmd, ok := <-s.cmds:
			return received(cmd, ok)
		default:
			return input.None, false
		}
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case cmd, ok := <-s.cmds:
		return received(cmd, ok)
	case <-t.C:
		return input.None, false
	}
}

func received(cmd input.Command, ok bool) (input.Command, bool) {
	if !ok {
		return input.Quit, true
	}
	return cmd, true
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}

// Draw renders v.
func (s *Screen) Draw(v game.View) error {
	if s.resized.Swap(false) {
		s.screen.Sync()
	}
	s.screen.Clear()

	tw, th := s.screen.Size()
	boardW := v.Width()*draw.CellWidth + 2
	boardH := v.Height() + 2
	needW := boardW + config.SidePanelWidth
	needH := max(boardH, config.StatsHeight+config.ControlsHeight)

	if tw < needW || th < needH {
		s.centered(tw/2, th/2-1, "Terminal too small", s.styles.alert)
		s.centered(tw/2, th/2, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, tw, th), s.styles.plain)
	} else {
		left := (tw - needW) / 2
		top := (th - needH) / 2
		s.drawBoard(v, left, top, boardW, boardH)
		s.drawPanel(v, left+boardW, top)
		s.drawOverlay(v, left+boardW/2, top+boardH/2)
	}

	s.screen.Show()
	return nil
}

func (s *Screen) drawBoard(v game.View, left, top, boardW, boardH int) {
	s.box(left, top, boardW, boardH, "Snake", s.styles.border)
	cell := func(p game.Position) (int, int) {
		return left + 1 + p.X*draw.CellWidth, top + 1 + p.Y
	}
	if v.HasFood {
		x, y := cell(v.Food)
		s.screen.SetContent(x, y, draw.GlyphFood, nil, s.styles.food)
	}
	for i := len(v.Snake) - 1; i > 0; i-- {
		x, y := cell(v.Snake[i])
		s.screen.SetContent(x, y, draw.GlyphBody, nil, s.styles.body)
	}
	if len(v.Snake) > 0 {
		x, y := cell(v.Snake[0])
		s.screen.SetContent(x, y, draw.GlyphHead, nil, s.styles.head)
	}
}

func (s *Screen) drawPanel(v game.View, col, row int) {
	s.box(col, row, config.SidePanelWidth, config.StatsHeight, "Stats", s.styles.border)
	stats := [][2]string{
		{"Score:", fmt.Sprint(v.Score)},
		{"High Score:", fmt.Sprint(v.HighScore)},
		{"Length:", fmt.Sprint(len(v.Snake))},
		{"State:", v.Status.String()},
	}
	for i, kv := range stats {
		s.text(col+2, row+1+i, kv[0], s.styles.plain)
		s.text(col+14, row+1+i, kv[1], s.styles.value)
	}

	row += config.StatsHeight
	s.box(col, row, config.SidePanelWidth, config.ControlsHeight, "Controls", s.styles.border)
	for i, line := range draw.ControlLines {
		s.text(col+2, row+1+i, line, s.styles.plain)
	}
}

func (s *Screen) drawOverlay(v game.View, cx, cy int) {
	var title, hint string
	switch v.Status {
	case game.StatusPaused:
		title, hint = "PAUSED", "Press Space to resume"
	case game.StatusGameOver:
		title, hint = "GAME OVER", fmt.Sprintf("Score %d  R restart  Q quit", v.Score)
	case game.StatusWon:
		title, hint = "YOU WIN", fmt.Sprintf("Score %d  R restart  Q quit", v.Score)
	default:
		return
	}
	w := len([]rune(hint)) + 4
	col := cx - w/2
	for y := cy - 1; y <= cy+1; y++ {
		for x := col; x < col+w; x++ {
			s.screen.SetContent(x, y, ' ', nil, s.styles.plain)
		}
	}
	s.box(col, cy-1, w, 3, title, s.styles.alert)
	s.centered(cx, cy, hint, s.styles.plain)
}

func (s *Screen) text(x, y int, str string, st tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (s *Screen) centered(cx, y int, str string, st tcell.Style) {
	s.text(cx-len([]rune(str))/2, y, str, st)
}

func (s *Screen) box(x, y, w, h int, title string, st tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	right, bottom := x+w-1, y+h-1
	for i := x + 1; i < right; i++ {
		s.screen.SetContent(i, y, tcell.RuneHLine, nil, st)
		s.screen.SetContent(i, bottom, tcell.RuneHLine, nil, st)
	}
	for j := y + 1; j < bottom; j++ {
		s.screen.SetContent(x, j, tcell.RuneVLine, nil, st)
		s.screen.SetContent(right, j, tcell.RuneVLine, nil, st)
	}
	s.screen.SetContent(x, y, tcell.RuneULCorner, nil, st)
	s.screen.SetContent(right, y, tcell.RuneURCorner, nil, st)
	s.screen.SetContent(x, bottom, tcell.RuneLLCorner, nil, st)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, st)
	if title != "" && len([]rune(title))+4 < w {
		s.text(x+2, y, " "+title+" ", st)
	}
}

// Bell returns a writer that beeps the terminal for every BEL byte written to
// it, for use with sound.Bell while tcell owns the terminal.
func (s *Screen) Bell() io.Writer {
	return beeper{s.screen}
}

type beeper struct {
	screen tcell.Screen
}

func (b beeper) Write(p []byte) (int, error) {
	for _, c := range p {
		if c != '\a' {
			continue
		}
		if err := b.screen.Beep(); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}
