package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
)

type firstFree struct{}

func (firstFree) Pick(int) int { return 0 }

func newSim(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	cfg, err := game.NewConfig(10, 6)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim, cfg)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(s.Close)
	return s, sim, game.New(cfg, game.WithPicker(firstFree{}))
}

func contents(sim tcell.SimulationScreen) (string, func(x, y int) rune) {
	cells, w, h := sim.GetContents()
	at := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.WriteRune(at(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String(), at
}

func TestKeysBecomeCommands(t *testing.T) {
	s, sim, _ := newSim(t, 80, 30)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone) // unmapped
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	want := []input.Command{input.MoveUp, input.MoveLeft, input.Pause, input.Quit}
	for i, w := range want {
		got, ok := s.Poll(time.Second)
		if !ok || got != w {
			t.Fatalf("command %d = %v (ok=%v), want %v", i, got, ok, w)
		}
	}
	if _, ok := s.Poll(10 * time.Millisecond); ok {
		t.Error("Poll returned a command with nothing pending")
	}
}

func TestPollAfterCloseQuits(t *testing.T) {
	s, _, _ := newSim(t, 80, 30)
	s.Close()
	if cmd, ok := s.Poll(time.Second); !ok || cmd != input.Quit {
		t.Errorf("Poll after Close = %v, %v; want quit", cmd, ok)
	}
}

func TestDrawBoard(t *testing.T) {
	s, sim, g := newSim(t, 80, 30)
	if err := s.Draw(g.View()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	frame, at := contents(sim)

	left, top := 17, 7
	if r := at(left+1+5*draw.CellWidth, top+1+3); r != draw.GlyphHead {
		t.Errorf("head cell = %q", r)
	}
	if r := at(left+1, top+1); r != draw.GlyphFood {
		t.Errorf("food cell = %q", r)
	}
	for _, want := range []string{"Snake", "Score:", "Controls"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame is missing %q", want)
		}
	}
}

func TestDrawOverlayAndTooSmall(t *testing.T) {
	s, sim, g := newSim(t, 80, 30)
	g.TogglePause()
	if err := s.Draw(g.View()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if frame, _ := contents(sim); !strings.Contains(frame, "PAUSED") {
		t.Error("paused game has no overlay")
	}

	sim.SetSize(20, 8)
	if err := s.Draw(g.View()); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if frame, _ := contents(sim); !strings.Contains(frame, "too small") {
		t.Errorf("frame:\n%s", frame)
	}
}

func TestBellWriter(t *testing.T) {
	s, _, _ := newSim(t, 80, 30)
	n, err := s.Bell().Write([]byte("\a\a"))
	if err != nil || n != 2 {
		t.Errorf("Write = %d, %v; want 2, nil", n, err)
	}
}
