package sound

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/game"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestBellCounts(t *testing.T) {
	tests := []struct {
		ev   game.Event
		want int
	}{
		{game.EventFoodEaten, 1},
		{game.EventWon, 2},
		{game.EventGameOver, 3},
		{game.EventMoved, 0},
		{game.EventNone, 0},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		b := NewBell(&buf, quietLogger())
		b.gap = 0
		b.Notify(tt.ev)
		if got := strings.Count(buf.String(), "\a"); got != tt.want {
			t.Errorf("%v: %d bells, want %d", tt.ev, got, tt.want)
		}
	}
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("no terminal")
}

func TestBellSwallowsWriteErrors(t *testing.T) {
	w := &failingWriter{}
	b := NewBell(w, quietLogger())
	b.gap = 0
	b.Notify(game.EventGameOver)
	if w.writes != 1 {
		t.Errorf("bell kept writing after a failure: %d writes", w.writes)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	if _, ok := New(false, true, io.Discard, quietLogger()).(Nop); !ok {
		t.Error("disabled sound should be Nop")
	}
	if _, ok := New(true, false, io.Discard, quietLogger()).(*Bell); !ok {
		t.Error("enabled sound without tone should be Bell")
	}
	switch New(true, true, io.Discard, quietLogger()).(type) {
	case *Bell, *Tone:
	default:
		t.Error("tone request should yield Tone or fall back to Bell")
	}
}

func TestCuesAreRendered(t *testing.T) {
	c := cues()
	for _, ev := range []game.Event{game.EventFoodEaten, game.EventGameOver, game.EventWon} {
		buf, ok := c[ev]
		if !ok || len(buf) == 0 {
			t.Errorf("no cue for %v", ev)
			continue
		}
		if len(buf)%frameBytes != 0 {
			t.Errorf("%v: buffer length %d not frame aligned", ev, len(buf))
		}
	}
	if _, ok := c[game.EventMoved]; ok {
		t.Error("moving should be silent")
	}
}

func TestSamplesStayInRange(t *testing.T) {
	buf := genGameOver()
	for off := 0; off+4 <= len(buf); off += 4 {
		bits := uint32(buf[off]) | uint32(buf[off+1])<<8 | uint32(buf[off+2])<<16 | uint32(buf[off+3])<<24
		s := math.Float32frombits(bits)
		if s < -1 || s > 1 || math.IsNaN(float64(s)) {
			t.Fatalf("sample %v at byte %d out of range", s, off)
		}
	}
}

func TestADSR(t *testing.T) {
	if got := adsr(0, 0.1, 0.2, 0.5, 0.2); got != 0 {
		t.Errorf("start = %v, want 0", got)
	}
	if got := adsr(0.1, 0.1, 0.2, 0.5, 0.2); got != 1 {
		t.Errorf("peak = %v, want 1", got)
	}
	if got := adsr(0.5, 0.1, 0.2, 0.5, 0.2); got != 0.5 {
		t.Errorf("sustain = %v, want 0.5", got)
	}
	if got := adsr(1, 0.1, 0.2, 0.5, 0.2); got != 0 {
		t.Errorf("end = %v, want 0", got)
	}
}
