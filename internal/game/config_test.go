package game

import (
	"errors"
	"testing"
)

func TestNewConfigRejectsEmptyBoard(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{0, 10},
		{10, 0},
		{-1, 5},
		{0, 0},
	}
	for _, tt := range tests {
		_, err := NewConfig(tt.width, tt.height)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("NewConfig(%d, %d) error = %v, want ErrInvalidConfig", tt.width, tt.height, err)
		}
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(30, 20)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Width() != 30 || cfg.Height() != 20 {
		t.Errorf("size = %dx%d, want 30x20", cfg.Width(), cfg.Height())
	}
	if cfg.SoundEnabled() || cfg.ColorsEnabled() || cfg.WallWrapping() {
		t.Error("sound, colors and wrapping should default to off")
	}
	if cfg.SnakeColor() != DefaultSnakeColor || cfg.FoodColor() != DefaultFoodColor || cfg.BorderColor() != DefaultBorderColor {
		t.Error("default colors not set")
	}
}

func TestConfigSettersReturnCopies(t *testing.T) {
	base, _ := NewConfig(8, 8)
	cfg := base.
		WithSound(true).
		WithColors(true).
		WithWallWrapping(true).
		WithSnakeColor("#112233").
		WithFoodColor("#445566").
		WithBorderColor("#778899")

	if !cfg.SoundEnabled() || !cfg.ColorsEnabled() || !cfg.WallWrapping() {
		t.Error("setters did not apply")
	}
	if cfg.SnakeColor() != "#112233" || cfg.FoodColor() != "#445566" || cfg.BorderColor() != "#778899" {
		t.Error("color setters did not apply")
	}
	if base.SoundEnabled() || base.WallWrapping() || base.SnakeColor() != DefaultSnakeColor {
		t.Error("setters modified the original config")
	}
}

func TestRandomPickerStaysInRange(t *testing.T) {
	p := NewRandomPicker(1)
	for n := 1; n < 50; n++ {
		for i := 0; i < 20; i++ {
			if got := p.Pick(n); got < 0 || got >= n {
				t.Fatalf("Pick(%d) = %d out of range", n, got)
			}
		}
	}
}

func TestRandomPickerIsSeeded(t *testing.T) {
	a, b := NewRandomPicker(99), NewRandomPicker(99)
	for i := 0; i < 20; i++ {
		if x, y := a.Pick(1000), b.Pick(1000); x != y {
			t.Fatalf("same seed diverged at %d: %d != %d", i, x, y)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		dx, dy := d.Delta()
		ox, oy := want.Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v deltas do not cancel", d, want)
		}
	}
}
