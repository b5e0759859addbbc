package config

import (
	"errors"
	"testing"
	"time"

	"github.com/tomz197/snake/internal/game"
	loopconfig "github.com/tomz197/snake/internal/loop/config"
)

func TestSettingsDefaults(t *testing.T) {
	s := SettingsFromEnv()
	if s.Width != loopconfig.DefaultBoardWidth || s.Height != loopconfig.DefaultBoardHeight {
		t.Errorf("board = %dx%d, want %dx%d", s.Width, s.Height, loopconfig.DefaultBoardWidth, loopconfig.DefaultBoardHeight)
	}
	if s.Tick != loopconfig.TickDuration {
		t.Errorf("tick = %s, want %s", s.Tick, loopconfig.TickDuration)
	}

	cfg, err := s.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if !cfg.WallWrapping() || !cfg.SoundEnabled() || !cfg.ColorsEnabled() {
		t.Error("defaults should wrap, play sound and use colors")
	}
	if cfg.SnakeColor() != game.DefaultSnakeColor {
		t.Errorf("snake color = %q, want %q", cfg.SnakeColor(), game.DefaultSnakeColor)
	}
}

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("SNAKE_WIDTH", "12")
	t.Setenv("SNAKE_HEIGHT", "8")
	t.Setenv("SNAKE_SOLID_WALLS", "yes")
	t.Setenv("SNAKE_NO_SOUND", "1")
	t.Setenv("SNAKE_NO_COLOR", "true")
	t.Setenv("SNAKE_TICK", "150ms")
	t.Setenv("SNAKE_BORDER_COLOR", "#ffffff")

	s := SettingsFromEnv()
	if s.Tick != 150*time.Millisecond {
		t.Errorf("tick = %s, want 150ms", s.Tick)
	}
	cfg, err := s.GameConfig()
	if err != nil {
		t.Fatalf("GameConfig: %v", err)
	}
	if cfg.Width() != 12 || cfg.Height() != 8 {
		t.Errorf("board = %dx%d, want 12x8", cfg.Width(), cfg.Height())
	}
	if cfg.WallWrapping() || cfg.SoundEnabled() || cfg.ColorsEnabled() {
		t.Error("env switches were not applied")
	}
	if cfg.BorderColor() != "#ffffff" {
		t.Errorf("border color = %q", cfg.BorderColor())
	}
}

func TestSettingsRejectInvalid(t *testing.T) {
	tests := []struct {
		name string
		s    Settings
	}{
		{"zero width", Settings{Width: 0, Height: 5, Tick: time.Second}},
		{"negative height", Settings{Width: 5, Height: -1, Tick: time.Second}},
		{"zero tick", Settings{Width: 5, Height: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.s.GameConfig(); !errors.Is(err, game.ErrInvalidConfig) {
				t.Errorf("GameConfig error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
