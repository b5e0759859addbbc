package config

import (
	"fmt"
	"time"

	"github.com/tomz197/snake/internal/game"
	loopconfig "github.com/tomz197/snake/internal/loop/config"
)

// Settings are the user-facing options shared by every binary. Both the
// environment and command-line flags fill the same struct.
type Settings struct {
	Width       int
	Height      int
	SolidWalls  bool
	NoSound     bool
	NoColor     bool
	Tone        bool
	Tick        time.Duration
	SnakeColor  string
	FoodColor   string
	BorderColor string
}

// SettingsFromEnv reads SNAKE_* variables, falling back to the defaults.
func SettingsFromEnv() Settings {
	return Settings{
		Width:       GetEnvInt("SNAKE_WIDTH", loopconfig.DefaultBoardWidth),
		Height:      GetEnvInt("SNAKE_HEIGHT", loopconfig.DefaultBoardHeight),
		SolidWalls:  GetEnvBool("SNAKE_SOLID_WALLS", false),
		NoSound:     GetEnvBool("SNAKE_NO_SOUND", false),
		NoColor:     GetEnvBool("SNAKE_NO_COLOR", false),
		Tone:        GetEnvBool("SNAKE_TONE", false),
		Tick:        GetEnvDuration("SNAKE_TICK", loopconfig.TickDuration),
		SnakeColor:  GetEnv("SNAKE_SNAKE_COLOR", string(game.DefaultSnakeColor)),
		FoodColor:   GetEnv("SNAKE_FOOD_COLOR", string(game.DefaultFoodColor)),
		BorderColor: GetEnv("SNAKE_BORDER_COLOR", string(game.DefaultBorderColor)),
	}
}

// GameConfig validates s and builds the engine configuration.
func (s Settings) GameConfig() (game.Config, error) {
	if s.Tick <= 0 {
		return game.Config{}, fmt.Errorf("%w: tick must be positive, got %s", game.ErrInvalidConfig, s.Tick)
	}
	cfg, err := game.NewConfig(s.Width, s.Height)
	if err != nil {
		return game.Config{}, err
	}
	return cfg.
		WithSound(!s.NoSound).
		WithColors(!s.NoColor).
		WithWallWrapping(!s.SolidWalls).
		WithSnakeColor(game.Color(s.SnakeColor)).
		WithFoodColor(game.Color(s.FoodColor)).
		WithBorderColor(game.Color(s.BorderColor)), nil
}
