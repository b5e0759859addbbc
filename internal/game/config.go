package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a board cannot be built from the given settings.
var ErrInvalidConfig = errors.New("invalid game configuration")

// Color is a hex color string such as "#00ff00".
type Color string

// Default colors, used when colors are enabled but not overridden.
const (
	DefaultSnakeColor  Color = "#00d75f"
	DefaultFoodColor   Color = "#ff5f5f"
	DefaultBorderColor Color = "#5fd7ff"
)

// Config holds immutable game settings. Build one with NewConfig and the
// With* setters, which return modified copies.
type Config struct {
	width         int
	height        int
	soundEnabled  bool
	colorsEnabled bool
	wallWrapping  bool
	snakeColor    Color
	foodColor     Color
	borderColor   Color
}

// NewConfig returns a config for a width x height board with sound, colors
// and wall wrapping disabled.
func NewConfig(width, height int) (Config, error) {
	if width <= 0 || height <= 0 {
		return Config{}, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, width, height)
	}
	return Config{
		width:       width,
		height:      height,
		snakeColor:  DefaultSnakeColor,
		foodColor:   DefaultFoodColor,
		borderColor: DefaultBorderColor,
	}, nil
}

func (c Config) WithSound(enabled bool) Config {
	c.soundEnabled = enabled
	return c
}

func (c Config) WithColors(enabled bool) Config {
	c.colorsEnabled = enabled
	return c
}

func (c Config) WithWallWrapping(enabled bool) Config {
	c.wallWrapping = enabled
	return c
}

func (c Config) WithSnakeColor(color Color) Config {
	c.snakeColor = color
	return c
}

func (c Config) WithFoodColor(color Color) Config {
	c.foodColor = color
	return c
}

func (c Config) WithBorderColor(color Color) Config {
	c.borderColor = color
	return c
}

func (c Config) Width() int { return c.width }
func (c Config) Height() int { return c.height }
func (c Config) SoundEnabled() bool { return c.soundEnabled }
func (c Config) ColorsEnabled() bool { return c.colorsEnabled }
func (c Config) WallWrapping() bool { return c.wallWrapping }
func (c Config) SnakeColor() Color { return c.snakeColor }
func (c Config) FoodColor() Color { return c.foodColor }
func (c Config) BorderColor() Color { return c.borderColor }
