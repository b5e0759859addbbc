// Package config centralizes all tunable game parameters.
package config

import "time"

// Board defaults, used when no flag or environment variable overrides them.
const (
	DefaultBoardWidth  = 30
	DefaultBoardHeight = 20
)

// Timing
const (
	TickDuration = 100 * time.Millisecond // one snake step
)

// Input
const (
	MaxQueuedTurns = 2 // turns buffered for the following ticks
)

// Layout
const (
	SidePanelWidth = 24 // stats and controls column, including borders
	StatsHeight    = 7
	ControlsHeight = 8
)

// Inactivity (SSH sessions)
const (
	InactivityDisconnectUser = 120 * time.Second
)

// Shutdown
const (
	ShutdownGrace   = 15 * time.Second // time given to sessions to finish
	ShutdownTimeout = 5 * time.Second  // SSH server shutdown deadline
)
