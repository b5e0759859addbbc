package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop"
	"github.com/tomz197/snake/internal/sound"
	"github.com/tomz197/snake/internal/tui"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		return 1
	}

	s := config.SettingsFromEnv()
	flag.IntVar(&s.Width, "width", s.Width, "board width in cells")
	flag.IntVar(&s.Height, "height", s.Height, "board height in cells")
	flag.BoolVar(&s.SolidWalls, "solid-walls", s.SolidWalls, "end the game at the walls instead of wrapping")
	flag.BoolVar(&s.NoSound, "no-sound", s.NoSound, "disable sound")
	flag.BoolVar(&s.NoColor, "no-color", s.NoColor, "disable colors")
	flag.BoolVar(&s.Tone, "tone", s.Tone, "play synthesized tones instead of the terminal bell")
	flag.DurationVar(&s.Tick, "tick", s.Tick, "time between snake steps")
	backend := flag.String("backend", config.GetEnv("SNAKE_BACKEND", "ansi"), "terminal backend: ansi or tcell")
	logFile := flag.String("log", config.GetEnv("SNAKE_LOG_FILE", ""), "write logs to this file")
	flag.Parse()

	cfg, err := s.GameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 1
	}
	if *backend != "ansi" && *backend != "tcell" {
		fmt.Fprintf(os.Stderr, "unknown backend %q, want ansi or tcell\n", *backend)
		return 1
	}

	logger, closeLog, err := newLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{Tick: s.Tick, Logger: logger}
	logger.Info("starting", "backend", *backend, "width", cfg.Width(), "height", cfg.Height(), "wrap", cfg.WallWrapping())

	if *backend == "tcell" {
		err = runTcell(ctx, cfg, s.Tone, opts)
	} else {
		err = runANSI(ctx, cfg, s.Tone, opts)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		return 1
	}

	fmt.Println("Thanks for playing Snake!")
	return 0
}

func runANSI(ctx context.Context, cfg game.Config, tone bool, opts loop.Options) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	screen := loop.NewScreen(os.Stdout, cfg, loop.ScreenOptions{})
	screen.Start()
	defer screen.Close()

	stream := input.StartStream(bufio.NewReader(os.Stdin))
	snd := sound.New(cfg.SoundEnabled(), tone, os.Stdout, opts.Logger)
	return loop.New(game.New(cfg), stream, screen, snd, opts).Run(ctx)
}

func runTcell(ctx context.Context, cfg game.Config, tone bool, opts loop.Options) error {
	screen, err := tui.New(cfg)
	if err != nil {
		return err
	}
	defer screen.Close()

	snd := sound.New(cfg.SoundEnabled(), tone, screen.Bell(), opts.Logger)
	return loop.New(game.New(cfg), screen, screen, snd, opts).Run(ctx)
}

// newLogger writes to path, or discards everything when path is empty. The
// terminal itself is busy drawing the game.
func newLogger(path string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(config.GetEnv("SNAKE_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}
