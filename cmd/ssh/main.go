package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/tomz197/snake/internal/config"
	"github.com/tomz197/snake/internal/draw"
	"github.com/tomz197/snake/internal/game"
	"github.com/tomz197/snake/internal/input"
	"github.com/tomz197/snake/internal/loop"
	loopconfig "github.com/tomz197/snake/internal/loop/config"
	"github.com/tomz197/snake/internal/sound"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-ssh",
	})

	if err := config.LoadDotEnv(); err != nil {
		logger.Fatal("failed to load .env", "err", err)
	}

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	settings := config.SettingsFromEnv()
	// Sessions never get synthesized tones; the audio device is the server's.
	settings.Tone = false
	if _, err := settings.GameConfig(); err != nil {
		logger.Fatal("invalid game configuration", "err", err)
	}
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath,
		"board", fmt.Sprintf("%dx%d", settings.Width, settings.Height))

	// Cancelled on shutdown; every running game ends with it.
	gamesCtx, stopGames := context.WithCancel(context.Background())
	defer stopGames()
	h := &handler{ctx: gamesCtx, settings: settings, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	stopGames()
	if !h.wait(loopconfig.ShutdownGrace) {
		logger.Warn("sessions still open after grace period", "grace", loopconfig.ShutdownGrace)
	}

	ctx, cancel := context.WithTimeout(context.Background(), loopconfig.ShutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	ctx      context.Context
	settings config.Settings
	logger   *log.Logger
	sessions sync.WaitGroup
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		h.sessions.Add(1)
		defer h.sessions.Done()

		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := h.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("New game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		if err := h.play(sess, sizeTracker, logger); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("game error", "err", err)
		}
		if h.ctx.Err() != nil {
			fmt.Fprint(sess, "Server is shutting down.\r\n")
		}
		fmt.Fprint(sess, "Thanks for playing Snake!\r\n")

		logger.Info("Session ended")
		next(sess)
	}
}

func (h *handler) play(sess ssh.Session, sizes *sizeTracker, logger *log.Logger) error {
	cfg, err := h.settings.GameConfig()
	if err != nil {
		return err
	}

	// Session output goes over the wire; pick a profile instead of probing
	// the server's own terminal.
	r := lipgloss.NewRenderer(sess)
	if cfg.ColorsEnabled() {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	screen := loop.NewScreen(sess, cfg, loop.ScreenOptions{
		TermSizeFunc: sizes.getSize,
		Renderer:     r,
	})
	screen.Start()
	defer screen.Close()

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()
	stopAfter := context.AfterFunc(h.ctx, cancel)
	defer stopAfter()

	stream := input.StartStream(bufio.NewReader(sess))
	snd := sound.New(cfg.SoundEnabled(), false, sess, logger)
	l := loop.New(game.New(cfg), stream, screen, snd, loop.Options{
		Tick:        h.settings.Tick,
		IdleTimeout: loopconfig.InactivityDisconnectUser,
		Logger:      logger,
	})
	return l.Run(ctx)
}

// wait blocks until every session has ended or timeout passes. It reports
// whether all sessions ended.
func (h *handler) wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
