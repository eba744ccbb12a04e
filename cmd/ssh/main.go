// Command ssh serves the game over SSH. Every connection plays its own
// independent session.
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

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomz197/horde/internal/audio"
	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/loop"
	"github.com/tomz197/horde/internal/telemetry"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "horde-ssh",
	})

	if err := config.LoadDotEnv(); err != nil {
		logger.Debug("no .env loaded", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("invalid configuration values, using defaults for them", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	workingDir, err := os.Getwd()
	if err != nil {
		logger.Warn("failed to get working directory", "err", err)
	}
	logger.Info("SSH config", "host", cfg.SSH.Host, "port", cfg.SSH.Port, "hostKey", cfg.SSH.HostKey, "workingDir", workingDir)

	// Sessions stop on this context; the SSH server shuts down after them.
	gameCtx, stopGames := context.WithCancel(context.Background())
	defer stopGames()

	tracer := telemetry.NoopTracer()
	shutdownTracing, err := telemetry.Setup(gameCtx, cfg.OTLP)
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
	case err != nil:
		logger.Warn("tracing disabled", "err", err)
	default:
		tracer = telemetry.Tracer("horde-ssh")
		defer func() {
			if err := shutdownTracing(context.Background()); err != nil {
				logger.Warn("tracing shutdown", "err", err)
			}
		}()
	}

	games := &gameHandler{
		ctx:    gameCtx,
		cfg:    cfg,
		logger: logger,
		tracer: tracer,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// TCP_NODELAY keeps input latency down.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "active", games.active())
	stopGames()

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownGrace)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	games.wait()
}

// gameHandler runs one loop.Session per SSH connection.
type gameHandler struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger
	tracer trace.Tracer

	mu       sync.Mutex
	sessions int
	wg       sync.WaitGroup
}

func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		id := uuid.NewString()
		logger := g.logger.With("session", id)
		logger.Info("new game session", "user", sess.User(), "term", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		g.track(1)
		defer g.track(-1)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(g.ctx)
		defer cancel()
		go func() {
			select {
			case <-sess.Context().Done():
				cancel()
			case <-ctx.Done():
			}
		}()

		session := loop.NewSession(input.StartStream(bufio.NewReader(sess)), sess, loop.Options{
			ID:       id,
			Config:   g.cfg,
			Logger:   g.logger,
			Tracer:   g.tracer,
			Cues:     audio.BellCues(sess),
			TermSize: sizeTracker.getSize,
		})
		if err := session.Run(ctx); err != nil {
			logger.Error("game error", "user", sess.User(), "err", err)
		}

		logger.Info("session ended", "user", sess.User())
		next(sess)
	}
}

func (g *gameHandler) track(delta int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions += delta
	g.wg.Add(delta)
}

func (g *gameHandler) active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sessions
}

func (g *gameHandler) wait() {
	g.wg.Wait()
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

var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
