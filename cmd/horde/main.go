// Command horde plays the game in the local terminal.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/term"

	"github.com/tomz197/horde/internal/audio"
	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/feedback"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/loop"
	"github.com/tomz197/horde/internal/telemetry"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "horde",
	})

	if err := config.LoadDotEnv(); err != nil {
		logger.Debug("no .env loaded", "err", err)
	}
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("invalid configuration values, using defaults for them", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := telemetry.NoopTracer()
	shutdown, err := telemetry.Setup(ctx, cfg.OTLP)
	switch {
	case errors.Is(err, telemetry.ErrDisabled):
	case err != nil:
		logger.Warn("tracing disabled", "err", err)
	default:
		tracer = telemetry.Tracer("horde")
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Warn("tracing shutdown", "err", err)
			}
		}()
	}

	cues := audio.BellCues(os.Stdout)
	if cfg.Audio {
		sm := audio.NewSoundManager()
		if err := sm.Init(); err != nil {
			logger.Warn("audio unavailable, falling back to the terminal bell", "err", err)
		} else {
			defer sm.Close()
			cues = sm.Cues()
		}
	}

	if err := run(ctx, cfg, logger, tracer, cues); err != nil {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger, tracer trace.Tracer, cues feedback.Cues) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	session := loop.NewSession(input.StartStream(bufio.NewReader(os.Stdin)), os.Stdout, loop.Options{
		ID:     "local",
		Config: cfg,
		Logger: logger,
		Tracer: tracer,
		Cues:   cues,
	})
	return session.Run(ctx)
}
