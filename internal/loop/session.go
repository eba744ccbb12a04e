// Package loop runs one player's game: the frame loop, the fixed-step world
// simulation and the craft controller that ties them together.
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/tomz197/horde/internal/clock"
	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/craft"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/feedback"
	"github.com/tomz197/horde/internal/hud"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/object"
	"github.com/tomz197/horde/internal/physics"
)

// hudRows is the number of terminal rows above the play area.
const hudRows = 1

// Phase is the session's screen.
type Phase int

const (
	PhaseStart    Phase = iota // Title; the craft is spawned and held
	PhasePlaying               // Simulation running
	PhaseFinished              // Outcome screen
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ControlSource supplies the controls held at the start of each frame.
// *input.Stream implements it.
type ControlSource interface {
	Sample() input.Controls
	Reset()
}

// Options configures a Session. Zero values pick working defaults.
type Options struct {
	ID        string // Session identifier for logs and traces
	Config    config.Config
	Logger    *log.Logger
	Tracer    trace.Tracer
	Cues      feedback.Cues
	TermSize  draw.TermSizeFunc
	Time      clock.TimeProvider
	Ram       craft.RamPredicate
	Collision CollisionHandler // Defaults to DamageOnContact(Config.Game.ContactDamage)
}

// Session is one player's game. It owns its clock, craft controller,
// dispatcher, HUD and world; nothing is shared between sessions.
type Session struct {
	id      string
	cfg     config.Config
	logger  *log.Logger
	tracer  trace.Tracer
	span    trace.Span
	collide CollisionHandler

	clk    *clock.SimClock
	ctrl   *craft.Controller
	disp   *feedback.Dispatcher
	hud    *hud.HUD
	world  *World
	camera *object.Camera

	controls ControlSource
	prev     input.Controls

	w        io.Writer
	cw       *draw.ChunkWriter
	canvas   *draw.Canvas
	termSize draw.TermSizeFunc

	phase   Phase
	acc     time.Duration // Scaled time not yet simulated
	kills   int
	success bool
	running bool
}

// NewSession creates a session reading controls from src and drawing to w.
// The craft is spawned and held on the title screen.
func NewSession(src ControlSource, w io.Writer, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = noop.NewTracerProvider().Tracer("")
	}
	if opts.TermSize == nil {
		opts.TermSize = draw.DefaultTermSizeFunc
	}
	if opts.Collision == nil {
		opts.Collision = DamageOnContact(opts.Config.Game.ContactDamage)
	}

	s := &Session{
		id:       opts.ID,
		cfg:      opts.Config,
		logger:   opts.Logger.With("session", opts.ID),
		tracer:   opts.Tracer,
		span:     trace.SpanFromContext(context.Background()),
		collide:  opts.Collision,
		clk:      clock.New(opts.Time),
		camera:   &object.Camera{},
		controls: src,
		w:        w,
		cw:       draw.NewChunkWriter(w, 0, 0),
		termSize: opts.TermSize,
		running:  true,
	}
	s.ctrl = craft.New(opts.Config.Craft, s.clk, craft.WithRamPredicate(opts.Ram))
	s.hud = hud.New(s.ctrl.Config())
	s.world = NewWorld(physics.Bounds{W: config.WorldWidth, H: config.WorldHeight}, opts.Config.Game)

	ship := s.world.Ship
	s.camera.Follow(ship, 0)
	sinks := feedback.Sinks{
		Clock:        s.clk,
		Cues:         opts.Cues,
		Body:         ship,
		Camera:       s.camera,
		RamCollider:  ship.Ram,
		HitCollider:  ship.Hit,
		RamParticles: ship,
		Outcome:      s,
	}
	s.hud.Bind(&sinks)
	s.disp = feedback.NewDispatcher(sinks, s.logger)

	s.canvas = draw.NewScaledCanvas(1, 1, config.ViewWidth, config.ViewHeight)
	s.canvas.SetOffset(0, hudRows)
	s.resize()

	s.dispatch(s.ctrl.Spawn())
	return s
}

// Phase returns the current screen.
func (s *Session) Phase() Phase {
	return s.phase
}

// Kills returns the asteroids destroyed since the last spawn.
func (s *Session) Kills() int {
	return s.kills
}

// Controller returns the session's craft controller.
func (s *Session) Controller() *craft.Controller {
	return s.ctrl
}

// Run drives frames at the configured rate until the player quits, the
// input ends or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	ctx, s.span = s.tracer.Start(ctx, "session", trace.WithAttributes(attribute.String("session.id", s.id)))
	defer s.span.End()

	draw.HideCursor(s.w)
	defer draw.ShowCursor(s.w)
	draw.ClearScreen(s.w)
	s.logger.Info("session started")

	ticker := time.NewTicker(config.FrameTime)
	defer ticker.Stop()

	for s.running {
		if err := s.Frame(); err != nil {
			s.span.RecordError(err)
			return err
		}
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled")
			return nil
		case <-ticker.C:
		}
	}

	draw.ClearScreen(s.w)
	s.logger.Info("session ended", "kills", s.kills, "phase", s.phase)
	return nil
}

// Running reports whether the session wants more frames.
func (s *Session) Running() bool {
	return s.running
}

// Frame runs one frame: advance the clock, sample input, tick the craft,
// simulate and draw.
func (s *Session) Frame() error {
	s.clk.Tick()

	raw := s.controls.Sample()
	c := raw.Steer(s.ctrl.Flight()).Pressed(s.prev)
	s.prev = raw

	if c.Quit {
		s.running = false
		return nil
	}
	if c.Reset {
		s.logger.Info("session reset")
		s.respawn()
		return s.draw()
	}

	switch s.phase {
	case PhaseStart:
		if c.Begin {
			s.dispatch(s.ctrl.Begin())
			s.phase = PhasePlaying
			s.logger.Debug("craft launched")
		}
	case PhasePlaying:
		if err := s.play(c); err != nil {
			return err
		}
	case PhaseFinished:
		s.dispatch(s.ctrl.Tick(craft.TickInput{}))
		if err := s.simulate(input.Controls{}); err != nil {
			return err
		}
		if c.Begin {
			s.respawn()
		}
	}

	s.camera.Follow(s.world.Ship, s.clk.UnscaledDelta().Seconds())
	return s.draw()
}

// play ticks the craft with this frame's controls and steps the world.
func (s *Session) play(c input.Controls) error {
	ship := s.world.Ship
	ship.DrillReady = !s.ctrl.Drill().Depleted()

	s.dispatch(s.ctrl.Tick(craft.TickInput{
		Drilling: c.Drill,
		Ram: craft.RamInput{
			Horizontal: c.Horizontal,
			Vertical:   c.Vertical,
			VX:         ship.VX,
			VY:         ship.VY,
			Drilling:   c.Drill,
		},
	}))
	if c.ToggleFlight {
		s.dispatch(s.ctrl.SetFlightMode(s.ctrl.Flight().Toggle()))
	}

	ship.Blink = s.ctrl.HealthPhase() == craft.PhaseInvincible
	return s.simulate(c)
}

// simulate runs fixed world steps for the scaled time that has built up.
// A frozen clock contributes nothing, so pauses stop the world.
func (s *Session) simulate(c input.Controls) error {
	s.acc += s.clk.Delta()
	steps := 0
	for s.acc >= config.TickTime {
		if steps == config.MaxSteps {
			s.acc = 0
			break
		}
		res, err := s.world.Step(config.TickTime, c)
		if err != nil {
			return err
		}
		s.resolve(res)
		s.acc -= config.TickTime
		steps++
	}
	return nil
}

// resolve turns a step's kills and contacts into craft calls.
func (s *Session) resolve(res StepResult) {
	finished, _ := s.ctrl.Finished()
	for _, a := range res.Kills {
		_, fx := a.Die(s.ctrl)
		s.dispatch(fx)
		if finished {
			continue
		}
		s.dispatch(s.ctrl.RecoverAfterKill())
		s.kills++
		if target := s.cfg.Game.KillTarget; target > 0 && s.kills >= target {
			s.dispatch(s.ctrl.Complete())
		}
		finished, _ = s.ctrl.Finished()
	}
	for _, a := range res.Contacts {
		if finished {
			break
		}
		s.dispatch(s.collide(s.ctrl, a))
		finished, _ = s.ctrl.Finished()
	}
}

// Finish implements feedback.OutcomeHandler.
func (s *Session) Finish(success bool) {
	s.success = success
	s.phase = PhaseFinished

	outcome := "failure"
	if success {
		outcome = "success"
	} else {
		ship := s.world.Ship
		object.SpawnExplosion(ship.X, ship.Y, 20, 25, 1, s.world)
		ship.Hidden = true
	}
	s.world.Ship.Blink = false

	s.logger.Info("craft finished", "outcome", outcome, "health", s.ctrl.Health().Current, "kills", s.kills)
	s.span.AddEvent("finish", trace.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("kills", s.kills),
	))
}

// respawn clears the world and spawns a fresh craft on the title screen.
func (s *Session) respawn() {
	s.world.Reset()
	s.dispatch(s.ctrl.Spawn())
	s.controls.Reset()
	s.phase = PhaseStart
	s.acc = 0
	s.kills = 0
	s.success = false
}

func (s *Session) dispatch(fx []craft.Effect) {
	if len(fx) > 0 {
		s.disp.Dispatch(fx)
	}
}

// resize fits the canvas below the HUD.
func (s *Session) resize() {
	w, h, err := s.termSize()
	if err != nil {
		return
	}
	s.canvas.Resize(w, h-hudRows)
}

func (s *Session) draw() error {
	s.resize()
	s.canvas.Clear()
	draw.ClearScreen(s.cw)

	ctx := object.DrawContext{
		Canvas: s.canvas,
		Camera: s.camera.View(),
		View:   physics.Bounds{W: config.ViewWidth, H: config.ViewHeight},
		World:  s.world.Bounds,
	}
	for _, obj := range s.world.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}
	s.canvas.Render(s.cw)

	s.hud.Render(s.cw, 1, s.canvas.TerminalWidth())
	switch s.phase {
	case PhaseStart:
		s.drawStartScreen()
	case PhasePlaying:
		if s.ctrl.PauseState().Active {
			s.drawPauseBanner()
		}
	case PhaseFinished:
		s.drawFinishedScreen()
	}
	return s.cw.Flush()
}
