package loop

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/horde/internal/clock"
	"github.com/tomz197/horde/internal/config"
	"github.com/tomz197/horde/internal/craft"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/input"
	"github.com/tomz197/horde/internal/object"
)

type script struct {
	next   input.Controls
	resets int
}

func (s *script) Sample() input.Controls { return s.next }
func (s *script) Reset() { s.resets++ }

type harness struct {
	t    *testing.T
	s    *Session
	src  *script
	time *clock.ManualTimeProvider
	out  *bytes.Buffer
}

func newHarness(t *testing.T, cfg config.Config, opts Options) *harness {
	t.Helper()
	h := &harness{
		t:    t,
		src:  &script{},
		time: clock.NewManualTimeProvider(time.Unix(0, 0)),
		out:  &bytes.Buffer{},
	}
	opts.ID = "test"
	opts.Config = cfg
	opts.Logger = log.New(io.Discard)
	opts.TermSize = draw.FixedSize(120, 41)
	opts.Time = h.time
	h.s = NewSession(h.src, h.out, opts)
	return h
}

func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Game.AsteroidTarget = 0
	return cfg
}

func (h *harness) frame(c input.Controls) {
	h.t.Helper()
	h.src.next = c
	h.time.Advance(config.TickTime)
	if err := h.s.Frame(); err != nil {
		h.t.Fatalf("Frame: %v", err)
	}
}

func (h *harness) launch() {
	h.t.Helper()
	h.frame(input.Controls{Begin: true})
	if h.s.Phase() != PhasePlaying {
		h.t.Fatalf("phase = %v after launch", h.s.Phase())
	}
}

// rock places a motionless, unprotected asteroid.
func (h *harness) rock(x, y float64) *object.Asteroid {
	a := object.NewAsteroid(x, y, object.AsteroidLarge, 0, 2)
	a.VX, a.VY = 0, 0
	a.RotationSpeed = 0
	h.s.world.Objects = append(h.s.world.Objects, a)
	return a
}

func TestSessionHoldsUntilBegin(t *testing.T) {
	h := newHarness(t, quietConfig(), Options{})
	if h.s.Phase() != PhaseStart {
		t.Fatalf("phase = %v", h.s.Phase())
	}
	h.frame(input.Controls{})
	h.frame(input.Controls{})
	if !h.s.clk.IsPaused() {
		t.Error("clock runs before Begin")
	}
	if !strings.Contains(h.out.String(), "H O R D E") {
		t.Error("title screen not drawn")
	}

	h.launch()
	if h.s.clk.IsPaused() {
		t.Error("clock still held after Begin")
	}
}

func TestBoltKillCompletesLevel(t *testing.T) {
	cfg := quietConfig()
	cfg.Game.KillTarget = 1
	h := newHarness(t, cfg, Options{})
	ship := h.s.world.Ship
	target := h.rock(ship.X, ship.Y-20)

	h.launch()
	for i := 0; i < 120 && h.s.Phase() == PhasePlaying; i++ {
		h.frame(input.Controls{Drill: true})
	}

	if !target.IsDestroyed() {
		t.Fatal("asteroid survived the drill")
	}
	if h.s.Kills() != 1 {
		t.Errorf("kills = %d, want 1", h.s.Kills())
	}
	finished, success := h.s.Controller().Finished()
	if !finished || !success || h.s.Phase() != PhaseFinished {
		t.Errorf("finished=%v success=%v phase=%v", finished, success, h.s.Phase())
	}
	if !strings.Contains(h.out.String(), "LEVEL COMPLETE") {
		t.Error("outcome screen not drawn")
	}
}

func TestContactIgnoredByDefault(t *testing.T) {
	h := newHarness(t, quietConfig(), Options{})
	ship := h.s.world.Ship
	h.rock(ship.X, ship.Y)

	h.launch()
	h.frame(input.Controls{})
	if got := h.s.Controller().Health().Current; got != 10 {
		t.Errorf("health = %d, want 10", got)
	}
}

func TestContactDamageRespectsInvincibility(t *testing.T) {
	cfg := quietConfig()
	cfg.Game.ContactDamage = 3
	h := newHarness(t, cfg, Options{})
	ship := h.s.world.Ship
	h.rock(ship.X, ship.Y)

	h.launch()
	for i := 0; i < 10; i++ {
		h.frame(input.Controls{})
	}
	if got := h.s.Controller().Health().Current; got != 7 {
		t.Errorf("health = %d, want 7", got)
	}
	if h.s.Controller().HealthPhase() != craft.PhaseInvincible {
		t.Error("craft not invincible after contact")
	}
}

func TestLethalContactThenRespawn(t *testing.T) {
	cfg := quietConfig()
	cfg.Craft.MaxHealth = 3
	cfg.Game.ContactDamage = 5
	h := newHarness(t, cfg, Options{})
	ship := h.s.world.Ship
	h.rock(ship.X, ship.Y)

	h.launch()
	h.frame(input.Controls{})
	if h.s.Phase() != PhaseFinished {
		t.Fatalf("phase = %v, want finished", h.s.Phase())
	}
	if _, success := h.s.Controller().Finished(); success {
		t.Error("death reported as success")
	}
	if !ship.Hidden {
		t.Error("ship still shown after death")
	}

	h.frame(input.Controls{Begin: true})
	if h.s.Phase() != PhaseStart {
		t.Fatalf("phase = %v after Enter, want start", h.s.Phase())
	}
	if ship.Hidden || h.s.Controller().Health().Current != 3 {
		t.Errorf("respawn left hidden=%v health=%d", ship.Hidden, h.s.Controller().Health().Current)
	}
	if h.src.resets != 1 {
		t.Errorf("input resets = %d, want 1", h.src.resets)
	}

	// Enter is still held: no relaunch until it is pressed again.
	h.frame(input.Controls{Begin: true})
	if h.s.Phase() != PhaseStart {
		t.Errorf("held Enter relaunched the craft")
	}
}

func TestRammingDestroysOnContact(t *testing.T) {
	cfg := quietConfig()
	cfg.Game.ContactDamage = 5
	always := func(craft.RamInput) bool { return true }
	h := newHarness(t, cfg, Options{Ram: always})
	ship := h.s.world.Ship
	rock := h.rock(ship.X, ship.Y)

	h.launch()
	h.frame(input.Controls{})

	if !ship.Ram.Active || ship.Hit.Active {
		t.Fatalf("colliders ram=%v hit=%v", ship.Ram.Active, ship.Hit.Active)
	}
	if !rock.IsDestroyed() || h.s.Kills() != 1 {
		t.Errorf("destroyed=%v kills=%d", rock.IsDestroyed(), h.s.Kills())
	}
	if got := h.s.Controller().Health().Current; got != 10 {
		t.Errorf("health = %d, want 10", got)
	}
}

func TestFlightToggleMirrorsSteering(t *testing.T) {
	h := newHarness(t, quietConfig(), Options{})
	h.launch()
	h.frame(input.Controls{ToggleFlight: true})
	if h.s.Controller().Flight() != craft.FlightAwayFromTarget {
		t.Fatalf("flight = %v", h.s.Controller().Flight())
	}
	if got := h.s.hud.Flight.Text(); got != craft.LabelAwayFromTarget {
		t.Errorf("label = %q", got)
	}

	ship := h.s.world.Ship
	before := ship.Angle
	h.frame(input.Controls{Horizontal: 1})
	if ship.Angle >= before {
		t.Errorf("right turned %v -> %v, want mirrored", before, ship.Angle)
	}
}

func TestResetAndQuit(t *testing.T) {
	h := newHarness(t, quietConfig(), Options{})
	h.launch()
	h.frame(input.Controls{Reset: true})
	if h.s.Phase() != PhaseStart {
		t.Errorf("phase = %v after reset", h.s.Phase())
	}
	h.frame(input.Controls{Quit: true})
	if h.s.Running() {
		t.Error("session still running after quit")
	}
}

type damager struct {
	amounts []int
}

func (d *damager) Damage(n int) (craft.Outcome, []craft.Effect) {
	d.amounts = append(d.amounts, n)
	return craft.OutcomeAccepted, nil
}

func TestCollisionPolicies(t *testing.T) {
	d := &damager{}
	a := object.NewAsteroid(0, 0, object.AsteroidSmall, 0, 1)

	NoCollision(d, a)
	DamageOnContact(0)(d, a)
	if len(d.amounts) != 0 {
		t.Fatalf("damage applied by no-op policies: %v", d.amounts)
	}
	DamageOnContact(4)(d, a)
	if len(d.amounts) != 1 || d.amounts[0] != 4 {
		t.Errorf("damage = %v, want [4]", d.amounts)
	}
}
