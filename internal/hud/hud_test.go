package hud

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/horde/internal/craft"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/feedback"
)

func TestGaugeBar(t *testing.T) {
	g := NewGauge("HP", 10, 4)
	if got := g.Bar(); got != "[████]" {
		t.Fatalf("full bar = %q", got)
	}
	g.SetValue(5)
	if got := g.Bar(); got != "[██  ]" {
		t.Fatalf("half bar = %q", got)
	}
	g.SetValue(6.25)
	if got := g.Bar(); got != "[██▒ ]" {
		t.Fatalf("fractional bar = %q", got)
	}
	g.SetValue(-3)
	if got := g.Bar(); got != "[    ]" {
		t.Fatalf("negative value bar = %q", got)
	}
	g.SetValue(99)
	if got := g.Bar(); got != "[████]" {
		t.Fatalf("overfull bar = %q", got)
	}
}

func TestFlagBlanksWhenHidden(t *testing.T) {
	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out, 0, 0)
	f := &Flag{Text: "EMPTY"}

	if n := f.Render(cw, 1, 1); n != 5 {
		t.Fatalf("columns = %d, want 5", n)
	}
	cw.Flush()
	if out.String() != "\033[1;1H     " {
		t.Fatalf("hidden flag = %q", out.String())
	}

	out.Reset()
	f.SetVisible(true)
	f.Render(cw, 1, 1)
	cw.Flush()
	if !strings.Contains(out.String(), "EMPTY") {
		t.Fatalf("visible flag = %q", out.String())
	}
}

func TestHUDDrivenByDispatcher(t *testing.T) {
	h := New(craft.Default())
	var sinks feedback.Sinks
	h.Bind(&sinks)
	d := feedback.NewDispatcher(sinks, nil)

	d.Dispatch([]craft.Effect{
		{Kind: craft.EffectHealthGauge, Value: 2},
		{Kind: craft.EffectDangerIndicator, On: true},
		{Kind: craft.EffectDrillGauge, Value: 0},
		{Kind: craft.EffectEmptyIndicator, On: true},
		{Kind: craft.EffectFlightLabel, Label: craft.LabelAwayFromTarget},
	})

	if h.Health.Value() != 2 || h.Drill.Value() != 0 {
		t.Fatalf("gauges = %v / %v", h.Health.Value(), h.Drill.Value())
	}
	if !h.Danger.Visible() || !h.Empty.Visible() {
		t.Fatal("flags should be visible")
	}

	var out bytes.Buffer
	cw := draw.NewChunkWriter(&out, 0, 0)
	h.Render(cw, 1, 100)
	cw.Flush()
	for _, want := range []string{"HP [", "DANGER", "DRILL [", "EMPTY", "Mode: Reverse"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("HUD output missing %q: %q", want, out.String())
		}
	}
}
