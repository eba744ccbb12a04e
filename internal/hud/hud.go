package hud

import (
	"github.com/tomz197/horde/internal/craft"
	"github.com/tomz197/horde/internal/draw"
	"github.com/tomz197/horde/internal/feedback"
)

const gaugeWidth = 12

// HUD is the status line above the play area.
type HUD struct {
	Health *Gauge
	Drill  *Gauge
	Danger *Flag
	Empty  *Flag
	Flight *Label
}

// New creates a HUD sized for cfg.
func New(cfg craft.Config) *HUD {
	return &HUD{
		Health: NewGauge("HP", float64(cfg.MaxHealth), gaugeWidth),
		Drill:  NewGauge("DRILL", cfg.DrillMax, gaugeWidth),
		Danger: &Flag{Text: "DANGER", Attr: draw.AttrBold + draw.AttrRed},
		Empty:  &Flag{Text: "EMPTY", Attr: draw.AttrReverse + draw.AttrYellow},
		Flight: &Label{text: craft.LabelTowardsTarget},
	}
}

// Bind points the widget sinks of s at this HUD.
func (h *HUD) Bind(s *feedback.Sinks) {
	s.HealthGauge = h.Health
	s.DrillGauge = h.Drill
	s.Danger = h.Danger
	s.Empty = h.Empty
	s.Flight = h.Flight
}

// Render draws the status line on row, left to right, then the flight label
// right-aligned within width.
func (h *HUD) Render(cw *draw.ChunkWriter, row, width int) {
	col := 2
	col += h.Health.Render(cw, col, row) + 1
	col += h.Danger.Render(cw, col, row) + 2
	col += h.Drill.Render(cw, col, row) + 1
	h.Empty.Render(cw, col, row)

	text := "Mode: " + h.Flight.Text()
	if right := width - len(text); right > col {
		cw.WriteAt(right, row, text)
	}
}
