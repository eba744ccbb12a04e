// Package hud holds the on-screen widgets the craft's effects drive: gauges,
// warning flags and the flight label.
package hud

import (
	"math"
	"strings"

	"github.com/tomz197/horde/internal/draw"
)

// Gauge is a horizontal bar showing a value out of Max.
type Gauge struct {
	Title string
	Max   float64
	Width int // Bar cells, excluding brackets
	value float64
}

// NewGauge creates a full gauge.
func NewGauge(title string, limit float64, width int) *Gauge {
	return &Gauge{Title: title, Max: limit, Width: width, value: limit}
}

// SetValue implements feedback.Gauge.
func (g *Gauge) SetValue(v float64) {
	g.value = v
}

// Value returns the last value set.
func (g *Gauge) Value() float64 {
	return g.value
}

// Bar returns the bracketed bar, with a shaded cell for the fractional part.
func (g *Gauge) Bar() string {
	frac := 0.0
	if g.Max > 0 {
		frac = math.Max(0, math.Min(g.value/g.Max, 1))
	}
	cells := frac * float64(g.Width)
	full := int(cells)

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < g.Width; i++ {
		switch {
		case i < full:
			b.WriteRune(draw.BlockFull)
		case i == full:
			b.WriteRune(draw.ShadeLevel(cells - float64(full)))
		default:
			b.WriteRune(draw.BlockEmpty)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Render writes the gauge at (col, row) and returns the columns used.
func (g *Gauge) Render(cw *draw.ChunkWriter, col, row int) int {
	s := g.Title + " " + g.Bar()
	cw.WriteAt(col, row, s)
	return len([]rune(s))
}

// Flag is a warning text that is either shown or blanked.
type Flag struct {
	Text    string
	Attr    string // ANSI attribute applied while visible
	visible bool
}

// SetVisible implements feedback.Flag.
func (f *Flag) SetVisible(on bool) {
	f.visible = on
}

// Visible reports whether the flag is shown.
func (f *Flag) Visible() bool {
	return f.visible
}

// Render writes the flag, or blanks its space, and returns the columns used.
func (f *Flag) Render(cw *draw.ChunkWriter, col, row int) int {
	n := len([]rune(f.Text))
	if !f.visible {
		cw.WriteAt(col, row, strings.Repeat(" ", n))
		return n
	}
	cw.WriteAt(col, row, f.Attr+f.Text+draw.AttrReset)
	return n
}

// Label is a short text line.
type Label struct {
	text string
}

// SetText implements feedback.Label.
func (l *Label) SetText(s string) {
	l.text = s
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// Render writes the label and returns the columns used.
func (l *Label) Render(cw *draw.ChunkWriter, col, row int) int {
	cw.WriteAt(col, row, l.text)
	return len([]rune(l.text))
}
