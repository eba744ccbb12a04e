package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sweep is a tone gliding from one frequency to another under a decaying
// envelope.
type sweep struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	amp      float64
	pos      int
	phase    float64
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration, amp float64) *sweep {
	n := sr.N(d)
	if n < 1 {
		n = 1
	}
	return &sweep{sr: sr, from: from, to: to, length: n, amp: amp}
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide free of clicks.
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		env := math.Exp(-3*progress) * math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)+1), 1)
		s := g.amp * env * math.Sin(g.phase)

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error {
	return nil
}

// pulse is a square-ish beep repeating every period, on for duty of it.
type pulse struct {
	sr     beep.SampleRate
	freq   float64
	period int
	on     int
	amp    float64
	pos    int
}

func newPulse(sr beep.SampleRate, freq float64, period time.Duration, duty, amp float64) *pulse {
	p := sr.N(period)
	if p < 1 {
		p = 1
	}
	return &pulse{sr: sr, freq: freq, period: p, on: int(float64(p) * duty), amp: amp}
}

func (g *pulse) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		s := 0.0
		if g.pos%g.period < g.on {
			t := float64(g.pos) / float64(g.sr)
			s = g.amp * (math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(6*math.Pi*g.freq*t))
		}
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *pulse) Err() error {
	return nil
}

// rumble is the jet's low engine noise: a wobbling bass tone plus filtered
// noise.
type rumble struct {
	sr    beep.SampleRate
	pos   int
	seed  uint32
	noise float64
}

func newRumble(sr beep.SampleRate) *rumble {
	return &rumble{sr: sr, seed: 0x9e3779b9}
}

func (g *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		white := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		g.noise += 0.05 * (white - g.noise)

		freq := 70 + 15*math.Sin(2*math.Pi*3*t)
		s := 0.12*math.Sin(2*math.Pi*freq*t) + 0.2*g.noise

		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error {
	return nil
}
