// Package input turns a raw terminal byte stream into per-frame controls.
package input

import (
	"io"
	"time"

	"github.com/tomz197/horde/internal/craft"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Controls is one frame's sampled input.
type Controls struct {
	Horizontal   float64 // -1 left, +1 right
	Vertical     float64 // +1 thrust, -1 brake
	Drill        bool
	Begin        bool
	ToggleFlight bool
	Reset        bool
	Quit         bool
}

// Steer maps the controls into the craft's flight frame: reverse flight
// mirrors the horizontal axis.
func (c Controls) Steer(mode craft.FlightMode) Controls {
	if mode == craft.FlightAwayFromTarget {
		c.Horizontal = -c.Horizontal
	}
	return c
}

// Pressed keeps only the buttons that were not already down in prev, so a
// held key triggers once. Axes and Drill are passed through.
func (c Controls) Pressed(prev Controls) Controls {
	c.Begin = c.Begin && !prev.Begin
	c.ToggleFlight = c.ToggleFlight && !prev.ToggleFlight
	c.Reset = c.Reset && !prev.Reset
	c.Quit = c.Quit && !prev.Quit
	return c
}

// keyState tracks the last time each key was seen.
type keyState struct {
	left, right, up, down time.Time
	drill, begin, flight  time.Time
	reset, quit           time.Time
}

// Stream delivers input bytes via a channel and tracks key state so that
// simultaneous keys combine.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
	now    func() time.Time
}

// StartStream spawns a goroutine that reads r byte by byte until it fails.
func StartStream(r io.ByteReader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets every held key.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// Sample drains pending bytes without blocking and returns the controls held
// at this instant.
func (s *Stream) Sample() Controls {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	now := s.now()
	s.apply(buf, now)
	c := s.controls(now)
	if s.closed {
		c.Quit = true
	}
	return c
}

// apply records key presses in buf at time now. Arrow keys arrive as
// ESC [ A..D.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
			case 'B':
				s.state.down = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}
		s.key(buf[i], now)
	}
}

func (s *Stream) key(b byte, now time.Time) {
	st := &s.state
	switch b {
	case 'a', 'A', 'h', 'H':
		st.left = now
	case 'd', 'D', 'l', 'L':
		st.right = now
	case 'w', 'W', 'k', 'K':
		st.up = now
	case 's', 'S', 'j', 'J':
		st.down = now
	case ' ':
		st.drill = now
	case '\r', '\n':
		st.begin = now
	case 'f', 'F':
		st.flight = now
	case 'r', 'R':
		st.reset = now
	case 'q', 'Q', 0x03: // 0x03 is Ctrl+C in raw mode
		st.quit = now
	}
}

func (s *Stream) controls(now time.Time) Controls {
	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	var c Controls
	if held(s.state.left) {
		c.Horizontal--
	}
	if held(s.state.right) {
		c.Horizontal++
	}
	if held(s.state.up) {
		c.Vertical++
	}
	if held(s.state.down) {
		c.Vertical--
	}
	c.Drill = held(s.state.drill)
	c.Begin = held(s.state.begin)
	c.ToggleFlight = held(s.state.flight)
	c.Reset = held(s.state.reset)
	c.Quit = held(s.state.quit)
	return c
}
