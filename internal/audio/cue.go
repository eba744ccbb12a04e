package audio

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/horde/internal/feedback"
)

// LoopCue is a looping sound. Play while already playing does not restart it.
type LoopCue struct {
	sm   *SoundManager
	gen  func() beep.Streamer
	ctrl *beep.Ctrl
}

// Play starts or resumes the loop.
func (c *LoopCue) Play() {
	c.sm.mu.Lock()
	defer c.sm.mu.Unlock()

	if !c.sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if c.ctrl == nil {
		c.ctrl = &beep.Ctrl{Streamer: c.gen()}
		c.sm.mixer.Add(c.ctrl)
		return
	}
	c.ctrl.Paused = false
}

// Stop pauses the loop.
func (c *LoopCue) Stop() {
	c.sm.mu.Lock()
	defer c.sm.mu.Unlock()

	if c.ctrl == nil {
		return
	}
	speaker.Lock()
	c.ctrl.Paused = true
	speaker.Unlock()
}

// Playing reports whether the loop is audible.
func (c *LoopCue) Playing() bool {
	c.sm.mu.Lock()
	defer c.sm.mu.Unlock()

	if c.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !c.ctrl.Paused
}

// OneShotCue plays a fixed-length sound per trigger. Overlapping triggers mix.
type OneShotCue struct {
	sm     *SoundManager
	length time.Duration
	gen    func() beep.Streamer
	active atomic.Int32
}

// Play triggers the sound.
func (c *OneShotCue) Play() {
	c.active.Add(1)
	s := beep.Seq(
		beep.Take(sampleRate.N(c.length), c.gen()),
		beep.Callback(func() { c.active.Add(-1) }),
	)
	if !c.sm.add(s) {
		c.active.Add(-1)
	}
}

// Stop is a no-op; one-shots run to their end.
func (c *OneShotCue) Stop() {}

// Playing reports whether any trigger is still sounding.
func (c *OneShotCue) Playing() bool {
	return c.active.Load() > 0
}

// Bell is a cue rendered as the terminal bell, for sessions without a speaker.
// A looped bell rings once when started and stays "playing" until stopped.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	looped  bool
	playing bool
}

// NewBell creates a one-shot bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// NewLoopBell creates a looped bell writing to w.
func NewLoopBell(w io.Writer) *Bell {
	return &Bell{w: w, looped: true}
}

// Play rings the bell.
func (b *Bell) Play() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.looped {
		if b.playing {
			return
		}
		b.playing = true
	}
	io.WriteString(b.w, "\a")
}

// Stop ends a looped bell.
func (b *Bell) Stop() {
	b.mu.Lock()
	b.playing = false
	b.mu.Unlock()
}

// Playing reports whether a looped bell is active.
func (b *Bell) Playing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.playing
}

// BellCues returns a sound set for a text-only terminal. The jet loop stays
// silent; a bell per frame of thrust would be noise.
func BellCues(w io.Writer) feedback.Cues {
	return feedback.Cues{
		Hit:     NewBell(w),
		Danger:  NewBell(w),
		Alarm:   NewLoopBell(w),
		Refill:  NewBell(w),
		Success: NewBell(w),
		Fail:    NewBell(w),
	}
}
