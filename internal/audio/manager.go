// Package audio plays the craft's cues, either synthesized through the local
// speaker or as terminal bells for remote sessions.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/horde/internal/feedback"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and the mixer every cue plays into.
// All cues are silent until Init succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	loops       []*LoopCue
	initialized bool
}

// NewSoundManager creates an uninitialized sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. Calling it again after success is a no-op.
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Ready reports whether the speaker is open.
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close silences every cue and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	for _, l := range sm.loops {
		l.ctrl = nil
	}
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// add hands a streamer to the mixer. Reports false when audio is off.
func (sm *SoundManager) add(s beep.Streamer) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Loop creates a cue that repeats until stopped.
func (sm *SoundManager) Loop(gen func() beep.Streamer) *LoopCue {
	c := &LoopCue{sm: sm, gen: gen}
	sm.mu.Lock()
	sm.loops = append(sm.loops, c)
	sm.mu.Unlock()
	return c
}

// OneShot creates a cue that plays gen for d each time it is triggered.
func (sm *SoundManager) OneShot(d time.Duration, gen func() beep.Streamer) *OneShotCue {
	return &OneShotCue{sm: sm, length: d, gen: gen}
}

// Cues returns the craft's synthesized sound set.
func (sm *SoundManager) Cues() feedback.Cues {
	return feedback.Cues{
		Hit: sm.OneShot(120*time.Millisecond, func() beep.Streamer {
			return newSweep(sampleRate, 220, 90, 120*time.Millisecond, 0.3)
		}),
		Danger: sm.OneShot(250*time.Millisecond, func() beep.Streamer {
			return newPulse(sampleRate, 660, 125*time.Millisecond, 0.5, 0.2)
		}),
		Jet: sm.Loop(func() beep.Streamer {
			return newRumble(sampleRate)
		}),
		Alarm: sm.Loop(func() beep.Streamer {
			return newPulse(sampleRate, 880, 400*time.Millisecond, 0.25, 0.15)
		}),
		Refill: sm.OneShot(200*time.Millisecond, func() beep.Streamer {
			return newSweep(sampleRate, 440, 880, 200*time.Millisecond, 0.25)
		}),
		Success: sm.OneShot(500*time.Millisecond, func() beep.Streamer {
			return newSweep(sampleRate, 523, 1046, 500*time.Millisecond, 0.3)
		}),
		Fail: sm.OneShot(700*time.Millisecond, func() beep.Streamer {
			return newSweep(sampleRate, 440, 110, 700*time.Millisecond, 0.35)
		}),
	}
}
