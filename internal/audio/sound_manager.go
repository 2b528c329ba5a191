// Package audio plays the lander's procedural sound effects through the
// beep speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-lander/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	blastDuration = 1200 * time.Millisecond
	hissFreq      = 110.0
)

// SoundManager owns the speaker mixer and the thruster loop.
// All methods are safe to call before Initialize, after Cleanup, or when
// audio is disabled; they then do nothing.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	blasts      int64
	initialized bool
}

// NewSoundManager creates a sound manager.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer. With audio disabled it
// returns nil and the manager stays silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds reach the speaker.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.thrust != nil {
		sm.thrust.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.thrust = nil
	sm.initialized = false
}

// SetThrust starts or pauses the engine rumble.
func (sm *SoundManager) SetThrust(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if sm.thrust == nil {
		if !on {
			return
		}
		sm.thrust = &beep.Ctrl{Streamer: newThrustStreamer(sm.cfg.Volume)}
		sm.mixer.Add(sm.thrust)
		return
	}
	sm.thrust.Paused = !on
}

// Explode plays one explosion.
func (sm *SoundManager) Explode() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.blasts++
	speaker.Lock()
	sm.mixer.Add(newBlastStreamer(sm.cfg.Volume, sm.blasts))
	speaker.Unlock()
}

func newThrustStreamer(vol float64) beep.Streamer {
	rumble := NewRumbleGenerator(sampleRate, time.Now().UnixNano())
	hiss, err := generators.SineTone(sampleRate, hissFreq)
	if err != nil {
		return newVolume(rumble, vol)
	}
	return newVolume(beep.Mix(rumble, newVolume(hiss, 0.1)), vol)
}

func newBlastStreamer(vol float64, seed int64) beep.Streamer {
	blast := NewBlastGenerator(sampleRate, seed)
	return newVolume(beep.Take(sampleRate.N(blastDuration), blast), vol)
}

// newVolume scales a streamer linearly. log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
