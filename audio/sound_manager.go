// Package audio plays the carousel rotation chime
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(48000)
	chimeDuration = 180 * time.Millisecond
	chimeGain     = 0.12
)

// Pentatonic steps above A5, one per carousel slot, wrapping
var chimeRatios = []float64{1, 9.0 / 8, 5.0 / 4, 3.0 / 2, 5.0 / 3}

const chimeBase = 880.0

// SoundManager owns the speaker and mixes rotation chimes into it
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	enabled     bool
	initialized bool
	played      int
}

// NewSoundManager creates a sound manager. A disabled manager never touches the audio device
func NewSoundManager(enabled bool) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// speakerInit is swapped by tests that cannot open a device
var speakerInit = speaker.Init

// Initialize sets up the speaker, a no-op when disabled or already initialized
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled || sm.initialized {
		return nil
	}

	// 100ms buffer trades latency for underrun safety on slow terminals
	if err := speakerInit(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether chimes will play
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled && sm.initialized
}

// Played returns the number of chimes queued since creation
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// PlayChime queues the chime for carousel slot index
func (sm *SoundManager) PlayChime(index int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled || !sm.initialized {
		return
	}
	sm.played++
	speaker.Lock()
	sm.mixer.Add(NewChime(index))
	speaker.Unlock()
}

// Cleanup silences everything and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// NewChime returns a finite streamer for one chime at the pitch of slot index
func NewChime(index int) beep.Streamer {
	n := len(chimeRatios)
	ratio := chimeRatios[((index%n)+n)%n]
	return beep.Take(sampleRate.N(chimeDuration), NewChimeGenerator(sampleRate, chimeBase*ratio))
}

// ChimeGenerator generates a decaying sine with a soft fifth overtone
type ChimeGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewChimeGenerator creates a chime generator at freq Hz
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:    sr,
		freq:  freq,
		total: sr.N(chimeDuration),
	}
}

// Stream implements beep.Streamer
func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		// Quadratic decay reaches silence at the end of the chime
		env := 1 - progress
		if env < 0 {
			env = 0
		}
		env *= env

		v := math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*1.5*t)
		v *= chimeGain * env

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (g *ChimeGenerator) Err() error {
	return nil
}
