package engine

import (
	"sync"
	"time"
)

// PausableClock is a TimeProvider that can be frozen. Time spent paused is skipped on resume,
// so loop timers and animations continue where they stopped instead of catching up
type PausableClock struct {
	mu sync.RWMutex

	base TimeProvider

	paused      bool
	pausedAt    time.Time     // base time when current pause started
	totalPaused time.Duration // cumulative pause duration
}

// NewPausableClock creates a running clock over base
func NewPausableClock(base TimeProvider) *PausableClock {
	return &PausableClock{base: base}
}

// Now returns base time minus all paused time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pausedAt.Add(-pc.totalPaused)
	}
	return pc.base.Now().Add(-pc.totalPaused)
}

// Pause stops time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.base.Now()
}

// Resume continues time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.totalPaused += pc.base.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle pauses a running clock or resumes a paused one, returns the new paused state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPaused returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPaused() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused {
		total += pc.base.Now().Sub(pc.pausedAt)
	}
	return total
}
