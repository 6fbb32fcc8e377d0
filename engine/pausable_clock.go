package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stands still while paused
// Game time = real elapsed - total paused time, anchored at creation
type PausableClock struct {
	mu sync.RWMutex

	source     TimeProvider
	start      time.Time // real time at creation
	paused     bool
	pauseStart time.Time     // real time the current pause began
	pausedFor  time.Duration // completed pauses
}

// NewPausableClock creates a running clock over the given time source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Now returns current game time
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.source.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return pc.start.Add(now.Sub(pc.start) - pc.pausedFor)
}

// Pause stops game time advancement, no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.source.Now()
}

// Resume continues game time advancement, no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.pausedFor += pc.source.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.pausedFor
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
