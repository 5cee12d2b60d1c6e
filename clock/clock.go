// Package clock turns wall time into a beat count at a fixed tempo.
package clock

import (
	"sync"
	"time"
)

const (
	MinTempo = 20
	MaxTempo = 300
)

// Clock is a constant-tempo beat source. Changing tempo keeps the beat
// continuous.
type Clock struct {
	mu     sync.Mutex
	tempo  int
	origin time.Time // wall time at base
	base   float64   // beat at origin
	now    func() time.Time
}

// New creates a clock starting at beat 0 now
func New(bpm int) *Clock {
	return newWithSource(bpm, time.Now)
}

func newWithSource(bpm int, now func() time.Time) *Clock {
	return &Clock{
		tempo:  clampTempo(bpm),
		origin: now(),
		now:    now,
	}
}

func clampTempo(bpm int) int {
	if bpm < MinTempo {
		return MinTempo
	}
	if bpm > MaxTempo {
		return MaxTempo
	}
	return bpm
}

func (c *Clock) beatAt(t time.Time) float64 {
	return c.base + t.Sub(c.origin).Seconds()*float64(c.tempo)/60
}

// Beat returns the current beat (fractional)
func (c *Clock) Beat() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.beatAt(c.now())
}

func (c *Clock) Tempo() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tempo
}

// SetTempo changes tempo (clamped to 20-300 bpm) from the current beat on
func (c *Clock) SetTempo(bpm int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now()
	c.base = c.beatAt(t)
	c.origin = t
	c.tempo = clampTempo(bpm)
}

// Reset restarts at beat 0
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.origin = c.now()
	c.base = 0
}

// BeatDuration is the length of one beat at the current tempo
func (c *Clock) BeatDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Duration(float64(time.Second) * 60.0 / float64(c.tempo))
}
