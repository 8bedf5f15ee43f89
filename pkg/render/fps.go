package render

import "time"

// Meter estimates frames per second from the wall-clock delta between
// the two most recent ticks. It has no memory beyond the previous
// timestamp.
type Meter struct {
	prev time.Time
	fps  float64
}

// NewMeter returns a meter with no history; the estimate stays zero
// until the second tick.
func NewMeter() *Meter {
	return &Meter{}
}

// Tick records a frame at the given instant and returns the updated
// estimate. The caller supplies the timestamp so the loop owns the
// single time.Now call per tick.
func (m *Meter) Tick(now time.Time) float64 {
	if !m.prev.IsZero() {
		if d := now.Sub(m.prev).Seconds(); d > 0 {
			m.fps = 1 / d
		}
	}
	m.prev = now
	return m.fps
}

// FPS returns the current estimate.
func (m *Meter) FPS() float64 {
	return m.fps
}
