package render

import (
	"math"
	"testing"
	"time"
)

func TestMeter_OneSecondDelta(t *testing.T) {
	m := NewMeter()
	t0 := time.Unix(100, 0)

	if fps := m.Tick(t0); fps != 0 {
		t.Errorf("first tick fps = %v, want 0", fps)
	}
	if fps := m.Tick(t0.Add(time.Second)); math.Abs(fps-1.0) > 1e-9 {
		t.Errorf("fps after 1s delta = %v, want 1.0", fps)
	}
}

func TestMeter_TenthSecondDelta(t *testing.T) {
	m := NewMeter()
	t0 := time.Unix(100, 0)

	m.Tick(t0)
	if fps := m.Tick(t0.Add(100 * time.Millisecond)); math.Abs(fps-10.0) > 1e-6 {
		t.Errorf("fps after 0.1s delta = %v, want 10.0", fps)
	}
}

func TestMeter_NoMemoryBeyondPrevious(t *testing.T) {
	m := NewMeter()
	t0 := time.Unix(100, 0)

	m.Tick(t0)
	m.Tick(t0.Add(time.Second))
	fps := m.Tick(t0.Add(time.Second + 100*time.Millisecond))
	if math.Abs(fps-10.0) > 1e-6 {
		t.Errorf("fps = %v, want 10.0 from most recent delta only", fps)
	}
	if m.FPS() != fps {
		t.Errorf("FPS() = %v, want %v", m.FPS(), fps)
	}
}

func TestMeter_ZeroDeltaKeepsEstimate(t *testing.T) {
	m := NewMeter()
	t0 := time.Unix(100, 0)

	m.Tick(t0)
	m.Tick(t0.Add(time.Second))
	if fps := m.Tick(t0.Add(time.Second)); fps != 1.0 {
		t.Errorf("fps after zero delta = %v, want previous estimate 1.0", fps)
	}
}
