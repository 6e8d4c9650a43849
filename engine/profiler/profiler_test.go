package profiler

import (
	"testing"
	"time"
)

func TestTickRespectsInterval(t *testing.T) {
	p := NewProfiler(WithInterval(time.Hour))
	for range 10 {
		if p.Tick() {
			t.Fatalf("logged before the interval elapsed")
		}
	}
}

func TestTickLogsStatsSource(t *testing.T) {
	calls := 0
	p := NewProfiler(WithInterval(0), WithStatsSource(func() string {
		calls++
		return "nodes=6"
	}))

	if !p.Tick() {
		t.Fatalf("zero interval did not log")
	}
	if calls != 1 {
		t.Fatalf("stats source called %d times, want 1", calls)
	}
	if p.FPS() <= 0 {
		t.Fatalf("fps = %f, want > 0", p.FPS())
	}

	p.SetStatsSource(nil)
	p.Tick()
	if calls != 1 {
		t.Fatalf("cleared stats source still called")
	}
}
