package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/planet"
)

func newHeadlessEngine(t *testing.T) (*engine, *planet.MemoryBuffer) {
	t.Helper()

	buf := planet.NewMemoryBuffer()
	p, err := planet.NewPlanet(planet.WithSize(100), planet.WithMaxLevels(6), planet.WithBuffer(buf))
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	cc := camera.NewCameraController(camera.WithSurfaceRadius(100), camera.WithRadius(130), camera.WithElevation(0))
	cam := camera.NewCamera(camera.WithController(cc), camera.WithAspect(16.0/9.0))

	e := NewEngine(WithCamera(cam), WithPlanet(p), WithTickRate(120)).(*engine)
	return e, buf
}

func TestRenderFrameUpdatesPlanetHeadless(t *testing.T) {
	e, buf := newHeadlessEngine(t)

	if err := e.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if buf.Uploads() != 1 {
		t.Fatalf("uploads = %d, want 1", buf.Uploads())
	}
	stats := e.Planet().Stats()
	if stats.MaxDepth == 0 || stats.IndexCount == 0 {
		t.Fatalf("planet not refined near the camera: %+v", stats)
	}
	if stats.IndexCount != buf.IndexCount() {
		t.Fatalf("stats index count %d, buffer %d", stats.IndexCount, buf.IndexCount())
	}
}

func TestPlanetStatsLine(t *testing.T) {
	e, _ := newHeadlessEngine(t)
	if err := e.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	line := e.planetStats()
	for _, want := range []string{"nodes", "leaves", "culled", "triangles"} {
		if !strings.Contains(line, want) {
			t.Fatalf("stats line %q missing %q", line, want)
		}
	}
}

func TestRenderFrameWithoutPlanet(t *testing.T) {
	e := NewEngine().(*engine)
	if err := e.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
}

func TestTickRateOptions(t *testing.T) {
	e, _ := newHeadlessEngine(t)
	if e.engineTickRate != time.Second/120 {
		t.Fatalf("tick rate = %v", e.engineTickRate)
	}

	e.SetTickRate(0)
	if e.engineTickRate != time.Second/60 {
		t.Fatalf("default tick rate = %v", e.engineTickRate)
	}

	e.SetRenderFrameLimit(30)
	if e.renderFrameLimit != time.Second/30 {
		t.Fatalf("frame limit = %v", e.renderFrameLimit)
	}
	e.SetRenderFrameLimit(-1)
	if e.renderFrameLimit != 0 {
		t.Fatalf("frame limit not cleared: %v", e.renderFrameLimit)
	}
}
