// Command planet opens a window and renders an adaptive level-of-detail planet around an orbit camera.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-planet/engine"
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/config"
	"github.com/Carmen-Shannon/oxy-planet/engine/planet"
	"github.com/Carmen-Shannon/oxy-planet/engine/profiler"
	"github.com/Carmen-Shannon/oxy-planet/engine/renderer"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
	"github.com/chewxy/math32"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML configuration file")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Planet] %v", err)
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("[Planet] %v", err)
		}
		log.Printf("[Planet] wrote %s", *configPath)
		return
	}

	// ── Height and normal maps ──────────────────────────────────────────
	maps, err := texture.Load(cfg.Planet.HeightMap, cfg.Planet.NormalMap)
	if err != nil {
		log.Fatalf("[Planet] %v", err)
	}
	heightMap, normalMap := maps[0], maps[1]

	// ── Window + Renderer ───────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithSizeLimits(640, 360, 3840, 2160),
	)

	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(renderer.PresentModeFor(cfg.Renderer.VSync)),
		renderer.WithMSAA(renderer.MSAASampleCount(cfg.Renderer.MSAA)),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.Software),
	)
	if err := r.SetPlanetMaps(cfg.Planet.Size, cfg.Planet.MaxHeight, heightMap, normalMap); err != nil {
		log.Fatalf("[Planet] %v", err)
	}

	// ── Planet ──────────────────────────────────────────────────────────
	p, err := planet.NewPlanet(
		planet.WithSize(cfg.Planet.Size),
		planet.WithMaxHeight(cfg.Planet.MaxHeight),
		planet.WithMaxLevels(cfg.Planet.MaxLevels),
		planet.WithLODFactor(cfg.Planet.LODFactor),
		planet.WithMergeHysteresis(cfg.Planet.MergeHysteresis),
		planet.WithChunkSize(cfg.Planet.ChunkSize),
		planet.WithHeightMap(heightMap),
		planet.WithNormalMap(normalMap),
		planet.WithBuffer(r.NewMeshBuffer("Planet")),
	)
	if err != nil {
		log.Fatalf("[Planet] %v", err)
	}

	// ── Camera ──────────────────────────────────────────────────────────
	cam := newCamera(cfg, float32(win.Width())/float32(win.Height()))

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithPlanet(p),
		engine.WithProfiling(cfg.Profiler.Enabled),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithInterval(cfg.Profiler.Interval))),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
	)

	setupInput(eng, cfg)
	setupTitle(eng, cfg.Window.Title)

	fmt.Println("╔══════════════════════════════════════════════════════╗")
	fmt.Println("║  oxy-planet                                          ║")
	fmt.Println("╠══════════════════════════════════════════════════════╣")
	fmt.Println("║  A/D or ←/→ = Orbit   W/S or ↑/↓ = Tilt             ║")
	fmt.Println("║  Q/E or Scroll = Zoom   Shift = Faster               ║")
	fmt.Println("║  Mouse drag = Orbit   R = Reset   P = Profiler       ║")
	fmt.Println("╚══════════════════════════════════════════════════════╝")

	log.Printf("[Planet] levels table: %v", p.LevelsTable())
	eng.Run()

	if err := win.Close(); err != nil {
		log.Printf("[Planet] %v", err)
	}
}

// newCamera builds the orbit camera described by the configuration.
//
// Parameters:
//   - cfg: the viewer configuration
//   - aspect: initial viewport aspect ratio
//
// Returns:
//   - camera.Camera: the camera with an attached orbit controller
func newCamera(cfg config.Config, aspect float32) camera.Camera {
	controller := camera.NewCameraController(
		camera.WithTarget(0, 0, 0),
		camera.WithSurfaceRadius(cfg.Planet.Size),
		camera.WithRadius(cfg.Camera.Radius),
		camera.WithRadiusBounds(0, max(cfg.Camera.Radius, cfg.Camera.Far-cfg.Planet.Size)),
		camera.WithAzimuth(radians(cfg.Camera.Azimuth)),
		camera.WithElevation(radians(cfg.Camera.Elevation)),
		camera.WithOrbitSpeed(cfg.Camera.OrbitSpeed),
		camera.WithZoomSpeed(cfg.Camera.ZoomSpeed),
		camera.WithMouseSensitivity(cfg.Camera.MouseSensitivity),
	)

	return camera.NewCamera(
		camera.WithFov(radians(cfg.Camera.Fov)),
		camera.WithAspect(aspect),
		camera.WithClipPlanes(cfg.Camera.Near, cfg.Camera.Far),
		camera.WithController(controller),
	)
}

// setupTitle shows the current tree depth, triangle count and altitude in the title bar.
// The update callback runs on the window thread, which GLFW requires for title changes.
func setupTitle(eng engine.Engine, title string) {
	var last time.Time
	eng.Window().SetUpdateCallback(func() {
		if time.Since(last) < 500*time.Millisecond {
			return
		}
		last = time.Now()

		stats := eng.Planet().Stats()
		eng.Window().SetTitle(fmt.Sprintf("%s | depth %d | %d triangles | altitude %.1f",
			title, stats.MaxDepth, stats.IndexCount/3, eng.Camera().Controller().Altitude()))
	})
}

func radians(degrees float32) float32 {
	return degrees * math32.Pi / 180
}
