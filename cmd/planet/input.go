package main

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine"
	"github.com/Carmen-Shannon/oxy-planet/engine/config"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
)

// inputState is written by window callbacks on the main thread and read by the tick goroutine.
type inputState struct {
	mu       *sync.Mutex
	keys     map[uint32]bool
	dragging bool
	lastX    int32
	lastY    int32
}

func (s *inputState) down(keyCodes ...uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keyCodes {
		if s.keys[k] {
			return true
		}
	}
	return false
}

// setupInput wires orbit controls: A/D and arrows orbit, W/S and arrows tilt, Q/E and scroll
// zoom, mouse drag orbits, R resets the view and P toggles the profiler.
//
// Parameters:
//   - eng: the engine instance providing window callbacks and tick
//   - cfg: the configuration the reset view is taken from
func setupInput(eng engine.Engine, cfg config.Config) {
	state := &inputState{mu: &sync.Mutex{}, keys: make(map[uint32]bool)}
	cc := eng.Camera().Controller()
	profiling := cfg.Profiler.Enabled

	eng.Window().SetKeyDownCallback(func(keyCode uint32) {
		state.mu.Lock()
		pressed := state.keys[keyCode]
		state.keys[keyCode] = true
		state.mu.Unlock()

		if pressed {
			return
		}
		switch keyCode {
		case common.KeyR:
			cc.SetRadius(cfg.Camera.Radius)
			cc.SetAzimuth(radians(cfg.Camera.Azimuth))
			cc.SetElevation(radians(cfg.Camera.Elevation))
		case common.KeyP:
			profiling = !profiling
			if profiling {
				eng.EnableProfiler()
			} else {
				eng.DisableProfiler()
			}
		}
	})

	eng.Window().SetKeyUpCallback(func(keyCode uint32) {
		state.mu.Lock()
		defer state.mu.Unlock()
		state.keys[keyCode] = false
	})

	eng.Window().SetMouseDownCallback(func(button window.MouseButton, x, y int32) {
		if button == window.MouseButtonRight {
			return
		}
		state.mu.Lock()
		defer state.mu.Unlock()
		state.dragging = true
		state.lastX, state.lastY = x, y
	})

	eng.Window().SetMouseUpCallback(func(button window.MouseButton, _, _ int32) {
		if button == window.MouseButtonRight {
			return
		}
		state.mu.Lock()
		defer state.mu.Unlock()
		state.dragging = false
	})

	eng.Window().SetMouseMoveCallback(func(x, y int32) {
		state.mu.Lock()
		if !state.dragging {
			state.mu.Unlock()
			return
		}
		dx, dy := float32(x-state.lastX), float32(y-state.lastY)
		state.lastX, state.lastY = x, y
		state.mu.Unlock()

		cc.Drag(dx, dy)
	})

	eng.Window().SetScrollCallback(func(delta float32) {
		cc.Zoom(delta)
	})

	eng.SetTickCallback(func(_ float32) {
		steps := 1
		if state.down(common.KeyLeftShift, common.KeyRightShift) {
			steps = 3
		}

		for range steps {
			if state.down(common.KeyA, common.KeyLeft) {
				cc.OrbitLeft()
			}
			if state.down(common.KeyD, common.KeyRight) {
				cc.OrbitRight()
			}
			if state.down(common.KeyW, common.KeyUp) {
				cc.OrbitUp()
			}
			if state.down(common.KeyS, common.KeyDown) {
				cc.OrbitDown()
			}
			if state.down(common.KeyQ) {
				cc.Zoom(0.1)
			}
			if state.down(common.KeyE) {
				cc.Zoom(-0.1)
			}
		}
	})
}
