package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/Carmen-Shannon/oxy-planet/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           [3]float64

	meshBuffers map[string]MeshBuffer
}

// Renderer draws a planet mesh into a window surface.
//
// A frame is BeginFrame, one or more DrawPlanet calls, EndFrame, then Present.
// The planet pipeline and its bind groups are created by NewRenderer.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode. It takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// NewMeshBuffer returns the GPU mesh buffer registered under label, creating it on first use.
	// Pass the result to planet.WithBuffer so planet updates land directly on the GPU.
	//
	// Parameters:
	//   - label: debug label and cache key
	//
	// Returns:
	//   - MeshBuffer: the buffer for the label
	NewMeshBuffer(label string) MeshBuffer

	// SetPlanetMaps uploads the planet uniform and binds the height and normal maps.
	// A nil map is replaced by a flat placeholder and flagged as absent in the uniform.
	//
	// Parameters:
	//   - size: planet radius
	//   - maxHeight: displacement applied at a full height sample
	//   - heightMap: the height map, or nil
	//   - normalMap: the normal map, or nil
	//
	// Returns:
	//   - error: an error if the GPU resources could not be created
	SetPlanetMaps(size, maxHeight float32, heightMap, normalMap *texture.Texture) error

	// BeginFrame acquires the next swapchain texture and begins the main render pass.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawPlanet uploads the camera uniform and draws the mesh held by the buffer.
	// An empty buffer draws nothing.
	//
	// Parameters:
	//   - mesh: the mesh buffer the planet uploaded to
	//   - cameraUniform: the camera the frame is viewed from
	//
	// Returns:
	//   - error: an error if called outside a frame
	DrawPlanet(mesh MeshBuffer, cameraUniform camera.GPUCameraUniform) error

	// EndFrame ends the render pass and submits the frame's commands.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	Present()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the given window and registers the planet pipeline.
// It panics if the GPU device, surface or pipeline cannot be created.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window providing the surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clearColor:  [3]float64{0.02, 0.02, 0.05},
		meshBuffers: make(map[string]MeshBuffer),
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = r.pendingMSAA.orDefault()
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
	}

	presentMode := PresentModeUncapped
	if r.pendingPresentMode != nil {
		presentMode = *r.pendingPresentMode
	}
	r.backend.SetPresentMode(presentMode)

	r.backend.ConfigureSurface(window.Width(), window.Height())

	if err := r.backend.RegisterPlanetPipeline(PlanetShaderSource); err != nil {
		panic(err)
	}
	if err := r.SetPlanetMaps(0, 0, nil, nil); err != nil {
		panic(err)
	}

	log.Printf("[Renderer] initialized (msaa=%dx, present=%s)", msaa, presentMode)
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) NewMeshBuffer(label string) MeshBuffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if mb, ok := r.meshBuffers[label]; ok {
		return mb
	}
	mb := newMeshBuffer(r.backend, label)
	r.meshBuffers[label] = mb
	return mb
}

func (r *renderer) SetPlanetMaps(size, maxHeight float32, heightMap, normalMap *texture.Texture) error {
	uniform := GPUPlanetUniform{Size: size, MaxHeight: maxHeight}

	var heightStaging, normalStaging common.TextureStagingData
	if heightMap != nil {
		heightStaging = heightMap.StagingData()
		uniform.HasHeightMap = 1
	}
	if normalMap != nil {
		normalStaging = normalMap.StagingData()
		uniform.HasNormalMap = 1
	}

	if err := r.backend.SetPlanetMaps(uniform.Marshal(), heightStaging, normalStaging); err != nil {
		return fmt.Errorf("failed to set planet maps: %w", err)
	}
	return nil
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawPlanet(mesh MeshBuffer, cameraUniform camera.GPUCameraUniform) error {
	r.backend.WriteCameraUniform(cameraUniform.Marshal())

	count := mesh.IndexCount()
	vb, ib := mesh.VertexBuffer(), mesh.IndexBuffer()
	if count == 0 || vb == nil || ib == nil {
		return nil
	}
	if err := r.backend.DrawPlanet(vb, ib, uint32(count)); err != nil {
		return fmt.Errorf("failed to draw %s: %w", mesh.Label(), err)
	}
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}
