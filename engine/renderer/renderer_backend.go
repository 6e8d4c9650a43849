package renderer

import "log"

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how planet frames reach the display.
type PresentMode int

const (
	// PresentModeVSync presents on vertical blank, capping the frame rate to the refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately. Useful for measuring how fast the planet mesh
	// is rebuilt, at the cost of tearing.
	PresentModeUncapped
)

// PresentModeFor maps a vsync toggle to a PresentMode.
func PresentModeFor(vsync bool) PresentMode {
	if vsync {
		return PresentModeVSync
	}
	return PresentModeUncapped
}

func (m PresentMode) String() string {
	if m == PresentModeVSync {
		return "vsync"
	}
	return "uncapped"
}

// MSAASampleCount is the number of samples per pixel for the color and depth attachments.
// Only the counts WebGPU guarantees are offered.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4x multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4
)

// orDefault returns m, or MSAA4x when m is not a guaranteed sample count.
func (m MSAASampleCount) orDefault() MSAASampleCount {
	switch m {
	case MSAAOff, MSAA4x:
		return m
	default:
		log.Printf("[Renderer] unsupported MSAA sample count %d, using %d", m, MSAA4x)
		return MSAA4x
	}
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
