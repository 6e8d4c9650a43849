package camera

import (
	"sync"

	"github.com/chewxy/math32"
)

// minAltitudeScale keeps orbit and zoom steps from vanishing right at the surface.
const minAltitudeScale = 0.01

// cameraControllerImpl orbits a target on a sphere described by spherical coordinates.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position [3]float32
	target   [3]float32

	radius    float32
	azimuth   float32 // around Y
	elevation float32 // above the XZ plane

	surfaceRadius float32

	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller with defaults suited to a planet of size 100.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		radius:    250.0,
		elevation: math32.Pi / 8,

		minRadius:    0,
		maxRadius:    2000.0,
		minElevation: -math32.Pi/2 + 0.01,
		maxElevation: math32.Pi/2 - 0.01,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        0.1,
	}

	for _, option := range options {
		option(cc)
	}

	cc.minRadius = max(cc.minRadius, cc.surfaceRadius*1.001)
	cc.radius = cc.clampRadius(cc.radius)
	cc.elevation = cc.clampElevation(cc.elevation)
	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	sinElev, cosElev := math32.Sin(cc.elevation), math32.Cos(cc.elevation)
	sinAzim, cosAzim := math32.Sin(cc.azimuth), math32.Cos(cc.azimuth)

	cc.position[0] = cc.target[0] + cc.radius*cosElev*sinAzim
	cc.position[1] = cc.target[1] + cc.radius*sinElev
	cc.position[2] = cc.target[2] + cc.radius*cosElev*cosAzim
}

// altitudeScale is the altitude relative to the surface radius, in [minAltitudeScale, 1].
// Without a surface radius it is always 1.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) altitudeScale() float32 {
	if cc.surfaceRadius <= 0 {
		return 1
	}
	return min(1, max(minAltitudeScale, (cc.radius-cc.surfaceRadius)/cc.surfaceRadius))
}

func (cc *cameraControllerImpl) clampRadius(r float32) float32 {
	return min(cc.maxRadius, max(cc.minRadius, r))
}

func (cc *cameraControllerImpl) clampElevation(e float32) float32 {
	return min(cc.maxElevation, max(cc.minElevation, e))
}

// orbit shifts the spherical angles, scaled by altitude.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) orbit(dAzimuth, dElevation float32) {
	scale := cc.altitudeScale()
	cc.azimuth += dAzimuth * scale
	cc.elevation = cc.clampElevation(cc.elevation + dElevation*scale)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position[0], cc.position[1], cc.position[2]
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) SetTarget(x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = [3]float32{x, y, z}
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	altitude := cc.radius - cc.surfaceRadius
	if cc.surfaceRadius <= 0 {
		altitude = cc.radius
	}
	cc.radius = cc.clampRadius(cc.radius - delta*cc.zoomSpeed*altitude)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(-cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(cc.orbitSpeed, 0)
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(0, cc.orbitSpeed)
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(0, -cc.orbitSpeed)
}

func (cc *cameraControllerImpl) Drag(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orbit(-dx*cc.mouseSensitivity, dy*cc.mouseSensitivity)
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = cc.clampRadius(radius)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = cc.clampElevation(elevation)
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Altitude() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius - cc.surfaceRadius
}
