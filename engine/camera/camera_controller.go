package camera

// CameraController owns the eye position and look-at target the camera is built from.
// The controller orbits a planet: it sits on a sphere around the target described by
// radius, azimuth and elevation, and slows its motion as it nears the planet surface.
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the orbit pivot and recomputes the position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// Zoom moves the camera toward (positive delta) or away from the target.
	// The step is proportional to the altitude above the surface, so the camera never
	// overshoots into the planet.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	Zoom(delta float32)

	// OrbitLeft rotates the camera left around the target by one orbit step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit step.
	OrbitRight()

	// OrbitUp tilts the camera toward the north pole, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera toward the south pole, clamped to min elevation.
	OrbitDown()

	// Drag orbits by a mouse movement in pixels.
	//
	// Parameters:
	//   - dx, dy: cursor movement since the last call
	Drag(dx, dy float32)

	// Radius returns the distance from the target.
	Radius() float32

	// SetRadius sets the distance from the target, clamped to the radius bounds.
	SetRadius(radius float32)

	// Azimuth returns the horizontal angle around the Y axis in radians.
	Azimuth() float32

	// SetAzimuth sets the horizontal angle in radians.
	SetAzimuth(azimuth float32)

	// Elevation returns the angle above the equatorial plane in radians.
	Elevation() float32

	// SetElevation sets the elevation, clamped to the elevation bounds.
	SetElevation(elevation float32)

	// Altitude returns the distance between the camera and the planet surface.
	//
	// Returns:
	//   - float32: radius minus the surface radius
	Altitude() float32
}
