package planet

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
)

// viewState is the camera data sampled once per frame and shared by the whole tree walk.
type viewState struct {
	position common.Vec3
	frustum  common.Frustum
	culled   int
}

// calculateShapeAABB builds the 8-point bounding volume used by both culling tests.
//
// The first four points are the sphere-mapped corners. Face roots additionally push each
// edge outward to its sphere-mapped midpoint, since a whole cube face bows far past its corners.
// The last four points are the base corners shifted toward the curved patch centroid and
// extruded radially by maxHeight so displaced terrain stays inside the volume.
func (n *quadTree) calculateShapeAABB() {
	for i := range 4 {
		n.shape[i] = n.corners[i].spherePos
	}

	if n.level == 0 {
		n.padShapeEdges()
	}

	var flat common.Vec3
	for i := range 4 {
		flat = flat.Add(n.corners[i].spherePos)
	}
	offset := n.center.Sub(flat.Scale(0.25))

	for i := range 4 {
		raised := n.shape[i].Add(offset)
		n.shape[4+i] = raised.Add(raised.Normalize().Scale(n.cfg.maxHeight))
	}
}

// padShapeEdges moves the two base corners of each side along the side's outward basis
// direction by the bulge of the sphere-mapped edge midpoint.
func (n *quadTree) padShapeEdges() {
	w := n.widthDir.Scale(n.size)
	h := n.heightDir.Scale(n.size)
	midpoints := [4]common.Vec3{
		OrientationTop:    n.position.Add(h).Add(w.Scale(0.5)),
		OrientationRight:  n.position.Add(w).Add(h.Scale(0.5)),
		OrientationBottom: n.position.Add(w.Scale(0.5)),
		OrientationLeft:   n.position.Add(h.Scale(0.5)),
	}
	outward := [4]common.Vec3{
		OrientationTop:    n.heightDir,
		OrientationRight:  n.widthDir,
		OrientationBottom: n.heightDir.Negate(),
		OrientationLeft:   n.widthDir.Negate(),
	}

	var padding [4]common.Vec3
	for side := OrientationTop; side <= OrientationLeft; side++ {
		first, _ := sideCorners(side)
		mid := CubeToSphere(midpoints[side], n.cfg.size)
		bulge := mid.Sub(n.corners[first].spherePos).Dot(outward[side])
		padding[side] = outward[side].Scale(bulge)
	}

	for side := OrientationTop; side <= OrientationLeft; side++ {
		first, second := sideCorners(side)
		n.shape[first] = n.shape[first].Add(padding[side])
		n.shape[second] = n.shape[second].Add(padding[side])
	}
}

// isInsideFrustum reports whether the bounding volume can intersect the view frustum.
func (n *quadTree) isInsideFrustum(f *common.Frustum) bool {
	return f.IsShapeInside(n.shape[:])
}

// isBeyondHorizon reports whether every raised corner lies past the planet's horizon as seen
// from cameraPos. Positions are measured in units of half the planet size.
func (n *quadTree) isBeyondHorizon(cameraPos common.Vec3) bool {
	unit := 2 / n.cfg.size
	viewPos := cameraPos.Scale(unit)
	planetCenterDir := viewPos.Negate()
	threshold := planetCenterDir.LengthSquared() - 1

	for i := 4; i < 8; i++ {
		p := n.shape[i].Scale(unit)
		if p.Sub(viewPos).Dot(planetCenterDir) <= threshold {
			return false
		}
	}
	return true
}
