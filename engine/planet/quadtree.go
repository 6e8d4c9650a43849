package planet

import (
	"github.com/Carmen-Shannon/oxy-planet/common"
)

// treeConfig holds the planet-wide parameters every node reads.
// It is shared by pointer so SetMaxHeight and table rebuilds reach the whole tree.
type treeConfig struct {
	size            float32
	maxHeight       float32
	levels          []float32
	mergeHysteresis float32
}

// quadTree is one quadrilateral patch of a cube face.
// A node owns either zero or four children; neighbors are non-owning links to the
// same-depth patches across each side, possibly on another face.
type quadTree struct {
	cfg *treeConfig

	size      float32
	position  common.Vec3
	widthDir  common.Vec3
	heightDir common.Vec3
	normal    common.Vec3
	face      Face
	level     int

	corners [4]corner
	center  common.Vec3

	// shape holds the 4 base corners followed by the 4 raised corners.
	shape [8]common.Vec3

	children  [4]*quadTree
	neighbors [4]*quadTree

	isSplit bool
}

// newQuadTree builds a patch and computes its corners, center and bounding volume.
//
// Parameters:
//   - cfg: the shared planet parameters
//   - size: edge length of the patch on the cube
//   - position: cube-space position of the bottom-left corner
//   - widthDir, heightDir: unit basis vectors spanning the patch
//   - normal: outward face normal
//   - face: the cube face this patch lies on
//   - level: subdivision depth (0 for face roots)
//
// Returns:
//   - *quadTree: the new leaf node
func newQuadTree(cfg *treeConfig, size float32, position, widthDir, heightDir, normal common.Vec3, face Face, level int) *quadTree {
	n := &quadTree{
		cfg:       cfg,
		size:      size,
		position:  position,
		widthDir:  widthDir,
		heightDir: heightDir,
		normal:    normal,
		face:      face,
		level:     level,
	}

	w := widthDir.Scale(size)
	h := heightDir.Scale(size)
	cubeCorners := [4]common.Vec3{
		CornerTopLeft:     position.Add(h),
		CornerTopRight:    position.Add(w).Add(h),
		CornerBottomRight: position.Add(w),
		CornerBottomLeft:  position,
	}
	for i, c := range cubeCorners {
		n.corners[i] = corner{
			cubePos:   c,
			spherePos: CubeToSphere(c, cfg.size),
			basis:     cornerBasis[i],
			level:     float32(level),
		}
	}
	n.center = CubeToSphere(position.Add(w.Scale(0.5)).Add(h.Scale(0.5)), cfg.size)
	n.calculateShapeAABB()

	return n
}

// update runs the per-frame cull/split/merge state machine on this node and its subtree.
func (n *quadTree) update(view *viewState) {
	if n.isBeyondHorizon(view.position) || !n.isInsideFrustum(&view.frustum) {
		view.culled++
		if n.isSplit {
			n.merge()
		}
		return
	}

	if n.needSplit(view.position) {
		n.split()
	} else if n.needMerge(view.position) {
		n.merge()
	}

	if n.isSplit {
		for _, child := range n.children {
			child.update(view)
		}
	}
}

// needSplit reports whether the camera is close enough for this leaf to subdivide.
func (n *quadTree) needSplit(cameraPos common.Vec3) bool {
	if n.isSplit || n.level >= len(n.cfg.levels) {
		return false
	}
	return cameraPos.Distance(n.center) < n.cfg.levels[n.level]
}

// needMerge reports whether the camera moved far enough for this node to collapse.
// With zero hysteresis split and merge share the same threshold.
func (n *quadTree) needMerge(cameraPos common.Vec3) bool {
	if !n.isSplit || n.level >= len(n.cfg.levels) {
		return false
	}
	return cameraPos.Distance(n.center) > n.cfg.levels[n.level]*(1+n.cfg.mergeHysteresis)
}

// split creates the four children at half size and links them into the neighbor graph.
func (n *quadTree) split() {
	half := n.size / 2
	w := n.widthDir.Scale(half)
	h := n.heightDir.Scale(half)
	positions := [4]common.Vec3{
		CornerTopLeft:     n.position.Add(h),
		CornerTopRight:    n.position.Add(w).Add(h),
		CornerBottomRight: n.position.Add(w),
		CornerBottomLeft:  n.position,
	}
	for i, pos := range positions {
		n.children[i] = newQuadTree(n.cfg, half, pos, n.widthDir, n.heightDir, n.normal, n.face, n.level+1)
	}

	n.isSplit = true
	n.linkChildren()
}

// merge collapses the subtree back into a leaf, deepest levels first.
func (n *quadTree) merge() {
	if !n.isSplit {
		return
	}
	for _, child := range n.children {
		if child.isSplit {
			child.merge()
		}
	}

	n.isSplit = false
	n.unlinkChildren()
	n.children = [4]*quadTree{}
}

// getChild returns the child at corner c, where c is expressed in a frame rotated by
// quarterTurns relative to this node's face.
func (n *quadTree) getChild(c Corner, quarterTurns int) *quadTree {
	return n.children[c.Rotate(quarterTurns)]
}

// recalculate refreshes the bounding volume of the whole subtree after maxHeight changes.
func (n *quadTree) recalculate() {
	n.calculateShapeAABB()
	if n.isSplit {
		for _, child := range n.children {
			child.recalculate()
		}
	}
}

// walk visits the node and every descendant in pre-order.
func (n *quadTree) walk(visit func(*quadTree)) {
	visit(n)
	if n.isSplit {
		for _, child := range n.children {
			child.walk(visit)
		}
	}
}
