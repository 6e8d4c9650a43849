package planet

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/chewxy/math32"
)

func newTestPlanet(t *testing.T, options ...PlanetBuilderOption) *planetImpl {
	t.Helper()
	p, err := NewPlanet(options...)
	if err != nil {
		t.Fatalf("NewPlanet: %v", err)
	}
	return p.(*planetImpl)
}

// splitToLevel splits every node shallower than level.
func splitToLevel(p *planetImpl, level int) {
	p.walk(func(n *quadTree) {
		if n.level < level && !n.isSplit {
			n.split()
		}
	})
}

// checkTree verifies child counts and that every neighbor link is mutual, same-depth and
// shares exactly the expected edge.
func checkTree(t *testing.T, p *planetImpl) {
	t.Helper()
	p.walk(func(n *quadTree) {
		children := 0
		for _, c := range n.children {
			if c != nil {
				children++
			}
		}
		if (n.isSplit && children != 4) || (!n.isSplit && children != 0) {
			t.Fatalf("%s level %d: split=%v with %d children", n.face, n.level, n.isSplit, children)
		}

		for side := OrientationTop; side <= OrientationLeft; side++ {
			m := n.neighbors[side]
			if m == nil {
				continue
			}
			if m.level != n.level {
				t.Fatalf("%s level %d %s neighbor has level %d", n.face, n.level, side, m.level)
			}

			back := side.Opposite().Rotate(OrientationRotation(n.face, m.face))
			if m.neighbors[back] != n {
				t.Fatalf("%s level %d %s neighbor on %s does not link back on %s", n.face, n.level, side, m.face, back)
			}

			a, b := sideCorners(side)
			ma, mb := sideCorners(back)
			if n.corners[a].cubePos != m.corners[mb].cubePos || n.corners[b].cubePos != m.corners[ma].cubePos {
				t.Fatalf("%s level %d %s neighbor on %s does not share the edge", n.face, n.level, side, m.face)
			}
		}
	})
}

func TestSplitCreatesFourChildren(t *testing.T) {
	p := newTestPlanet(t)
	root := p.roots[FaceFront]
	root.split()

	checkTree(t, p)

	want := [4]common.Vec3{
		CornerTopLeft:     root.position.Add(root.heightDir.Scale(root.size / 2)),
		CornerTopRight:    root.position.Add(root.widthDir.Scale(root.size / 2)).Add(root.heightDir.Scale(root.size / 2)),
		CornerBottomRight: root.position.Add(root.widthDir.Scale(root.size / 2)),
		CornerBottomLeft:  root.position,
	}
	for c, child := range root.children {
		if child.position != want[c] {
			t.Fatalf("child %d position = %v, want %v", c, child.position, want[c])
		}
		if child.size != root.size/2 || child.level != 1 || child.face != FaceFront {
			t.Fatalf("child %d: size=%f level=%d face=%s", c, child.size, child.level, child.face)
		}
	}
}

func TestSplitMergeRestoresNode(t *testing.T) {
	p := newTestPlanet(t, WithMaxHeight(20))
	root := p.roots[FaceTop]

	corners, center, shape := root.corners, root.center, root.shape
	neighbors := root.neighbors

	root.split()
	root.children[CornerTopRight].split()
	root.merge()

	if root.isSplit {
		t.Fatalf("root still split after merge")
	}
	for c, child := range root.children {
		if child != nil {
			t.Fatalf("child %d not released", c)
		}
	}
	if root.corners != corners || root.center != center || root.shape != shape {
		t.Fatalf("geometry changed across split/merge")
	}
	if root.neighbors != neighbors {
		t.Fatalf("root neighbors changed across split/merge")
	}
	checkTree(t, p)
}

func TestNeighborsLinkWhenBothSidesSplit(t *testing.T) {
	p := newTestPlanet(t)
	front := p.roots[FaceFront]
	right := p.roots[FaceRight]

	front.split()
	if got := front.children[CornerTopRight].neighbors[OrientationRight]; got != nil {
		t.Fatalf("front TR linked to %v while right root is a leaf", got)
	}
	if got := front.children[CornerTopRight].neighbors[OrientationLeft]; got != front.children[CornerTopLeft] {
		t.Fatalf("front TR left neighbor is not its sibling")
	}

	right.split()
	if got := front.children[CornerTopRight].neighbors[OrientationRight]; got != right.children[CornerTopLeft] {
		t.Fatalf("front TR right neighbor is not right TL")
	}
	if got := front.children[CornerBottomRight].neighbors[OrientationRight]; got != right.children[CornerBottomLeft] {
		t.Fatalf("front BR right neighbor is not right BL")
	}
	if got := right.children[CornerTopLeft].neighbors[OrientationLeft]; got != front.children[CornerTopRight] {
		t.Fatalf("right TL left neighbor is not front TR")
	}
	checkTree(t, p)

	front.merge()
	if got := right.children[CornerTopLeft].neighbors[OrientationLeft]; got != nil {
		t.Fatalf("right TL still linked to a released child")
	}
	if got := right.children[CornerBottomLeft].neighbors[OrientationLeft]; got != nil {
		t.Fatalf("right BL still linked to a released child")
	}
	checkTree(t, p)
}

func TestNeighborsLinkAcrossRotatedFaces(t *testing.T) {
	p := newTestPlanet(t)
	left := p.roots[FaceLeft]
	top := p.roots[FaceTop]

	top.split()
	left.split()

	// Left's top edge meets Top's left edge, a quarter turn apart.
	if got := left.children[CornerTopLeft].neighbors[OrientationTop]; got != top.children[CornerTopLeft] {
		t.Fatalf("left TL top neighbor is not top TL")
	}
	if got := left.children[CornerTopRight].neighbors[OrientationTop]; got != top.children[CornerBottomLeft] {
		t.Fatalf("left TR top neighbor is not top BL")
	}
	if got := top.children[CornerTopLeft].neighbors[OrientationLeft]; got != left.children[CornerTopLeft] {
		t.Fatalf("top TL left neighbor is not left TL")
	}
	checkTree(t, p)
}

func TestNeighborsStaySymmetricAtDepth(t *testing.T) {
	p := newTestPlanet(t)
	splitToLevel(p, 3)
	checkTree(t, p)

	p.walk(func(n *quadTree) {
		if n.level == 3 {
			for side, m := range n.neighbors {
				if m == nil {
					t.Fatalf("%s level 3 node has no %s neighbor in a uniform tree", n.face, Orientation(side))
				}
			}
		}
	})

	// Collapse every other level-1 node and make sure no link dangles.
	i := 0
	p.walk(func(n *quadTree) {
		if n.level == 1 {
			if i%2 == 0 {
				n.merge()
			}
			i++
		}
	})
	checkTree(t, p)
}

func TestNeedSplitAndNeedMerge(t *testing.T) {
	cfg := &treeConfig{size: 100, levels: []float32{50, 25}}
	n := &quadTree{cfg: cfg, center: common.Vec3{0, 0, 100}}

	if !n.needSplit(common.Vec3{0, 0, 149}) {
		t.Fatalf("expected split inside the level distance")
	}
	if n.needSplit(common.Vec3{0, 0, 150}) {
		t.Fatalf("expected no split at exactly the level distance")
	}

	n.isSplit = true
	if n.needSplit(common.Vec3{0, 0, 100}) {
		t.Fatalf("split node reported needSplit")
	}
	if n.needMerge(common.Vec3{0, 0, 150}) {
		t.Fatalf("expected no merge at exactly the level distance")
	}
	if !n.needMerge(common.Vec3{0, 0, 151}) {
		t.Fatalf("expected merge beyond the level distance")
	}

	cfg.mergeHysteresis = 0.5
	if n.needMerge(common.Vec3{0, 0, 170}) {
		t.Fatalf("expected hysteresis to hold the split")
	}
	if !n.needMerge(common.Vec3{0, 0, 176}) {
		t.Fatalf("expected merge beyond the hysteresis band")
	}

	deep := &quadTree{cfg: cfg, level: 2}
	if deep.needSplit(common.Vec3{}) {
		t.Fatalf("node past the table end reported needSplit")
	}
}

func TestHorizon(t *testing.T) {
	cfg := &treeConfig{size: 100}
	camera := common.Vec3{0, 0, 170}

	withPoint := func(p common.Vec3) *quadTree {
		n := &quadTree{cfg: cfg}
		for i := 4; i < 8; i++ {
			n.shape[i] = p
		}
		return n
	}

	if !withPoint(common.Vec3{0, 0, -100}).isBeyondHorizon(camera) {
		t.Fatalf("point opposite the camera not occluded")
	}

	// Every point on the cap the camera can actually see must stay visible.
	radius := cfg.size
	cosHorizon := radius / camera.Length()
	for i := 0; i <= 16; i++ {
		for j := 0; j < 16; j++ {
			z := cosHorizon + (1-cosHorizon)*float32(i)/16
			rim := math32.Sqrt(1 - z*z)
			r := common.Vec3{rim, 0, 0}
			dir := common.Vec3{0, 0, z}
			if j%2 == 1 {
				r = common.Vec3{0, rim, 0}
			}
			if j >= 8 {
				r = r.Negate()
			}
			p := dir.Add(r).Normalize().Scale(radius)
			if withPoint(p).isBeyondHorizon(camera) {
				t.Fatalf("visible point %v classified beyond the horizon", p)
			}
		}
	}

	mixed := withPoint(common.Vec3{0, 0, -100})
	mixed.shape[5] = common.Vec3{0, 0, 100}
	if mixed.isBeyondHorizon(camera) {
		t.Fatalf("node with one visible raised corner classified occluded")
	}
}

func TestFrustumCulling(t *testing.T) {
	n := &quadTree{}
	for i := range n.shape {
		n.shape[i] = common.Vec3{float32(i), 0, 0}
	}

	// Every plane faces +x with the boundary at x = 3.
	var f common.Frustum
	for i := range f.Planes {
		f.Planes[i] = common.Plane{Normal: common.Vec3{1, 0, 0}, Distance: -3}
	}
	if !n.isInsideFrustum(&f) {
		t.Fatalf("shape straddling every plane reported outside")
	}

	f.Planes[common.FrustumFar] = common.Plane{Normal: common.Vec3{1, 0, 0}, Distance: -8}
	if n.isInsideFrustum(&f) {
		t.Fatalf("shape entirely behind the far plane reported inside")
	}
}

func TestBoundingVolumeContainsPatch(t *testing.T) {
	p := newTestPlanet(t, WithMaxHeight(10))
	splitToLevel(p, 2)

	p.walk(func(n *quadTree) {
		for i := 4; i < 8; i++ {
			if got := n.shape[i].Length(); got < p.cfg.size+p.cfg.maxHeight-1e-3 {
				t.Fatalf("%s level %d raised corner at radius %f, want >= %f", n.face, n.level, got, p.cfg.size+p.cfg.maxHeight)
			}
		}
	})

	root := p.roots[FaceFront]
	before := root.shape
	if err := p.SetMaxHeight(30); err != nil {
		t.Fatalf("SetMaxHeight: %v", err)
	}
	if root.shape == before {
		t.Fatalf("SetMaxHeight did not recompute the bounding volume")
	}
	for i := 0; i < 4; i++ {
		if root.shape[i] != before[i] {
			t.Fatalf("SetMaxHeight moved base corner %d", i)
		}
	}
}
