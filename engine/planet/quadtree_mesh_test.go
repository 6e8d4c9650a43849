package planet

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
)

type edge [2][3]float32

// emit runs the triangulation over every face tree.
func emit(p *planetImpl) ([]Vertex, []uint32) {
	vertices := newChunkedSlice[Vertex](DefaultChunkSize)
	indices := newChunkedSlice[uint32](DefaultChunkSize)
	for _, root := range p.roots {
		root.addChildrenVertices(vertices, indices)
	}
	return vertices.slice(), indices.slice()
}

// checkClosedManifold verifies that every directed edge of the mesh appears exactly once and
// is matched by exactly one reverse edge, and that every triangle faces away from the center.
// Vertices are identified by cube position, which stays exact on the power-of-two grid.
func checkClosedManifold(t *testing.T, vertices []Vertex, indices []uint32) {
	t.Helper()
	if len(indices) == 0 || len(indices)%3 != 0 {
		t.Fatalf("index count %d is not a positive multiple of 3", len(indices))
	}

	edges := make(map[edge]int)
	for i := 0; i < len(indices); i += 3 {
		tri := [3]Vertex{vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]]}
		for k := range 3 {
			a, b := tri[k].CubePosition, tri[(k+1)%3].CubePosition
			if a == b {
				t.Fatalf("triangle %d is degenerate", i/3)
			}
			edges[edge{a, b}]++
		}

		p0 := common.Vec3(tri[0].Position)
		n := common.Vec3(tri[1].Position).Sub(p0).Cross(common.Vec3(tri[2].Position).Sub(p0))
		if n.Dot(p0) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}

	for e, count := range edges {
		if count != 1 {
			t.Fatalf("edge %v emitted %d times", e, count)
		}
		if reverse := edges[edge{e[1], e[0]}]; reverse != 1 {
			t.Fatalf("edge %v has %d reverse edges", e, reverse)
		}
	}
}

func TestMeshIsClosedAtUniformDepth(t *testing.T) {
	for _, level := range []int{1, 2, 3} {
		p := newTestPlanet(t)
		splitToLevel(p, level)

		vertices, indices := emit(p)
		checkClosedManifold(t, vertices, indices)

		leaves := 0
		p.walk(func(n *quadTree) {
			if !n.isSplit {
				leaves++
			}
		})
		// Every leaf has all four neighbors, so each contributes two half-triangles.
		if got, want := len(indices)/3, leaves*2; got != want {
			t.Fatalf("level %d: %d triangles, want %d", level, got, want)
		}
	}
}

func TestMeshIsClosedAcrossMixedDepths(t *testing.T) {
	p := newTestPlanet(t)
	splitToLevel(p, 2)

	var refine []*quadTree
	p.walk(func(n *quadTree) {
		// Refine a band crossing the Front, Right, Top and Bottom faces.
		if n.level == 2 && n.center[2] > 0 && n.center[0] > -20 {
			refine = append(refine, n)
		}
	})
	if len(refine) == 0 {
		t.Fatalf("no nodes selected for refinement")
	}
	for _, n := range refine {
		n.split()
	}
	checkTree(t, p)

	vertices, indices := emit(p)
	checkClosedManifold(t, vertices, indices)
}

func TestMeshIsClosedAfterPartialMerge(t *testing.T) {
	p := newTestPlanet(t)
	splitToLevel(p, 3)

	p.walk(func(n *quadTree) {
		if n.level == 2 && n.face == FaceTop && n.center[0] < 0 {
			n.merge()
		}
	})
	checkTree(t, p)

	vertices, indices := emit(p)
	checkClosedManifold(t, vertices, indices)
}

func TestMeshVertexLayout(t *testing.T) {
	p := newTestPlanet(t)
	root := p.roots[FaceFront]
	root.split()

	vertices, _ := emit(p)
	if len(vertices) != 16 {
		t.Fatalf("got %d vertices for one split node, want 16", len(vertices))
	}

	order := [4]Corner{CornerTopLeft, CornerBottomRight, CornerBottomLeft, CornerTopRight}
	for i, c := range [4]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight} {
		child := root.children[c]
		for j, k := range order {
			v := vertices[i*4+j]
			if v.CubePosition != [3]float32(child.corners[k].cubePos) {
				t.Fatalf("vertex %d is not corner %d of child %d", i*4+j, k, c)
			}
			if v.Level != 1 || v.Basis != [3]float32(cornerBasis[k]) {
				t.Fatalf("vertex %d: level %f basis %v", i*4+j, v.Level, v.Basis)
			}
		}
	}
}

func TestMeshCoarseNeighborUsesGapTriangles(t *testing.T) {
	p := newTestPlanet(t)
	front := p.roots[FaceFront]
	front.split()

	_, indices := emit(p)
	// No other root is split, so each outer edge is covered by a single gap triangle
	// and no child draws a half-triangle.
	if got := len(indices) / 3; got != 4 {
		t.Fatalf("got %d triangles, want 4", got)
	}

	p.roots[FaceRight].split()
	_, indices = emit(p)
	// Front's right edge now borders split children: one gap triangle becomes two halves
	// on Front, and Right gains its own three gaps plus two halves.
	if got := len(indices) / 3; got != 10 {
		t.Fatalf("got %d triangles after splitting the right root, want 10", got)
	}
}
