package planet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
	"github.com/chewxy/math32"
)

type testViewer struct {
	position common.Vec3
	frustum  common.Frustum
}

func (v *testViewer) Position() (x, y, z float32) {
	return v.position[0], v.position[1], v.position[2]
}

func (v *testViewer) Frustum() common.Frustum {
	return v.frustum
}

// lookAtOrigin builds a viewer at eye looking at the origin with a 45° 16:9 perspective.
func lookAtOrigin(eye common.Vec3) *testViewer {
	var view, proj, viewProj [16]float32
	common.LookAt(view[:], eye[0], eye[1], eye[2], 0, 0, 0, 0, 1, 0)
	common.Perspective(proj[:], math32.Pi/4, 16.0/9.0, 0.1, 1000)
	common.Mul4(viewProj[:], proj[:], view[:])
	return &testViewer{position: eye, frustum: common.ExtractFrustumFromMatrix(viewProj[:])}
}

// openViewer accepts every point.
func openViewer(pos common.Vec3) *testViewer {
	return &testViewer{position: pos}
}

func maxDepth(n *quadTree) int {
	depth := 0
	n.walk(func(c *quadTree) {
		depth = max(depth, c.level)
	})
	return depth
}

func TestNewPlanetValidates(t *testing.T) {
	tests := []struct {
		name    string
		options []PlanetBuilderOption
	}{
		{"zero size", []PlanetBuilderOption{WithSize(0)}},
		{"negative height", []PlanetBuilderOption{WithMaxHeight(-1)}},
		{"too many levels", []PlanetBuilderOption{WithMaxLevels(MaxLevels + 1)}},
		{"negative levels", []PlanetBuilderOption{WithMaxLevels(-1)}},
		{"zero lod factor", []PlanetBuilderOption{WithLODFactor(0)}},
		{"negative hysteresis", []PlanetBuilderOption{WithMergeHysteresis(-0.1)}},
		{"zero chunk", []PlanetBuilderOption{WithChunkSize(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlanet(tt.options...); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLevelsTable(t *testing.T) {
	p := newTestPlanet(t, WithSize(100), WithMaxLevels(6), WithLODFactor(2))
	levels := p.LevelsTable()

	if len(levels) != SentinelLevels+6 {
		t.Fatalf("table has %d entries, want %d", len(levels), SentinelLevels+6)
	}
	for i := range SentinelLevels {
		if levels[i] != math.MaxFloat32 {
			t.Fatalf("level %d = %f, want the sentinel", i, levels[i])
		}
	}
	if levels[SentinelLevels] != 200 {
		t.Fatalf("first distance = %f, want 200", levels[SentinelLevels])
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] > levels[i-1] {
			t.Fatalf("table increases at level %d", i)
		}
	}

	levels[0] = 0
	if p.LevelsTable()[0] != math.MaxFloat32 {
		t.Fatalf("LevelsTable exposed internal storage")
	}
}

func TestLevelsTableCappedByHeightMap(t *testing.T) {
	heightMap := &texture.Texture{Name: "height", Width: 512, Height: 256}
	p := newTestPlanet(t, WithMaxLevels(10), WithHeightMap(heightMap))

	// 256 samples allow 2^(8-3) subdivisions per edge.
	if got := len(p.LevelsTable()); got != SentinelLevels+5 {
		t.Fatalf("table has %d entries, want %d", got, SentinelLevels+5)
	}
	if p.HeightMap() != heightMap || p.NormalMap() != nil {
		t.Fatalf("map handles not forwarded")
	}
}

func TestScenarioCameraAboveFront(t *testing.T) {
	p := newTestPlanet(t, WithSize(100), WithMaxHeight(20))
	viewer := lookAtOrigin(common.Vec3{0, 0, 170})

	if err := p.Update(viewer); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := maxDepth(p.roots[FaceFront]); got <= SentinelLevels {
		t.Fatalf("front face reached depth %d, want more than %d", got, SentinelLevels)
	}
	back := p.roots[FaceBack]
	if !back.isBeyondHorizon(viewer.position) {
		t.Fatalf("back face not beyond the horizon")
	}
	if back.isSplit {
		t.Fatalf("back face split while occluded")
	}

	stats := p.Stats()
	if stats.IndexCount == 0 || stats.IndexCount%3 != 0 {
		t.Fatalf("index count %d is not a positive multiple of 3", stats.IndexCount)
	}
	if stats.IndexCount > 3*stats.VertexCount {
		t.Fatalf("index count %d exceeds 3x vertex count %d", stats.IndexCount, stats.VertexCount)
	}
	if stats.Culled == 0 {
		t.Fatalf("expected culled nodes")
	}
	if stats.Nodes != stats.Leaves+stats.SplitNodes {
		t.Fatalf("stats do not add up: %+v", stats)
	}
}

func TestScenarioCameraOnLevelBoundary(t *testing.T) {
	p := newTestPlanet(t, WithSize(100))
	splitToLevel(p, 3)

	var target *quadTree
	p.roots[FaceFront].walk(func(n *quadTree) {
		if target == nil && n.level == 3 {
			target = n
		}
	})
	threshold := p.cfg.levels[3]
	viewer := openViewer(target.center.Add(target.center.Normalize().Scale(threshold)))

	snapshot := func() map[*quadTree]bool {
		split := make(map[*quadTree]bool)
		p.walk(func(n *quadTree) {
			split[n] = n.isSplit
		})
		return split
	}

	if err := p.Update(viewer); err != nil {
		t.Fatalf("Update: %v", err)
	}
	first := snapshot()
	for frame := range 3 {
		if err := p.Update(viewer); err != nil {
			t.Fatalf("Update: %v", err)
		}
		next := snapshot()
		if len(next) != len(first) {
			t.Fatalf("frame %d: node count changed from %d to %d", frame, len(first), len(next))
		}
		for n, split := range first {
			if got, ok := next[n]; !ok || got != split {
				t.Fatalf("frame %d: node at level %d toggled", frame, n.level)
			}
		}
	}
}

func TestUpdateMergesWhenCameraLeaves(t *testing.T) {
	p := newTestPlanet(t, WithSize(100))

	if err := p.Update(openViewer(common.Vec3{0, 0, 105})); err != nil {
		t.Fatalf("Update: %v", err)
	}
	near := p.Stats()

	if err := p.Update(openViewer(common.Vec3{0, 0, 5000})); err != nil {
		t.Fatalf("Update: %v", err)
	}
	far := p.Stats()

	if near.MaxDepth <= far.MaxDepth {
		t.Fatalf("depth near = %d, far = %d", near.MaxDepth, far.MaxDepth)
	}
	if far.MaxDepth != SentinelLevels {
		t.Fatalf("far camera kept depth %d, want %d", far.MaxDepth, SentinelLevels)
	}
	checkTree(t, p)
}

func TestUpdateUploadsMesh(t *testing.T) {
	buffer := NewMemoryBuffer()
	p := newTestPlanet(t, WithSize(100), WithBuffer(buffer))

	if err := p.Update(openViewer(common.Vec3{0, 0, 150})); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stats := p.Stats()
	if buffer.VertexCount() != stats.VertexCount || buffer.IndexCount() != stats.IndexCount {
		t.Fatalf("buffer counts %d/%d, stats %d/%d", buffer.VertexCount(), buffer.IndexCount(), stats.VertexCount, stats.IndexCount)
	}
	if got := len(buffer.VertexData()); got != stats.VertexCount*VertexSize {
		t.Fatalf("vertex bytes = %d, want %d", got, stats.VertexCount*VertexSize)
	}
	if got := len(buffer.IndexData()); got != stats.IndexCount*4 {
		t.Fatalf("index bytes = %d, want %d", got, stats.IndexCount*4)
	}

	vertices := make([]Vertex, stats.VertexCount)
	if err := binary.Read(bytes.NewReader(buffer.VertexData()), binary.NativeEndian, vertices); err != nil {
		t.Fatalf("decode vertices: %v", err)
	}
	indices := make([]uint32, stats.IndexCount)
	if err := binary.Read(bytes.NewReader(buffer.IndexData()), binary.NativeEndian, indices); err != nil {
		t.Fatalf("decode indices: %v", err)
	}
	for i, v := range vertices {
		if r := common.Vec3(v.Position).Length(); math32.Abs(r-100) > 1e-3 {
			t.Fatalf("vertex %d at radius %f", i, r)
		}
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}

	if err := p.Update(openViewer(common.Vec3{0, 0, 150})); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if buffer.Uploads() != 2 {
		t.Fatalf("got %d uploads, want 2", buffer.Uploads())
	}
}

type failingBuffer struct {
	MemoryBuffer
}

var errUpload = errors.New("device lost")

func (b *failingBuffer) Upload(vertices, indices []byte, vertexCount, indexCount int, usage BufferUsage) error {
	return errUpload
}

func TestUpdateWrapsUploadError(t *testing.T) {
	buffer := &failingBuffer{MemoryBuffer: *NewMemoryBuffer()}
	p := newTestPlanet(t, WithBuffer(buffer))

	err := p.Update(openViewer(common.Vec3{0, 0, 150}))
	if !errors.Is(err, errUpload) {
		t.Fatalf("Update error = %v, want wrapped upload error", err)
	}
}

func TestSetSizeRebuildsTree(t *testing.T) {
	p := newTestPlanet(t, WithSize(100))
	if err := p.Update(openViewer(common.Vec3{0, 0, 120})); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := p.SetSize(0); err == nil {
		t.Fatalf("SetSize(0) accepted")
	}
	if err := p.SetSize(400); err != nil {
		t.Fatalf("SetSize: %v", err)
	}
	if p.Size() != 400 || p.LevelsTable()[SentinelLevels] != 400 {
		t.Fatalf("size %f, first distance %f", p.Size(), p.LevelsTable()[SentinelLevels])
	}
	for f, root := range p.roots {
		if root.isSplit {
			t.Fatalf("root %s still split after rebuild", Face(f))
		}
		for c := range root.corners {
			if r := root.corners[c].spherePos.Length(); math32.Abs(r-400) > 1e-2 {
				t.Fatalf("root %s corner %d at radius %f", Face(f), c, r)
			}
		}
	}
	checkTree(t, p)
}
