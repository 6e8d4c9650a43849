// Package planet generates an adaptive level-of-detail sphere mesh from six cube-face quadtrees.
package planet

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/common"
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
)

// Viewer is the camera state a Planet needs each frame.
type Viewer interface {
	// Position returns the viewer position in planet space.
	Position() (x, y, z float32)

	// Frustum returns the six inward-facing view frustum planes.
	Frustum() common.Frustum
}

// Stats summarizes the tree and mesh produced by the last Update.
type Stats struct {
	Nodes       int
	Leaves      int
	SplitNodes  int
	Culled      int
	MaxDepth    int
	VertexCount int
	IndexCount  int
}

// Planet is a sphere whose surface mesh is refined around the viewer every frame.
type Planet interface {
	// Update refines the six face trees for the viewer and uploads the resulting mesh to the buffer.
	//
	// Parameters:
	//   - viewer: the camera the mesh is refined for
	//
	// Returns:
	//   - error: error if the buffer rejected the upload
	Update(viewer Viewer) error

	// Buffer returns the buffer receiving the mesh.
	//
	// Returns:
	//   - Buffer: the mesh buffer
	Buffer() Buffer

	// Size returns the planet radius, which is also the edge length of the circumscribing cube.
	//
	// Returns:
	//   - float32: the planet size
	Size() float32

	// SetSize changes the planet size and rebuilds the face trees from their roots.
	//
	// Parameters:
	//   - size: the new size, must be positive
	//
	// Returns:
	//   - error: error if size is not positive
	SetSize(size float32) error

	// MaxHeight returns the terrain displacement budget used to pad bounding volumes.
	//
	// Returns:
	//   - float32: the maximum terrain height
	MaxHeight() float32

	// SetMaxHeight changes the displacement budget and recomputes every bounding volume in place.
	//
	// Parameters:
	//   - maxHeight: the new height, must not be negative
	//
	// Returns:
	//   - error: error if maxHeight is negative
	SetMaxHeight(maxHeight float32) error

	// LevelsTable returns a copy of the per-level split distances.
	//
	// Returns:
	//   - []float32: split distance indexed by level
	LevelsTable() []float32

	// HeightMap returns the attached height map, or nil.
	HeightMap() *texture.Texture

	// NormalMap returns the attached normal map, or nil.
	NormalMap() *texture.Texture

	// Stats returns the tree and mesh statistics of the last Update.
	Stats() Stats
}

type planetImpl struct {
	mu *sync.Mutex

	cfg *treeConfig

	maxLevels int
	lodFactor float32
	chunkSize int

	roots [FaceCount]*quadTree

	buffer    Buffer
	vertices  *chunkedSlice[Vertex]
	indices   *chunkedSlice[uint32]
	heightMap *texture.Texture
	normalMap *texture.Texture

	stats Stats
}

var _ Planet = &planetImpl{}

// NewPlanet creates a Planet with the given options.
//
// Parameters:
//   - options: functional options configuring the planet
//
// Returns:
//   - Planet: the planet with six unsplit face roots
//   - error: error if the configuration is invalid
func NewPlanet(options ...PlanetBuilderOption) (Planet, error) {
	p := &planetImpl{
		mu:        &sync.Mutex{},
		cfg:       &treeConfig{size: DefaultSize},
		maxLevels: DefaultMaxLevels,
		lodFactor: 1,
		chunkSize: DefaultChunkSize,
	}

	for _, option := range options {
		option(p)
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid planet configuration: %w", err)
	}

	if p.buffer == nil {
		p.buffer = NewMemoryBuffer()
	}
	p.vertices = newChunkedSlice[Vertex](p.chunkSize)
	p.indices = newChunkedSlice[uint32](p.chunkSize)

	p.rebuild()
	log.Printf("[Planet] created size=%.2f maxHeight=%.2f levels=%d", p.cfg.size, p.cfg.maxHeight, len(p.cfg.levels))

	return p, nil
}

func (p *planetImpl) validate() error {
	switch {
	case p.cfg.size <= 0:
		return fmt.Errorf("size must be positive, got %f", p.cfg.size)
	case p.cfg.maxHeight < 0:
		return fmt.Errorf("max height must not be negative, got %f", p.cfg.maxHeight)
	case p.maxLevels < 0 || p.maxLevels > MaxLevels:
		return fmt.Errorf("max levels must be within [0, %d], got %d", MaxLevels, p.maxLevels)
	case p.lodFactor <= 0:
		return fmt.Errorf("lod factor must be positive, got %f", p.lodFactor)
	case p.cfg.mergeHysteresis < 0:
		return fmt.Errorf("merge hysteresis must not be negative, got %f", p.cfg.mergeHysteresis)
	case p.chunkSize <= 0:
		return fmt.Errorf("chunk size must be positive, got %d", p.chunkSize)
	}
	return nil
}

// rebuild recreates the levels table and the six face roots for the current size.
func (p *planetImpl) rebuild() {
	var heightMapSize uint32
	if p.heightMap != nil {
		heightMapSize = min(p.heightMap.Width, p.heightMap.Height)
	}
	p.cfg.levels = buildLevelsTable(p.cfg.size, p.lodFactor, p.maxLevels, heightMapSize)

	half := p.cfg.size / 2
	for f := range FaceCount {
		frame := faceFrames[f]
		p.roots[f] = newQuadTree(p.cfg, p.cfg.size, frame.origin.Scale(half), frame.widthDir, frame.heightDir, frame.normal, Face(f), 0)
	}
	for f := range FaceCount {
		for side := OrientationTop; side <= OrientationLeft; side++ {
			p.roots[f].neighbors[side] = p.roots[AdjacentFace(Face(f), side)]
		}
	}
}

func (p *planetImpl) Update(viewer Viewer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	x, y, z := viewer.Position()
	view := &viewState{
		position: common.Vec3{x, y, z},
		frustum:  viewer.Frustum(),
	}
	for _, root := range p.roots {
		root.update(view)
	}

	p.vertices.reset(p.buffer.VertexCount())
	p.indices.reset(p.buffer.IndexCount())
	for _, root := range p.roots {
		root.addChildrenVertices(p.vertices, p.indices)
	}

	p.collectStats(view.culled)

	vertices := p.vertices.slice()
	indices := p.indices.slice()
	if err := p.buffer.Upload(common.SliceToBytes(vertices), common.SliceToBytes(indices), len(vertices), len(indices), BufferUsageDynamic); err != nil {
		return fmt.Errorf("failed to upload planet mesh: %w", err)
	}
	return nil
}

func (p *planetImpl) collectStats(culled int) {
	s := Stats{
		Culled:      culled,
		VertexCount: p.vertices.count(),
		IndexCount:  p.indices.count(),
	}
	p.walk(func(n *quadTree) {
		s.Nodes++
		if n.isSplit {
			s.SplitNodes++
		} else {
			s.Leaves++
		}
		s.MaxDepth = max(s.MaxDepth, n.level)
	})
	p.stats = s
}

// walk visits every node of the six face trees.
func (p *planetImpl) walk(visit func(*quadTree)) {
	for _, root := range p.roots {
		root.walk(visit)
	}
}

func (p *planetImpl) Buffer() Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buffer
}

func (p *planetImpl) Size() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.size
}

func (p *planetImpl) SetSize(size float32) error {
	if size <= 0 {
		return fmt.Errorf("size must be positive, got %f", size)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.size = size
	p.rebuild()
	log.Printf("[Planet] rebuilt for size %.2f", size)
	return nil
}

func (p *planetImpl) MaxHeight() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.maxHeight
}

func (p *planetImpl) SetMaxHeight(maxHeight float32) error {
	if maxHeight < 0 {
		return fmt.Errorf("max height must not be negative, got %f", maxHeight)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.cfg.maxHeight = maxHeight
	for _, root := range p.roots {
		root.recalculate()
	}
	return nil
}

func (p *planetImpl) LevelsTable() []float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]float32(nil), p.cfg.levels...)
}

func (p *planetImpl) HeightMap() *texture.Texture {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.heightMap
}

func (p *planetImpl) NormalMap() *texture.Texture {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.normalMap
}

func (p *planetImpl) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stats
}
