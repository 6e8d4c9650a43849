package planet

import (
	"github.com/Carmen-Shannon/oxy-planet/engine/texture"
)

// DefaultSize is the planet size used when WithSize is not given.
const DefaultSize = 100

type PlanetBuilderOption func(*planetImpl)

// WithSize sets the planet size. The sphere radius equals the size and the circumscribing
// cube has edge length size.
//
// Parameters:
//   - size: the planet size, must be positive
//
// Returns:
//   - PlanetBuilderOption: a function that sets the planet size
func WithSize(size float32) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.cfg.size = size
	}
}

// WithMaxHeight sets how far terrain may be displaced above the sphere.
// Bounding volumes are extruded by this amount so displaced patches are not culled early.
//
// Parameters:
//   - maxHeight: the displacement budget, must not be negative
//
// Returns:
//   - PlanetBuilderOption: a function that sets the max height
func WithMaxHeight(maxHeight float32) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.cfg.maxHeight = maxHeight
	}
}

// WithMaxLevels sets how many subdivision levels follow the always-split levels.
//
// Parameters:
//   - levels: number of distance-driven levels, within [0, MaxLevels]
//
// Returns:
//   - PlanetBuilderOption: a function that sets the level count
func WithMaxLevels(levels int) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.maxLevels = levels
	}
}

// WithLODFactor scales every split distance. Values above 1 refine earlier.
//
// Parameters:
//   - factor: distance multiplier, must be positive
//
// Returns:
//   - PlanetBuilderOption: a function that sets the LOD factor
func WithLODFactor(factor float32) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.lodFactor = factor
	}
}

// WithMergeHysteresis widens the merge distance to table[level]*(1+hysteresis).
// Zero keeps split and merge on the same threshold.
//
// Parameters:
//   - hysteresis: fractional band, must not be negative
//
// Returns:
//   - PlanetBuilderOption: a function that sets the merge hysteresis
func WithMergeHysteresis(hysteresis float32) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.cfg.mergeHysteresis = hysteresis
	}
}

// WithChunkSize sets how many elements the vertex and index scratch buffers grow by.
//
// Parameters:
//   - chunkSize: growth increment, must be positive
//
// Returns:
//   - PlanetBuilderOption: a function that sets the chunk size
func WithChunkSize(chunkSize int) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.chunkSize = chunkSize
	}
}

// WithBuffer sets the buffer the mesh is uploaded to. Defaults to a MemoryBuffer.
//
// Parameters:
//   - buffer: the mesh buffer
//
// Returns:
//   - PlanetBuilderOption: a function that sets the buffer
func WithBuffer(buffer Buffer) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.buffer = buffer
	}
}

// WithHeightMap attaches a height map. Its resolution caps the subdivision depth.
//
// Parameters:
//   - heightMap: the decoded height map
//
// Returns:
//   - PlanetBuilderOption: a function that sets the height map
func WithHeightMap(heightMap *texture.Texture) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.heightMap = heightMap
	}
}

// WithNormalMap attaches a normal map.
//
// Parameters:
//   - normalMap: the decoded normal map
//
// Returns:
//   - PlanetBuilderOption: a function that sets the normal map
func WithNormalMap(normalMap *texture.Texture) PlanetBuilderOption {
	return func(p *planetImpl) {
		p.normalMap = normalMap
	}
}
