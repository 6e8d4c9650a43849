package planet

import (
	"math"
	"math/bits"
)

const (
	// SentinelLevels is the number of leading table entries that always split.
	SentinelLevels = 3
	// MaxLevels bounds the configurable subdivision depth below the sentinel levels.
	MaxLevels = 24
	// DefaultMaxLevels is the configurable depth used when none is given.
	DefaultMaxLevels = 8
)

// buildLevelsTable returns the split distance for every subdivision level.
// The first SentinelLevels entries are math.MaxFloat32; entry SentinelLevels+i is
// size*lodFactor/2^i. A node at level L splits while the camera is closer than table[L]
// and never splits at L >= len(table).
//
// Parameters:
//   - size: planet size
//   - lodFactor: multiplier applied to every finite distance
//   - maxLevels: number of finite entries
//   - heightMapSize: smaller dimension of the height map, 0 when none is attached
//
// Returns:
//   - []float32: the split distance table
func buildLevelsTable(size, lodFactor float32, maxLevels int, heightMapSize uint32) []float32 {
	if heightMapSize > 0 {
		maxLevels = min(maxLevels, heightMapLevels(heightMapSize))
	}

	levels := make([]float32, 0, SentinelLevels+maxLevels)
	for range SentinelLevels {
		levels = append(levels, math.MaxFloat32)
	}

	d := size * lodFactor
	for range maxLevels {
		levels = append(levels, d)
		d /= 2
	}
	return levels
}

// heightMapLevels caps subdivision so a leaf never covers fewer than 8 height samples per edge.
func heightMapLevels(resolution uint32) int {
	if resolution == 0 {
		return 0
	}
	return max(0, bits.Len32(resolution)-1-3)
}
