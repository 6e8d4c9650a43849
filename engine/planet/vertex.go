package planet

import (
	"unsafe"

	"github.com/Carmen-Shannon/oxy-planet/common"
)

// Vertex is the interleaved per-vertex layout uploaded to the mesh buffer.
// Size: 40 bytes, tightly packed (four float32 attributes, no padding).
type Vertex struct {
	Position     [3]float32 // offset  0: sphere-mapped position (vec3<f32>)
	CubePosition [3]float32 // offset 12: position on the cube face (vec3<f32>)
	Basis        [3]float32 // offset 24: per-corner interpolation basis (vec3<f32>)
	Level        float32    // offset 36: LOD level of the emitting patch (f32)
}

// VertexSize is the byte stride of a Vertex.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// cornerBasis is the fixed interpolation basis assigned to each patch corner.
var cornerBasis = [4]common.Vec3{
	CornerTopLeft:     {1, 0, 0},
	CornerTopRight:    {0, 1, 0},
	CornerBottomRight: {1, 1, 0},
	CornerBottomLeft:  {0, 0, 1},
}

// corner is one of the four computed corners of a patch.
type corner struct {
	cubePos   common.Vec3
	spherePos common.Vec3
	basis     common.Vec3
	level     float32
}

// vertex converts the corner to its GPU layout.
func (c corner) vertex() Vertex {
	return Vertex{
		Position:     c.spherePos,
		CubePosition: c.cubePos,
		Basis:        c.basis,
		Level:        c.level,
	}
}
