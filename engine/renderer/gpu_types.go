package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-planet/engine/camera"
	"github.com/Carmen-Shannon/oxy-planet/engine/planet"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/planet.wgsl
var planetShaderBody string

// PlanetShaderSource is the complete planet WGSL module: the camera uniform struct followed by
// the planet vertex and fragment stages.
var PlanetShaderSource = camera.GPUCameraUniformSource + "\n" + planetShaderBody

var cameraUniformSize = uint64(unsafe.Sizeof(camera.GPUCameraUniform{}))

// GPUPlanetUniform is the GPU-aligned representation of the planet uniform buffer.
// Matches the WGSL PlanetUniform struct layout exactly.
// Size: 16 bytes.
type GPUPlanetUniform struct {
	Size         float32 // offset  0: planet radius
	MaxHeight    float32 // offset  4: displacement applied at a height sample of 1
	HasHeightMap float32 // offset  8: 1 when a height map is bound
	HasNormalMap float32 // offset 12: 1 when a normal map is bound
}

// ByteSize returns the size of the GPUPlanetUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUPlanetUniform) ByteSize() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform little-endian for upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUPlanetUniform) Marshal() []byte {
	buf := make([]byte, g.ByteSize())
	for i, v := range [4]float32{g.Size, g.MaxHeight, g.HasHeightMap, g.HasNormalMap} {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// planetVertexLayout describes planet.Vertex to the vertex stage.
func planetVertexLayout() wgpu.VertexBufferLayout {
	var v planet.Vertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(planet.VertexSize),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(v.Position)), ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(v.CubePosition)), ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(v.Basis)), ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32, Offset: uint64(unsafe.Offsetof(v.Level)), ShaderLocation: 3},
		},
	}
}

// cameraBindGroupLayout is group 0: the camera uniform.
func cameraBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	return wgpu.BindGroupLayoutDescriptor{
		Label:   "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	}
}

// planetBindGroupLayout is group 1: planet uniform, height map, normal map and their sampler.
func planetBindGroupLayout() wgpu.BindGroupLayoutDescriptor {
	visibility := wgpu.ShaderStageVertex | wgpu.ShaderStageFragment
	entries := make([]wgpu.BindGroupLayoutEntry, 4)
	for i := range entries {
		entries[i] = wgpu.BindGroupLayoutEntry{Binding: uint32(i), Visibility: visibility}
	}
	entries[0].Buffer.Type = wgpu.BufferBindingTypeUniform
	for _, i := range []int{1, 2} {
		entries[i].Texture.SampleType = wgpu.TextureSampleTypeFloat
		entries[i].Texture.ViewDimension = wgpu.TextureViewDimension2D
	}
	entries[3].Sampler.Type = wgpu.SamplerBindingTypeFiltering

	return wgpu.BindGroupLayoutDescriptor{
		Label:   "Planet Bind Group Layout",
		Entries: entries,
	}
}
