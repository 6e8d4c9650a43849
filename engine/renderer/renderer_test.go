package renderer

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-planet/engine/planet"
)

func TestGrowCapacity(t *testing.T) {
	cases := []struct {
		current, size, want uint64
	}{
		{0, 0, 0},
		{0, 1, minMeshBufferSize},
		{0, minMeshBufferSize, minMeshBufferSize},
		{0, minMeshBufferSize + 1, 2 * minMeshBufferSize},
		{minMeshBufferSize, 100, minMeshBufferSize},
		{8192, 30000, 32768},
	}
	for _, c := range cases {
		if got := growCapacity(c.current, c.size); got != c.want {
			t.Fatalf("growCapacity(%d, %d) = %d, want %d", c.current, c.size, got, c.want)
		}
	}
}

func TestPlanetVertexLayoutMatchesVertex(t *testing.T) {
	layout := planetVertexLayout()
	if layout.ArrayStride != uint64(planet.VertexSize) {
		t.Fatalf("stride = %d, want %d", layout.ArrayStride, planet.VertexSize)
	}

	wantOffsets := []uint64{0, 12, 24, 36}
	if len(layout.Attributes) != len(wantOffsets) {
		t.Fatalf("got %d attributes, want %d", len(layout.Attributes), len(wantOffsets))
	}
	for i, attr := range layout.Attributes {
		if attr.Offset != wantOffsets[i] || attr.ShaderLocation != uint32(i) {
			t.Fatalf("attribute %d = offset %d location %d", i, attr.Offset, attr.ShaderLocation)
		}
	}
}

func TestPlanetUniformMarshal(t *testing.T) {
	u := GPUPlanetUniform{Size: 100, MaxHeight: 5, HasHeightMap: 1}
	buf := u.Marshal()
	if len(buf) != 16 {
		t.Fatalf("marshalled %d bytes, want 16", len(buf))
	}

	want := []float32{100, 5, 1, 0}
	for i, w := range want {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])); got != w {
			t.Fatalf("field %d = %f, want %f", i, got, w)
		}
	}
}

func TestPlanetShaderSource(t *testing.T) {
	for _, want := range []string{"struct CameraUniform", "fn vs_main", "fn fs_main", "struct PlanetUniform"} {
		if !strings.Contains(PlanetShaderSource, want) {
			t.Fatalf("shader source missing %q", want)
		}
	}
	if cameraUniformSize != 80 {
		t.Fatalf("camera uniform size = %d, want 80", cameraUniformSize)
	}
}

func TestPresentModeAndMSAA(t *testing.T) {
	if PresentModeFor(true) != PresentModeVSync || PresentModeFor(false) != PresentModeUncapped {
		t.Fatalf("PresentModeFor mapping wrong")
	}
	if PresentModeVSync.String() != "vsync" || PresentModeUncapped.String() != "uncapped" {
		t.Fatalf("present mode names wrong")
	}
	for in, want := range map[MSAASampleCount]MSAASampleCount{1: 1, 4: 4, 8: 4, 0: 4} {
		if got := in.orDefault(); got != want {
			t.Fatalf("orDefault(%d) = %d, want %d", in, got, want)
		}
	}
}
