package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/oxy-planet/engine/planet"
	"github.com/cogentcore/webgpu/wgpu"
)

// minMeshBufferSize is the smallest GPU allocation a MeshBuffer makes.
const minMeshBufferSize = 4096

// MeshBuffer is a planet.Buffer backed by GPU vertex and index buffers.
// The GPU allocations grow on demand and are never shrunk.
type MeshBuffer interface {
	planet.Buffer

	// Label returns the debug label of the buffer pair.
	Label() string

	// VertexBuffer returns the GPU vertex buffer, or nil before the first upload.
	VertexBuffer() *wgpu.Buffer

	// IndexBuffer returns the GPU index buffer, or nil before the first upload.
	IndexBuffer() *wgpu.Buffer
}

type meshBuffer struct {
	mu      *sync.Mutex
	backend RendererBackend
	label   string

	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	vertexCapacity uint64
	indexCapacity  uint64

	vertexCount int
	indexCount  int
}

var _ MeshBuffer = &meshBuffer{}

func newMeshBuffer(backend RendererBackend, label string) *meshBuffer {
	return &meshBuffer{
		mu:      &sync.Mutex{},
		backend: backend,
		label:   label,
	}
}

// growCapacity returns the allocation size needed to hold size bytes, doubling from current.
func growCapacity(current, size uint64) uint64 {
	if size <= current {
		return current
	}
	next := max(current, minMeshBufferSize)
	for next < size {
		next *= 2
	}
	// Buffer writes must be 4-byte aligned.
	return (next + 3) &^ 3
}

func (m *meshBuffer) Upload(vertices, indices []byte, vertexCount, indexCount int, _ planet.BufferUsage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	m.vertexBuffer, m.vertexCapacity, err = m.ensure(m.vertexBuffer, m.vertexCapacity, uint64(len(vertices)), wgpu.BufferUsageVertex, "Vertex")
	if err != nil {
		return err
	}
	m.indexBuffer, m.indexCapacity, err = m.ensure(m.indexBuffer, m.indexCapacity, uint64(len(indices)), wgpu.BufferUsageIndex, "Index")
	if err != nil {
		return err
	}

	if len(vertices) > 0 {
		m.backend.WriteBuffer(m.vertexBuffer, vertices)
	}
	if len(indices) > 0 {
		m.backend.WriteBuffer(m.indexBuffer, indices)
	}
	m.vertexCount = vertexCount
	m.indexCount = indexCount
	return nil
}

// ensure reallocates buf when it cannot hold size bytes.
// Caller must hold the mutex.
func (m *meshBuffer) ensure(buf *wgpu.Buffer, capacity, size uint64, usage wgpu.BufferUsage, kind string) (*wgpu.Buffer, uint64, error) {
	next := growCapacity(capacity, size)
	if buf != nil && next == capacity {
		return buf, capacity, nil
	}
	if next == 0 {
		next = minMeshBufferSize
	}

	created, err := m.backend.CreateBuffer(m.label+" "+kind+" Buffer", next, usage)
	if err != nil {
		return buf, capacity, fmt.Errorf("failed to grow %s %s buffer to %d bytes: %w", m.label, kind, next, err)
	}
	if buf != nil {
		buf.Release()
		log.Printf("[Renderer] %s %s buffer grown to %d bytes", m.label, kind, next)
	}
	return created, next, nil
}

func (m *meshBuffer) VertexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vertexCount
}

func (m *meshBuffer) IndexCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexCount
}

func (m *meshBuffer) Label() string {
	return m.label
}

func (m *meshBuffer) VertexBuffer() *wgpu.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vertexBuffer
}

func (m *meshBuffer) IndexBuffer() *wgpu.Buffer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indexBuffer
}
