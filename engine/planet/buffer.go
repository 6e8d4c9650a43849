package planet

import (
	"sync"
)

// BufferUsage hints how often a buffer's contents change.
type BufferUsage uint8

const (
	// BufferUsageStatic is for data uploaded once.
	BufferUsageStatic BufferUsage = iota
	// BufferUsageDynamic is for data replaced every frame.
	BufferUsageDynamic
)

// Buffer receives the mesh assembled by a Planet each frame.
type Buffer interface {
	// Upload replaces the buffer contents.
	//
	// Parameters:
	//   - vertices: packed Vertex data
	//   - indices: packed uint32 triangle indices
	//   - vertexCount: number of vertices in vertices
	//   - indexCount: number of indices in indices
	//   - usage: update frequency hint
	//
	// Returns:
	//   - error: error if the data could not be stored
	Upload(vertices, indices []byte, vertexCount, indexCount int, usage BufferUsage) error

	// VertexCount returns the number of vertices from the last successful upload.
	VertexCount() int

	// IndexCount returns the number of indices from the last successful upload.
	IndexCount() int
}

// MemoryBuffer is a Buffer that keeps a CPU copy of the mesh.
type MemoryBuffer struct {
	mu          *sync.Mutex
	vertices    []byte
	indices     []byte
	vertexCount int
	indexCount  int
	uploads     int
}

var _ Buffer = &MemoryBuffer{}

// NewMemoryBuffer creates an empty MemoryBuffer.
func NewMemoryBuffer() *MemoryBuffer {
	return &MemoryBuffer{mu: &sync.Mutex{}}
}

func (b *MemoryBuffer) Upload(vertices, indices []byte, vertexCount, indexCount int, usage BufferUsage) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.vertices = append(b.vertices[:0], vertices...)
	b.indices = append(b.indices[:0], indices...)
	b.vertexCount = vertexCount
	b.indexCount = indexCount
	b.uploads++
	return nil
}

func (b *MemoryBuffer) VertexCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.vertexCount
}

func (b *MemoryBuffer) IndexCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.indexCount
}

// VertexData returns a copy of the last uploaded vertex bytes.
func (b *MemoryBuffer) VertexData() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.vertices...)
}

// IndexData returns a copy of the last uploaded index bytes.
func (b *MemoryBuffer) IndexData() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.indices...)
}

// Uploads returns how many times Upload has been called.
func (b *MemoryBuffer) Uploads() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.uploads
}
