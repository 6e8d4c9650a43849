package planet

// DefaultChunkSize is the number of elements the scratch buffers grow by.
const DefaultChunkSize = 500

// chunkedSlice is a reusable append buffer that grows by a fixed chunk instead of doubling.
// Each frame it is reset with room for the previous frame's element count plus one chunk,
// so steady-state frames do not reallocate.
type chunkedSlice[T any] struct {
	data      []T
	chunkSize int
}

// newChunkedSlice creates an empty chunked slice.
func newChunkedSlice[T any](chunkSize int) *chunkedSlice[T] {
	return &chunkedSlice[T]{chunkSize: chunkSize}
}

// reset empties the slice, keeping at least previous+chunkSize capacity.
func (s *chunkedSlice[T]) reset(previous int) {
	want := previous + s.chunkSize
	if cap(s.data) < want {
		s.data = make([]T, 0, want)
		return
	}
	s.data = s.data[:0]
}

// push appends v, growing capacity by one chunk when full.
func (s *chunkedSlice[T]) push(v T) {
	if len(s.data) == cap(s.data) {
		grown := make([]T, len(s.data), cap(s.data)+s.chunkSize)
		copy(grown, s.data)
		s.data = grown
	}
	s.data = append(s.data, v)
}

// count returns the number of elements appended since the last reset.
func (s *chunkedSlice[T]) count() int {
	return len(s.data)
}

// slice returns the current contents. The slice is only valid until the next reset.
func (s *chunkedSlice[T]) slice() []T {
	return s.data
}
