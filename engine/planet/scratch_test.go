package planet

import (
	"testing"
)

func TestChunkedSliceGrowsByChunk(t *testing.T) {
	s := newChunkedSlice[int](4)
	s.reset(0)
	if cap(s.data) != 4 {
		t.Fatalf("cap after reset = %d, want 4", cap(s.data))
	}

	for i := range 5 {
		s.push(i)
	}
	if s.count() != 5 || cap(s.data) != 8 {
		t.Fatalf("count %d cap %d, want 5 and 8", s.count(), cap(s.data))
	}
	for i, v := range s.slice() {
		if v != i {
			t.Fatalf("element %d = %d", i, v)
		}
	}

	// Steady state: the next frame reserves the previous count plus a chunk up front.
	s.reset(5)
	if s.count() != 0 || cap(s.data) != 9 {
		t.Fatalf("count %d cap %d after reset(5), want 0 and 9", s.count(), cap(s.data))
	}
	backing := &s.data[:1][0]
	for i := range 9 {
		s.push(i)
	}
	if &s.data[0] != backing {
		t.Fatalf("steady-state frame reallocated")
	}

	s.reset(2)
	if cap(s.data) != 9 {
		t.Fatalf("reset to a smaller count shrank the buffer")
	}
}

func TestHeightMapLevels(t *testing.T) {
	tests := []struct {
		resolution uint32
		want       int
	}{
		{0, 0},
		{8, 0},
		{16, 1},
		{1024, 7},
		{1500, 7},
	}
	for _, tt := range tests {
		if got := heightMapLevels(tt.resolution); got != tt.want {
			t.Fatalf("heightMapLevels(%d) = %d, want %d", tt.resolution, got, tt.want)
		}
	}
}
