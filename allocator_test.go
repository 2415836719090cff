package lgl

import (
	"errors"
	"testing"
)

// recordingAllocator counts allocations and releases.
type recordingAllocator struct {
	allocs, releases int
}

func (r *recordingAllocator) Allocate(n int) ([]byte, error) {
	r.allocs++
	return make([]byte, n), nil
}

func (r *recordingAllocator) Release([]byte) { r.releases++ }

func TestDefaultAllocatorLimits(t *testing.T) {
	for _, n := range []int{0, -1, MaxAllocation + 1} {
		if _, err := DefaultAllocator.Allocate(n); !errors.Is(err, ErrOutOfMemory) {
			t.Errorf("Allocate(%d) error = %v, want ErrOutOfMemory", n, err)
		}
	}
	b, err := DefaultAllocator.Allocate(16)
	if err != nil || len(b) != 16 {
		t.Fatalf("Allocate(16) = %d bytes, %v", len(b), err)
	}
}

func TestArenaExhaustion(t *testing.T) {
	arena := NewArena(100)

	s, err := NewSurface(5, 5, FormatRGBA8888, WithAllocator(arena))
	if err != nil {
		t.Fatalf("first surface: %v", err)
	}
	if arena.Used() != 100 {
		t.Errorf("Used() = %d, want 100", arena.Used())
	}
	s.Fill(Red)

	if _, err := NewSurface(1, 1, FormatRGB332, WithAllocator(arena)); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("second surface error = %v, want ErrOutOfMemory", err)
	}

	s.Destroy()
	if arena.Used() != 100 {
		t.Errorf("Destroy released arena memory: Used() = %d", arena.Used())
	}

	arena.Reset()
	s2, err := NewSurface(5, 5, FormatRGBA8888, WithAllocator(arena))
	if err != nil {
		t.Fatalf("after Reset: %v", err)
	}
	for i, b := range s2.Pixels() {
		if b != 0 {
			t.Fatalf("reused arena byte %d = %#x, want zero-filled", i, b)
		}
	}
}

func TestArenaFromBuffer(t *testing.T) {
	buf := make([]byte, 8)
	arena := NewArenaFromBuffer(buf)
	a, err := arena.Allocate(6)
	if err != nil {
		t.Fatal(err)
	}
	if cap(a) != 6 {
		t.Errorf("cap = %d, want 6 (no growth into the arena)", cap(a))
	}
	if _, err := arena.Allocate(3); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Allocate past end error = %v", err)
	}
	if arena.Size() != 8 {
		t.Errorf("Size() = %d", arena.Size())
	}
}

func TestBufferPoolReuse(t *testing.T) {
	pool := NewBufferPool(1)

	s, err := NewSurface(4, 4, FormatRGB565, WithAllocator(pool))
	if err != nil {
		t.Fatal(err)
	}
	s.Fill(White)
	s.Destroy()
	if pool.Len() != 1 {
		t.Fatalf("pool.Len() = %d, want 1", pool.Len())
	}

	s2, err := NewSurface(4, 4, FormatRGB565, WithAllocator(pool))
	if err != nil {
		t.Fatal(err)
	}
	if pool.Len() != 0 {
		t.Errorf("pool.Len() after reuse = %d, want 0", pool.Len())
	}
	if got := s2.PixelAt(3, 3); got != 0 {
		t.Errorf("reused pixel = %#x, want 0", got)
	}

	// Bucket holds at most one buffer.
	a, _ := pool.Allocate(32)
	b, _ := pool.Allocate(32)
	pool.Release(a)
	pool.Release(b)
	if pool.Len() != 1 {
		t.Errorf("pool.Len() = %d, want 1 with maxPerBucket=1", pool.Len())
	}
}

func TestDestroyReleasesOwnedOnly(t *testing.T) {
	rec := &recordingAllocator{}

	owned, err := NewSurface(2, 2, FormatRGBA8888, WithAllocator(rec))
	if err != nil {
		t.Fatal(err)
	}
	owned.Destroy()

	borrowed, err := NewSurfaceFromBuffer(2, 2, FormatRGBA8888, make([]byte, 16), WithAllocator(rec))
	if err != nil {
		t.Fatal(err)
	}
	borrowed.Destroy()

	if rec.allocs != 1 || rec.releases != 1 {
		t.Errorf("allocs=%d releases=%d, want 1 and 1", rec.allocs, rec.releases)
	}
}
