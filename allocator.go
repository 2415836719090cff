package lgl

import (
	"fmt"
	"sync"
)

// Allocator supplies and reclaims the pixel buffers owned by surfaces.
// Pass one to NewSurface with WithAllocator; borrowed buffers never go
// through an allocator.
type Allocator interface {
	// Allocate returns a buffer of exactly n bytes, or an error wrapping
	// ErrOutOfMemory. The contents need not be zeroed.
	Allocate(n int) ([]byte, error)

	// Release hands back a buffer previously returned by Allocate.
	Release(buf []byte)
}

// MaxAllocation bounds a single DefaultAllocator request in bytes.
const MaxAllocation = 1 << 30

// DefaultAllocator allocates from the Go heap.
var DefaultAllocator Allocator = heapAllocator{}

type heapAllocator struct{}

func (heapAllocator) Allocate(n int) ([]byte, error) {
	if n <= 0 || n > MaxAllocation {
		return nil, fmt.Errorf("lgl: allocate %d bytes: %w", n, ErrOutOfMemory)
	}
	return make([]byte, n), nil
}

func (heapAllocator) Release([]byte) {}

// Arena is a bump allocator over one fixed buffer. Individual releases are
// ignored; Reset reclaims everything at once. Surfaces allocated from an
// arena must not be used after Reset.
//
// Arena is not safe for concurrent use.
type Arena struct {
	buf []byte
	off int
}

// NewArena returns an arena backed by a new buffer of size bytes.
func NewArena(size int) *Arena {
	if size < 0 {
		size = 0
	}
	return &Arena{buf: make([]byte, size)}
}

// NewArenaFromBuffer returns an arena that hands out slices of buf.
func NewArenaFromBuffer(buf []byte) *Arena {
	return &Arena{buf: buf}
}

// Allocate carves n bytes from the arena.
func (a *Arena) Allocate(n int) ([]byte, error) {
	if n <= 0 || n > len(a.buf)-a.off {
		return nil, fmt.Errorf("lgl: arena allocate %d bytes (%d of %d used): %w",
			n, a.off, len(a.buf), ErrOutOfMemory)
	}
	b := a.buf[a.off : a.off+n : a.off+n]
	a.off += n
	return b, nil
}

// Release is a no-op; see Reset.
func (a *Arena) Release([]byte) {}

// Reset makes the whole arena available again.
func (a *Arena) Reset() { a.off = 0 }

// Used returns the number of bytes handed out since the last Reset.
func (a *Arena) Used() int { return a.off }

// Size returns the arena capacity in bytes.
func (a *Arena) Size() int { return len(a.buf) }

// BufferPool is an allocator that keeps released buffers for reuse,
// grouped by exact size. It suits callers that repeatedly create and
// destroy surfaces of the same dimensions, such as per-frame scratch
// surfaces.
//
// Thread safety: all methods are safe for concurrent use.
type BufferPool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max buffers per bucket
	next    Allocator
}

// NewBufferPool creates a pool retaining at most maxPerBucket buffers of each
// size. A maxPerBucket of 0 means unlimited. Misses are served by
// DefaultAllocator.
func NewBufferPool(maxPerBucket int) *BufferPool {
	return &BufferPool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
		next:    DefaultAllocator,
	}
}

// Allocate pops a buffer of n bytes or allocates a new one.
func (p *BufferPool) Allocate(n int) ([]byte, error) {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf, nil
	}
	p.mu.Unlock()

	return p.next.Allocate(n)
}

// Release returns buf to the pool. If the bucket for its size is full the
// buffer is dropped for the garbage collector.
func (p *BufferPool) Release(buf []byte) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[n]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[n] = append(bucket, buf)
}

// Len returns the number of buffers currently held.
func (p *BufferPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	total := 0
	for _, b := range p.buckets {
		total += len(b)
	}
	return total
}
