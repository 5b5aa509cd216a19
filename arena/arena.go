// Package arena implements the chunked bump allocator that owns plstr
// buffers. Allocations are never freed one by one; the whole arena is
// rewound with Reset or dropped with Release.
package arena

import (
	"unsafe"

	"github.com/pavanmanishd/plstr/internal/log"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

const align = unsafe.Sizeof(uintptr(0))

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
	last   int     // start of the most recent allocation, -1 if unknown
}

// tail reports whether b is the most recent allocation carved from c,
// returning its start offset.
func (c *chunk) tail(b []byte) (int, bool) {
	if c.last < 0 || cap(b) == 0 {
		return 0, false
	}
	if unsafe.SliceData(b) != &c.buf[c.last] {
		return 0, false
	}
	return c.last, uintptr(c.last+cap(b)) == c.offset
}

// take carves n bytes starting at off. The result has cap == n so that
// appending past it reallocates instead of clobbering the next block.
func (c *chunk) take(off uintptr, n int) []byte {
	start := int(off)
	c.offset = off + uintptr(n)
	c.last = start
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[start])), n)
}

// Arena is a chunked bump allocator. Not goroutine-safe by default.
// Use SafeArena for concurrent access.
type Arena struct {
	chunks       []chunk
	chunkSize    int
	currentChunk *chunk
	current      int // index of currentChunk in chunks

	resizes        int
	inPlaceResizes int
	rewinds        int
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// AllocBytes returns n bytes carved from the arena's current chunk.
// The caller must keep the arena reachable while the slice is in use.
// Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}

	if c := a.currentChunk; c != nil {
		off := alignPtr(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			return c.take(off, n)
		}
	}

	return a.allocBytesSlow(n)
}

// allocBytesSlow handles allocation when the current chunk is full.
// Chunks rewound by Reset are reused in order before a new one is made.
func (a *Arena) allocBytesSlow(n int) []byte {
	a.panicIfReleased()
	if !a.advance(n) {
		a.grow(n)
	}
	c := a.currentChunk
	return c.take(alignPtr(c.offset), n)
}

// advance makes the first later chunk with n free bytes current.
func (a *Arena) advance(n int) bool {
	for i := a.current + 1; i < len(a.chunks); i++ {
		c := &a.chunks[i]
		if alignPtr(c.offset)+uintptr(n) <= uintptr(len(c.buf)) {
			a.current, a.currentChunk = i, c
			return true
		}
	}
	return false
}

// Resize returns a block of n bytes holding the first min(len(b), n)
// bytes of b. The most recent allocation is extended in place when its
// chunk has room; anything else is copied into a fresh block and the old
// block stays dead until Reset. Resize(nil, n) is AllocBytes(n).
func (a *Arena) Resize(b []byte, n int) []byte {
	a.panicIfReleased()
	if n <= 0 {
		a.Free(b)
		return nil
	}
	if n <= cap(b) {
		return b[:n]
	}
	a.resizes++

	if c := a.currentChunk; c != nil {
		if start, ok := c.tail(b); ok && start+n <= len(c.buf) {
			a.inPlaceResizes++
			c.offset = uintptr(start + n)
			return c.buf[start : start+n : start+n]
		}
	}

	nb := a.AllocBytes(n)
	copy(nb, b)
	return nb
}

// Free gives b back to the arena if it is the most recent allocation of
// the current chunk. Any other block is reclaimed only by Reset or Release.
func (a *Arena) Free(b []byte) {
	c := a.currentChunk
	if c == nil {
		return
	}
	if start, ok := c.tail(b); ok {
		c.offset = uintptr(start)
		c.last = -1
		a.rewinds++
	}
}

// SizeOf reports the allocated size of a block returned by the arena.
func (a *Arena) SizeOf(b []byte) int {
	return cap(b)
}

// EnsureCapacity ensures the current chunk has at least n free bytes.
// If not, it moves to a rewound chunk that has room or grows the arena
// with a new chunk.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := a.currentChunk
	if c == nil || alignPtr(c.offset)+uintptr(n) > uintptr(len(c.buf)) {
		if !a.advance(n) {
			a.grow(n)
		}
	}
}

// Reset rewinds every chunk but keeps them for reuse.
// Blocks handed out before the reset must no longer be used.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
		a.chunks[i].last = -1
	}
	a.current, a.currentChunk = 0, &a.chunks[0]
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation panics. Releasing twice is harmless.
func (a *Arena) Release() {
	a.chunks = nil
	a.currentChunk = nil
	a.current = 0
}

// grow appends a new chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size), last: -1})
	a.current = len(a.chunks) - 1
	a.currentChunk = &a.chunks[a.current]

	log.Debug().
		Int("chunk_bytes", size).
		Int("chunks", len(a.chunks)).
		Msg("arena: new chunk")
}

func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}
