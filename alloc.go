package plstr

// Allocator is the storage contract a Buffer grows through. It is normally
// an *arena.Arena, so every buffer grown through the same arena is
// released together when that arena is reset or released.
//
// The allocated size of a block is cap(b); no separate lookup is needed.
type Allocator interface {
	// AllocBytes returns a block of n bytes, or nil if n <= 0.
	AllocBytes(n int) []byte
	// Resize returns a block of n bytes whose first min(len(b), n) bytes
	// equal b's. The old block must not be used afterwards.
	Resize(b []byte, n int) []byte
	// Free hands b back early. Implementations may ignore it.
	Free(b []byte)
}

// Heap allocates from the Go heap. A nil Allocator means Heap.
var Heap Allocator = heap{}

type heap struct{}

func (heap) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

func (heap) Resize(b []byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	if n <= cap(b) {
		return b[:n]
	}
	nb := make([]byte, n)
	copy(nb, b)
	return nb
}

func (heap) Free([]byte) {}

func allocator(a Allocator) Allocator {
	if a == nil {
		return Heap
	}
	return a
}
