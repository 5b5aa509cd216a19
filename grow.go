package plstr

import (
	"math"

	"github.com/pavanmanishd/plstr/internal/log"
)

// preallocSize returns the block size to request when at least n bytes
// are needed. Doubling keeps the number of reallocations logarithmic in
// the total number of bytes appended.
func preallocSize(n int) int {
	if n >= math.MaxInt/2-1 {
		panic("plstr: buffer size overflow")
	}
	return (n + 1) * 2
}

// ensureCapacity returns buf with room for at least minLen bytes. The
// logical content buf[:len(buf)] is preserved; when storage moves, every
// Slice previously taken from buf keeps pointing at the old block.
func ensureCapacity(a Allocator, buf []byte, minLen int) []byte {
	if minLen <= cap(buf) {
		return buf
	}
	size := preallocSize(minLen)
	nb := allocator(a).Resize(buf, size)

	log.Debug().
		Int("len", len(buf)).
		Int("old_cap", cap(buf)).
		Int("new_cap", cap(nb)).
		Msg("plstr: buffer grown")

	return nb[:len(buf)]
}
