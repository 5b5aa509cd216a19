package plstr

// Buffer is a growable byte string. Its storage comes from the Allocator
// passed to each append, which must be the same one for the whole life of
// the Buffer. The zero value is an empty buffer.
//
// After every append the byte just past the content is 0, so Terminated
// can hand the content to consumers that expect a terminator.
//
// A Buffer must not be appended to from more than one goroutine at a time.
type Buffer struct {
	buf []byte
}

// Len returns the number of content bytes.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the size of the underlying block.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Slice returns a view of the content. It aliases the buffer and goes
// stale once a later append moves the storage.
func (b *Buffer) Slice() Slice { return Slice(b.buf[:len(b.buf):len(b.buf)]) }

// String returns a copy of the content.
func (b *Buffer) String() string { return string(b.buf) }

// Terminated returns the content followed by its 0 terminator. A buffer
// that was never appended to has no storage; a fresh []byte{0} is
// returned for it.
func (b *Buffer) Terminated() []byte {
	n := len(b.buf)
	if cap(b.buf) <= n {
		return append(b.buf[:n:n], 0)
	}
	return b.buf[: n+1 : n+1]
}

// Reset empties the buffer but keeps its storage.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.terminate()
}

// Append copies data to the end of the buffer. Appending an empty slice
// does nothing. data may alias the buffer itself.
func (b *Buffer) Append(a Allocator, data Slice) {
	if len(data) == 0 {
		return
	}
	b.buf = ensureCapacity(a, b.buf, len(b.buf)+len(data)+1)
	b.buf = append(b.buf, data...)
	b.terminate()
}

// AppendString is Append for a Go string.
func (b *Buffer) AppendString(a Allocator, s string) {
	if s == "" {
		return
	}
	b.buf = ensureCapacity(a, b.buf, len(b.buf)+len(s)+1)
	b.buf = append(b.buf, s...)
	b.terminate()
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(a Allocator, c byte) {
	b.buf = ensureCapacity(a, b.buf, len(b.buf)+2)
	b.buf = append(b.buf, c)
	b.terminate()
}

func (b *Buffer) terminate() {
	if n := len(b.buf); cap(b.buf) > n {
		b.buf[:n+1][n] = 0
	}
}
