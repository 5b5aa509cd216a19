package plstr

import "fmt"

// countWriter counts the bytes written through it and discards them.
type countWriter int

func (w *countWriter) Write(p []byte) (int, error) {
	*w += countWriter(len(p))
	return len(p), nil
}

// formattedSize returns the number of bytes fmt would produce for format
// and args.
func formattedSize(format string, args []any) int {
	var w countWriter
	fmt.Fprintf(&w, format, args...)
	return int(w)
}

// Appendf formats according to a fmt format specifier and appends the
// result. Formatting does not depend on the process locale.
func (b *Buffer) Appendf(a Allocator, format string, args ...any) {
	b.AppendfArgs(a, format, args)
}

// AppendfArgs is Appendf for an argument list that has already been
// collected, so variadic wrappers can forward their own arguments.
//
// The output is measured first and the storage grown once, then formatted
// straight into the reserved space. If the second pass ever comes out
// longer than the first (a Stringer that is not deterministic, say), the
// extra bytes are moved into a regrown block rather than lost.
func (b *Buffer) AppendfArgs(a Allocator, format string, args []any) {
	n := len(b.buf)
	b.buf = ensureCapacity(a, b.buf, n+formattedSize(format, args)+1)

	reserved := cap(b.buf)
	out := fmt.Appendf(b.buf, format, args...)
	if len(out) < reserved {
		b.buf = out
	} else {
		tail := out[n:]
		b.buf = ensureCapacity(a, b.buf, n+len(tail)+1)
		b.buf = append(b.buf, tail...)
	}
	b.terminate()
}
