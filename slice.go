package plstr

import (
	"bytes"
	"unsafe"
)

// Slice is a read-only view of bytes with an explicit length. It is not
// terminated: a 0 inside it is ordinary data. Slices returned by the
// methods below alias their input and never copy.
type Slice []byte

// FromString returns a Slice over s without copying. The result must not
// be written to.
func FromString(s string) Slice {
	if s == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Len returns the number of bytes in s.
func (s Slice) Len() int { return len(s) }

// String returns a copy of s as a string.
func (s Slice) String() string { return string(s) }

// UnsafeString returns s as a string without copying. The caller must not
// mutate the underlying bytes while the string is in use.
func (s Slice) UnsafeString() string {
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(s), len(s))
}

// Take returns the first n bytes of s, or all of s if it is shorter.
// The result's capacity is clipped so appending to it cannot overwrite s.
func (s Slice) Take(n int) Slice {
	if n < 0 {
		n = 0
	}
	if n < len(s) {
		return s[:n:n]
	}
	return s
}

// Drop returns s without its first n bytes; empty if n >= len(s).
func (s Slice) Drop(n int) Slice {
	if n >= len(s) {
		return nil
	}
	if n <= 0 {
		return s
	}
	return s[n:]
}

// Equal reports whether s and t hold the same bytes.
func (s Slice) Equal(t Slice) bool { return bytes.Equal(s, t) }

// HasPrefix reports whether s begins with prefix.
func (s Slice) HasPrefix(prefix Slice) bool { return bytes.HasPrefix(s, prefix) }

// HasSuffix reports whether s ends with suffix.
func (s Slice) HasSuffix(suffix Slice) bool { return bytes.HasSuffix(s, suffix) }

// EatStart removes prefix from the front of *s if it is there.
func (s *Slice) EatStart(prefix Slice) bool {
	if !s.HasPrefix(prefix) {
		return false
	}
	*s = (*s)[len(prefix):]
	return true
}

// EatEnd removes suffix from the end of *s if it is there.
func (s *Slice) EatEnd(suffix Slice) bool {
	if !s.HasSuffix(suffix) {
		return false
	}
	n := len(*s) - len(suffix)
	*s = (*s)[:n:n]
	return true
}

// Dup copies s into storage from a.
func Dup(a Allocator, s Slice) Slice {
	if len(s) == 0 {
		return nil
	}
	out := allocator(a).AllocBytes(len(s))
	copy(out, s)
	return out
}

// Dup0 copies s into storage from a and appends a 0 terminator. The
// terminator is included in the returned length.
func Dup0(a Allocator, s Slice) []byte {
	out := allocator(a).AllocBytes(len(s) + 1)
	copy(out, s)
	out[len(s)] = 0
	return out
}
