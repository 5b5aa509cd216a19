package plstr

import (
	"bytes"
	"strings"
)

// whitespace is the set Strip removes.
const whitespace = " \n\r\t\v\f"

// FindChar returns the index of the first c in s, or -1.
func (s Slice) FindChar(c byte) int {
	return bytes.IndexByte(s, c)
}

// Span returns the length of the longest prefix of s made only of bytes
// in accept.
func (s Slice) Span(accept string) int {
	for i, c := range s {
		if strings.IndexByte(accept, c) < 0 {
			return i
		}
	}
	return len(s)
}

// CSpan returns the length of the longest prefix of s containing no byte
// from reject.
func (s Slice) CSpan(reject string) int {
	for i, c := range s {
		if strings.IndexByte(reject, c) >= 0 {
			return i
		}
	}
	return len(s)
}

// Strip returns s without leading and trailing ASCII whitespace.
// A slice that is all whitespace strips to an empty one.
func (s Slice) Strip() Slice {
	for len(s) > 0 && strings.IndexByte(whitespace, s[0]) >= 0 {
		s = s[1:]
	}
	for len(s) > 0 && strings.IndexByte(whitespace, s[len(s)-1]) >= 0 {
		s = s[:len(s)-1]
	}
	if len(s) == 0 {
		return nil
	}
	return s[:len(s):len(s)]
}

// Find returns the index of the first occurrence of needle in s, or -1.
// An empty needle is found at 0.
func (s Slice) Find(needle Slice) int {
	if len(needle) == 0 {
		return 0
	}
	for i := 0; i+len(needle) <= len(s); i++ {
		if s[i] == needle[0] && bytes.Equal(s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
