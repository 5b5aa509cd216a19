package plstr

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidHex is returned by DecodeHex when the input contains a byte
// that is not a hex digit.
var ErrInvalidHex = errors.New("plstr: invalid hex digit")

// DecodeHex decodes pairs of hex digits (either case) from src into a new
// block taken from a, high nibble first. A final unpaired digit is
// ignored. On failure the partial output is given back to a and nothing
// is returned.
func DecodeHex(a Allocator, src Slice) (Slice, error) {
	al := allocator(a)
	even := src[:len(src)&^1]
	out := al.AllocBytes(len(even) / 2)

	n, err := hex.Decode(out, even)
	if err != nil {
		al.Free(out)
		// even has no odd tail, so hex.Decode only fails on a bad digit.
		ibe := err.(hex.InvalidByteError)
		return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidHex, byte(ibe), 2*n+invalidOffset(even[2*n:]))
	}
	return out[:n], nil
}

// invalidOffset returns 0 if the first byte of pair is not a hex digit
// and 1 otherwise.
func invalidOffset(pair []byte) int {
	if len(pair) > 0 && isHexDigit(pair[0]) {
		return 1
	}
	return 0
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
