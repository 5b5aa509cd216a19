package plstr

import farm "github.com/dgryski/go-farm"

// Hash returns a 64-bit fingerprint of the bytes in s. Equal contents
// always hash equal, across processes and releases.
func (s Slice) Hash() uint64 {
	return farm.Fingerprint64(s)
}
