package plstr

// SplitChar cuts s around the first sep. head is everything before it and
// rest everything after; sep itself is in neither. Without a sep, head is
// all of s and rest is empty.
func (s Slice) SplitChar(sep byte) (head, rest Slice) {
	i := s.FindChar(sep)
	if i < 0 {
		return s, nil
	}
	return s.Take(i), s.Drop(i + 1)
}

// SplitSlice is SplitChar with a multi-byte separator.
func (s Slice) SplitSlice(sep Slice) (head, rest Slice) {
	i := s.Find(sep)
	if i < 0 {
		return s, nil
	}
	return s.Take(i), s.Drop(i + len(sep))
}

// SplitString is SplitSlice with a string separator.
func (s Slice) SplitString(sep string) (head, rest Slice) {
	return s.SplitSlice(FromString(sep))
}

// GetLine returns the text up to the first newline and the text after it.
func (s Slice) GetLine() (line, rest Slice) {
	return s.SplitChar('\n')
}
