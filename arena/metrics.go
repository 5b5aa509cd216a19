package arena

// SizeInUse returns the number of bytes currently handed out, including
// alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:      a.SizeInUse(),
		Capacity:       a.Capacity(),
		NumChunks:      a.NumChunks(),
		ChunkSize:      a.ChunkSize(),
		Utilization:    a.Utilization(),
		Resizes:        a.resizes,
		InPlaceResizes: a.inPlaceResizes,
		Rewinds:        a.rewinds,
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	SizeInUse      int     // Bytes currently allocated
	Capacity       int     // Total capacity in bytes
	NumChunks      int     // Number of chunks
	ChunkSize      int     // Default chunk size
	Utilization    float64 // Ratio of used to total capacity (0.0-1.0)
	Resizes        int     // Resize calls that had to grow the block
	InPlaceResizes int     // Growing resizes served without a copy
	Rewinds        int     // Free calls that returned the tail allocation
}
