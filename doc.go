// Package plstr implements length-prefixed byte strings: read-only Slice
// views that are never implicitly terminated, and growable Buffers whose
// storage comes from an arena.
//
// # Overview
//
// Slices are cut out of larger inputs without copying. Splitting,
// stripping and searching only move the start and length of a view, so a
// whole file can be tokenized with no allocation at all:
//
//	rest := plstr.FromString("width=1920\nheight=1080\n")
//	for len(rest) > 0 {
//		var line plstr.Slice
//		line, rest = rest.GetLine()
//		key, val := line.SplitChar('=')
//		...
//	}
//
// # Buffers
//
// A Buffer is appended to through an Allocator, usually an *arena.Arena.
// Growth doubles the block, so n appended bytes cost O(log n)
// reallocations. After every append the byte just past the content is 0:
//
//	a := arena.NewArena(0)
//	defer a.Release()
//
//	var b plstr.Buffer
//	b.AppendString(a, "vec4 color = ")
//	b.Appendf(a, "vec4(%.1f, %.1f, %.1f, 1.0);", r, g, bl)
//	shader := b.Terminated()
//
// The Buffer itself does not remember its allocator. Pass the same one
// to every append; the storage lives until that arena is reset or
// released.
//
// # Aliasing
//
// Every Slice returned by Buffer.Slice, Take, Drop, Strip or the split
// functions points into the original storage. Appending to a Buffer may
// move its storage, after which earlier views still show the old bytes.
//
// # Thread Safety
//
// Slices are safe to read concurrently. A Buffer must have a single
// writer. Use arena.SafeArena when several goroutines grow their own
// buffers from one arena.
package plstr
