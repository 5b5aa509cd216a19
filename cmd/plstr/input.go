package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"golang.org/x/exp/mmap"

	"github.com/pavanmanishd/plstr"
	"github.com/pavanmanishd/plstr/arena"
	"github.com/pavanmanishd/plstr/internal/log"
)

// readChunk is how much stdin is pulled into the arena per read.
const readChunk = 32 << 10

// loadFile copies the file at path into a block from a with a single
// ReadAt on the mapping. The mapping is closed before returning, so the
// result aliases the arena and never the file.
func loadFile(a *arena.Arena, path string) (plstr.Slice, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	if r.Len() == 0 {
		return nil, nil
	}
	buf := a.AllocBytes(r.Len())
	if _, err := r.ReadAt(buf, 0); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("bytes", len(buf)).Msg("input mapped")
	return buf, nil
}

// loadReader drains rd into a Buffer grown from a.
func loadReader(a *arena.Arena, rd io.Reader) (plstr.Slice, error) {
	var b plstr.Buffer
	chunk := make([]byte, readChunk)
	for {
		n, err := rd.Read(chunk)
		b.Append(a, chunk[:n])
		if err == io.EOF {
			return b.Slice(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}
}

// input returns the bytes of the file named by argument n, or stdin when
// that argument is missing or "-".
func (r *runner) input(c *cli.Context, n int) (plstr.Slice, error) {
	path := c.Args().Get(n)
	if path == "" || path == "-" {
		return loadReader(r.arena, c.App.Reader)
	}
	return loadFile(r.arena, path)
}
