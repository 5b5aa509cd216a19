package arena_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/plstr"
	"github.com/pavanmanishd/plstr/arena"
)

var (
	_ plstr.Allocator = (*arena.Arena)(nil)
	_ plstr.Allocator = (*arena.SafeArena)(nil)
)

func TestBoundaryConditions(t *testing.T) {
	t.Run("ExactChunkSizeAllocation", func(t *testing.T) {
		a := arena.NewArena(1024)
		defer a.Release()

		assert.Len(t, a.AllocBytes(1024), 1024)
		assert.Len(t, a.AllocBytes(1), 1)
		assert.GreaterOrEqual(t, a.NumChunks(), 2)
	})

	t.Run("ResizeAcrossChunkBoundary", func(t *testing.T) {
		a := arena.NewArena(128)
		defer a.Release()

		b := a.AllocBytes(8)
		copy(b, "boundary")
		for n := 16; n <= 1024; n *= 2 {
			b = a.Resize(b, n)
			require.Equal(t, "boundary", string(b[:8]))
		}
	})
}

func TestResetBehavior(t *testing.T) {
	a := arena.NewArena(1024)
	defer a.Release()

	for i := 0; i < 5; i++ {
		a.AllocBytes(512)
	}
	chunks := a.NumChunks()
	capacity := a.Capacity()

	a.Reset()
	assert.Zero(t, a.SizeInUse())
	assert.Equal(t, chunks, a.NumChunks())
	assert.Equal(t, capacity, a.Capacity())
	assert.Len(t, a.AllocBytes(100), 100)
}

// Buffers from a released arena belong to the garbage collector again.
func TestMemoryLeaks(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping memory leak test in short mode")
	}

	var m1, m2 runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m1)

	for i := 0; i < 1000; i++ {
		a := arena.NewArena(1024)
		var buf plstr.Buffer
		for j := 0; j < 100; j++ {
			buf.AppendString(a, "leak check ")
		}
		a.Release()
	}

	runtime.GC()
	runtime.ReadMemStats(&m2)
	assert.LessOrEqual(t, m2.Alloc, m1.Alloc*2, "potential memory leak")
}

func TestSafeArenaDeadlock(t *testing.T) {
	s := arena.NewSafeArena(1024)
	defer s.Release()

	done := make(chan bool, 2)
	timeout := time.After(5 * time.Second)

	go func() {
		var buf plstr.Buffer
		for i := 0; i < 1000; i++ {
			buf.AppendByte(s, 'x')
			if i%100 == 0 {
				runtime.Gosched()
			}
		}
		done <- true
	}()

	go func() {
		for i := 0; i < 1000; i++ {
			_ = s.Metrics()
			if i%100 == 0 {
				runtime.Gosched()
			}
		}
		done <- true
	}()

	for completed := 0; completed < 2; {
		select {
		case <-done:
			completed++
		case <-timeout:
			t.Fatal("Test timed out - possible deadlock")
		}
	}
}
