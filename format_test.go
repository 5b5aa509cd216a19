package plstr

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/plstr/arena"
)

func TestAppendf(t *testing.T) {
	a := arena.NewArena(128)
	var b Buffer

	b.AppendString(a, "#version ")
	b.Appendf(a, "%d", 450)
	b.Appendf(a, "\nvec4 c = vec4(%.1f, %.1f, %.1f, %.1f);\n", 1.0, 0.5, 0.3, 1.0)
	requireTerminated(t, &b)

	assert.Equal(t, "#version 450\nvec4 c = vec4(1.0, 0.5, 0.3, 1.0);\n", b.String())
}

func TestAppendfEmptyOutput(t *testing.T) {
	a := arena.NewArena(128)
	var b Buffer
	b.Appendf(a, "")
	assert.Zero(t, b.Len())
	assert.Equal(t, []byte{0}, b.Terminated())
}

func TestAppendfVerbs(t *testing.T) {
	tests := []struct {
		format string
		args   []any
	}{
		{"%s=%q", []any{"name", "va\"lue"}},
		{"%08.3f|%-6d|%x", []any{3.14159, 42, []byte{0xde, 0xad}}},
		{"%v %+v", []any{[]int{1, 2}, struct{ A int }{7}}},
		{"%d%%", []any{100}},
		{"%!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var b Buffer
			b.AppendString(nil, ">")
			b.AppendfArgs(arena.NewArena(16), tt.format, tt.args)
			assert.Equal(t, ">"+fmt.Sprintf(tt.format, tt.args...), b.String())
			requireTerminated(t, &b)
		})
	}
}

// growingStringer renders longer on its second call, so the write pass
// outruns the measured size.
type growingStringer struct{ calls int }

func (g *growingStringer) String() string {
	g.calls++
	if g.calls == 1 {
		return strings.Repeat("z", 20)
	}
	return strings.Repeat("y", 200)
}

func TestAppendfWritePassLongerThanMeasured(t *testing.T) {
	a := arena.NewArena(4096)
	var b Buffer
	b.AppendString(a, "pre:")

	g := &growingStringer{}
	b.Appendf(a, "%s", g)

	require.Equal(t, 2, g.calls)
	assert.Equal(t, "pre:"+strings.Repeat("y", 200), b.String())
	requireTerminated(t, &b)
}

func TestAppendfArgsForwarding(t *testing.T) {
	a := arena.NewArena(256)
	var b Buffer

	logf := func(format string, args ...any) {
		b.AppendString(a, "[gen] ")
		b.AppendfArgs(a, format, args)
		b.AppendByte(a, '\n')
	}
	logf("pass %d of %d", 1, 2)
	logf("%s", "done")

	assert.Equal(t, "[gen] pass 1 of 2\n[gen] done\n", b.String())
}

func TestFormattedSize(t *testing.T) {
	assert.Equal(t, 0, formattedSize("", nil))
	assert.Equal(t, len("x=12"), formattedSize("x=%d", []any{12}))
}

func TestScanf(t *testing.T) {
	var w, h int
	n, err := FromString("1920x1080 trailing").Scanf("%dx%d", &w, &h)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)
}

func TestScanfStopsAtLength(t *testing.T) {
	// The view ends before "99"; the scanner must not see past it.
	src := FromString("12 99")
	var x, y int
	n, err := src.Take(3).Scanf("%d %d", &x, &y)
	assert.Error(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 12, x)
	assert.Zero(t, y)
}

func TestScanfFailure(t *testing.T) {
	var v int
	n, err := FromString("abc").Scanf("%d", &v)
	assert.Error(t, err)
	assert.Zero(t, n)

	n, err = Slice(nil).Scanf("%d", &v)
	assert.Error(t, err)
	assert.Zero(t, n)
}
