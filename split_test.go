package plstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitChar(t *testing.T) {
	s := FromString("a,b,c")

	head, rest := s.SplitChar(',')
	assert.Equal(t, "a", head.String())
	assert.Equal(t, "b,c", rest.String())

	head, rest = rest.SplitChar(',')
	assert.Equal(t, "b", head.String())
	assert.Equal(t, "c", rest.String())

	head, rest = rest.SplitChar(',')
	assert.Equal(t, "c", head.String())
	assert.Empty(t, rest)
}

func TestSplitCharEdges(t *testing.T) {
	tests := []struct {
		in         string
		head, rest string
	}{
		{"", "", ""},
		{",", "", ""},
		{",x", "", "x"},
		{"x,", "x", ""},
		{",,", "", ","},
	}
	for _, tt := range tests {
		head, rest := FromString(tt.in).SplitChar(',')
		assert.Equalf(t, tt.head, head.String(), "head of %q", tt.in)
		assert.Equalf(t, tt.rest, rest.String(), "rest of %q", tt.in)
	}
}

func TestSplitAliasesInput(t *testing.T) {
	src := FromString("key=value")
	head, rest := src.SplitChar('=')
	assert.Same(t, &src[0], &head[0])
	assert.Same(t, &src[4], &rest[0])
}

func TestSplitSlice(t *testing.T) {
	tests := []struct {
		in, sep    string
		head, rest string
	}{
		{"a::b::c", "::", "a", "b::c"},
		{"no separator", "::", "no separator", ""},
		{"::lead", "::", "", "lead"},
		{"trail::", "::", "trail", ""},
		{"abc", "", "", "abc"},
	}
	for _, tt := range tests {
		head, rest := FromString(tt.in).SplitSlice(FromString(tt.sep))
		assert.Equalf(t, tt.head, head.String(), "head of %q / %q", tt.in, tt.sep)
		assert.Equalf(t, tt.rest, rest.String(), "rest of %q / %q", tt.in, tt.sep)

		head, rest = FromString(tt.in).SplitString(tt.sep)
		assert.Equal(t, tt.head, head.String())
		assert.Equal(t, tt.rest, rest.String())
	}
}

func TestGetLine(t *testing.T) {
	var lines []string
	rest := FromString("#version 450\n\nvoid main() {}\nno newline")
	for len(rest) > 0 {
		var line Slice
		line, rest = rest.GetLine()
		lines = append(lines, line.String())
	}
	assert.Equal(t, []string{"#version 450", "", "void main() {}", "no newline"}, lines)
}
