package plstr

import "fmt"

// Scanf parses s according to a fmt scan format, storing the values in
// args. It returns the number of items matched and the parser's error
// unchanged. s is copied first; it is never read past its length.
func (s Slice) Scanf(format string, args ...any) (int, error) {
	return fmt.Sscanf(string(s), format, args...)
}
