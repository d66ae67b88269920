package huffman

import (
	"fmt"
	"strconv"
)

// Symbol represents a single character of the input text.  Negative symbols
// are not valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the Go-quoted representation of this Symbol, so that
// newlines and other control characters stay visible in dumps.
func (s Symbol) String() string {
	if s < 0 {
		return "<invalid>"
	}
	return strconv.QuoteRune(rune(s))
}

var _ fmt.Stringer = Symbol(0)
