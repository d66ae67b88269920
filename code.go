package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as the characters '0' and '1'.
// The first character is the first bit, i.e. the branch taken at the root.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// Append returns a new Code with one more bit at the end: '0' if bit is
// false, '1' if bit is true.
func (hc Code) Append(bit bool) Code {
	if bit {
		return hc + "1"
	}
	return hc + "0"
}

// HasPrefix returns true iff prefix is a prefix of hc.  Every Code has the
// empty Code as a prefix, and every Code is a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Valid returns true iff this Code is non-empty and consists solely of
// binary digits.
func (hc Code) Valid() bool {
	return hc != "" && isBinary(string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

// type byCode {{{

type byCode []Code

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// }}}
