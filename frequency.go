package huffman

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"
)

// FrequencyTable counts the occurrences of each distinct Symbol in a text.
// It also remembers the order in which the symbols were first seen, which
// BuildTree uses to break ties between equal weights.
//
// A FrequencyTable is immutable once built.
type FrequencyTable struct {
	order  []Symbol
	counts map[Symbol]int
	total  int
}

// BuildFrequencyTable splits text into Symbols and counts them.  Newlines are
// ordinary symbols.  Returns ErrEmptyInput if text is empty, or
// ErrInvalidUTF8 if text is not valid UTF-8.
func BuildFrequencyTable(text string) (*FrequencyTable, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	ft := &FrequencyTable{counts: make(map[Symbol]int)}
	for _, ch := range text {
		symbol := Symbol(ch)
		if _, found := ft.counts[symbol]; !found {
			ft.order = append(ft.order, symbol)
		}
		ft.counts[symbol]++
		ft.total++
	}
	return ft, nil
}

// Count returns the number of occurrences of symbol, or 0 if symbol never
// occurs.
func (ft *FrequencyTable) Count(symbol Symbol) int {
	return ft.counts[symbol]
}

// Len returns the number of distinct symbols.
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Total returns the number of symbols in the original text.  This is always
// equal to the sum of Count over Symbols.
func (ft *FrequencyTable) Total() int {
	return ft.total
}

// Symbols returns the distinct symbols in order of first occurrence.
func (ft *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.order))
	copy(out, ft.order)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft *FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tCount(%s) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
