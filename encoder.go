package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Encoder implements an encoder for the Huffman code of a particular text.
type Encoder struct {
	freq  *FrequencyTable
	codes *CodeTable
}

// NewEncoder counts the symbols of text, builds the Huffman tree for them,
// and derives the code table.  The tree itself is discarded.
func NewEncoder(text string) (*Encoder, error) {
	var e Encoder
	if err := e.Init(text); err != nil {
		return nil, err
	}
	return &e, nil
}

// Init initializes this Encoder from text, as per NewEncoder.
func (e *Encoder) Init(text string) error {
	freq, err := BuildFrequencyTable(text)
	if err != nil {
		return err
	}

	root, err := BuildTree(freq)
	if err != nil {
		return err
	}

	*e = Encoder{
		freq:  freq,
		codes: DeriveCodeTable(root),
	}
	return nil
}

// Frequencies returns the FrequencyTable the code was built from.
func (e *Encoder) Frequencies() *FrequencyTable {
	return e.freq
}

// Codes returns the Encoder's CodeTable.
func (e *Encoder) Codes() *CodeTable {
	return e.codes
}

// Encode maps each symbol of text through the code table, in order, and
// returns the resulting Document.
//
// The text need not be the same text the Encoder was built from, but every
// symbol in it must have a code; otherwise ErrUnknownSymbol is returned.
//
func (e *Encoder) Encode(text string) (*Document, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}

	// First pass: size the bitstream exactly, and reject unknown symbols
	// before writing anything.
	var numBits int
	for offset, ch := range text {
		hc, found := e.codes.Code(Symbol(ch))
		if !found {
			return nil, fmt.Errorf("%w: %s at byte offset %d", ErrUnknownSymbol, Symbol(ch), offset)
		}
		numBits += hc.Len()
	}

	// Second pass: concatenate.
	var sb strings.Builder
	sb.Grow(numBits)
	for _, ch := range text {
		hc, _ := e.codes.Code(Symbol(ch))
		sb.WriteString(string(hc))
	}

	return &Document{
		Entries: e.codes.Entries(),
		Bits:    sb.String(),
	}, nil
}

// Report builds the diagnostic report for a Document produced by this
// Encoder.
func (e *Encoder) Report(doc *Document) Report {
	return NewReport(e.freq, e.codes, doc)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", e.freq.Total())
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", e.codes.MaxLen())
	for _, symbol := range e.freq.order {
		hc, _ := e.codes.Code(symbol)
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode builds an Encoder for text and uses it to encode text.
func Encode(text string) (*Document, error) {
	e, err := NewEncoder(text)
	if err != nil {
		return nil, err
	}
	return e.Encode(text)
}
