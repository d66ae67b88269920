package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// DecodeState is the state of a Decoder.
type DecodeState byte

const (
	// AwaitingHeader is the state of a fresh Decoder.
	AwaitingHeader DecodeState = iota

	// ParsingTable means the document passed validation and its code
	// table is being reconstructed.
	ParsingTable

	// ParsingStream means the code table is complete and the bitstream is
	// being decoded.
	ParsingStream

	// Done means the whole bitstream was decoded.
	Done

	// Failed means decoding stopped with an error.  It is terminal.
	Failed
)

var decodeStateNames = [...]string{
	AwaitingHeader: "AwaitingHeader",
	ParsingTable:   "ParsingTable",
	ParsingStream:  "ParsingStream",
	Done:           "Done",
	Failed:         "Failed",
}

// String returns the name of the state.
func (state DecodeState) String() string {
	if int(state) < len(decodeStateNames) {
		return decodeStateNames[state]
	}
	return fmt.Sprintf("DecodeState(%d)", byte(state))
}

var _ fmt.Stringer = DecodeState(0)

// Decoder implements a decoder for serialized Documents.
//
// A Decoder decodes exactly one document.  Once it reaches Done or Failed,
// further calls to Decode return an error until Reset is called.
//
type Decoder struct {
	state  DecodeState
	table  ReverseCodeTable
	maxLen int
}

// State returns the Decoder's current state.
func (d *Decoder) State() DecodeState {
	return d.state
}

// Table returns the ReverseCodeTable reconstructed by the last call to
// Decode, or nil if decoding failed before the table was complete.
func (d *Decoder) Table() ReverseCodeTable {
	return d.table
}

// Reset returns the Decoder to the AwaitingHeader state.
func (d *Decoder) Reset() {
	*d = Decoder{}
}

// Decode validates text against the document grammar, reconstructs the code
// table, and decodes the bitstream, returning the original text.
//
// The possible errors are, in the order they are checked: ErrInvalidFormat,
// ErrDuplicateCode and ErrTruncatedStream.  A run of bits as long as the
// longest code that matches no code fails early; that error wraps both
// ErrTruncatedStream and ErrUnmatchedCode.  No text is returned along with
// an error.
//
func (d *Decoder) Decode(text string) (string, error) {
	if d.state != AwaitingHeader {
		return "", fmt.Errorf("huffman: Decoder.Decode called in state %s", d.state)
	}

	if err := ValidateDocument(text); err != nil {
		return "", d.fail(err)
	}

	entries, bits := splitDocument(text)
	return d.decode(entries, bits)
}

// DecodeDocument is like Decode, but starts from an already-parsed Document.
func (d *Decoder) DecodeDocument(doc *Document) (string, error) {
	if d.state != AwaitingHeader {
		return "", fmt.Errorf("huffman: Decoder.DecodeDocument called in state %s", d.state)
	}

	if len(doc.Entries) == 0 {
		return "", d.fail(fmt.Errorf("%w: document has no entries", ErrInvalidFormat))
	}
	for _, entry := range doc.Entries {
		if entry.Symbol < 0 || !entry.Code.Valid() {
			return "", d.fail(fmt.Errorf("%w: bad entry %s:%s", ErrInvalidFormat, entry.Symbol, entry.Code))
		}
	}
	if doc.Bits == "" || !isBinary(doc.Bits) {
		return "", d.fail(fmt.Errorf("%w: bitstream is empty or contains non-binary digits", ErrInvalidFormat))
	}

	return d.decode(doc.Entries, doc.Bits)
}

func (d *Decoder) decode(entries []Entry, bits string) (string, error) {
	d.state = ParsingTable

	table, err := NewReverseCodeTable(entries)
	if err != nil {
		return "", d.fail(err)
	}
	d.table = table
	d.maxLen = table.MaxLen()

	d.state = ParsingStream

	out, err := decodeBits(d.table, d.maxLen, bits)
	if err != nil {
		return "", d.fail(err)
	}

	d.state = Done
	return out, nil
}

func (d *Decoder) fail(err error) error {
	d.state = Failed
	return err
}

// decodeBits scans bits left to right, growing a candidate code until it
// matches an entry of table.  Greedy matching is unambiguous because the
// codes are prefix-free.
func decodeBits(table ReverseCodeTable, maxLen int, bits string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(bits) / maxLen)

	start := 0
	for end := 1; end <= len(bits); end++ {
		if symbol, found := table[Code(bits[start:end])]; found {
			sb.WriteRune(rune(symbol))
			start = end
			continue
		}
		if end-start >= maxLen {
			n := end - start
			return "", fmt.Errorf("%w: %w: %d %s at offset %d", ErrTruncatedStream, ErrUnmatchedCode, n, plural(n, "bit", "bits"), start)
		}
	}

	if start != len(bits) {
		return "", fmt.Errorf("%w: %d dangling %s at offset %d", ErrTruncatedStream, len(bits)-start, plural(len(bits)-start, "bit", "bits"), start)
	}
	return sb.String(), nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tState() = %s\n", d.state)
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", d.maxLen)
	fmt.Fprintf(&buf, "\tlen(Table()) = %d\n", len(d.table))
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Decode decodes a serialized Document with a fresh Decoder.
func Decode(text string) (string, error) {
	var d Decoder
	return d.Decode(text)
}
