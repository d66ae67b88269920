package huffman

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when asked to encode text with no symbols.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrInvalidUTF8 is returned when the text to encode, or a document to
	// decode, is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("huffman: invalid UTF-8")

	// ErrUnknownSymbol is returned by Encoder.Encode when the text contains
	// a symbol that has no code in the Encoder's table.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrInvalidFormat is returned when a serialized document does not
	// match the document grammar.
	ErrInvalidFormat = errors.New("huffman: invalid document format")

	// ErrDuplicateCode is returned when two entries of a serialized code
	// table share the same code.
	ErrDuplicateCode = errors.New("huffman: duplicate code")

	// ErrTruncatedStream is returned when the bitstream ends in the middle
	// of a code.
	ErrTruncatedStream = errors.New("huffman: truncated bitstream")

	// ErrUnmatchedCode is wrapped, along with ErrTruncatedStream, when the
	// bitstream contains a run of bits as long as the longest code in the
	// table which matches no code.  Such a run can never be completed.
	ErrUnmatchedCode = errors.New("huffman: bits match no code")
)

var errorKinds = [...]struct {
	err  error
	name string
}{
	{ErrInvalidFormat, "InvalidFormat"},
	{ErrEmptyInput, "EmptyInput"},
	{ErrInvalidUTF8, "InvalidUTF8"},
	{ErrUnknownSymbol, "UnknownSymbol"},
	{ErrDuplicateCode, "DuplicateCode"},
	{ErrTruncatedStream, "TruncatedStream"},
}

// ErrorKind returns the short name of the error kind that err wraps, such as
// "InvalidFormat", or "" if err is nil or wraps none of the errors defined
// by this package.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, row := range errorKinds {
		if errors.Is(err, row.err) {
			return row.name
		}
	}
	return ""
}
