package huffman

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind(t *testing.T) {
	type testRow struct {
		err    error
		expect string
	}

	testData := [...]testRow{
		{nil, ""},
		{errors.New("unrelated"), ""},
		{ErrEmptyInput, "EmptyInput"},
		{fmt.Errorf("read foo: %w", ErrInvalidFormat), "InvalidFormat"},
		{fmt.Errorf("%w: x", ErrDuplicateCode), "DuplicateCode"},
		{fmt.Errorf("%w: x", ErrTruncatedStream), "TruncatedStream"},
		{fmt.Errorf("%w: %w: x", ErrTruncatedStream, ErrUnmatchedCode), "TruncatedStream"},
		{ErrUnknownSymbol, "UnknownSymbol"},
		{ErrInvalidUTF8, "InvalidUTF8"},
	}
	for _, row := range testData {
		if actual := ErrorKind(row.err); row.expect != actual {
			t.Errorf("ErrorKind(%v): expected %q, got %q", row.err, row.expect, actual)
		}
	}

	// A document that is not UTF-8 wraps both kinds; the format error wins.
	err := ValidateDocument("\xff:0\n0")
	if actual := ErrorKind(err); actual != "InvalidFormat" {
		t.Errorf("expected \"InvalidFormat\", got %q for %v", actual, err)
	}
}
