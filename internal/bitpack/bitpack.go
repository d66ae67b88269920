// Package bitpack converts between bitstreams written as '0'/'1' text and
// the same bits packed eight to the byte, most significant bit first.
package bitpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrNotBinary is returned by Pack for text containing anything other than
// '0' and '1'.
var ErrNotBinary = errors.New("bitpack: not a binary digit")

// PackedLen returns the number of bytes needed to hold n bits.
func PackedLen(n int) int {
	return (n + 7) / 8
}

// Pack packs bits, a string of '0' and '1', into bytes.  The last byte is
// zero-padded on the low side.
func Pack(bits string) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, PackedLen(len(bits))))
	w := bitio.NewWriter(buf)
	for i := 0; i < len(bits); i++ {
		var bit bool
		switch bits[i] {
		case '0':
		case '1':
			bit = true
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrNotBinary, bits[i], i)
		}
		if err := w.WriteBool(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack: it reads n bits from packed and returns
// them as '0'/'1' text.
func Unpack(packed []byte, n int) (string, error) {
	if n < 0 || PackedLen(n) > len(packed) {
		return "", fmt.Errorf("bitpack: cannot read %d bits from %d bytes: %w", n, len(packed), io.ErrUnexpectedEOF)
	}

	out := make([]byte, n)
	r := bitio.NewReader(bytes.NewReader(packed))
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return string(out), nil
}
