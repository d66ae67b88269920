package huffman

import (
	"encoding"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Document is a serialized Huffman-coded text: a code table followed by the
// bitstream.  Its text form is
//
//     <entry>(;<entry>)*
//     <bitstream>
//
// where each <entry> is "<symbol>:<code>", <symbol> is exactly one character
// (which may itself be ':', ';' or a newline), <code> is one or more binary
// digits, and <bitstream> is the final line, consisting solely of binary
// digits with no trailing newline.
//
type Document struct {
	Entries []Entry
	Bits    string
}

var documentGrammar = regexp.MustCompile(`(?s)\A(?:.:[01]+;)*.:[01]+\n[01]+\z`)

// ValidateDocument checks that text matches the document grammar exactly.
// It returns an error wrapping ErrInvalidFormat if not.
func ValidateDocument(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, ErrInvalidUTF8)
	}
	if !documentGrammar.MatchString(text) {
		return fmt.Errorf("%w: expected <symbol>:<code>(;<symbol>:<code>)* then a newline and a line of binary digits", ErrInvalidFormat)
	}
	return nil
}

// ParseDocument validates text against the document grammar and splits it
// into entries and bitstream.  Nothing is parsed unless the whole of text is
// valid.
func ParseDocument(text string) (*Document, error) {
	if err := ValidateDocument(text); err != nil {
		return nil, err
	}
	entries, bits := splitDocument(text)
	return &Document{Entries: entries, Bits: bits}, nil
}

// splitDocument scans text, which must already have been validated.  Because
// every symbol is exactly one character, the scanner always knows whether it
// is looking at a symbol, a code, or a separator.
func splitDocument(text string) ([]Entry, string) {
	entries := make([]Entry, 0, strings.Count(text, ":"))
	i := 0
	for {
		ch, size := utf8.DecodeRuneInString(text[i:])
		i += size + 1 // skip symbol and ':'

		j := i
		for text[j] == '0' || text[j] == '1' {
			j++
		}
		entries = append(entries, Entry{Symbol(ch), Code(text[i:j])})

		sep := text[j]
		i = j + 1
		if sep == '\n' {
			return entries, text[i:]
		}
	}
}

// String returns the text form of the Document.
func (doc *Document) String() string {
	size := len(doc.Bits)
	for _, entry := range doc.Entries {
		size += utf8.RuneLen(rune(entry.Symbol)) + 2 + entry.Code.Len()
	}

	var sb strings.Builder
	sb.Grow(size)
	for index, entry := range doc.Entries {
		if index > 0 {
			sb.WriteByte(';')
		}
		sb.WriteRune(rune(entry.Symbol))
		sb.WriteByte(':')
		sb.WriteString(string(entry.Code))
	}
	sb.WriteByte('\n')
	sb.WriteString(doc.Bits)
	return sb.String()
}

// WriteTo writes the text form of the Document to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, doc.String())
	return int64(n), err
}

// MarshalText returns the text form of the Document.
func (doc *Document) MarshalText() ([]byte, error) {
	if len(doc.Entries) == 0 || doc.Bits == "" {
		return nil, fmt.Errorf("%w: document has %d %s and %d bits", ErrInvalidFormat, len(doc.Entries), plural(len(doc.Entries), "entry", "entries"), len(doc.Bits))
	}
	return []byte(doc.String()), nil
}

// UnmarshalText replaces the Document with the one parsed from text.
func (doc *Document) UnmarshalText(text []byte) error {
	parsed, err := ParseDocument(string(text))
	if err != nil {
		return err
	}
	*doc = *parsed
	return nil
}

var (
	_ fmt.Stringer             = (*Document)(nil)
	_ io.WriterTo              = (*Document)(nil)
	_ encoding.TextMarshaler   = (*Document)(nil)
	_ encoding.TextUnmarshaler = (*Document)(nil)
)
