package huffman

import (
	"bytes"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffmantext/internal/bitpack"
)

// Report summarizes an encoding for humans.  None of it is needed to decode.
type Report struct {
	// Symbols is the number of symbols in the original text.
	Symbols int

	// Distinct is the number of distinct symbols.
	Distinct int

	// Bits is the length of the bitstream.
	Bits int

	// PackedBytes is the size of the bitstream if it were packed eight
	// bits to the byte.
	PackedBytes int

	// BitsPerSymbol is Bits divided by Symbols.
	BitsPerSymbol float64

	// Lines has one row per code table entry, in code table order.
	Lines []ReportLine
}

// ReportLine describes a single code table entry.
type ReportLine struct {
	Symbol Symbol
	Weight int
	Code   Code
}

// NewReport builds the Report for doc, which was encoded with the code table
// ct derived from the frequencies ft.
func NewReport(ft *FrequencyTable, ct *CodeTable, doc *Document) Report {
	r := Report{
		Symbols:     ft.Total(),
		Distinct:    ct.Len(),
		Bits:        len(doc.Bits),
		PackedBytes: bitpack.PackedLen(len(doc.Bits)),
		Lines:       make([]ReportLine, 0, ct.Len()),
	}
	if r.Symbols > 0 {
		r.BitsPerSymbol = float64(r.Bits) / float64(r.Symbols)
	}
	for _, entry := range ct.entries {
		r.Lines = append(r.Lines, ReportLine{entry.Symbol, ft.Count(entry.Symbol), entry.Code})
	}
	return r
}

// WriteTo writes the Report to w, with numbers formatted for English
// readers.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	p := message.NewPrinter(language.English)

	var buf bytes.Buffer
	p.Fprintf(&buf, "%d symbols (%d distinct) encoded as %d bits, %d bytes packed\n", r.Symbols, r.Distinct, r.Bits, r.PackedBytes)
	p.Fprintf(&buf, "Code table (%.4f bits per symbol on average):\n", r.BitsPerSymbol)
	for _, line := range r.Lines {
		p.Fprintf(&buf, "%s (Unicode %d, weight %d): %s\n", line.Symbol, int32(line.Symbol), line.Weight, string(line.Code))
	}
	return buf.WriteTo(w)
}
