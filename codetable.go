package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Entry pairs a Symbol with its Code.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol of an alphabet to its Code.  The codes of a
// CodeTable derived from a Huffman tree are non-empty and prefix-free.
type CodeTable struct {
	entries []Entry
	index   map[Symbol]int
	maxLen  int
}

// DeriveCodeTable walks the tree rooted at root and assigns each leaf the
// path leading to it, with '0' for every left branch and '1' for every right
// branch.  Entries are listed in left-to-right leaf order.
//
// A root that is itself a leaf is assigned the Code "0".
//
func DeriveCodeTable(root *Node) *CodeTable {
	assert.Assertf(root != nil, "DeriveCodeTable: nil root")

	ct := &CodeTable{index: make(map[Symbol]int)}
	ct.walk(root, "")

	assert.Assertf(ct.PrefixFree(), "DeriveCodeTable: derived codes are not prefix-free")
	return ct
}

func (ct *CodeTable) walk(n *Node, path Code) {
	if !n.IsLeaf() {
		ct.walk(n.left, path.Append(false))
		ct.walk(n.right, path.Append(true))
		return
	}

	if path == "" {
		path = "0"
	}
	_, dupe := ct.index[n.symbol]
	assert.Assertf(!dupe, "DeriveCodeTable: symbol %s appears in two leaves", n.symbol)

	ct.index[n.symbol] = len(ct.entries)
	ct.entries = append(ct.entries, Entry{n.symbol, path})
	if ct.maxLen < path.Len() {
		ct.maxLen = path.Len()
	}
}

// Code returns the Code assigned to symbol.  The second return value is
// false if symbol is not part of this table's alphabet.
func (ct *CodeTable) Code(symbol Symbol) (Code, bool) {
	i, found := ct.index[symbol]
	if !found {
		return "", false
	}
	return ct.entries[i].Code, true
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.entries)
}

// MaxLen returns the bit length of the longest Code in the table.
func (ct *CodeTable) MaxLen() int {
	return ct.maxLen
}

// Entries returns a copy of the table's entries, in left-to-right leaf order.
func (ct *CodeTable) Entries() []Entry {
	out := make([]Entry, len(ct.entries))
	copy(out, ct.entries)
	return out
}

// PrefixFree returns true iff no Code in the table is a prefix of another.
func (ct *CodeTable) PrefixFree() bool {
	return prefixFree(ct.entries)
}

// Reverse returns the inverse of this table.
func (ct *CodeTable) Reverse() ReverseCodeTable {
	rct, err := NewReverseCodeTable(ct.entries)
	assert.Assertf(err == nil, "CodeTable.Reverse: %v", err)
	return rct
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMaxLen() = %d\n", ct.maxLen)
	for _, entry := range ct.entries {
		fmt.Fprintf(&buf, "\tCode(%s) = %s\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// ReverseCodeTable maps each Code back to its Symbol.
type ReverseCodeTable map[Code]Symbol

// NewReverseCodeTable builds the inverse of a list of entries.  It returns
// ErrDuplicateCode if two entries share a Code, rather than letting the later
// entry silently win.
func NewReverseCodeTable(entries []Entry) (ReverseCodeTable, error) {
	rct := make(ReverseCodeTable, len(entries))
	for _, entry := range entries {
		if prev, found := rct[entry.Code]; found {
			return nil, fmt.Errorf("%w: %s is assigned to both %s and %s", ErrDuplicateCode, entry.Code, prev, entry.Symbol)
		}
		rct[entry.Code] = entry.Symbol
	}
	return rct, nil
}

// Lookup returns the Symbol for hc, or InvalidSymbol if hc is not in the
// table.
func (rct ReverseCodeTable) Lookup(hc Code) Symbol {
	if symbol, found := rct[hc]; found {
		return symbol
	}
	return InvalidSymbol
}

// MaxLen returns the bit length of the longest Code in the table.
func (rct ReverseCodeTable) MaxLen() int {
	var max int
	for hc := range rct {
		if max < hc.Len() {
			max = hc.Len()
		}
	}
	return max
}

// Dump writes a programmer-readable debugging dump of the ReverseCodeTable to
// the given writer.  Codes are listed shortest first.
func (rct ReverseCodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("ReverseCodeTable{\n")
	keys := make(byCode, 0, len(rct))
	for hc := range rct {
		keys = append(keys, hc)
	}
	sort.Sort(keys)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", hc, rct[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func prefixFree(entries []Entry) bool {
	codes := make([]string, len(entries))
	for i, entry := range entries {
		codes[i] = string(entry.Code)
	}

	// In lexicographic order, the codes that extend a given code
	// immediately follow it.
	sort.Strings(codes)
	for i := 1; i < len(codes); i++ {
		if Code(codes[i]).HasPrefix(Code(codes[i-1])) {
			return false
		}
	}
	return true
}
