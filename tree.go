package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

// Node is a node of a Huffman tree.  It is either a leaf, which carries a
// Symbol, or an internal node, which carries exactly two children.  Nodes
// are never modified after construction.
type Node struct {
	kind   nodeKind
	symbol Symbol
	weight int
	left   *Node
	right  *Node
}

func newLeaf(symbol Symbol, weight int) *Node {
	assert.Assertf(weight > 0, "leaf %s has weight %d", symbol, weight)
	return &Node{kind: leafNode, symbol: symbol, weight: weight}
}

func newInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil && right != nil, "internal node is missing a child")
	weight := left.weight + right.weight
	assert.Assertf(weight > left.weight && weight > right.weight, "weight overflow: %d + %d", left.weight, right.weight)
	return &Node{kind: internalNode, symbol: InvalidSymbol, weight: weight, left: left, right: right}
}

// IsLeaf returns true iff this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.kind == leafNode
}

// Symbol returns the leaf's Symbol, or InvalidSymbol for internal nodes.
func (n *Node) Symbol() Symbol {
	return n.symbol
}

// Weight returns the number of input symbols under this node.
func (n *Node) Weight() int {
	return n.weight
}

// Left returns the child reached by a '0' bit, or nil for leaves.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the child reached by a '1' bit, or nil for leaves.
func (n *Node) Right() *Node {
	return n.right
}

// Dump writes a programmer-readable debugging dump of the subtree rooted at
// this node to the given writer.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dump(&buf, 0, "")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, depth int, edge string) {
	buf.WriteString(strings.Repeat("\t", depth))
	buf.WriteString(edge)
	if n.IsLeaf() {
		fmt.Fprintf(buf, "Leaf(%s, %d)\n", n.symbol, n.weight)
		return
	}
	fmt.Fprintf(buf, "Internal(%d)\n", n.weight)
	n.left.dump(buf, depth+1, "0: ")
	n.right.dump(buf, depth+1, "1: ")
}

// BuildTree constructs the Huffman tree for the given frequencies and returns
// its root.
//
// Nodes are combined lowest weight first.  Ties are broken by age: leaves are
// aged by the first occurrence of their symbol, and each combined node is
// younger than every node that existed before it.  Of the two nodes popped,
// the older one becomes the left child.  The same input therefore always
// yields the same tree.
//
// If there is only one distinct symbol, the root is that symbol's leaf.
//
func BuildTree(ft *FrequencyTable) (*Node, error) {
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap of leaves.

	items := make([]nodeAndSeq, 0, ft.Len())
	for index, symbol := range ft.order {
		items = append(items, nodeAndSeq{newLeaf(symbol, ft.counts[symbol]), uint64(index)})
	}
	h := nodeHeap{items}
	h.Init()

	// Step 2: process the minheap by popping two nodes, combining them
	// into a new internal node, and pushing the new node back onto the
	// minheap.

	nextSeq := uint64(len(items))
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{newInternal(a.node, b.node), nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(root.weight == ft.total, "root weight %d != total %d", root.weight, ft.total)
	return root, nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []nodeAndSeq
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
