// Package huffman builds the binary Huffman tree used by hierarchical
// softmax. Leaves are numbered 0..n-1 in the order of the input counts and
// internal nodes n..2n-2 in creation order, so the root is node 2n-2.
// Paths store internal nodes relative to n, which puts the root at n-2 and
// lets callers index an (n-1)-row output matrix directly.
package huffman

import (
	"fmt"
	"math"
)

// MaxCodeLength is the default depth cap for a single code.
const MaxCodeLength = 40

// Code is the root-to-leaf encoding of one leaf. Path[d] is the internal
// node, relative to the leaf count, whose decision yields Bits[d].
type Code struct {
	Bits []byte
	Path []int32
}

// Len returns the code length.
func (c Code) Len() int {
	return len(c.Bits)
}

// Tree is the explicit node table produced by Build.
type Tree struct {
	// number of leaves
	Leaves int
	// Weight, Parent and Bit are indexed by node id. The root has parent -1.
	Weight []int64
	Parent []int32
	Bit    []byte
	// Children[i] holds the {0, 1} children of internal node n+i.
	Children [][2]int32
	// per-leaf code cache
	Codes []Code
}

// Root returns the node id of the root.
func (t *Tree) Root() int {
	return 2*t.Leaves - 2
}

// Build constructs the tree from counts in linear time. The counts are
// expected in descending order; a pinned entry out of order still yields a
// valid prefix code, only not an optimal one. Leaves are consumed from the tail of counts while internal
// nodes are consumed in the order they were created; both sequences are
// non-decreasing, so the two smallest candidates are always at one of the
// two cursors. A leaf is taken only when strictly lighter than the next
// internal node. maxLen <= 0 selects MaxCodeLength.
func Build(counts []int64, maxLen int) (*Tree, error) {
	n := len(counts)
	if n < 2 {
		return nil, ErrTooFewLeaves
	}
	if maxLen <= 0 {
		maxLen = MaxCodeLength
	}

	t := &Tree{
		Leaves:   n,
		Weight:   make([]int64, 2*n-1),
		Parent:   make([]int32, 2*n-1),
		Bit:      make([]byte, 2*n-1),
		Children: make([][2]int32, n-1),
		Codes:    make([]Code, n),
	}
	copy(t.Weight, counts)

	pos1, pos2 := n-1, n
	// next node id at the internal cursor, or MaxInt64 if not created yet
	weight := func(id, created int) int64 {
		if id >= created {
			return math.MaxInt64
		}
		return t.Weight[id]
	}
	pick := func(created int) int {
		if pos1 >= 0 && t.Weight[pos1] < weight(pos2, created) {
			i := pos1
			pos1--
			return i
		}
		i := pos2
		pos2++
		return i
	}
	for a := 0; a < n-1; a++ {
		created := n + a
		min1 := pick(created)
		min2 := pick(created)
		t.Weight[created] = t.Weight[min1] + t.Weight[min2]
		t.Parent[min1] = int32(created)
		t.Parent[min2] = int32(created)
		t.Bit[min2] = 1
		t.Children[a] = [2]int32{int32(min1), int32(min2)}
	}
	root := t.Root()
	t.Parent[root] = -1

	bits := make([]byte, 0, maxLen)
	nodes := make([]int32, 0, maxLen)
	for leaf := 0; leaf < n; leaf++ {
		bits, nodes = bits[:0], nodes[:0]
		for b := leaf; b != root; b = int(t.Parent[b]) {
			if len(bits) == maxLen {
				return nil, fmt.Errorf("leaf %d: %w (%d)", leaf, ErrCodeTooLong, maxLen)
			}
			bits = append(bits, t.Bit[b])
			nodes = append(nodes, t.Parent[b]-int32(n))
		}
		l := len(bits)
		code := Code{Bits: make([]byte, l), Path: make([]int32, l)}
		for i := 0; i < l; i++ {
			code.Bits[l-1-i] = bits[i]
			code.Path[l-1-i] = nodes[i]
		}
		t.Codes[leaf] = code
	}
	return t, nil
}

// Decode walks from the root following bits and returns the leaf reached
// together with the internal nodes visited. ok is false when bits end on
// an internal node or run past a leaf.
func (t *Tree) Decode(bits []byte) (leaf int, path []int32, ok bool) {
	n := t.Leaves
	node := t.Root()
	for i, bit := range bits {
		if node < n {
			return 0, nil, false
		}
		path = append(path, int32(node-n))
		node = int(t.Children[node-n][bit&1])
		if node < n && i != len(bits)-1 {
			return 0, nil, false
		}
	}
	if node >= n {
		return 0, nil, false
	}
	return node, path, true
}
