package chego

import (
	"sort"
	"strings"
)

/*
Node is a binary Huffman-tree node over move indices (an index into a
position's legal [MoveList]). Leaves hold the move Index they encode;
internal nodes hold only Left/Right. internal/codegen builds a tree like
this from real game corpora to rank how often each move index is actually
played, then walks it with TraversePreOrder to emit the per-index bit
codes PGN compression (see [CompressMoveIndices]) assigns shorter codes to
the moves players pick most.
*/
type Node struct {
	Left, Right *Node
	Index       int
}

/*
TraversePreOrder traverses the tree in pre-order, starting from the specified node.
*/
func TraversePreOrder(n *Node, codes *[218]string, current string) {
	if n == nil {
		return
	}

	if n.Left == nil && n.Right == nil {
		(*codes)[n.Index] = current
		return
	}

	TraversePreOrder(n.Left, codes, current+"1")
	TraversePreOrder(n.Right, codes, current+"0")
}

type nodeFreq struct {
	node *Node
	freq int
}

// BuildHuffmanTree builds a Huffman tree over move indices from freq, where
// freq[i] counts how many times move index i occurred. Ported from
// internal/codegen's offline corpus-frequency tree builder, generalized to
// run over any frequency table rather than only one mined from a PGN
// corpus file.
func BuildHuffmanTree(freq [218]int) *Node {
	var nodes []*nodeFreq
	for i, f := range freq {
		if f > 0 {
			nodes = append(nodes, &nodeFreq{node: &Node{Index: i}, freq: f})
		}
	}
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return &Node{Left: nodes[0].node, Index: -1}
	}
	for len(nodes) > 1 {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].freq < nodes[j].freq })
		merged := &nodeFreq{
			node: &Node{Left: nodes[0].node, Right: nodes[1].node, Index: -1},
			freq: nodes[0].freq + nodes[1].freq,
		}
		nodes = append(nodes[2:], merged)
	}
	return nodes[0].node
}

// CompressMoveIndices builds a Huffman code over indices' own frequency
// distribution (moves chosen more often within this sequence get shorter
// codes) and encodes them as a bitstring. The returned code table is
// required to decode the result with [DecompressMoveIndices].
func CompressMoveIndices(indices []int) (bits string, codes [218]string) {
	var freq [218]int
	for _, idx := range indices {
		freq[idx]++
	}
	TraversePreOrder(BuildHuffmanTree(freq), &codes, "")

	var b strings.Builder
	for _, idx := range indices {
		b.WriteString(codes[idx])
	}
	return b.String(), codes
}

// DecompressMoveIndices reverses [CompressMoveIndices] given the code table
// it returned.
func DecompressMoveIndices(bits string, codes [218]string) []int {
	decode := make(map[string]int, len(codes))
	for idx, code := range codes {
		if code != "" {
			decode[code] = idx
		}
	}

	var indices []int
	var cur strings.Builder
	for i := 0; i < len(bits); i++ {
		cur.WriteByte(bits[i])
		if idx, ok := decode[cur.String()]; ok {
			indices = append(indices, idx)
			cur.Reset()
		}
	}
	return indices
}
