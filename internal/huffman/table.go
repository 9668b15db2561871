package huffman

import "github.com/abhinav/huffcode/internal/bitseq"

// Table maps each symbol of a Huffman tree to its codeword.
//
// Codewords in a table never share storage,
// so a table may be read concurrently.
type Table[S comparable] map[S]bitseq.Bits

// BuildTable derives the code table for the given tree.
//
// The codeword for a symbol is the path from the root to its leaf,
// with 0 for every left edge and 1 for every right edge.
// If the tree has only one symbol, that symbol gets the codeword "0".
func BuildTable[S comparable](t *Tree[S]) Table[S] {
	table := make(Table[S], t.size)

	// special-case:
	// A lone leaf has no edges, but an empty codeword
	// can't be told apart in a bit stream.
	if t.root.isLeaf() {
		table[t.root.Symbol] = bitseq.MustParse("0")
		return table
	}

	var visit func(*node[S], bitseq.Bits)
	visit = func(n *node[S], path bitseq.Bits) {
		// Copy the path for leaves
		// (descending into siblings will overwrite it).
		if n.isLeaf() {
			table[n.Symbol] = path.Clone()
			return
		}

		visit(n.Left, path.Append(0))
		visit(n.Right, path.Append(1))
	}
	visit(t.root, bitseq.Bits{})

	return table
}

// Lengths reports the codeword length of each symbol in the table.
func (tbl Table[S]) Lengths() map[S]int {
	lens := make(map[S]int, len(tbl))
	for s, code := range tbl {
		lens[s] = code.Len()
	}
	return lens
}
