package huffman

import "github.com/abhinav/huffcode/internal/bitseq"

// Encode concatenates the codewords for symbols in order.
//
// Returns an *UnknownSymbolError if a symbol is not in the table.
func Encode[S comparable](symbols []S, tbl Table[S]) (bitseq.Bits, error) {
	var out bitseq.Bits
	for i, s := range symbols {
		code, ok := tbl[s]
		if !ok {
			return bitseq.Bits{}, &UnknownSymbolError[S]{Symbol: s, Index: i}
		}
		out = out.Concat(code)
	}
	return out, nil
}

// Decode decodes a sequence of codewords by walking the tree:
// left on 0, right on 1, emitting a symbol on reaching a leaf
// and starting over from the root.
//
// Returns a *TruncatedStreamError if bits ends partway through a codeword.
func Decode[S comparable](bits bitseq.Bits, t *Tree[S]) ([]S, error) {
	root := t.root

	// special-case:
	// A single-symbol tree is all root. Every bit is one symbol.
	if root.isLeaf() {
		out := make([]S, bits.Len())
		for i := range out {
			out[i] = root.Symbol
		}
		return out, nil
	}

	var (
		out   = make([]S, 0)
		cur   = root
		depth int // bits consumed into the current codeword
	)
	for i := 0; i < bits.Len(); i++ {
		if bits.At(i) == 0 {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
		depth++

		if cur.isLeaf() {
			out = append(out, cur.Symbol)
			cur = root
			depth = 0
		}
	}

	if cur != root {
		return nil, &TruncatedStreamError{
			Bits:    bits.Len(),
			Decoded: len(out),
			Pending: depth,
		}
	}

	return out, nil
}
