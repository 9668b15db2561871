// Package huffman builds binary Huffman codes for arbitrary symbols
// and uses them to encode and decode symbol sequences.
//
// A code is built in two steps.
// Build merges symbol weights into a Tree,
// and BuildTable derives the codeword for each symbol from that tree.
// Encode turns symbols into bits with the table,
// and Decode turns bits back into symbols by walking the tree.
//
// The codewords are prefix-free:
// for any two codewords X and Y, X is not a prefix of Y.
// This allows a stream of concatenated codewords
// to be split back into symbols without delimiters.
//
// Trees and tables are immutable once built
// and may be shared between goroutines.
package huffman

import (
	"cmp"
	"slices"
)

// Weight pairs a symbol with the number of times it was observed.
type Weight[S comparable] struct {
	Symbol S
	Freq   uint64
}

// Count counts occurrences of each symbol in symbols.
// The returned weights are in the order in which
// the symbols first appear.
func Count[S comparable](symbols []S) []Weight[S] {
	idx := make(map[S]int)
	var weights []Weight[S]
	for _, s := range symbols {
		i, ok := idx[s]
		if !ok {
			i = len(weights)
			idx[s] = i
			weights = append(weights, Weight[S]{Symbol: s})
		}
		weights[i].Freq++
	}
	return weights
}

// SortedWeights converts a frequency map into weights ordered by symbol.
//
// Map iteration order is random in Go,
// so this is the way to get a reproducible tree from a map.
func SortedWeights[S cmp.Ordered](freqs map[S]uint64) []Weight[S] {
	weights := make([]Weight[S], 0, len(freqs))
	for s, f := range freqs {
		weights = append(weights, Weight[S]{Symbol: s, Freq: f})
	}
	slices.SortFunc(weights, func(a, b Weight[S]) int {
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return weights
}
