package huffman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	refhuffman "go.abhg.dev/algorithm/huffman"
	"pgregory.net/rapid"
)

// drawWeights draws between 1 and n weights for the symbols 0, 1, 2, ...
func drawWeights(t *rapid.T, n int) []Weight[int] {
	freqs := rapid.SliceOfN(rapid.Uint64Range(0, 1000), 1, n).Draw(t, "freqs")
	weights := make([]Weight[int], len(freqs))
	for i, f := range freqs {
		weights[i] = Weight[int]{Symbol: i, Freq: f}
	}
	return weights
}

func mustBuild[S comparable](t *rapid.T, weights []Weight[S]) (*Tree[S], Table[S]) {
	tree, err := Build(weights)
	if err != nil {
		t.Fatalf("Build(%v): %v", weights, err)
	}
	return tree, BuildTable(tree)
}

func TestRoundTrip_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := drawWeights(t, 64)
		tree, tbl := mustBuild(t, weights)

		msg := rapid.SliceOf(rapid.IntRange(0, len(weights)-1)).Draw(t, "msg")
		bits, err := Encode(msg, tbl)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}

		got, err := Decode(bits, tree)
		if err != nil {
			t.Fatalf("Decode(%v): %v", bits, err)
		}
		assert.Equal(t, len(msg), len(got))
		if len(msg) > 0 {
			assert.Equal(t, msg, got)
		}
	})
}

func TestPrefixFree_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := drawWeights(t, 64)
		_, tbl := mustBuild(t, weights)
		assertPrefixFree(t, len(weights), tbl)
	})
}

func TestFrequencyOrdering_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := drawWeights(t, 32)
		_, tbl := mustBuild(t, weights)

		// A rarer symbol never gets a shorter codeword
		// than a more frequent one.
		for _, lo := range weights {
			for _, hi := range weights {
				if lo.Freq >= hi.Freq {
					continue
				}
				assert.GreaterOrEqual(t, tbl[lo.Symbol].Len(), tbl[hi.Symbol].Len(),
					"symbol %v (freq %d) vs %v (freq %d)",
					lo.Symbol, lo.Freq, hi.Symbol, hi.Freq)
			}
		}
	})
}

func TestOptimalLength_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := drawWeights(t, 32)
		_, tbl := mustBuild(t, weights)

		// Any two Huffman codes for the same frequencies have the same
		// weighted length, so compare against an independent implementation.
		freqs := make([]int, len(weights))
		var got int
		for i, w := range weights {
			freqs[i] = int(w.Freq)
			got += int(w.Freq) * tbl[w.Symbol].Len()
		}

		var want int
		for i, label := range refhuffman.Label(2, freqs) {
			want += freqs[i] * len(label)
		}

		assert.Equal(t, want, got, "weighted length for %v", freqs)
	})
}

func TestDeterministic_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := drawWeights(t, 32)
		_, first := mustBuild(t, weights)
		_, second := mustBuild(t, weights)

		assert.Equal(t, tableStrings(first), tableStrings(second))
	})
}

func TestTruncation_rapid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		weights := drawWeights(t, 32)
		if len(weights) < 2 {
			t.Skip("single-symbol codes cannot be truncated")
		}
		tree, tbl := mustBuild(t, weights)

		msg := rapid.SliceOf(rapid.IntRange(0, len(weights)-1)).Draw(t, "msg")
		last := rapid.IntRange(0, len(weights)-1).Draw(t, "last")
		code := tbl[last]
		if code.Len() < 2 {
			t.Skip("cannot drop a bit from a one-bit codeword and stay mid-codeword")
		}

		bits, err := Encode(msg, tbl)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		for i := 0; i < code.Len()-1; i++ {
			bits = bits.Append(code.At(i))
		}

		_, err = Decode(bits, tree)
		var truncErr *TruncatedStreamError
		if assert.ErrorAs(t, err, &truncErr) {
			assert.Equal(t, len(msg), truncErr.Decoded)
			assert.Equal(t, code.Len()-1, truncErr.Pending)
		}
	})
}
