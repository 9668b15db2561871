package huffman

import (
	"errors"
	"sync"
	"testing"

	"github.com/abhinav/huffcode/internal/bitseq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCode[S comparable](t *testing.T, weights []Weight[S]) (*Tree[S], Table[S]) {
	t.Helper()

	tree, err := Build(weights)
	require.NoError(t, err)
	return tree, BuildTable(tree)
}

var _textbook = []Weight[rune]{
	{'a', 5}, {'b', 9}, {'c', 12}, {'d', 13}, {'e', 16}, {'f', 45},
}

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	tree, tbl := buildCode(t, _textbook)

	tests := []struct {
		give string
		want string
	}{
		{give: "", want: ""},
		{give: "f", want: "0"},
		{give: "face", want: "0" + "1100" + "100" + "111"},
		{give: "bad", want: "1101" + "1100" + "101"},
		{give: "ffff", want: "0000"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			bits, err := Encode([]rune(tt.give), tbl)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bits.String())

			got, err := Decode(bits, tree)
			require.NoError(t, err)
			assert.Equal(t, tt.give, string(got))
		})
	}
}

func TestSingleSymbolCode(t *testing.T) {
	t.Parallel()

	tree, tbl := buildCode(t, []Weight[rune]{{'A', 5}})
	assert.Equal(t, map[rune]string{'A': "0"}, tableStrings(tbl))

	bits, err := Encode([]rune("AA"), tbl)
	require.NoError(t, err)
	assert.Equal(t, "00", bits.String())

	got, err := Decode(bits, tree)
	require.NoError(t, err)
	assert.Equal(t, []rune("AA"), got)

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		got, err := Decode(bitseq.Bits{}, tree)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("one bit", func(t *testing.T) {
		t.Parallel()

		// Never produced by Encode, but there's nothing else it could mean.
		got, err := Decode(bitseq.MustParse("1"), tree)
		require.NoError(t, err)
		assert.Equal(t, []rune("A"), got)
	})
}

func TestEncodeUnknownSymbol(t *testing.T) {
	t.Parallel()

	_, tbl := buildCode(t, []Weight[rune]{{'A', 1}, {'B', 1}})

	_, err := Encode([]rune("AZ"), tbl)
	require.Error(t, err)

	var unkErr *UnknownSymbolError[rune]
	require.True(t, errors.As(err, &unkErr), "want UnknownSymbolError, got %v", err)
	assert.Equal(t, 'Z', unkErr.Symbol)
	assert.Equal(t, 1, unkErr.Index)
	assert.Contains(t, err.Error(), "at index 1")
}

func TestDecodeTruncated(t *testing.T) {
	t.Parallel()

	tree, tbl := buildCode(t, _textbook)

	// "f" followed by all but the last bit of "a".
	codeA := tbl['a'].String()
	bits := bitseq.MustParse(tbl['f'].String() + codeA[:len(codeA)-1])

	got, err := Decode(bits, tree)
	require.Error(t, err)
	assert.Nil(t, got)

	var truncErr *TruncatedStreamError
	require.True(t, errors.As(err, &truncErr), "want TruncatedStreamError, got %v", err)
	assert.Equal(t, &TruncatedStreamError{
		Bits:    4,
		Decoded: 1,
		Pending: 3,
	}, truncErr)
}

func TestDecodeTruncatedPair(t *testing.T) {
	t.Parallel()

	// Every prefix of a two-level code that ends mid-codeword.
	tree, _ := buildCode(t, []Weight[rune]{{'A', 1}, {'B', 1}, {'C', 1}, {'D', 1}})

	for _, give := range []string{"0", "1", "000", "110"} {
		_, err := Decode(bitseq.MustParse(give), tree)

		var truncErr *TruncatedStreamError
		assert.True(t, errors.As(err, &truncErr), "Decode(%q): got %v", give, err)
	}
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	text := []rune("the quick brown fox jumps over the lazy dog")
	tree, tbl := buildCode(t, Count(text))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			bits, err := Encode(text, tbl)
			if !assert.NoError(t, err) {
				return
			}

			got, err := Decode(bits, tree)
			if assert.NoError(t, err) {
				assert.Equal(t, string(text), string(got))
			}
		}()
	}
	wg.Wait()
}
