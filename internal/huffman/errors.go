package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyAlphabet is returned by Build when it's given no weights.
var ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

// DuplicateSymbolError is returned by Build
// when the same symbol is listed more than once.
type DuplicateSymbolError[S comparable] struct {
	Symbol S
}

func (e *DuplicateSymbolError[S]) Error() string {
	return fmt.Sprintf("huffman: duplicate symbol %v", e.Symbol)
}

// UnknownSymbolError is returned by Encode
// when asked to encode a symbol that isn't in the code table.
type UnknownSymbolError[S comparable] struct {
	Symbol S

	// Position of the symbol in the input.
	Index int
}

func (e *UnknownSymbolError[S]) Error() string {
	return fmt.Sprintf("huffman: unknown symbol %v at index %d", e.Symbol, e.Index)
}

// TruncatedStreamError is returned by Decode
// when the input ends partway through a codeword.
type TruncatedStreamError struct {
	// Total number of bits in the input.
	Bits int

	// Number of symbols decoded before the truncated codeword.
	Decoded int

	// Number of bits of the truncated codeword that were consumed.
	Pending int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("huffman: stream of %d bits ends %d bits into codeword %d",
		e.Bits, e.Pending, e.Decoded)
}
