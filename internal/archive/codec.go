package archive

import (
	"fmt"
	"io"

	"github.com/abhinav/huffcode/internal/huffman"
)

// Stats describes a compressed payload.
type Stats struct {
	Symbols  int // number of bytes in the uncompressed data
	Alphabet int // number of distinct bytes
	Bits     int // number of payload bits
}

// Compress builds a Huffman code for data and writes the encoded frame to w.
//
// Empty data is written as a frame with no weights and no payload.
func Compress(w io.Writer, data []byte) (Stats, error) {
	weights := huffman.Count(data)
	if len(weights) == 0 {
		return Stats{}, WriteFrame(w, Frame{})
	}

	tree, err := huffman.Build(weights)
	if err != nil {
		return Stats{}, fmt.Errorf("build code: %w", err)
	}

	bits, err := huffman.Encode(data, huffman.BuildTable(tree))
	if err != nil {
		return Stats{}, fmt.Errorf("encode: %w", err)
	}

	if err := WriteFrame(w, Frame{Weights: weights, Bits: bits}); err != nil {
		return Stats{}, err
	}

	return Stats{
		Symbols:  len(data),
		Alphabet: len(weights),
		Bits:     bits.Len(),
	}, nil
}

// Decompress reads a frame written by Compress and returns the original data.
func Decompress(r io.Reader) ([]byte, Stats, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, Stats{}, err
	}

	if len(f.Weights) == 0 {
		return []byte{}, Stats{}, nil
	}

	tree, err := huffman.Build(f.Weights)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("rebuild code: %w", err)
	}

	data, err := huffman.Decode(f.Bits, tree)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("decode: %w", err)
	}

	return data, Stats{
		Symbols:  len(data),
		Alphabet: len(f.Weights),
		Bits:     f.Bits.Len(),
	}, nil
}
