// Package archive stores Huffman-coded bytes in a self-describing frame.
//
// A frame records the symbol weights the code was built from,
// the exact number of payload bits, and the payload itself:
//
//	magic   "HUFC"
//	version 0x01
//	uvarint k                         number of weights
//	k × {byte symbol, uvarint freq}   in tree insertion order
//	uvarint n                         number of payload bits
//	ceil(n/8) bytes                   payload, most significant bit first
//
// The reader rebuilds the tree from the weights,
// so both ends derive the same code.
// The bit count makes the zero padding in the last byte unambiguous.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/abhinav/huffcode/internal/bitseq"
	"github.com/abhinav/huffcode/internal/huffman"
	"github.com/icza/bitio"
	"go.uber.org/multierr"
)

const (
	_magic   = "HUFC"
	_version = 1

	// Symbols are bytes, so there can't be more weights than this.
	_maxWeights = 256
)

var (
	// ErrBadMagic indicates that the input is not a frame.
	ErrBadMagic = errors.New("archive: not a huffcode frame")

	// ErrCorruptFrame indicates that the frame header is inconsistent.
	ErrCorruptFrame = errors.New("archive: corrupt frame")
)

// VersionError is returned when reading a frame
// written in an unsupported format version.
type VersionError struct {
	Version byte
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("archive: unsupported frame version %d", e.Version)
}

// Frame is the decoded contents of a frame.
type Frame struct {
	// Weights the code was built from, in insertion order.
	Weights []huffman.Weight[byte]

	// Encoded payload.
	Bits bitseq.Bits
}

// WriteFrame writes f to w.
func WriteFrame(w io.Writer, f Frame) (err error) {
	if len(f.Weights) > _maxWeights {
		return fmt.Errorf("archive: %d weights exceeds maximum %d", len(f.Weights), _maxWeights)
	}

	bw := bitio.NewWriter(w)
	defer multierr.AppendInvoke(&err, multierr.Close(bw))

	header := make([]byte, 0, len(_magic)+1+binary.MaxVarintLen64*(2+len(f.Weights)))
	header = append(header, _magic...)
	header = append(header, _version)
	header = binary.AppendUvarint(header, uint64(len(f.Weights)))
	for _, wt := range f.Weights {
		header = append(header, wt.Symbol)
		header = binary.AppendUvarint(header, wt.Freq)
	}
	header = binary.AppendUvarint(header, uint64(f.Bits.Len()))

	if _, err := bw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < f.Bits.Len(); i++ {
		if err := bw.WriteBool(f.Bits.At(i) == 1); err != nil {
			return fmt.Errorf("write payload: %w", err)
		}
	}

	// Close pads the final partial byte with zeros.
	return nil
}

// ReadFrame reads a frame from r.
//
// A payload shorter than the recorded bit count
// is reported as io.ErrUnexpectedEOF.
func ReadFrame(r io.Reader) (Frame, error) {
	br := bitio.NewReader(r)

	magic := make([]byte, len(_magic))
	if _, err := io.ReadFull(br, magic); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Frame{}, ErrBadMagic
		}
		return Frame{}, fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != _magic {
		return Frame{}, ErrBadMagic
	}

	version, err := br.ReadByte()
	if err != nil {
		return Frame{}, fmt.Errorf("read version: %w", unexpectedEOF(err))
	}
	if version != _version {
		return Frame{}, &VersionError{Version: version}
	}

	count, err := binary.ReadUvarint(br)
	if err != nil {
		return Frame{}, fmt.Errorf("read weight count: %w", unexpectedEOF(err))
	}
	if count > _maxWeights {
		return Frame{}, fmt.Errorf("%w: %d weights", ErrCorruptFrame, count)
	}

	var f Frame
	if count > 0 {
		f.Weights = make([]huffman.Weight[byte], count)
	}
	for i := range f.Weights {
		sym, err := br.ReadByte()
		if err != nil {
			return Frame{}, fmt.Errorf("read weight %d: %w", i, unexpectedEOF(err))
		}
		freq, err := binary.ReadUvarint(br)
		if err != nil {
			return Frame{}, fmt.Errorf("read weight %d: %w", i, unexpectedEOF(err))
		}
		f.Weights[i] = huffman.Weight[byte]{Symbol: sym, Freq: freq}
	}

	nbits, err := binary.ReadUvarint(br)
	if err != nil {
		return Frame{}, fmt.Errorf("read bit count: %w", unexpectedEOF(err))
	}
	if count == 0 && nbits > 0 {
		return Frame{}, fmt.Errorf("%w: %d bits without an alphabet", ErrCorruptFrame, nbits)
	}

	for i := uint64(0); i < nbits; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return Frame{}, fmt.Errorf("read payload bit %d of %d: %w", i, nbits, unexpectedEOF(err))
		}
		if bit {
			f.Bits = f.Bits.Append(1)
		} else {
			f.Bits = f.Bits.Append(0)
		}
	}

	return f, nil
}

// unexpectedEOF turns io.EOF into io.ErrUnexpectedEOF.
// Past the magic, running out of input is always a truncated frame.
func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
