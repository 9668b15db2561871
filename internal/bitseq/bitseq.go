// Package bitseq provides Bits, an ordered sequence of binary digits.
//
// Bits are packed eight to a byte, most significant bit first.
// The length of a sequence is tracked explicitly,
// so trailing padding in the final byte is never mistaken for data.
package bitseq

import (
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Bits is a sequence of bits.
//
// The zero value is an empty sequence.
// Like slices, values returned by Append and Concat may share storage
// with the receiver; use Clone to get an independent copy.
type Bits struct {
	buf []byte
	n   int
}

// Parse parses a string of '0' and '1' characters.
func Parse(s string) (Bits, error) {
	var b Bits
	for i, c := range s {
		switch c {
		case '0':
			b = b.Append(0)
		case '1':
			b = b.Append(1)
		default:
			return Bits{}, fmt.Errorf("bitseq: invalid character %q at offset %d", c, i)
		}
	}
	return b, nil
}

// MustParse is like Parse but panics if the string is invalid.
func MustParse(s string) Bits {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBytes builds a sequence of n bits from packed bytes.
// buf must hold at least n bits. Bits past n are ignored.
func FromBytes(buf []byte, n int) (Bits, error) {
	if n < 0 {
		return Bits{}, fmt.Errorf("bitseq: negative length %d", n)
	}
	if need := byteLen(n); len(buf) < need {
		return Bits{}, fmt.Errorf("bitseq: %d bits need %d bytes, got %d", n, need, len(buf))
	}

	out := Bits{
		buf: make([]byte, byteLen(n)),
		n:   n,
	}
	copy(out.buf, buf)
	out.clearPadding()
	return out, nil
}

// Len reports the number of bits in the sequence.
func (b Bits) Len() int { return b.n }

// At returns the bit at index i as 0 or 1.
// i must be in [0, Len()).
func (b Bits) At(i int) uint8 {
	assert.Assertf(i >= 0 && i < b.n, "bit index %d out of range [0, %d)", i, b.n)
	return (b.buf[i/8] >> (7 - uint(i%8))) & 1
}

// Append returns the sequence with bit appended.
// Any non-zero bit is treated as 1.
func (b Bits) Append(bit uint8) Bits {
	if b.n%8 == 0 {
		b.buf = append(b.buf[:b.n/8], 0)
	}

	idx, mask := b.n/8, byte(1)<<(7-uint(b.n%8))
	if bit != 0 {
		b.buf[idx] |= mask
	} else {
		b.buf[idx] &^= mask
	}
	b.n++
	return b
}

// Concat returns the sequence with all bits of o appended.
func (b Bits) Concat(o Bits) Bits {
	for i := 0; i < o.n; i++ {
		b = b.Append(o.At(i))
	}
	return b
}

// Clone returns a copy of b that shares no storage with it.
func (b Bits) Clone() Bits {
	if b.n == 0 {
		return Bits{}
	}
	return Bits{buf: b.Bytes(), n: b.n}
}

// Bytes returns the packed representation of the sequence.
// The final byte is zero-padded on the low side.
func (b Bits) Bytes() []byte {
	out := Bits{
		buf: make([]byte, byteLen(b.n)),
		n:   b.n,
	}
	copy(out.buf, b.buf)
	out.clearPadding()
	return out.buf
}

// Equal reports whether b and o hold the same bits.
func (b Bits) Equal(o Bits) bool {
	if b.n != o.n {
		return false
	}
	for i := 0; i < b.n; i++ {
		if b.At(i) != o.At(i) {
			return false
		}
	}
	return true
}

// HasPrefix reports whether b begins with the bits of p.
func (b Bits) HasPrefix(p Bits) bool {
	if p.n > b.n {
		return false
	}
	for i := 0; i < p.n; i++ {
		if b.At(i) != p.At(i) {
			return false
		}
	}
	return true
}

// String returns the bits as a string of '0' and '1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

var _ fmt.Stringer = Bits{}

// clearPadding zeroes the unused low bits of the last byte.
func (b *Bits) clearPadding() {
	if r := b.n % 8; r != 0 {
		b.buf[len(b.buf)-1] &= 0xff << (8 - uint(r))
	}
}

func byteLen(n int) int {
	return (n + 7) / 8
}
