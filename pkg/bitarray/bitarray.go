// Package bitarray provides a fixed-size array of bits packed eight to a byte.
//
// Bit i lives in byte i/8 at offset i%8, least significant bit first.
// Addressing a bit outside [0, Len()) panics.
package bitarray

import (
	"math/bits"

	"github.com/pkg/errors"
)

var (
	ErrOutOfRange = errors.New("bitarray: index out of range")
	ErrBadLength  = errors.New("bitarray: raw length does not match size")
	ErrBadPadding = errors.New("bitarray: padding bits set")
)

type BitArray struct {
	bits []byte
	size uint64
}

// byteLen returns ceil(size/8).
func byteLen(size uint64) uint64 {
	return size/8 + min(size%8, 1)
}

// New returns a zeroed array of size bits.
func New(size uint64) *BitArray {
	return &BitArray{
		bits: make([]byte, byteLen(size)),
		size: size,
	}
}

// FromBytes rebuilds an array of size bits over a copy of raw.
// raw must be exactly ceil(size/8) bytes with the unused high bits of the
// last byte cleared.
func FromBytes(size uint64, raw []byte) (*BitArray, error) {
	if uint64(len(raw)) != byteLen(size) {
		return nil, errors.Wrapf(ErrBadLength, "size %d, got %d bytes", size, len(raw))
	}
	if tail := size % 8; tail != 0 && raw[len(raw)-1]>>tail != 0 {
		return nil, ErrBadPadding
	}
	b := New(size)
	copy(b.bits, raw)
	return b, nil
}

// Len returns the number of addressable bits.
func (b *BitArray) Len() uint64 {
	return b.size
}

func (b *BitArray) check(pos uint64) {
	if pos >= b.size {
		panic(errors.Wrapf(ErrOutOfRange, "index %d, size %d", pos, b.size))
	}
}

func (b *BitArray) IsSet(pos uint64) bool {
	b.check(pos)
	return b.bits[pos/8]&(1<<(pos%8)) != 0
}

// Set sets bit pos to 1.
func (b *BitArray) Set(pos uint64) {
	b.check(pos)
	b.bits[pos/8] |= 1 << (pos % 8)
}

// Unset sets bit pos to 0.
func (b *BitArray) Unset(pos uint64) {
	b.check(pos)
	b.bits[pos/8] &^= 1 << (pos % 8)
}

// Flip toggles bit pos.
func (b *BitArray) Flip(pos uint64) {
	b.check(pos)
	b.bits[pos/8] ^= 1 << (pos % 8)
}

// Count returns the number of set bits.
func (b *BitArray) Count() uint64 {
	var n int
	for _, v := range b.bits {
		n += bits.OnesCount8(v)
	}
	return uint64(n)
}

// Bytes returns a copy of the packed buffer. Modifying it does not affect b.
func (b *BitArray) Bytes() []byte {
	out := make([]byte, len(b.bits))
	copy(out, b.bits)
	return out
}
