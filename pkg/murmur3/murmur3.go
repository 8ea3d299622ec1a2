// Package murmur3 implements the 32-bit x86 variant of MurmurHash3.
//
// Varying the seed gives a family of hash functions that behave independently
// enough for a bloom filter to derive its k bit positions from one algorithm.
package murmur3

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1 uint32 = 0xcc9e2d51
	c2 uint32 = 0x1b873593
	r1        = 15
	r2        = 13
	m  uint32 = 5
	n  uint32 = 0xe6546b64

	blockSize = 4
)

// Sum32 hashes data with seed 0.
func Sum32(data []byte) uint32 {
	return Sum32WithSeed(data, 0)
}

// StringSum32WithSeed is Sum32WithSeed for a string key.
func StringSum32WithSeed(s string, seed uint32) uint32 {
	return Sum32WithSeed([]byte(s), seed)
}

// Sum32WithSeed returns the MurmurHash3_x86_32 of data.
func Sum32WithSeed(data []byte, seed uint32) uint32 {
	h := seed
	length := uint32(len(data))

	p := data
	for len(p) >= blockSize {
		h ^= mixK(binary.LittleEndian.Uint32(p))
		h = bits.RotateLeft32(h, r2)
		h = h*m + n
		p = p[blockSize:]
	}

	// the tail is folded in without the rotate/multiply/add step
	var k uint32
	switch len(p) {
	case 3:
		k ^= uint32(p[2]) << 16
		fallthrough
	case 2:
		k ^= uint32(p[1]) << 8
		fallthrough
	case 1:
		k ^= uint32(p[0])
		h ^= mixK(k)
	}

	h ^= length
	return fmix(h)
}

func mixK(k uint32) uint32 {
	k *= c1
	k = bits.RotateLeft32(k, r1)
	k *= c2
	return k
}

// fmix forces all bits of h to avalanche.
func fmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
