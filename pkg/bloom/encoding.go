package bloom

import (
	"encoding/binary"
	"fmt"

	"bloomfilter/pkg/bitarray"

	"github.com/pkg/errors"
)

// headerBytes is the encoded size of m and k.
const headerBytes = 16

var ErrInvalidEncoding = errors.New("bloom: invalid encoding")

// MarshalBinary encodes f as
//
//	+----------------+----------------+------------------------+
//	| m (u64 BE)     | k (u64 BE)     | ceil(m/8) packed bytes |
//	+----------------+----------------+------------------------+
func (f *Filter) MarshalBinary() ([]byte, error) {
	raw := f.bits.Bytes()
	buf := make([]byte, headerBytes, headerBytes+len(raw))
	binary.BigEndian.PutUint64(buf[0:8], f.m)
	binary.BigEndian.PutUint64(buf[8:16], f.k)
	return append(buf, raw...), nil
}

// UnmarshalBinary replaces f with the filter encoded in data.
func (f *Filter) UnmarshalBinary(data []byte) error {
	if len(data) < headerBytes {
		return errors.Wrapf(ErrInvalidEncoding, "short header: %d bytes", len(data))
	}
	m := binary.BigEndian.Uint64(data[0:8])
	k := binary.BigEndian.Uint64(data[8:16])
	if m == 0 || k == 0 || k > m || k > MaxHashes {
		return errors.Wrapf(ErrInvalidEncoding, "m=%d k=%d", m, k)
	}
	bits, err := bitarray.FromBytes(m, data[headerBytes:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	f.bits = bits
	f.k = k
	f.m = m
	return nil
}
