// Package bloom implements a bloom filter over a packed bit array.
//
// The k bit positions of a value are Sum32WithSeed(value, i) mod m for
// i in [0, k). A filter answers "definitely not present" or "maybe present";
// values cannot be removed.
//
// A Filter is not safe for concurrent use. MaybePresent never mutates, so a
// sync.RWMutex around Insert is enough for callers sharing one.
package bloom

import (
	"bloomfilter/pkg/bitarray"
	"bloomfilter/pkg/murmur3"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRate    = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrInvalidInserts = errors.New("bloom: expected inserts must be > 0")
	ErrUninitialized  = errors.New("bloom: filter not initialized")
)

// Filter is created with New or MustNew. The zero value is only a target for
// UnmarshalBinary; inserting into or querying it panics.
type Filter struct {
	bits *bitarray.BitArray

	// 哈希函数个数
	k uint64

	// 位数组长度
	m uint64
}

// New returns a filter sized for n expected inserts at false positive rate p.
func New(n uint64, p float64) (*Filter, error) {
	if err := checkParameters(n, p); err != nil {
		return nil, errors.Wrapf(err, "n=%d p=%v", n, p)
	}
	m, k := EstimateParameters(n, p)
	logrus.Debugf("new bloom filter, n:%d, p:%v -> m:%d, k:%d", n, p, m, k)
	return &Filter{
		bits: bitarray.New(m),
		k:    k,
		m:    m,
	}, nil
}

// MustNew is like New but panics if the parameters are invalid.
func MustNew(n uint64, p float64) *Filter {
	f, err := New(n, p)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Filter) mustInit() {
	if f.bits == nil {
		panic(ErrUninitialized)
	}
}

func (f *Filter) location(value []byte, i uint64) uint64 {
	return uint64(murmur3.Sum32WithSeed(value, uint32(i))) % f.m
}

func (f *Filter) Insert(value []byte) {
	f.mustInit()
	for i := uint64(0); i < f.k; i++ {
		f.bits.Set(f.location(value, i))
	}
}

func (f *Filter) InsertString(value string) {
	f.Insert([]byte(value))
}

// MaybePresent reports false if value was never inserted. A true result may
// be a false positive.
func (f *Filter) MaybePresent(value []byte) bool {
	f.mustInit()
	for i := uint64(0); i < f.k; i++ {
		if !f.bits.IsSet(f.location(value, i)) {
			return false
		}
	}
	return true
}

func (f *Filter) MaybePresentString(value string) bool {
	return f.MaybePresent([]byte(value))
}

// NumBits returns m.
func (f *Filter) NumBits() uint64 {
	return f.m
}

// NumHashes returns k.
func (f *Filter) NumHashes() uint64 {
	return f.k
}

// Bytes returns a copy of the packed bit array.
func (f *Filter) Bytes() []byte {
	return f.bits.Bytes()
}

// FillRatio returns the fraction of bits set. The false positive rate of a
// query is roughly FillRatio()^k.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}
