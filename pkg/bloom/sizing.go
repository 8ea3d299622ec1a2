package bloom

import "math"

// MaxHashes bounds k. k = ceil(log2(1/p)), which stays below 1075 for every
// positive float64 p.
const MaxHashes = 1 << 11

// EstimateParameters returns the number of bits m and hash rounds k that keep
// the false positive rate near p once n values have been inserted:
//
//	m = ceil(-(n ln p) / (ln 2)^2)
//	k = ceil((m / n) ln 2)
//
// Both are at least 1. The caller is responsible for n > 0 and 0 < p < 1;
// New checks these.
func EstimateParameters(n uint64, p float64) (m, k uint64) {
	ln2 := math.Log(2)
	m = uint64(math.Ceil(-1 * float64(n) * math.Log(p) / math.Pow(ln2, 2)))
	m = max(m, 1)
	k = uint64(math.Ceil(ln2 * float64(m) / float64(n)))
	k = max(k, 1)
	return m, k
}

func checkParameters(n uint64, p float64) error {
	if n == 0 {
		return ErrInvalidInserts
	}
	// !(p > 0) also catches NaN
	if !(p > 0) || p >= 1 {
		return ErrInvalidRate
	}
	return nil
}
