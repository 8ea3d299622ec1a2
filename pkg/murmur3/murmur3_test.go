package murmur3

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/spaolacci/murmur3"
	"github.com/stretchr/testify/assert"
)

func TestHello(t *testing.T) {
	assert.Equal(t, uint32(613153351), Sum32([]byte("hello")))
	assert.Equal(t, uint32(613153351), StringSum32WithSeed("hello", 0))
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, uint32(0), Sum32(nil))
	assert.Equal(t, Sum32(nil), Sum32([]byte{}))
	assert.Equal(t, Sum32WithSeed(nil, 1), Sum32WithSeed([]byte{}, 1))
	assert.NotEqual(t, Sum32WithSeed(nil, 0), Sum32WithSeed(nil, 1))
}

func TestDeterministic(t *testing.T) {
	key := []byte("abcdefghijklmnop")
	for seed := uint32(0); seed < 16; seed++ {
		assert.Equal(t, Sum32WithSeed(key, seed), Sum32WithSeed(key, seed))
	}
}

func TestSeedsDiffer(t *testing.T) {
	key := []byte("test")
	seen := make(map[uint32]uint32)
	for seed := uint32(0); seed < 64; seed++ {
		h := Sum32WithSeed(key, seed)
		prev, ok := seen[h]
		assert.False(t, ok, "seed %d collides with seed %d", seed, prev)
		seen[h] = seed
	}
}

func TestTail(t *testing.T) {
	// every tail length, plus the same prefix with a full block
	for _, s := range []string{"a", "ab", "abc", "abcd", "abcde", "abcdef", "abcdefg"} {
		assert.Equal(t, murmur3.Sum32([]byte(s)), Sum32([]byte(s)), s)
	}
}

func TestMatchesReference(t *testing.T) {
	const seed = 0x2c6fe996

	rnd := rand.New(rand.NewSource(seed))
	for length := 0; length <= 67; length++ {
		data := make([]byte, length)
		rnd.Read(data)
		for _, s := range []uint32{0, 1, 7, 0xffffffff, rnd.Uint32()} {
			assert.Equal(t, murmur3.Sum32WithSeed(data, s), Sum32WithSeed(data, s),
				"len=%d seed=%d", length, s)
		}
	}
}

func generate(N int) [][]byte {
	data := make([][]byte, N)
	for i := range data {
		data[i] = []byte(strconv.Itoa(rand.Int()))
	}
	return data
}

func BenchmarkMySum32(b *testing.B) {
	N := 1 << 16
	data := generate(N)
	idx := 0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum32WithSeed(data[idx], uint32(idx))
		idx++
		if idx == N {
			idx = 0
		}
	}
}

func BenchmarkSum32(b *testing.B) {
	N := 1 << 16
	data := generate(N)
	idx := 0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = murmur3.Sum32WithSeed(data[idx], uint32(idx))
		idx++
		if idx == N {
			idx = 0
		}
	}
}
