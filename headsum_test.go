package headsum

import (
	"crypto/md5"
	"encoding/hex"
	"math"
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func randomBytes(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(pcg.Uint32())
	}
	return buf
}

func oracleHex(data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:])
}

func TestVectors(t *testing.T) {
	for _, tv := range vectors {
		h := newHasher()
		h.update([]byte(tv.input))

		var out [Size]byte
		h.finalize(&out)
		assert.Equal(t, tv.hash, hex.EncodeToString(out[:]))

		assert.Equal(t, tv.hash, HexSum([]byte(tv.input)))
	}
}

func TestFinalizeRepeatable(t *testing.T) {
	h := newHasher()
	h.update([]byte("abc"))

	var a, b [Size]byte
	h.finalize(&a)
	h.finalize(&b)
	assert.Equal(t, a, b)
}

func TestSines(t *testing.T) {
	for n := range sines {
		exp := uint32(math.Floor(math.Abs(math.Sin(float64(n+1))) * (1 << 32)))
		assert.Equal(t, sines[n], exp)
	}
}

func TestRoundFunctions(t *testing.T) {
	const ones = ^uint32(0)

	for n := 0; n < 1e4; n++ {
		x, y, z := pcg.Uint32(), pcg.Uint32(), pcg.Uint32()

		// f selects y where x is set and z elsewhere
		assert.Equal(t, f(ones, y, z), y)
		assert.Equal(t, f(0, y, z), z)
		assert.Equal(t, f(x, y, y), y)

		// g selects x where z is set and y elsewhere
		assert.Equal(t, g(x, y, ones), x)
		assert.Equal(t, g(x, y, 0), y)
		assert.Equal(t, g(x, x, z), x)

		assert.Equal(t, h(x, y, z), x^y^z)
		assert.Equal(t, h(x, x, z), z)

		assert.Equal(t, i(x, y, ones), x^y)
		assert.Equal(t, i(x, y, 0), ^y)
	}
}

func TestOracle(t *testing.T) {
	for n := 0; n < 2000; n++ {
		data := randomBytes(int(pcg.Uint32() % 4096))

		h := New()
		_, _ = h.Write(data)

		exp := oracleHex(data)
		assert.Equal(t, hex.EncodeToString(h.Sum(nil)), exp)
		assert.Equal(t, HexSum(data), exp)
	}
}

func TestDeterministic(t *testing.T) {
	data := randomBytes(10000)
	first := HexSum(data)
	for n := 0; n < 10; n++ {
		assert.Equal(t, HexSum(data), first)
	}
}
