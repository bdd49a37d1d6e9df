// Package ref is a straightforward implementation of the digest used to
// check the unrolled one. It favors following the definition over speed.
package ref

import (
	"encoding/binary"
	"math"
)

// add is (x + y) mod 2^32 computed without relying on uint32 wraparound.
func add(x, y uint32) uint32 {
	return uint32((uint64(x) + uint64(y)) & 0xffffffff)
}

func rotateLeft(x uint32, n int) uint32 {
	return x<<uint(n) | x>>uint(32-n)
}

func round(r int, x, y, z uint32) uint32 {
	switch r {
	case 0:
		return (x & y) | (^x & z)
	case 1:
		return (x & z) | (y & ^z)
	case 2:
		return x ^ y ^ z
	default:
		return y ^ (x | ^z)
	}
}

func constant(n int) uint32 {
	return uint32(math.Floor(math.Abs(math.Sin(float64(n+1))) * (1 << 32)))
}

// Steps runs the 64 steps of one block starting from state and returns the
// registers before they are added back into the chaining state.
func Steps(state [4]uint32, block *[16]uint32) [4]uint32 {
	a, b, c, d := state[0], state[1], state[2], state[3]

	for r := 0; r < 4; r++ {
		for n := 0; n < 16; n++ {
			t := add(add(a, round(r, b, c, d)), add(block[schedule[r][n]], constant(16*r+n)))
			a, b, c, d = d, add(rotateLeft(t, shifts[r][n%4]), b), b, c
		}
	}

	return [4]uint32{a, b, c, d}
}

// Compress applies one block to state.
func Compress(state *[4]uint32, block *[16]uint32) {
	out := Steps(*state, block)

	state[0] = add(state[0], out[0])
	state[1] = add(state[1], out[1])
	state[2] = add(state[2], out[2])
	state[3] = add(state[3], out[3])
}

// Sum pads data and folds every block through Compress.
func Sum(data []byte) (out [16]byte) {
	msg := append([]byte(nil), data...)
	msg = append(msg, 0x80)
	for len(msg)%64 != 56 {
		msg = append(msg, 0)
	}
	msg = binary.LittleEndian.AppendUint64(msg, uint64(len(data))<<3)

	state := iv
	for len(msg) > 0 {
		var block [16]uint32
		for n := range block {
			block[n] = binary.LittleEndian.Uint32(msg[4*n:])
		}
		Compress(&state, &block)
		msg = msg[64:]
	}

	for n, v := range state {
		binary.LittleEndian.PutUint32(out[4*n:], v)
	}
	return out
}
