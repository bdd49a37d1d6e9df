package headsum

import (
	"math/bits"
)

func f(x, y, z uint32) uint32 { return x&y | ^x&z }
func g(x, y, z uint32) uint32 { return x&z | y&^z }
func h(x, y, z uint32) uint32 { return x ^ y ^ z }
func i(x, y, z uint32) uint32 { return y ^ (x | ^z) }

// Each step returns the new value of a. uint32 addition wraps mod 2^32.

func ff(a, b, c, d, x, t uint32, s int) uint32 {
	return bits.RotateLeft32(a+f(b, c, d)+x+t, s) + b
}

func gg(a, b, c, d, x, t uint32, s int) uint32 {
	return bits.RotateLeft32(a+g(b, c, d)+x+t, s) + b
}

func hh(a, b, c, d, x, t uint32, s int) uint32 {
	return bits.RotateLeft32(a+h(b, c, d)+x+t, s) + b
}

func ii(a, b, c, d, x, t uint32, s int) uint32 {
	return bits.RotateLeft32(a+i(b, c, d)+x+t, s) + b
}

// compress runs the 64 steps over one block and adds the result back into
// the chaining state.
func compress(s *[4]uint32, m *[16]uint32) {
	a, b, c, d := s[0], s[1], s[2], s[3]

	a = ff(a, b, c, d, m[0], sines[0], s11)
	d = ff(d, a, b, c, m[1], sines[1], s12)
	c = ff(c, d, a, b, m[2], sines[2], s13)
	b = ff(b, c, d, a, m[3], sines[3], s14)
	a = ff(a, b, c, d, m[4], sines[4], s11)
	d = ff(d, a, b, c, m[5], sines[5], s12)
	c = ff(c, d, a, b, m[6], sines[6], s13)
	b = ff(b, c, d, a, m[7], sines[7], s14)
	a = ff(a, b, c, d, m[8], sines[8], s11)
	d = ff(d, a, b, c, m[9], sines[9], s12)
	c = ff(c, d, a, b, m[10], sines[10], s13)
	b = ff(b, c, d, a, m[11], sines[11], s14)
	a = ff(a, b, c, d, m[12], sines[12], s11)
	d = ff(d, a, b, c, m[13], sines[13], s12)
	c = ff(c, d, a, b, m[14], sines[14], s13)
	b = ff(b, c, d, a, m[15], sines[15], s14)

	a = gg(a, b, c, d, m[1], sines[16], s21)
	d = gg(d, a, b, c, m[6], sines[17], s22)
	c = gg(c, d, a, b, m[11], sines[18], s23)
	b = gg(b, c, d, a, m[0], sines[19], s24)
	a = gg(a, b, c, d, m[5], sines[20], s21)
	d = gg(d, a, b, c, m[10], sines[21], s22)
	c = gg(c, d, a, b, m[15], sines[22], s23)
	b = gg(b, c, d, a, m[4], sines[23], s24)
	a = gg(a, b, c, d, m[9], sines[24], s21)
	d = gg(d, a, b, c, m[14], sines[25], s22)
	c = gg(c, d, a, b, m[3], sines[26], s23)
	b = gg(b, c, d, a, m[8], sines[27], s24)
	a = gg(a, b, c, d, m[13], sines[28], s21)
	d = gg(d, a, b, c, m[2], sines[29], s22)
	c = gg(c, d, a, b, m[7], sines[30], s23)
	b = gg(b, c, d, a, m[12], sines[31], s24)

	a = hh(a, b, c, d, m[5], sines[32], s31)
	d = hh(d, a, b, c, m[8], sines[33], s32)
	c = hh(c, d, a, b, m[11], sines[34], s33)
	b = hh(b, c, d, a, m[14], sines[35], s34)
	a = hh(a, b, c, d, m[1], sines[36], s31)
	d = hh(d, a, b, c, m[4], sines[37], s32)
	c = hh(c, d, a, b, m[7], sines[38], s33)
	b = hh(b, c, d, a, m[10], sines[39], s34)
	a = hh(a, b, c, d, m[13], sines[40], s31)
	d = hh(d, a, b, c, m[0], sines[41], s32)
	c = hh(c, d, a, b, m[3], sines[42], s33)
	b = hh(b, c, d, a, m[6], sines[43], s34)
	a = hh(a, b, c, d, m[9], sines[44], s31)
	d = hh(d, a, b, c, m[12], sines[45], s32)
	c = hh(c, d, a, b, m[15], sines[46], s33)
	b = hh(b, c, d, a, m[2], sines[47], s34)

	a = ii(a, b, c, d, m[0], sines[48], s41)
	d = ii(d, a, b, c, m[7], sines[49], s42)
	c = ii(c, d, a, b, m[14], sines[50], s43)
	b = ii(b, c, d, a, m[5], sines[51], s44)
	a = ii(a, b, c, d, m[12], sines[52], s41)
	d = ii(d, a, b, c, m[3], sines[53], s42)
	c = ii(c, d, a, b, m[10], sines[54], s43)
	b = ii(b, c, d, a, m[1], sines[55], s44)
	a = ii(a, b, c, d, m[8], sines[56], s41)
	d = ii(d, a, b, c, m[15], sines[57], s42)
	c = ii(c, d, a, b, m[6], sines[58], s43)
	b = ii(b, c, d, a, m[13], sines[59], s44)
	a = ii(a, b, c, d, m[4], sines[60], s41)
	d = ii(d, a, b, c, m[11], sines[61], s42)
	c = ii(c, d, a, b, m[2], sines[62], s43)
	b = ii(b, c, d, a, m[9], sines[63], s44)

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
}
