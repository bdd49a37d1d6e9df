package headsum

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

func BenchmarkIncremental(b *testing.B) {
	run := func(b *testing.B, size int) {
		h := newHasher()
		var out [Size]byte
		buf := make([]byte, size)
		b.ReportAllocs()
		b.SetBytes(int64(len(buf)))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			h.update(buf)
			h.finalize(&out)
			h.reset()
		}
	}

	for _, n := range []int{
		1, 4, 8, 12, 16,
	} {
		b.Run(fmt.Sprintf("%04d_block", n), func(b *testing.B) { run(b, n*64) })
	}

	for _, n := range []int{
		1, 4, 16, 64, 256, 1024,
	} {
		b.Run(fmt.Sprintf("%04d_kib", n), func(b *testing.B) { run(b, n*1024) })
	}
}

func BenchmarkSum128(b *testing.B) {
	for _, n := range []int{64, 1024, 1 << 20} {
		b.Run(fmt.Sprintf("%07d", n), func(b *testing.B) {
			buf := make([]byte, n)
			b.ReportAllocs()
			b.SetBytes(int64(len(buf)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_ = Sum128(buf)
			}
		})
	}
}

func BenchmarkDigestFirstMebibyte(b *testing.B) {
	buf := make([]byte, 4*MaxPrefix)
	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(MaxPrefix)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := DigestFirstMebibyte(ctx, bytes.NewReader(buf)); err != nil {
			b.Fatal(err)
		}
	}
}
