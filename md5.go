package headsum

import (
	"unsafe"

	"github.com/zeebo/headsum/internal/consts"
	"github.com/zeebo/headsum/internal/utils"
)

//
// hasher contains the streaming state for a digest
//

type hasher struct {
	state [4]uint32
	len   uint64
	buf   [consts.BlockSize]byte
}

func newHasher() hasher {
	return hasher{state: consts.IV}
}

func (a *hasher) reset() {
	a.state = consts.IV
	a.len = 0
}

func (a *hasher) update(buf []byte) {
	for len(buf) > 0 {
		n := a.len % consts.BlockSize

		if n == 0 && len(buf) >= consts.BlockSize {
			a.consume((*[consts.BlockSize]byte)(buf[:consts.BlockSize]))
			a.len += consts.BlockSize
			buf = buf[consts.BlockSize:]
			continue
		}

		c := copy(a.buf[n:], buf)
		a.len += uint64(c)
		buf = buf[c:]

		if a.len%consts.BlockSize == 0 {
			a.consume(&a.buf)
		}
	}
}

func (a *hasher) consume(input *[consts.BlockSize]byte) {
	if consts.IsLittleEndian {
		compress(&a.state, (*[consts.BlockWords]uint32)(unsafe.Pointer(input)))
		return
	}

	var block [consts.BlockWords]uint32
	utils.BytesToWords(input, &block)
	compress(&a.state, &block)
}

// finalize writes the digest of everything written so far. It leaves the
// hasher untouched so more data may follow.
func (a *hasher) finalize(out *[consts.Size]byte) {
	tail := a.buf[:a.len%consts.BlockSize]
	state := fold(a.state, padTail(tail, a.len))
	utils.StateToBytes(&state, out)
}
