package headsum

import (
	"encoding/binary"

	"github.com/zeebo/headsum/internal/consts"
	"github.com/zeebo/headsum/internal/utils"
)

// words builds the padded word array for buf. The result is always a whole
// number of blocks.
func words(buf []byte) []uint32 {
	full := len(buf) / consts.BlockSize * consts.BlockSize
	w := make([]uint32, full/4, full/4+2*consts.BlockWords)

	for off := 0; off < full; off += consts.BlockSize {
		utils.BytesToWords(
			(*[consts.BlockSize]byte)(buf[off:off+consts.BlockSize]),
			(*[consts.BlockWords]uint32)(w[off/4:off/4+consts.BlockWords]),
		)
	}

	return append(w, padTail(buf[full:], uint64(len(buf)))...)
}

// padTail pads the final partial block of a message that is total bytes long.
// len(tail) must be less than a block. A tail of PadLimit bytes or more spills
// into a second block.
func padTail(tail []byte, total uint64) []uint32 {
	var buf [2 * consts.BlockSize]byte

	n := copy(buf[:], tail)
	buf[n] = 0x80

	end := consts.BlockSize
	if n >= consts.PadLimit {
		end = 2 * consts.BlockSize
	}
	binary.LittleEndian.PutUint64(buf[end-8:end], total<<3)

	w := make([]uint32, end/4)
	for off := 0; off < end; off += consts.BlockSize {
		utils.BytesToWords(
			(*[consts.BlockSize]byte)(buf[off:off+consts.BlockSize]),
			(*[consts.BlockWords]uint32)(w[off/4:off/4+consts.BlockWords]),
		)
	}
	return w
}

// fold runs compress over each block of w in order, starting from state.
func fold(state [4]uint32, w []uint32) [4]uint32 {
	for len(w) >= consts.BlockWords {
		compress(&state, (*[consts.BlockWords]uint32)(w[:consts.BlockWords]))
		w = w[consts.BlockWords:]
	}
	return state
}

func digestWords(w []uint32) [4]uint32 {
	return fold(consts.IV, w)
}
