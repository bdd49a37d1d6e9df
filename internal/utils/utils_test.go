package utils

import (
	"testing"
	"unsafe"

	"github.com/zeebo/assert"
	"github.com/zeebo/headsum/internal/consts"
)

func TestBytesToWords(t *testing.T) {
	var bytes [64]uint8
	for i := range bytes {
		bytes[i] = byte(i)
	}

	var words [16]uint32
	BytesToWords(&bytes, &words)

	assert.Equal(t, words[0], uint32(0x03020100))
	assert.Equal(t, words[15], uint32(0x3f3e3d3c))

	if !consts.IsLittleEndian {
		t.SkipNow()
	}
	assert.Equal(t, *(*[16]uint32)(unsafe.Pointer(&bytes[0])), words)
}

func TestStateToBytes(t *testing.T) {
	state := [4]uint32{consts.IV0, consts.IV1, consts.IV2, consts.IV3}

	var out [16]byte
	StateToBytes(&state, &out)

	assert.Equal(t, out, [16]byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
	})
}
