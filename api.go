package headsum

import (
	"encoding/hex"
	"hash"

	"github.com/zeebo/headsum/internal/consts"
	"github.com/zeebo/headsum/internal/utils"
)

// Size is the number of bytes in a digest.
const Size = consts.Size

// BlockSize is the number of bytes consumed by one compression.
const BlockSize = consts.BlockSize

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a hash.Hash for the 128-bit digest.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{h: newHasher()}
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but avoids the caller converting to a byte slice.
func (h *Hasher) WriteString(p string) (int, error) {
	h.h.update([]byte(p))
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same internal state.
//
// Modifying the resulting Hasher will not modify the original Hasher, and vice versa.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	var tmp [Size]byte
	h.h.finalize(&tmp)
	return append(b, tmp[:]...)
}

// Sum128 returns the digest of data. The whole message is expanded into its
// padded word array before compression.
func Sum128(data []byte) (sum [Size]byte) {
	state := digestWords(words(data))
	utils.StateToBytes(&state, &sum)
	return sum
}

// HexSum returns the digest of data as 32 lowercase hex characters.
func HexSum(data []byte) string {
	sum := Sum128(data)
	return hex.EncodeToString(sum[:])
}
