package consts

import (
	"golang.org/x/sys/cpu"
)

// IsLittleEndian reports whether message bytes can be reinterpreted as words
// in place.
var IsLittleEndian = !cpu.IsBigEndian

var IV = [...]uint32{IV0, IV1, IV2, IV3}

const (
	IV0 = 0x67452301
	IV1 = 0xEFCDAB89
	IV2 = 0x98BADCFE
	IV3 = 0x10325476
)

const (
	Size       = 16
	BlockSize  = 64
	BlockWords = 16

	// PadLimit is the tail length at which the length field no longer fits
	// in the final block.
	PadLimit = 56

	MaxPrefix = 1 << 20
)
