// Package frame implements the wire-level building blocks of the LZ4 block
// codec: the magic prefix, the header layout, and the token byte that packs
// a compression method together with a ceiled-log2 block size.
package frame

import (
	"encoding/binary"
	"math/bits"
)

// Magic is the 8-byte literal every frame starts with.
var Magic = [8]byte{'L', 'Z', '4', 'B', 'l', 'o', 'c', 'k'}

// HeaderLen is the fixed size of a frame header: magic + token + three
// little-endian uint32 fields.
const HeaderLen = len(Magic) + 1 + 4 + 4 + 4

// Method occupies the high nibble of the token byte.
type Method byte

const (
	MethodRAW Method = 0x10
	MethodLZ4 Method = 0x20
)

// LevelBase is added to the token's level code to recover the effective
// level: effectiveLevel = LevelBase + levelCode.
const LevelBase = 10

// MinBlockSize is the smallest block size used when deriving the effective
// level, regardless of how small the payload actually is.
const MinBlockSize = 64

// Seed is the XXH32 seed used for every frame's checksum.
const Seed uint32 = 0x9747b28c

// Header holds the parsed and validated fields of one frame header.
type Header struct {
	Method        Method
	LevelCode     byte
	CompressedLen int32
	OriginalLen   int32
	Checksum      uint32
	Finished      bool
}

// EffectiveLevel returns LevelBase + LevelCode.
func (h Header) EffectiveLevel() int {
	return LevelBase + int(h.LevelCode)
}

// EncodeToken packs a method and level code into a single byte.
func EncodeToken(m Method, levelCode byte) byte {
	return byte(m) | levelCode
}

// DecodeToken splits a token byte into its method and level code.
func DecodeToken(token byte) (Method, byte) {
	return Method(token & 0xF0), token & 0x0F
}

// CeilLog2 returns the ceiling of log2(x), i.e. the number of bits needed to
// represent x-1. It mirrors Java's `32 - Integer.numberOfLeadingZeros(x-1)`.
func CeilLog2(x int) int {
	if x <= 1 {
		return 0
	}
	return bits.Len32(uint32(x - 1))
}

// LevelCodeForBlockSize computes the token's level code for a block of size
// blockSize: raw = ceilLog2(blockSize) places blockSize in
// (2^(raw-1), 2^raw], and the level code is max(0, raw-LevelBase). The first
// two guards mirror the source's defensive assertions on the pre-offset raw
// value; the last asserts that the level code fits in 4 bits. The value is
// not clamped, and all three guards run only when assertions are enabled.
func LevelCodeForBlockSize(blockSize int) byte {
	raw := CeilLog2(blockSize)
	assertf(1<<uint(raw) >= blockSize, "block size %d exceeds 1<<%d", blockSize, raw)
	assertf(2*blockSize > 1<<uint(raw), "block size %d too small for raw level %d", blockSize, raw)
	level := raw - LevelBase
	if level < 0 {
		level = 0
	}
	assertf(level <= 0x0F, "level code %d exceeds 4 bits", level)
	return byte(level)
}

// PutUint32LE writes v into buf[off:off+4] in little-endian order.
func PutUint32LE(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], v)
}

// Int32LE reads a little-endian 32-bit field as a signed integer, so that a
// set high bit surfaces as a negative value for the caller to reject.
func Int32LE(buf []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(buf[off : off+4]))
}
