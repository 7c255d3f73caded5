// Package xxh wraps the seeded streaming XXH32 hash used for per-frame
// checksums.
package xxh

import (
	"hash"

	"github.com/OneOfOne/xxhash"

	"github.com/harshithgowdakt/lz4block/internal/frame"
)

// Hasher is an instance-owned, seeded XXH32 streaming hash. It is reset
// before each frame rather than reallocated, matching the source's reuse of
// a single StreamingXXHash32 per compressor/decompressor.
type Hasher struct {
	h hash.Hash32
}

// New creates a Hasher seeded with frame.Seed.
func New() *Hasher {
	return &Hasher{h: xxhash.NewS32(frame.Seed)}
}

// Sum computes the checksum of buf, resetting the underlying hash first.
func (x *Hasher) Sum(buf []byte) uint32 {
	x.h.Reset()
	// xxhash.Hash32.Write never returns an error.
	_, _ = x.h.Write(buf)
	return x.h.Sum32()
}
