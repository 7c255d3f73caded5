// Package lz4codec adapts github.com/pierrec/lz4/v4's block API to the
// three compressor kinds the block codec is configured with: a null
// compressor that always stores raw, a fast compressor, and a high
// compressor parameterized by a level.
package lz4codec

import "github.com/pierrec/lz4/v4"

// Compressor compresses one block's worth of payload into a separate
// destination buffer.
type Compressor interface {
	// Bound returns the maximum number of bytes CompressBlock may write for
	// a source of length n.
	Bound(n int) int

	// CompressBlock compresses src into dst, returning the number of bytes
	// written. A return of 0 means the compressor declines (e.g. because
	// dst is too small, or the data would not shrink); callers treat that
	// the same as "compressed length >= original length".
	CompressBlock(src, dst []byte) (int, error)
}

// NullCompressor never compresses; every block falls back to RAW.
type NullCompressor struct{}

func (NullCompressor) Bound(n int) int { return n }

func (NullCompressor) CompressBlock(src, dst []byte) (int, error) {
	return 0, nil
}

// FastCompressor wraps lz4.CompressBlock's default (fast) mode.
type FastCompressor struct{}

func (FastCompressor) Bound(n int) int { return lz4.CompressBlockBound(n) }

func (FastCompressor) CompressBlock(src, dst []byte) (int, error) {
	return lz4.CompressBlock(src, dst, nil)
}

// HighCompressor wraps lz4.CompressorHC at a fixed level.
type HighCompressor struct {
	c lz4.CompressorHC
}

// NewHighCompressor builds a HighCompressor for level, which is the
// external API's [9,17] range, clamped and shifted into pierrec's
// CompressionLevel scale (roughly 1-9). The wire format never reflects the
// compressor's internal level, only the block-size-derived one, so this
// mapping affects ratio/CPU only.
func NewHighCompressor(level int) HighCompressor {
	mapped := level - 8
	if mapped < 1 {
		mapped = 1
	}
	if mapped > 9 {
		mapped = 9
	}
	return HighCompressor{c: lz4.CompressorHC{Level: lz4.CompressionLevel(mapped)}}
}

func (h HighCompressor) Bound(n int) int { return lz4.CompressBlockBound(n) }

func (h HighCompressor) CompressBlock(src, dst []byte) (int, error) {
	return h.c.CompressBlock(src, dst)
}
