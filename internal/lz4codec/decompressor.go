package lz4codec

import "github.com/pierrec/lz4/v4"

// UncompressBlock decompresses src into dst, which must be sized exactly to
// the expected decompressed length. It returns the number of bytes written,
// which must equal len(dst) for a well-formed frame.
func UncompressBlock(src, dst []byte) (int, error) {
	return lz4.UncompressBlock(src, dst)
}
