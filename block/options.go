package block

import "github.com/harshithgowdakt/lz4block/internal/lz4codec"

// CompressorOption configures a Compressor built by NewCompressor.
type CompressorOption func(*compressorConfig)

type compressorConfig struct {
	codec     lz4codec.Compressor
	customEOS bool
}

// WithNullCompressor makes every block fall back to RAW. Useful for tests
// and for measuring the overhead of framing alone.
func WithNullCompressor() CompressorOption {
	return func(c *compressorConfig) { c.codec = lz4codec.NullCompressor{} }
}

// WithFastCompressor selects LZ4's fast compressor. This is the default.
func WithFastCompressor() CompressorOption {
	return func(c *compressorConfig) { c.codec = lz4codec.FastCompressor{} }
}

// WithHighCompressor selects LZ4's high compressor at the given level,
// which must be in [9,17]; out-of-range values are clamped.
func WithHighCompressor(level int) CompressorOption {
	return func(c *compressorConfig) { c.codec = lz4codec.NewHighCompressor(level) }
}

// WithCustomEndOfStream selects the "custom" sentinel mode, which runs an
// empty payload through the normal compress path instead of writing the
// fixed 21-byte constant directly. Both modes produce bit-identical output
// in this implementation (see DESIGN.md).
func WithCustomEndOfStream(custom bool) CompressorOption {
	return func(c *compressorConfig) { c.customEOS = custom }
}

// DecompressorOption configures a Decompressor built by NewDecompressor.
type DecompressorOption func(*decompressorConfig)

type decompressorConfig struct {
	customEOS bool
}

// WithDecoderCustomEndOfStream exists only for symmetry with encoder test
// harnesses: the decoder accepts the sentinel identically either way.
func WithDecoderCustomEndOfStream(custom bool) DecompressorOption {
	return func(c *decompressorConfig) { c.customEOS = custom }
}
