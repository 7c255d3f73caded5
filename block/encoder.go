package block

import (
	"fmt"

	"github.com/harshithgowdakt/lz4block/internal/frame"
	"github.com/harshithgowdakt/lz4block/internal/lz4codec"
	"github.com/harshithgowdakt/lz4block/internal/xxh"
)

// Frame is one encoded block, exactly as it appears on the wire: header
// followed by payload.
type Frame []byte

// Compressor turns payloads into framed blocks. A Compressor is not safe
// for concurrent use and must not be reused after an error.
type Compressor struct {
	cfg      compressorConfig
	checksum *xxh.Hasher
}

// NewCompressor builds a Compressor. With no options, it uses LZ4's fast
// compressor and the standard end-of-stream sentinel.
func NewCompressor(opts ...CompressorOption) *Compressor {
	cfg := compressorConfig{codec: lz4codec.FastCompressor{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Compressor{cfg: cfg, checksum: xxh.New()}
}

// Compress encodes payload into exactly one Frame. payload must be
// non-empty; use EndOfStream to emit the sentinel.
func (c *Compressor) Compress(payload []byte) (Frame, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("lz4block: Compress requires a non-empty payload")
	}
	return c.doCompress(payload), nil
}

// EndOfStream returns the sentinel frame marking the end of the logical
// stream.
func (c *Compressor) EndOfStream() Frame {
	if c.cfg.customEOS {
		return c.doCompress(nil)
	}

	out := make([]byte, frame.HeaderLen)
	copy(out, frame.Magic[:])
	levelCode := frame.LevelCodeForBlockSize(frame.MinBlockSize)
	out[len(frame.Magic)] = frame.EncodeToken(frame.MethodRAW, levelCode)
	frame.PutUint32LE(out, len(frame.Magic)+1, 0)
	frame.PutUint32LE(out, len(frame.Magic)+5, 0)
	frame.PutUint32LE(out, len(frame.Magic)+9, 0)
	return Frame(out)
}

func (c *Compressor) doCompress(payload []byte) Frame {
	l := len(payload)
	blockSize := l
	if blockSize < frame.MinBlockSize {
		blockSize = frame.MinBlockSize
	}
	levelCode := frame.LevelCodeForBlockSize(blockSize)

	out := make([]byte, frame.HeaderLen+c.cfg.codec.Bound(l))
	copy(out, frame.Magic[:])

	// An empty payload only reaches here via the custom end-of-stream path
	// (Compress rejects empty input). Defining its checksum as 0 rather
	// than XXH32(empty) keeps the custom and standard sentinels
	// bit-identical, which is required for the decoder's checksum==0
	// sentinel check to accept either.
	var checksum uint32
	if l > 0 {
		checksum = c.checksum.Sum(payload)
	}

	compressedLen, err := c.cfg.codec.CompressBlock(payload, out[frame.HeaderLen:])

	method := frame.MethodLZ4
	if err != nil || compressedLen == 0 || compressedLen >= l {
		method = frame.MethodRAW
		compressedLen = l
		copy(out[frame.HeaderLen:], payload)
	}

	out[len(frame.Magic)] = frame.EncodeToken(method, levelCode)
	frame.PutUint32LE(out, len(frame.Magic)+1, uint32(compressedLen))
	frame.PutUint32LE(out, len(frame.Magic)+5, uint32(l))
	frame.PutUint32LE(out, len(frame.Magic)+9, checksum)

	return Frame(out[:frame.HeaderLen+compressedLen])
}
