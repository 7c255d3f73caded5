package block

import (
	"fmt"

	"github.com/harshithgowdakt/lz4block/internal/frame"
	"github.com/harshithgowdakt/lz4block/internal/lz4codec"
	"github.com/harshithgowdakt/lz4block/internal/queue"
	"github.com/harshithgowdakt/lz4block/internal/xxh"
)

// Result is what TryDecompress returns. Ready is false when the queue does
// not yet hold a complete frame; callers should feed more bytes and try
// again. EndOfStream is true exactly once per stream, for the sentinel.
type Result struct {
	Payload     []byte
	EndOfStream bool
	Ready       bool
}

// Decompressor consumes frames from a ByteQueue one at a time. A
// Decompressor is not safe for concurrent use and must not be reused after
// an error.
type Decompressor struct {
	cfg      decompressorConfig
	checksum *xxh.Hasher
}

// NewDecompressor builds a Decompressor.
func NewDecompressor(opts ...DecompressorOption) *Decompressor {
	cfg := decompressorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decompressor{cfg: cfg, checksum: xxh.New()}
}

// TryDecompress attempts to consume exactly one frame from q. It either
// succeeds (removing the frame from q and returning a Ready result),
// reports that more bytes are needed (q is left untouched beyond peeks), or
// fails with an error wrapping ErrCorrupted.
func (d *Decompressor) TryDecompress(q *queue.ByteQueue) (Result, error) {
	if q.RemainingBytes() < frame.HeaderLen {
		n := q.RemainingBytes()
		if n > len(frame.Magic) {
			n = len(frame.Magic)
		}
		for i := 0; i < n; i++ {
			if q.PeekByte(i) != frame.Magic[i] {
				return Result{}, corrupted("magic mismatch in partial header")
			}
		}
		return Result{}, nil
	}

	hdr, err := readHeader(q)
	if err != nil {
		return Result{}, err
	}

	if q.RemainingBytes() < frame.HeaderLen+int(hdr.CompressedLen) {
		return Result{}, nil
	}

	q.Skip(frame.HeaderLen)

	if hdr.Finished {
		return Result{EndOfStream: true, Ready: true}, nil
	}

	payload, err := d.decompressBody(q, hdr)
	if err != nil {
		return Result{}, err
	}
	return Result{Payload: payload, Ready: true}, nil
}

func readHeader(q *queue.ByteQueue) (frame.Header, error) {
	for i := 0; i < len(frame.Magic); i++ {
		if q.PeekByte(i) != frame.Magic[i] {
			return frame.Header{}, corrupted("magic mismatch")
		}
	}

	header := make([]byte, frame.HeaderLen)
	for i := range header {
		header[i] = q.PeekByte(i)
	}

	token := header[len(frame.Magic)]
	method, levelCode := frame.DecodeToken(token)
	if method != frame.MethodRAW && method != frame.MethodLZ4 {
		return frame.Header{}, corrupted("unknown compression method 0x%02x", token&0xF0)
	}

	hdr := frame.Header{
		Method:        method,
		LevelCode:     levelCode,
		CompressedLen: frame.Int32LE(header, len(frame.Magic)+1),
		OriginalLen:   frame.Int32LE(header, len(frame.Magic)+5),
		Checksum:      uint32(frame.Int32LE(header, len(frame.Magic)+9)),
	}

	effectiveLevel := hdr.EffectiveLevel()
	switch {
	case hdr.OriginalLen > int32(1<<uint(effectiveLevel)):
		return frame.Header{}, corrupted("original length %d exceeds block size 1<<%d", hdr.OriginalLen, effectiveLevel)
	case hdr.OriginalLen < 0 || hdr.CompressedLen < 0:
		return frame.Header{}, corrupted("negative length in header")
	case hdr.OriginalLen == 0 && hdr.CompressedLen != 0:
		return frame.Header{}, corrupted("original length zero but compressed length %d", hdr.CompressedLen)
	case hdr.OriginalLen != 0 && hdr.CompressedLen == 0:
		return frame.Header{}, corrupted("compressed length zero but original length %d", hdr.OriginalLen)
	case hdr.Method == frame.MethodRAW && hdr.OriginalLen != hdr.CompressedLen:
		return frame.Header{}, corrupted("RAW method with mismatched lengths %d != %d", hdr.OriginalLen, hdr.CompressedLen)
	}

	if hdr.OriginalLen == 0 {
		if hdr.Checksum != 0 {
			return frame.Header{}, corrupted("end-of-stream block with nonzero checksum %d", hdr.Checksum)
		}
		hdr.Finished = true
	}

	return hdr, nil
}

func (d *Decompressor) decompressBody(q *queue.ByteQueue, hdr frame.Header) ([]byte, error) {
	body := q.TakeExact(int(hdr.CompressedLen))
	out := make([]byte, hdr.OriginalLen)

	switch hdr.Method {
	case frame.MethodRAW:
		copy(out, body)
	case frame.MethodLZ4:
		n, err := lz4codec.UncompressBlock(body, out)
		if err != nil {
			return nil, corrupted("lz4 decompress: %v", err)
		}
		if n != len(out) {
			return nil, corrupted("lz4 decompress produced %d bytes, want %d", n, len(out))
		}
	default:
		return nil, corrupted("unknown compression method")
	}

	if got := d.checksum.Sum(out); got != hdr.Checksum {
		return nil, corrupted("checksum mismatch: got %d, want %d", got, hdr.Checksum)
	}
	return out, nil
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCorrupted}, args...)...)
}
