package block

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harshithgowdakt/lz4block/internal/frame"
)

func TestEndOfStreamStandardAndCustomAreIdentical(t *testing.T) {
	standard := NewCompressor().EndOfStream()
	custom := NewCompressor(WithCustomEndOfStream(true)).EndOfStream()
	if !bytes.Equal(standard, custom) {
		t.Fatalf("standard sentinel %x != custom sentinel %x", standard, custom)
	}
	if len(standard) != frame.HeaderLen {
		t.Fatalf("sentinel length = %d, want %d", len(standard), frame.HeaderLen)
	}
}

func TestCompressRejectsEmptyPayload(t *testing.T) {
	_, err := NewCompressor().Compress(nil)
	if err == nil {
		t.Fatalf("Compress(nil) succeeded, want error")
	}
}

func TestCompressRawFallbackForIncompressibleData(t *testing.T) {
	// A short, high-entropy-looking payload won't shrink under LZ4; the
	// encoder must fall back to RAW rather than emit a larger LZ4 block.
	payload := []byte{0x01, 0x9f, 0x7c, 0x3e, 0x88, 0x12, 0xab, 0xcd}
	f, err := NewCompressor().Compress(payload)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	method, _ := frame.DecodeToken(f[len(frame.Magic)])
	if method != frame.MethodRAW {
		t.Fatalf("method = %x, want RAW", method)
	}
}

func TestCompressUsesLZ4ForCompressiblePayload(t *testing.T) {
	payload := []byte(strings.Repeat("abcdefgh", 64))
	f, err := NewCompressor().Compress(payload)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	method, _ := frame.DecodeToken(f[len(frame.Magic)])
	if method != frame.MethodLZ4 {
		t.Fatalf("method = %x, want LZ4 for highly repetitive payload", method)
	}
	if len(f) >= frame.HeaderLen+len(payload) {
		t.Fatalf("LZ4 frame length %d not smaller than RAW would be (%d)", len(f), frame.HeaderLen+len(payload))
	}
}

func TestNullCompressorAlwaysRAW(t *testing.T) {
	payload := []byte(strings.Repeat("x", 200))
	f, err := NewCompressor(WithNullCompressor()).Compress(payload)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	method, _ := frame.DecodeToken(f[len(frame.Magic)])
	if method != frame.MethodRAW {
		t.Fatalf("method = %x, want RAW", method)
	}
	if len(f) != frame.HeaderLen+len(payload) {
		t.Fatalf("frame length = %d, want %d", len(f), frame.HeaderLen+len(payload))
	}
}
