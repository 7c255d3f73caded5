package block

import "errors"

// ErrCorrupted is returned (wrapped with context) for any header
// validation failure, checksum mismatch, LZ4 failure, or premature
// upstream end-of-input before the sentinel is seen.
var ErrCorrupted = errors.New("lz4block: stream is corrupted")

// ErrUnexpectedTrailingData is returned when bytes remain, or arrive, after
// the end-of-stream sentinel has already been consumed.
var ErrUnexpectedTrailingData = errors.New("lz4block: unexpected trailing data after end of stream")
