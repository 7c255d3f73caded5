package stream

import (
	"context"

	"github.com/harshithgowdakt/lz4block/block"
	"github.com/harshithgowdakt/lz4block/internal/frame"
	"github.com/harshithgowdakt/lz4block/internal/queue"
)

// Decompressor drives a block.Decompressor over channels: it accumulates
// incoming byte chunks into a queue, decodes as many complete frames as are
// available after each arrival, and sends each decoded payload downstream.
// A Decompressor is not safe for concurrent use and must not be reused
// after Run returns an error.
type Decompressor struct {
	cfg config
	dec *block.Decompressor
	q   *queue.ByteQueue
}

// NewDecompressor builds a streaming Decompressor.
func NewDecompressor(blockOpts []block.DecompressorOption, opts ...Option) *Decompressor {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decompressor{cfg: cfg, dec: block.NewDecompressor(blockOpts...), q: queue.New()}
}

// Run accumulates chunks from in, decodes frames as they complete, and
// sends each payload on out. It requires the sentinel to be seen with the
// queue empty and in subsequently closed with no further non-empty chunks;
// any deviation is reported as block.ErrUnexpectedTrailingData. If in
// closes before the sentinel is seen, it fails with block.ErrCorrupted.
func (d *Decompressor) Run(ctx context.Context, in <-chan []byte, out chan<- []byte) (Result, error) {
	defer close(out)

	var res Result
	for {
		drained, finished, err := d.drain(ctx, out, &res)
		if err != nil {
			return res, err
		}
		if finished {
			break
		}
		if drained {
			continue
		}

		select {
		case <-ctx.Done():
			return res, &UpstreamError{Cause: ctx.Err()}
		case chunk, ok := <-in:
			if !ok {
				return res, block.ErrCorrupted
			}
			res.BytesIn += len(chunk)
			d.q.Push(chunk)
		}
	}

	if d.q.RemainingBytes() > 0 {
		return res, block.ErrUnexpectedTrailingData
	}

	for {
		select {
		case <-ctx.Done():
			return res, &UpstreamError{Cause: ctx.Err()}
		case chunk, ok := <-in:
			if !ok {
				return res, nil
			}
			if len(chunk) > 0 {
				return res, block.ErrUnexpectedTrailingData
			}
		}
	}
}

// drain consumes as many ready frames as the queue currently holds. It
// returns drained=true if at least one TryDecompress call made progress,
// so the caller knows not to block on in unnecessarily.
func (d *Decompressor) drain(ctx context.Context, out chan<- []byte, res *Result) (drained bool, finished bool, err error) {
	for {
		before := d.q.RemainingBytes()
		var token byte
		if before > len(frame.Magic) {
			token = d.q.PeekByte(len(frame.Magic))
		}
		r, err := d.dec.TryDecompress(d.q)
		if err != nil {
			return drained, false, err
		}
		if !r.Ready {
			return drained, false, nil
		}
		drained = true
		consumed := before - d.q.RemainingBytes()
		method, _ := frame.DecodeToken(token)
		name := "RAW"
		if method == frame.MethodLZ4 {
			name = "LZ4"
		}
		if r.EndOfStream {
			d.cfg.notify(block.Stat{ConsumedBytes: consumed, Method: name, EndOfStream: true})
			return drained, true, nil
		}

		select {
		case <-ctx.Done():
			return drained, false, &DownstreamError{Cause: ctx.Err()}
		case out <- r.Payload:
		}
		res.Frames++
		res.BytesOut += len(r.Payload)
		d.cfg.notify(block.Stat{ConsumedBytes: consumed, PayloadLen: len(r.Payload), Method: name})
	}
}
