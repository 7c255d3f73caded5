package stream

import (
	"context"

	"github.com/harshithgowdakt/lz4block/block"
	"github.com/harshithgowdakt/lz4block/internal/frame"
)

// Compressor drives a block.Compressor over channels: it pulls payload
// chunks from in, frames each one, and sends the frame downstream. A
// Compressor is not safe for concurrent use and must not be reused after
// Run returns an error.
type Compressor struct {
	cfg config
	enc *block.Compressor
}

// NewCompressor builds a streaming Compressor. blockOpts configure the
// underlying block.Compressor (compressor kind, sentinel mode); opts
// configure the driver itself (currently just the Inspector).
func NewCompressor(blockOpts []block.CompressorOption, opts ...Option) *Compressor {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Compressor{cfg: cfg, enc: block.NewCompressor(blockOpts...)}
}

// Run pulls chunks from in until it closes, framing each non-empty chunk
// and sending it on out, then emits the sentinel and closes out. It
// returns once out has been closed, either with a Result on success or an
// error (*UpstreamError for ctx cancellation while waiting on in,
// *DownstreamError for ctx cancellation while sending on out).
func (c *Compressor) Run(ctx context.Context, in <-chan []byte, out chan<- block.Frame) (Result, error) {
	defer close(out)

	var res Result
	for {
		var chunk []byte
		var ok bool
		select {
		case <-ctx.Done():
			return res, &UpstreamError{Cause: ctx.Err()}
		case chunk, ok = <-in:
		}
		if !ok {
			break
		}
		if len(chunk) == 0 {
			continue
		}

		f, err := c.enc.Compress(chunk)
		if err != nil {
			return res, err
		}
		if err := c.send(ctx, out, f); err != nil {
			return res, err
		}
		res.BytesIn += len(chunk)
		res.Frames++
		res.BytesOut += len(f)
		c.cfg.notify(statFor(f, len(chunk), false))
	}

	eos := c.enc.EndOfStream()
	if err := c.send(ctx, out, eos); err != nil {
		return res, err
	}
	res.Frames++
	res.BytesOut += len(eos)
	c.cfg.notify(statFor(eos, 0, true))
	return res, nil
}

func (c *Compressor) send(ctx context.Context, out chan<- block.Frame, f block.Frame) error {
	select {
	case <-ctx.Done():
		return &DownstreamError{Cause: ctx.Err()}
	case out <- f:
		return nil
	}
}

func statFor(f block.Frame, payloadLen int, eos bool) block.Stat {
	method, _ := frame.DecodeToken(f[len(frame.Magic)])
	name := "RAW"
	if method == frame.MethodLZ4 {
		name = "LZ4"
	}
	return block.Stat{
		ConsumedBytes: len(f),
		PayloadLen:    payloadLen,
		Method:        name,
		EndOfStream:   eos,
	}
}
