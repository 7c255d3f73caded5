package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/harshithgowdakt/lz4block/block"
	"github.com/harshithgowdakt/lz4block/stream"
)

const readChunkSize = 64 * 1024

var CLI struct {
	Compress   CompressCmd   `cmd:"" help:"Compress a file or stdin into a framed block stream."`
	Decompress DecompressCmd `cmd:"" help:"Decompress a framed block stream from a file or stdin."`
	Verbose    bool          `short:"v" help:"Enable debug logging."`
}

type CompressCmd struct {
	Input  string `arg:"" optional:"" help:"Input file path. Defaults to stdin."`
	Output string `short:"o" help:"Output file path. Defaults to stdout."`
	Level  int    `short:"l" default:"0" help:"LZ4 high-compression level in [9,17]. 0 selects the fast compressor."`
	Stats  bool   `help:"Print a JSON frame summary to stderr on completion."`
}

type DecompressCmd struct {
	Input  string `arg:"" optional:"" help:"Input file path. Defaults to stdin."`
	Output string `short:"o" help:"Output file path. Defaults to stdout."`
	Stats  bool   `help:"Print a JSON frame summary to stderr on completion."`
}

// summary accumulates per-frame Inspector observations for the -stats flag.
type summary struct {
	Frames        int `json:"frames"`
	RawFrames     int `json:"raw_frames"`
	LZ4Frames     int `json:"lz4_frames"`
	PayloadBytes  int `json:"payload_bytes"`
	ConsumedBytes int `json:"consumed_bytes"`
}

func (s *summary) observe(stat block.Stat) {
	if stat.EndOfStream {
		return
	}
	s.Frames++
	s.PayloadBytes += stat.PayloadLen
	s.ConsumedBytes += stat.ConsumedBytes
	switch stat.Method {
	case "RAW":
		s.RawFrames++
	case "LZ4":
		s.LZ4Frames++
	}
}

func main() {
	ctx := kong.Parse(&CLI)

	lvl := slog.LevelInfo
	if CLI.Verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	var err error
	switch ctx.Command() {
	case "compress", "compress <input>":
		err = runCompress(logger, CLI.Compress)
	case "decompress", "decompress <input>":
		err = runDecompress(logger, CLI.Decompress)
	default:
		ctx.PrintUsage(true)
		os.Exit(1)
	}
	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating output")
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func runCompress(logger *slog.Logger, cmd CompressCmd) error {
	in, err := openInput(cmd.Input)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	var blockOpts []block.CompressorOption
	if cmd.Level > 0 {
		blockOpts = append(blockOpts, block.WithHighCompressor(cmd.Level))
	}

	var sum summary
	var opts []stream.Option
	if cmd.Stats {
		opts = append(opts, stream.WithInspector(sum.observe))
	}
	drv := stream.NewCompressor(blockOpts, opts...)

	ctx := context.Background()
	chunks := make(chan []byte)
	frames := make(chan block.Frame)

	go pump(logger, in, chunks)
	writeErrCh := make(chan error, 1)
	go func() {
		writeErrCh <- writeFrames(out, frames)
	}()

	res, err := drv.Run(ctx, chunks, frames)
	if writeErr := <-writeErrCh; writeErr != nil && err == nil {
		err = errors.Wrap(writeErr, "writing compressed output")
	}
	if err != nil {
		return err
	}

	logger.Debug("compression finished", "bytes_in", res.BytesIn, "frames", res.Frames, "bytes_out", res.BytesOut)
	if cmd.Stats {
		return emitStats(sum)
	}
	return nil
}

func runDecompress(logger *slog.Logger, cmd DecompressCmd) error {
	in, err := openInput(cmd.Input)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := openOutput(cmd.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	var sum summary
	var opts []stream.Option
	if cmd.Stats {
		opts = append(opts, stream.WithInspector(sum.observe))
	}
	drv := stream.NewDecompressor(nil, opts...)

	ctx := context.Background()
	chunks := make(chan []byte)
	payloads := make(chan []byte)

	go pump(logger, in, chunks)
	writeErrCh := make(chan error, 1)
	go func() {
		writeErrCh <- writePayloads(out, payloads)
	}()

	res, err := drv.Run(ctx, chunks, payloads)
	if writeErr := <-writeErrCh; writeErr != nil && err == nil {
		err = errors.Wrap(writeErr, "writing decompressed output")
	}
	if err != nil {
		return err
	}

	logger.Debug("decompression finished", "bytes_in", res.BytesIn, "frames", res.Frames, "bytes_out", res.BytesOut)
	if cmd.Stats {
		return emitStats(sum)
	}
	return nil
}

// pump reads fixed-size chunks from r and sends them on out, closing out on
// EOF or error. A read error other than io.EOF is logged; the driver sees
// it as a truncated stream via the closed channel.
func pump(logger *slog.Logger, r io.Reader, out chan<- []byte) {
	defer close(out)
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			out <- chunk
		}
		if err != nil {
			if err != io.EOF {
				logger.Error("read failed", "error", err)
			}
			return
		}
	}
}

func writeFrames(w io.Writer, frames <-chan block.Frame) error {
	for f := range frames {
		if _, err := w.Write(f); err != nil {
			return err
		}
	}
	return nil
}

func writePayloads(w io.Writer, payloads <-chan []byte) error {
	for p := range payloads {
		if _, err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

func emitStats(sum summary) error {
	enc := json.NewEncoder(os.Stderr)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sum); err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	return nil
}
