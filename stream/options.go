package stream

import "github.com/harshithgowdakt/lz4block/block"

// Inspector observes a per-frame snapshot. It is called synchronously on
// the driver's goroutine after each frame is produced or consumed; it must
// not block.
type Inspector func(block.Stat)

// Option configures a Compressor or Decompressor built by New* functions in
// this package.
type Option func(*config)

type config struct {
	inspector Inspector
}

// WithInspector installs a hook that observes every frame a driver
// produces or consumes. Passive only: it cannot alter control flow.
func WithInspector(i Inspector) Option {
	return func(c *config) { c.inspector = i }
}

func (c *config) notify(s block.Stat) {
	if c.inspector != nil {
		c.inspector(s)
	}
}
