package frame

import "fmt"

// assertionsEnabled gates the defensive checks carried over from the source
// implementation (e.g. the "2*blockSize > 1<<effectiveLevel" guard). They
// document invariants the math already guarantees rather than behavior
// callers should depend on, so they never run in production builds.
var assertionsEnabled = false

func assertf(cond bool, format string, args ...any) {
	if !assertionsEnabled || cond {
		return
	}
	panic(fmt.Sprintf("frame: assertion failed: "+format, args...))
}
