// Package queue implements the FIFO byte queue the block decoder reads
// incoming chunks from: non-destructive peek, destructive skip, and
// exact-length take, backed by a list of the chunks as they arrive so no
// copying happens until a frame's body is actually taken.
package queue

// ByteQueue is a FIFO of byte chunks. It is not safe for concurrent use;
// callers serialize access (the decoder, and the driver that owns it).
type ByteQueue struct {
	bufs []([]byte)
	// off is how many bytes of bufs[0] have already been consumed.
	off int
	// size is the total number of unconsumed bytes across all bufs.
	size int
}

// New returns an empty ByteQueue.
func New() *ByteQueue {
	return &ByteQueue{}
}

// Push appends a chunk to the back of the queue. The queue takes ownership
// of buf; callers must not mutate it afterwards.
func (q *ByteQueue) Push(buf []byte) {
	if len(buf) == 0 {
		return
	}
	q.bufs = append(q.bufs, buf)
	q.size += len(buf)
}

// RemainingBytes returns the total number of unconsumed bytes.
func (q *ByteQueue) RemainingBytes() int {
	return q.size
}

// PeekByte returns the byte at offset, counting from the front of the
// queue, without consuming anything. It panics if offset is out of range;
// callers must check RemainingBytes first.
func (q *ByteQueue) PeekByte(offset int) byte {
	if offset < 0 || offset >= q.size {
		panic("queue: PeekByte offset out of range")
	}
	pos := q.off + offset
	for _, b := range q.bufs {
		if pos < len(b) {
			return b[pos]
		}
		pos -= len(b)
	}
	panic("queue: PeekByte offset out of range")
}

// Skip discards n bytes from the front of the queue without copying them.
func (q *ByteQueue) Skip(n int) {
	if n > q.size {
		panic("queue: Skip beyond remaining bytes")
	}
	q.size -= n
	for n > 0 {
		head := q.bufs[0]
		avail := len(head) - q.off
		if n < avail {
			q.off += n
			return
		}
		n -= avail
		q.bufs[0] = nil
		q.bufs = q.bufs[1:]
		q.off = 0
	}
}

// TakeExact removes and returns exactly n bytes from the front of the
// queue as a single owned slice. It panics if fewer than n bytes are
// available; callers must check RemainingBytes first.
func (q *ByteQueue) TakeExact(n int) []byte {
	if n > q.size {
		panic("queue: TakeExact beyond remaining bytes")
	}
	out := make([]byte, n)
	copy(out, q.peekSlice(n))
	q.Skip(n)
	return out
}

// peekSlice copies the first n unconsumed bytes into a freshly allocated
// slice without consuming them. Used internally by TakeExact.
func (q *ByteQueue) peekSlice(n int) []byte {
	out := make([]byte, n)
	pos := q.off
	written := 0
	for _, b := range q.bufs {
		if written >= n {
			break
		}
		if pos >= len(b) {
			pos -= len(b)
			continue
		}
		avail := len(b) - pos
		take := n - written
		if take > avail {
			take = avail
		}
		copy(out[written:written+take], b[pos:pos+take])
		written += take
		pos = 0
	}
	return out
}
