package queue

import (
	"bytes"
	"testing"
)

func TestPushPeekSkip(t *testing.T) {
	q := New()
	q.Push([]byte("hello"))
	q.Push([]byte("world"))
	if got := q.RemainingBytes(); got != 10 {
		t.Fatalf("RemainingBytes = %d, want 10", got)
	}
	if q.PeekByte(0) != 'h' || q.PeekByte(5) != 'w' || q.PeekByte(9) != 'd' {
		t.Fatalf("PeekByte mismatch")
	}
	q.Skip(3)
	if q.PeekByte(0) != 'l' {
		t.Fatalf("PeekByte(0) after Skip(3) = %q, want 'l'", q.PeekByte(0))
	}
	if got := q.RemainingBytes(); got != 7 {
		t.Fatalf("RemainingBytes after skip = %d, want 7", got)
	}
}

func TestTakeExactAcrossChunks(t *testing.T) {
	q := New()
	for _, b := range [][]byte{{1}, {2, 3}, {4, 5, 6}, {7}} {
		q.Push(b)
	}
	got := q.TakeExact(5)
	want := []byte{1, 2, 3, 4, 5}
	if !bytes.Equal(got, want) {
		t.Fatalf("TakeExact(5) = %v, want %v", got, want)
	}
	if q.RemainingBytes() != 2 {
		t.Fatalf("RemainingBytes = %d, want 2", q.RemainingBytes())
	}
	rest := q.TakeExact(2)
	if !bytes.Equal(rest, []byte{6, 7}) {
		t.Fatalf("TakeExact(2) = %v, want [6 7]", rest)
	}
}

func TestSingleByteChunks(t *testing.T) {
	q := New()
	data := []byte("TestData")
	for _, b := range data {
		q.Push([]byte{b})
	}
	got := q.TakeExact(len(data))
	if !bytes.Equal(got, data) {
		t.Fatalf("TakeExact over single-byte chunks = %q, want %q", got, data)
	}
}

func TestPushEmptyIsNoop(t *testing.T) {
	q := New()
	q.Push(nil)
	q.Push([]byte{})
	if q.RemainingBytes() != 0 {
		t.Fatalf("RemainingBytes = %d, want 0", q.RemainingBytes())
	}
}
