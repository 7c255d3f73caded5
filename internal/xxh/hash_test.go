package xxh

import "testing"

func TestSumDeterministic(t *testing.T) {
	h := New()
	a := h.Sum([]byte("TestData"))
	b := h.Sum([]byte("TestData"))
	if a != b {
		t.Fatalf("Sum not deterministic: %d != %d", a, b)
	}
}

func TestSumDiffersOnPayload(t *testing.T) {
	h := New()
	a := h.Sum([]byte("TestData"))
	b := h.Sum([]byte("TestDat4"))
	if a == b {
		t.Fatalf("Sum collided for different payloads")
	}
}

func TestSumEmpty(t *testing.T) {
	h := New()
	if h.Sum(nil) != h.Sum([]byte{}) {
		t.Fatalf("Sum(nil) != Sum(empty slice)")
	}
}
