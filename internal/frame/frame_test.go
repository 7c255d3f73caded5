package frame

import "testing"

func TestCeilLog2(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{63, 6},
		{64, 6},
		{65, 7},
		{1024, 10},
		{1025, 11},
	}
	for _, c := range cases {
		if got := CeilLog2(c.in); got != c.want {
			t.Errorf("CeilLog2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLevelCodeForBlockSize(t *testing.T) {
	assertionsEnabled = true
	defer func() { assertionsEnabled = false }()

	cases := []struct {
		blockSize int
		wantCode  byte
	}{
		{64, 0},         // raw level 6, clamped to 0
		{1024, 0},       // raw level 10, code 0
		{2048, 1},       // raw level 11, code 1
		{1 << 20, 10},   // raw level 20, code 10
	}
	for _, c := range cases {
		if code := LevelCodeForBlockSize(c.blockSize); code != c.wantCode {
			t.Errorf("LevelCodeForBlockSize(%d) = %d, want %d", c.blockSize, code, c.wantCode)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, m := range []Method{MethodRAW, MethodLZ4} {
		for code := byte(0); code <= 0x0F; code++ {
			token := EncodeToken(m, code)
			gotM, gotCode := DecodeToken(token)
			if gotM != m || gotCode != code {
				t.Errorf("DecodeToken(EncodeToken(%v, %d)) = (%v, %d)", m, code, gotM, gotCode)
			}
		}
	}
}

func TestInt32LESignedHighBit(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32LE(buf, 0, 0x80000000)
	if v := Int32LE(buf, 0); v >= 0 {
		t.Errorf("Int32LE with high bit set = %d, want negative", v)
	}
}
