package text

import "testing"

func TestFromFlag(t *testing.T) {
	if FromFlag(0) != ShiftJIS {
		t.Fatalf("flag 0 should select Shift-JIS")
	}
	for _, flag := range []uint16{0x0001, 0x0100, 0x0101} {
		if FromFlag(flag) != UTF8 {
			t.Fatalf("flag %#04x should select UTF-8", flag)
		}
	}
}

func TestShiftJISRoundTrip(t *testing.T) {
	const s = "こんにちは、世界"
	raw := ShiftJIS.Encode(s)
	if string(raw) == s {
		t.Fatalf("Shift-JIS encoding should differ from UTF-8 bytes")
	}
	if got := ShiftJIS.Decode(raw); got != s {
		t.Fatalf("round trip = %q", got)
	}
}

func TestUTF8PassThrough(t *testing.T) {
	const s = "hello ワールド"
	if got := UTF8.Decode(UTF8.Encode(s)); got != s {
		t.Fatalf("round trip = %q", got)
	}
}

func TestDecodeInvalidBytesIsLossy(t *testing.T) {
	// 0x80 alone is not a valid Shift-JIS lead/single byte. Decode must
	// produce something rather than fail.
	got := ShiftJIS.Decode([]byte{0x80, 0x41})
	if got == "" {
		t.Fatalf("lossy decode returned empty string")
	}
}

func TestEncodingString(t *testing.T) {
	if ShiftJIS.String() != "Shift_JIS" || UTF8.String() != "UTF-8" {
		t.Fatalf("unexpected names: %s, %s", ShiftJIS, UTF8)
	}
}
