package buf

import (
	"math"
	"testing"
)

func TestReadersLittleEndian(t *testing.T) {
	b := []byte{0x78, 0x56, 0x34, 0x12}
	if got := U32LE(b); got != 0x12345678 {
		t.Fatalf("U32LE = %#x", got)
	}
	if got := U16LE(b); got != 0x5678 {
		t.Fatalf("U16LE = %#x", got)
	}
	if got := I32LE([]byte{0xFF, 0xFF, 0xFF, 0xFF}); got != -1 {
		t.Fatalf("I32LE = %d", got)
	}
}

func TestReadersShortBuffer(t *testing.T) {
	if got := U32LE([]byte{1, 2}); got != 0 {
		t.Fatalf("short U32LE = %#x", got)
	}
	if got := U16LE([]byte{1}); got != 0 {
		t.Fatalf("short U16LE = %#x", got)
	}
}

func TestF32RoundTrip(t *testing.T) {
	b := AppendF32(nil, 3.5)
	if got := F32LE(b); got != 3.5 {
		t.Fatalf("F32LE = %v", got)
	}
	b = AppendF32(nil, float32(math.Inf(1)))
	if got := F32LE(b); !math.IsInf(float64(got), 1) {
		t.Fatalf("F32LE inf = %v", got)
	}
}

func TestAppendPutSymmetry(t *testing.T) {
	b := AppendI32(nil, -42)
	if got := I32LE(b); got != -42 {
		t.Fatalf("I32LE = %d", got)
	}
	PutU32(b, 0, 0xDEADBEEF)
	if got := U32LE(b); got != 0xDEADBEEF {
		t.Fatalf("U32LE after PutU32 = %#x", got)
	}
}
