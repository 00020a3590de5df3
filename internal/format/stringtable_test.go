package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/joshuapare/cfgkit/internal/text"
)

func TestReadAtSuffixSharing(t *testing.T) {
	st := NewStringTable([]byte("abcdef\x00"), text.UTF8)

	s, err := readAt(t, st, 0)
	if err != nil || s != "abcdef" {
		t.Fatalf("ReadAt(0) = %q, %v", s, err)
	}
	// An offset landing mid-string reads the suffix of that allocation.
	s, err = readAt(t, st, 2)
	if err != nil || s != "cdef" {
		t.Fatalf("ReadAt(2) = %q, %v", s, err)
	}
}

// readAt unwraps the pointer result for present strings.
func readAt(t *testing.T, st *StringTable, off int32) (string, error) {
	t.Helper()
	p, err := st.ReadAt(off)
	if err != nil {
		return "", err
	}
	if p == nil {
		t.Fatalf("ReadAt(%d) unexpectedly absent", off)
	}
	return *p, nil
}

func TestReadAtAbsent(t *testing.T) {
	st := NewStringTable([]byte("x\x00"), text.UTF8)
	p, err := st.ReadAt(AbsentStringOffset)
	if err != nil || p != nil {
		t.Fatalf("negative offset should be absent: %v, %v", p, err)
	}
}

func TestReadAtOutOfRange(t *testing.T) {
	st := NewStringTable([]byte("x\x00"), text.UTF8)
	if _, err := st.ReadAt(100); !errors.Is(err, ErrBadStringOffset) {
		t.Fatalf("expected ErrBadStringOffset, got %v", err)
	}
	if _, err := st.ReadAt(3); !errors.Is(err, ErrBadStringOffset) {
		t.Fatalf("expected ErrBadStringOffset one past end, got %v", err)
	}
}

func TestReadAtBlobEndIsEmpty(t *testing.T) {
	// The end-of-blob boundary reads as an empty string, one byte further
	// is out of range.
	st := NewStringTable([]byte("x\x00"), text.UTF8)
	s, err := readAt(t, st, 2)
	if err != nil || s != "" {
		t.Fatalf("ReadAt(2) = %q, %v", s, err)
	}
}

func TestReadAtUnterminatedTail(t *testing.T) {
	// No trailing NUL: the scan stops at end of blob.
	st := NewStringTable([]byte("tail"), text.UTF8)
	s, err := readAt(t, st, 0)
	if err != nil || s != "tail" {
		t.Fatalf("ReadAt = %q, %v", s, err)
	}
}

func TestReadAtCachesDistinctOffsets(t *testing.T) {
	st := NewStringTable([]byte("abc\x00"), text.UTF8)
	a, _ := readAt(t, st, 1)
	b, _ := readAt(t, st, 1)
	if a != "bc" || b != "bc" {
		t.Fatalf("cached read mismatch: %q, %q", a, b)
	}
}

func TestEncodeDistinctStrings(t *testing.T) {
	// Two distinct strings get independent allocations even when one is a
	// substring of the other; the encoder never re-creates suffix sharing.
	distinct := []string{"abcdef", "cdef"}
	blob := AppendStringBlob(nil, distinct, text.UTF8)
	if !bytes.Equal(blob, []byte("abcdef\x00cdef\x00")) {
		t.Fatalf("blob = %q", blob)
	}
	offsets := BuildStringOffsets(distinct, text.UTF8)
	if offsets["abcdef"] != 0 || offsets["cdef"] != 7 {
		t.Fatalf("offsets = %v", offsets)
	}
}

func TestBuildStringOffsetsShiftJIS(t *testing.T) {
	// Offsets count encoded bytes, not runes.
	distinct := []string{"あ", "x"}
	offsets := BuildStringOffsets(distinct, text.ShiftJIS)
	if offsets["あ"] != 0 || offsets["x"] != 3 {
		t.Fatalf("offsets = %v", offsets)
	}
}
