package format

import (
	"encoding/binary"
	"testing"
)

func makeHeaderBytes(entryCount, stOff, stLen, stCount int32, fileLen int) []byte {
	b := make([]byte, fileLen)
	binary.LittleEndian.PutUint32(b[0:], uint32(entryCount))
	binary.LittleEndian.PutUint32(b[4:], uint32(stOff))
	binary.LittleEndian.PutUint32(b[8:], uint32(stLen))
	binary.LittleEndian.PutUint32(b[12:], uint32(stCount))
	return b
}

func TestParseHeader(t *testing.T) {
	b := makeHeaderBytes(3, 0x20, 8, 2, 0x40)
	h, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if h.EntryCount != 3 || h.StringTableOffset != 0x20 || h.StringTableLength != 8 || h.StringTableCount != 2 {
		t.Fatalf("unexpected header: %+v", h)
	}
}

func TestParseHeaderTruncated(t *testing.T) {
	if _, err := ParseHeader(make([]byte, 8)); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestParseHeaderBadStringTable(t *testing.T) {
	// Table extends past end of file.
	if _, err := ParseHeader(makeHeaderBytes(1, 0x20, 0x100, 1, 0x40)); err == nil {
		t.Fatalf("expected out-of-range error")
	}
	// Table starts before the entries region.
	if _, err := ParseHeader(makeHeaderBytes(1, 0x08, 4, 1, 0x40)); err == nil {
		t.Fatalf("expected malformed-offset error")
	}
}

func TestPutHeaderRoundTrip(t *testing.T) {
	b := make([]byte, 0x40)
	want := Header{EntryCount: 7, StringTableOffset: 0x30, StringTableLength: 4, StringTableCount: 1}
	PutHeader(b, want)
	got, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got != want {
		t.Fatalf("round trip: got %+v want %+v", got, want)
	}
}

func TestFooterFlagPosition(t *testing.T) {
	footer := AppendFooter(nil, 0x0100)
	if len(footer) != FooterSize {
		t.Fatalf("footer length = %d", len(footer))
	}
	if footer[0] != 0x01 || footer[1] != 0x74 || footer[2] != 0x32 || footer[3] != 0x62 {
		t.Fatalf("bad magic: % x", footer[:4])
	}
	// Ten content bytes, then 0xFF padding only.
	for i := 10; i < FooterSize; i++ {
		if footer[i] != PadByte {
			t.Fatalf("footer[%d] = %#02x, want 0xFF", i, footer[i])
		}
	}
	// The encoding flag must land 10 bytes before end of file.
	if got := ParseEncodingFlag(footer); got != 0x0100 {
		t.Fatalf("ParseEncodingFlag = %#04x", got)
	}
}

func TestParseEncodingFlagShortFile(t *testing.T) {
	if got := ParseEncodingFlag([]byte{1, 2, 3}); got != 1 {
		t.Fatalf("short file should default to UTF-8 flag, got %#04x", got)
	}
}
