package format

import (
	"fmt"

	"github.com/joshuapare/cfgkit/internal/buf"
)

// Header captures the 16-byte file header.
//
//	Offset  Size  Description
//	------  ----  -------------------------------------------------------
//	0x00    4     Total record count (terminators included)
//	0x04    4     File offset of the string table
//	0x08    4     String table length in bytes (unpadded)
//	0x0C    4     Count of distinct strings (informational/legacy)
type Header struct {
	EntryCount        int32
	StringTableOffset int32
	StringTableLength int32
	StringTableCount  int32
}

// ParseHeader validates the header fields against the file length. The
// string table must start at or after the entries region and end inside
// the file.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", ErrTruncated)
	}
	h := Header{
		EntryCount:        buf.I32LE(b[0:]),
		StringTableOffset: buf.I32LE(b[4:]),
		StringTableLength: buf.I32LE(b[8:]),
		StringTableCount:  buf.I32LE(b[12:]),
	}
	if h.EntryCount < 0 {
		return Header{}, fmt.Errorf("header: negative entry count %d: %w", h.EntryCount, ErrMalformedHeader)
	}
	if h.StringTableOffset < EntriesBase || h.StringTableLength < 0 {
		return Header{}, fmt.Errorf("header: string table %d+%d: %w",
			h.StringTableOffset, h.StringTableLength, ErrMalformedHeader)
	}
	if _, err := buf.CheckRange(len(b), int(h.StringTableOffset), int(h.StringTableLength)); err != nil {
		return Header{}, fmt.Errorf("header: string table: %v: %w", err, ErrMalformedHeader)
	}
	return h, nil
}

// PutHeader writes h into the first 16 bytes of b.
func PutHeader(b []byte, h Header) {
	buf.PutI32(b, 0, h.EntryCount)
	buf.PutI32(b, 4, h.StringTableOffset)
	buf.PutI32(b, 8, h.StringTableLength)
	buf.PutI32(b, 12, h.StringTableCount)
}

// ParseEncodingFlag reads the 16-bit encoding flag stored 10 bytes before
// the end of the file. Files too short to carry a footer default to the
// UTF-8 flag.
func ParseEncodingFlag(b []byte) uint16 {
	if len(b) < EncodingFlagTailOffset {
		return 1
	}
	return buf.U16LE(b[len(b)-EncodingFlagTailOffset:])
}

// AppendFooter appends the footer block: magic, the 0x01FE marker, the raw
// encoding flag, the constant u16 1, then 0xFF padding to the section
// boundary.
func AppendFooter(dst []byte, encodingFlag uint16) []byte {
	dst = append(dst, FooterMagic...)
	dst = buf.AppendU16(dst, FooterMarker)
	dst = buf.AppendU16(dst, encodingFlag)
	dst = buf.AppendU16(dst, 1)
	return Pad(dst, SectionAlignment, PadByte)
}
