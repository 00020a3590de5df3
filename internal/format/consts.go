// Package format houses low-level decoders and encoders for the cfg.bin
// container format. The goal is to keep the parsing focused and independent
// from the public API so higher-level packages can orchestrate the data in
// a more ergonomic form.
//
// A cfg.bin file is laid out as (little-endian throughout):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	0x00    16    Header: entryCount, stringTableOffset,
//	              stringTableLength, stringTableCount (all i32)
//	0x10    ...   Entries region: flat record stream up to stringTableOffset
//	...     ...   String table: NUL-terminated text payloads
//	...     ...   Key table at Align16(stringTableOffset+stringTableLength)
//	end-16  16    Footer: magic 01 74 32 62, u16 0x01FE, u16 encoding flag,
//	              u16 1, then 0xFF padding
package format

var (
	// FooterMagic is the four-byte signature at the start of the footer.
	FooterMagic = []byte{0x01, 0x74, 0x32, 0x62}
)

const (
	// HeaderSize is the size of the file header in bytes.
	HeaderSize = 16

	// EntriesBase is the file offset where the flat record stream begins.
	EntriesBase = 0x10

	// KeyHeaderSize is the size of the key table section header.
	KeyHeaderSize = 16

	// KeyEntrySize is the size of one key table entry (crc32 + blob offset).
	KeyEntrySize = 8

	// FooterSize is the size of the padded footer block.
	FooterSize = 16

	// FooterMarker is the 16-bit constant following the footer magic.
	FooterMarker uint16 = 0x01FE

	// EncodingFlagTailOffset locates the 16-bit encoding flag, counted back
	// from the end of the file.
	EncodingFlagTailOffset = 10

	// PadByte fills alignment gaps between sections and inside type bitmaps.
	PadByte = 0xFF

	// SectionAlignment is the boundary every section is padded to.
	SectionAlignment = 16

	// RecordAlignment is the boundary record payloads are aligned to.
	RecordAlignment = 4

	// AbsentStringOffset is the sentinel written for a String parameter
	// with no text payload.
	AbsentStringOffset int32 = -1
)

// TypeTag is the 2-bit parameter type stored in a record's type bitmap.
type TypeTag uint8

const (
	// TagString marks a parameter holding a string-table offset.
	TagString TypeTag = 0
	// TagInt marks a signed 32-bit integer parameter.
	TagInt TypeTag = 1
	// TagFloat marks a 32-bit IEEE-754 parameter.
	TagFloat TypeTag = 2
	// TagUnknown marks an unrecognized tag; the payload round-trips as an
	// opaque 32-bit value.
	TagUnknown TypeTag = 3
)

// TerminatorPayload is the fixed tail of a scope terminator record: a zero
// parameter count followed by bitmap padding.
var TerminatorPayload = []byte{0x00, 0xFF, 0xFF, 0xFF}
