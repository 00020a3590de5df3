package format

import "errors"

var (
	// ErrMalformedHeader indicates the header or its table offsets do not
	// describe a region inside the file.
	ErrMalformedHeader = errors.New("format: malformed header")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnknownKey indicates a record's CRC32 has no key table entry. This
	// aborts the whole parse: without the name the record cannot be
	// classified for tree reconstruction.
	ErrUnknownKey = errors.New("format: unknown key hash")
	// ErrBadStringOffset indicates a string parameter pointed outside the
	// string table.
	ErrBadStringOffset = errors.New("format: string offset out of range")
)
