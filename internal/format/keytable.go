package format

import (
	"fmt"

	"github.com/joshuapare/cfgkit/internal/buf"
	"github.com/joshuapare/cfgkit/internal/text"
)

// KeyTable maps the CRC32 name hashes stored in the record stream back to
// literal names. Records reference names only by hash, so the table is
// required to classify anything.
type KeyTable struct {
	names map[uint32]string
}

// ParseKeyTable decodes the key table section. The section layout is a
// 16-byte header (total byte length, entry count, name blob offset, name
// blob length), then count fixed 8-byte entries (crc32, blob-relative
// offset), then the NUL-terminated name blob.
func ParseKeyTable(section []byte, enc text.Encoding) (*KeyTable, error) {
	if len(section) < KeyHeaderSize {
		return nil, fmt.Errorf("key table header: %w", ErrTruncated)
	}
	count := int(buf.I32LE(section[4:]))
	blobOffset := int(buf.I32LE(section[8:]))
	blobLength := int(buf.I32LE(section[12:]))

	blob, ok := buf.Slice(section, blobOffset, blobLength)
	if !ok {
		return nil, fmt.Errorf("key table name blob %d+%d: %w", blobOffset, blobLength, ErrTruncated)
	}
	if count < 0 || !buf.Has(section, KeyHeaderSize, count*KeyEntrySize) {
		return nil, fmt.Errorf("key table entries (count %d): %w", count, ErrTruncated)
	}

	t := &KeyTable{names: make(map[uint32]string, count)}
	pos := KeyHeaderSize
	for i := 0; i < count; i++ {
		crc := buf.U32LE(section[pos:])
		nameOff := int(buf.I32LE(section[pos+4:]))
		pos += KeyEntrySize
		if nameOff < 0 || nameOff > len(blob) {
			return nil, fmt.Errorf("key table entry %d: name offset %d: %w", i, nameOff, ErrTruncated)
		}
		end := nameOff
		for end < len(blob) && blob[end] != 0 {
			end++
		}
		t.names[crc] = enc.Decode(blob[nameOff:end])
	}
	return t, nil
}

// Resolve returns the literal name for a record hash. An unresolvable hash
// is fatal for the whole parse.
func (t *KeyTable) Resolve(hash uint32) (string, error) {
	name, ok := t.names[hash]
	if !ok {
		return "", fmt.Errorf("%w: 0x%08x", ErrUnknownKey, hash)
	}
	return name, nil
}

// Len returns the number of distinct keys in the table.
func (t *KeyTable) Len() int {
	return len(t.names)
}

// AppendKeyTable encodes the key table section for the given names, in
// order, and appends it to dst. CRCs and blob offsets are recomputed from
// the names; the section is padded to the 16-byte boundary.
func AppendKeyTable(dst []byte, names []string, enc text.Encoding) []byte {
	base := len(dst)
	dst = append(dst, make([]byte, KeyHeaderSize)...)

	blobOffset := 0
	for _, name := range names {
		raw := enc.Encode(name)
		dst = buf.AppendU32(dst, NameHash(raw))
		dst = buf.AppendI32(dst, int32(blobOffset))
		blobOffset += len(raw) + 1
	}
	dst = Pad(dst, SectionAlignment, PadByte)

	blobStart := len(dst) - base
	for _, name := range names {
		dst = append(dst, enc.Encode(name)...)
		dst = append(dst, 0x00)
	}
	blobLength := len(dst) - base - blobStart
	dst = Pad(dst, SectionAlignment, PadByte)

	section := dst[base:]
	buf.PutI32(section, 0, int32(len(section)))
	buf.PutI32(section, 4, int32(len(names)))
	buf.PutI32(section, 8, int32(blobStart))
	buf.PutI32(section, 12, int32(blobLength))
	return dst
}
