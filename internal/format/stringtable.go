package format

import (
	"fmt"

	"github.com/joshuapare/cfgkit/internal/text"
)

// StringTable reads NUL-terminated text payloads out of the string blob.
//
// Any byte offset inside the blob is a legal string start, not just offsets
// that begin a table entry: real files share storage by pointing one field
// into the middle of another field's allocation ("suffix sharing"). Reads
// are cached per offset, but every distinct offset is treated as a
// potentially distinct logical string.
type StringTable struct {
	blob  []byte
	enc   text.Encoding
	cache map[int32]string
}

// NewStringTable wraps a string blob for reading.
func NewStringTable(blob []byte, enc text.Encoding) *StringTable {
	return &StringTable{
		blob:  blob,
		enc:   enc,
		cache: make(map[int32]string),
	}
}

// ReadAt decodes the string starting at off, scanning forward to the next
// NUL byte or the end of the blob. A negative offset means "absent" and
// yields (nil, nil). An offset at the end of the blob reads as an empty
// string; beyond that is a fatal decode error.
func (t *StringTable) ReadAt(off int32) (*string, error) {
	if off < 0 {
		return nil, nil
	}
	if int(off) > len(t.blob) {
		return nil, fmt.Errorf("%w: %d > %d", ErrBadStringOffset, off, len(t.blob))
	}
	if s, ok := t.cache[off]; ok {
		return &s, nil
	}
	end := int(off)
	for end < len(t.blob) && t.blob[end] != 0 {
		end++
	}
	s := t.enc.Decode(t.blob[off:end])
	t.cache[off] = s
	return &s, nil
}

// BuildStringOffsets assigns each distinct string its offset in the encoded
// blob: the cumulative encoded length (trailing NUL included) of all
// strings before it. The input order is first-appearance order from the
// document traversal.
func BuildStringOffsets(distinct []string, enc text.Encoding) map[string]int32 {
	offsets := make(map[string]int32, len(distinct))
	pos := int32(0)
	for _, s := range distinct {
		offsets[s] = pos
		pos += int32(len(enc.Encode(s))) + 1
	}
	return offsets
}

// AppendStringBlob encodes each distinct string followed by one NUL byte.
// Every string gets its own allocation even when it is a substring of
// another; the encoder never re-creates suffix sharing. Section padding is
// the caller's concern.
func AppendStringBlob(dst []byte, distinct []string, enc text.Encoding) []byte {
	for _, s := range distinct {
		dst = append(dst, enc.Encode(s)...)
		dst = append(dst, 0x00)
	}
	return dst
}
