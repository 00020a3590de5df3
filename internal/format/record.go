package format

import (
	"fmt"

	"github.com/joshuapare/cfgkit/internal/buf"
)

// Record is one flat entry as stored in the record stream: a name hash and
// an ordered list of typed 4-byte parameters. Interpretation of the raw
// payloads (string offsets, floats) happens at a higher level.
type Record struct {
	NameHash uint32
	Params   []Param
}

// Param is a single parameter: its 2-bit type tag and raw little-endian
// payload bits.
type Param struct {
	Tag TypeTag
	Raw uint32
}

// DecodeRecord reads one record starting at pos and returns it together
// with the position of the next record. The layout is:
//
//	crc32      u32
//	paramCount u8
//	bitmap     ceil(paramCount/4) bytes, 2 bits per parameter low-to-high
//	(cursor aligned up to 4 when (bitmapLen+1) % 4 != 0)
//	params     paramCount × 4 bytes
//
// Truncation at any point is fatal; there is no partial-record recovery.
func DecodeRecord(b []byte, pos int) (Record, int, error) {
	if !buf.Has(b, pos, 5) {
		return Record{}, 0, fmt.Errorf("record at %#x: %w", pos, ErrTruncated)
	}
	rec := Record{NameHash: buf.U32LE(b[pos:])}
	pos += 4
	paramCount := int(b[pos])
	pos++

	bitmapLen := (paramCount + 3) / 4
	if !buf.Has(b, pos, bitmapLen) {
		return Record{}, 0, fmt.Errorf("record type bitmap at %#x: %w", pos, ErrTruncated)
	}
	tags := make([]TypeTag, 0, paramCount)
	for i := 0; i < bitmapLen; i++ {
		tb := b[pos]
		pos++
		for k := 0; k < 4 && len(tags) < paramCount; k++ {
			tags = append(tags, TypeTag((tb>>(2*k))&3))
		}
	}
	if (bitmapLen+1)%4 != 0 {
		pos = Align4(pos)
	}

	if !buf.Has(b, pos, paramCount*4) {
		return Record{}, 0, fmt.Errorf("record params at %#x: %w", pos, ErrTruncated)
	}
	rec.Params = make([]Param, paramCount)
	for i := 0; i < paramCount; i++ {
		rec.Params[i] = Param{Tag: tags[i], Raw: buf.U32LE(b[pos:])}
		pos += 4
	}
	return rec, pos, nil
}

// EncodeTypeBitmap packs the 2-bit tags low-to-high within each byte and
// pads with 0xFF until the (byteCount+1) % 4 == 0 alignment rule holds.
//
// TagUnknown is emitted as bit pattern 00: the on-disk bitmap cannot
// distinguish it from TagString, which is why decoded variables carry their
// original tag instead of re-deriving it from the bitmap.
func EncodeTypeBitmap(tags []TypeTag) []byte {
	groups := (len(tags) + 3) / 4
	bytes := make([]byte, 0, groups)
	for i := 0; i < groups; i++ {
		var desc byte
		for j := 4 * i; j < 4*(i+1) && j < len(tags); j++ {
			tag := tags[j]
			if tag == TagUnknown {
				tag = TagString
			}
			desc |= byte(tag) << ((j % 4) * 2)
		}
		bytes = append(bytes, desc)
	}
	for (len(bytes)+1)%4 != 0 {
		bytes = append(bytes, PadByte)
	}
	return bytes
}

// AppendRecord encodes one record and appends it to dst.
func AppendRecord(dst []byte, rec Record) []byte {
	dst = buf.AppendU32(dst, rec.NameHash)
	dst = append(dst, byte(len(rec.Params)))
	tags := make([]TypeTag, len(rec.Params))
	for i, p := range rec.Params {
		tags[i] = p.Tag
	}
	dst = append(dst, EncodeTypeBitmap(tags)...)
	for _, p := range rec.Params {
		dst = buf.AppendU32(dst, p.Raw)
	}
	return dst
}

// AppendTerminator encodes a scope terminator record: the end-name hash
// followed by the fixed zero-parameter payload.
func AppendTerminator(dst []byte, nameHash uint32) []byte {
	dst = buf.AppendU32(dst, nameHash)
	return append(dst, TerminatorPayload...)
}
