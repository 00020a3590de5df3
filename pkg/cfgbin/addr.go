package cfgbin

import (
	"fmt"

	"github.com/joshuapare/cfgkit/internal/format"
	"github.com/joshuapare/cfgkit/internal/text"
	"github.com/joshuapare/cfgkit/pkg/types"
)

// Address-mode text correlation. Text fields are keyed by their byte
// offset in the original file's string table instead of by tree position,
// and patches rewrite those exact byte ranges on a copy of the original
// buffer. Nothing else is touched: no CRCs, no type bitmaps, no alignment,
// no tree reconstruction. The key table is never consulted, so this mode
// also works on files whose key table cannot resolve every record.

// ExtractAddressed scans the flat record stream and returns every distinct
// referenced string offset with its current text, in first-reference order.
// Offsets referenced by several fields appear once; a patch at that
// address updates all of them at once.
func ExtractAddressed(data []byte) ([]types.AddressedText, error) {
	enc := text.FromFlag(format.ParseEncodingFlag(data))
	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "parse header", Err: err}
	}
	blob := data[h.StringTableOffset : h.StringTableOffset+h.StringTableLength]
	st := format.NewStringTable(blob, enc)

	var out []types.AddressedText
	seen := make(map[int32]bool)
	region := data[:h.StringTableOffset]
	pos := format.EntriesBase
	for i := 0; i < int(h.EntryCount); i++ {
		rec, next, err := format.DecodeRecord(region, pos)
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindFormat, Msg: fmt.Sprintf("record %d", i), Err: err}
		}
		for _, p := range rec.Params {
			if p.Tag != format.TagString {
				continue
			}
			off := int32(p.Raw)
			if off < 0 || seen[off] {
				continue
			}
			s, err := st.ReadAt(off)
			if err != nil {
				return nil, &types.Error{Kind: types.ErrKindFormat, Msg: fmt.Sprintf("record %d", i), Err: err}
			}
			seen[off] = true
			out = append(out, types.AddressedText{Address: off, Value: *s})
		}
		pos = next
	}
	return out, nil
}

// PatchAddressed returns a copy of data with each patch's string payload
// rewritten in place. A replacement is written over the original
// allocation (from its address to the terminating NUL), NUL-terminated,
// with any remaining original bytes zeroed. Replacements longer than the
// original allocation are rejected: the container cannot grow without
// invalidating every subsequent offset, which is exactly what this mode
// promises not to do.
func PatchAddressed(data []byte, patches []types.AddressedText) ([]byte, error) {
	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "parse header", Err: err}
	}
	enc := text.FromFlag(format.ParseEncodingFlag(data))

	out := make([]byte, len(data))
	copy(out, data)
	blob := out[h.StringTableOffset : h.StringTableOffset+h.StringTableLength]

	for _, p := range patches {
		if p.Address < 0 || int(p.Address) >= len(blob) {
			return nil, fmt.Errorf("address %d (table length %d): %w",
				p.Address, len(blob), types.ErrBadPatchAddress)
		}
		// Original allocation: bytes up to the terminating NUL.
		end := int(p.Address)
		for end < len(blob) && blob[end] != 0 {
			end++
		}
		origLen := end - int(p.Address)

		repl := enc.Encode(p.Value)
		if len(repl) > origLen {
			return nil, fmt.Errorf("address %d: %d bytes into %d-byte allocation: %w",
				p.Address, len(repl), origLen, types.ErrPatchTooLong)
		}
		copy(blob[p.Address:], repl)
		for i := int(p.Address) + len(repl); i < end; i++ {
			blob[i] = 0
		}
	}
	return out, nil
}
