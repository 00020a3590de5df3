package cfgbin

import (
	"fmt"
	"math"

	"github.com/joshuapare/cfgkit/internal/buf"
	"github.com/joshuapare/cfgkit/internal/format"
	"github.com/joshuapare/cfgkit/internal/mmfile"
	"github.com/joshuapare/cfgkit/internal/text"
	"github.com/joshuapare/cfgkit/pkg/types"
)

// flatEntry is one decoded record before tree reconstruction: its canonical
// name, the occurrence index assigned over the flat stream, and its decoded
// variables.
type flatEntry struct {
	name       string
	occurrence int
	vars       []types.Variable
}

func (f flatEntry) decorated() string {
	return fmt.Sprintf("%s_%d", f.name, f.occurrence)
}

// Parse decodes a whole cfg.bin buffer into a Document. Decoding is
// all-or-nothing: a truncated section, an out-of-range string offset, or a
// record hash missing from the key table fails the whole parse.
func Parse(data []byte) (*Document, error) {
	flag := format.ParseEncodingFlag(data)
	enc := text.FromFlag(flag)

	h, err := format.ParseHeader(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "parse header", Err: err}
	}

	blob := data[h.StringTableOffset : h.StringTableOffset+h.StringTableLength]
	st := format.NewStringTable(blob, enc)

	keys, err := parseKeySection(data, h, enc)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "parse key table", Err: err}
	}

	flat, err := parseRecords(data, h, keys, st)
	if err != nil {
		return nil, err
	}

	return &Document{
		Entries:      buildTree(flat),
		enc:          enc,
		encodingFlag: flag,
	}, nil
}

// Open maps and parses a cfg.bin file. The decoded Document owns no part
// of the mapping, so it is released before returning.
func Open(path string) (*Document, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// parseKeySection locates the key table at the 16-byte boundary after the
// string table and decodes it. The section's first field declares its own
// byte length.
func parseKeySection(data []byte, h format.Header, enc text.Encoding) (*format.KeyTable, error) {
	off := format.Align16(int(h.StringTableOffset) + int(h.StringTableLength))
	if !buf.Has(data, off, 4) {
		return nil, fmt.Errorf("key table at %#x: %w", off, format.ErrTruncated)
	}
	size := int(buf.I32LE(data[off:]))
	section, ok := buf.Slice(data, off, size)
	if !ok {
		return nil, fmt.Errorf("key table %#x+%#x: %w", off, size, format.ErrTruncated)
	}
	return format.ParseKeyTable(section, enc)
}

// parseRecords walks the flat record stream, resolves names and string
// payloads, and assigns each record its occurrence index (how many earlier
// records share its name).
func parseRecords(data []byte, h format.Header, keys *format.KeyTable, st *format.StringTable) ([]flatEntry, error) {
	flat := make([]flatEntry, 0, h.EntryCount)
	occurrences := make(map[string]int)

	// Records must not read into the string table.
	region := data[:h.StringTableOffset]
	pos := format.EntriesBase
	for i := 0; i < int(h.EntryCount); i++ {
		rec, next, err := format.DecodeRecord(region, pos)
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindFormat, Msg: fmt.Sprintf("record %d", i), Err: err}
		}
		name, err := keys.Resolve(rec.NameHash)
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindUnknownKey, Msg: fmt.Sprintf("record %d", i), Err: err}
		}
		vars, err := decodeVariables(rec, st)
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindFormat, Msg: fmt.Sprintf("record %d (%s)", i, name), Err: err}
		}
		occ := occurrences[name]
		occurrences[name] = occ + 1
		flat = append(flat, flatEntry{name: name, occurrence: occ, vars: vars})
		pos = next
	}
	return flat, nil
}

// decodeVariables interprets the raw 4-byte payloads per their type tags.
func decodeVariables(rec format.Record, st *format.StringTable) ([]types.Variable, error) {
	if len(rec.Params) == 0 {
		return nil, nil
	}
	vars := make([]types.Variable, len(rec.Params))
	for i, p := range rec.Params {
		switch p.Tag {
		case format.TagString:
			s, err := st.ReadAt(int32(p.Raw))
			if err != nil {
				return nil, fmt.Errorf("param %d: %w", i, err)
			}
			vars[i] = types.Variable{Type: types.VarString, Text: s}
		case format.TagInt:
			vars[i] = types.IntVar(int32(p.Raw))
		case format.TagFloat:
			vars[i] = types.FloatVar(math.Float32frombits(p.Raw))
		default:
			vars[i] = types.UnknownVar(p.Raw)
		}
	}
	return vars, nil
}
