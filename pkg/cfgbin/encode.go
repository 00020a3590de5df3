package cfgbin

import (
	"math"
	"strings"

	"github.com/joshuapare/cfgkit/internal/format"
	"github.com/joshuapare/cfgkit/pkg/types"
)

// terminatorName derives the closing record's name from an entry's
// canonical name. PTREE scopes always close with the fixed literal
// "_PTREE"; everything else substitutes END for the begin spelling, with
// BEGIN rewritten before BEG so "BEGIN" does not decay to "ENDIN".
func terminatorName(canonical string) string {
	if strings.HasPrefix(canonical, "PTREE") {
		return "_PTREE"
	}
	s := strings.ReplaceAll(canonical, "BEGIN", "END")
	return strings.ReplaceAll(s, "BEG", "END")
}

// Save flattens the document back into a complete container: header,
// record stream (pre-order, terminators where observed), deduplicated
// string table, regenerated key table, and footer.
//
// The result is logically equivalent to the source file, not necessarily
// byte-identical: every distinct string is re-materialized as its own
// allocation, so files that shared storage between overlapping strings
// come back larger.
func (d *Document) Save() ([]byte, error) {
	distinct := d.distinctStrings()
	offsets := format.BuildStringOffsets(distinct, d.enc)

	out := make([]byte, format.HeaderSize)
	for _, e := range d.Entries {
		out = d.appendEntry(out, e, offsets)
	}
	out = format.Pad(out, format.SectionAlignment, format.PadByte)

	stringTableOffset := len(out)
	stringTableLength := 0
	if len(distinct) > 0 {
		blob := format.AppendStringBlob(nil, distinct, d.enc)
		stringTableLength = len(blob)
		out = append(out, blob...)
		out = format.Pad(out, format.SectionAlignment, format.PadByte)
	}

	out = format.AppendKeyTable(out, d.uniqueKeys(), d.enc)
	out = format.AppendFooter(out, d.encodingFlag)

	format.PutHeader(out, format.Header{
		EntryCount:        int32(d.EntryCount()),
		StringTableOffset: int32(stringTableOffset),
		StringTableLength: int32(stringTableLength),
		StringTableCount:  int32(len(distinct)),
	})
	return out, nil
}

// appendEntry emits one entry pre-order: its own record, every child, and
// the terminator record when one was observed in the source.
func (d *Document) appendEntry(dst []byte, e *types.Entry, offsets map[string]int32) []byte {
	rec := format.Record{
		NameHash: format.NameHash(d.enc.Encode(e.Name)),
		Params:   make([]format.Param, len(e.Variables)),
	}
	for i, v := range e.Variables {
		rec.Params[i] = encodeVariable(v, offsets)
	}
	dst = format.AppendRecord(dst, rec)

	for _, c := range e.Children {
		dst = d.appendEntry(dst, c, offsets)
	}

	if e.EndTerminator {
		hash := format.NameHash(d.enc.Encode(terminatorName(e.Name)))
		dst = format.AppendTerminator(dst, hash)
	}
	return dst
}

// encodeVariable lowers one variable to its raw tag and payload bits.
func encodeVariable(v types.Variable, offsets map[string]int32) format.Param {
	switch v.Type {
	case types.VarString:
		off := format.AbsentStringOffset
		if v.Text != nil {
			if o, ok := offsets[*v.Text]; ok {
				off = o
			}
		}
		return format.Param{Tag: format.TagString, Raw: uint32(off)}
	case types.VarInt:
		return format.Param{Tag: format.TagInt, Raw: uint32(v.Int)}
	case types.VarFloat:
		return format.Param{Tag: format.TagFloat, Raw: math.Float32bits(v.Float)}
	default:
		return format.Param{Tag: format.TagUnknown, Raw: v.Raw}
	}
}

// distinctStrings collects every present string value in first-appearance
// order over a depth-first, variables-before-children traversal.
func (d *Document) distinctStrings() []string {
	var ordered []string
	seen := make(map[string]bool)
	var walk func(*types.Entry)
	walk = func(e *types.Entry) {
		for _, v := range e.Variables {
			if v.Type == types.VarString && v.Text != nil && !seen[*v.Text] {
				seen[*v.Text] = true
				ordered = append(ordered, *v.Text)
			}
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	for _, e := range d.Entries {
		walk(e)
	}
	return ordered
}

// uniqueKeys collects the distinct canonical names the key table must
// carry: each entry's name, its children's names, and the synthesized
// terminator name where a terminator is emitted, in traversal order.
func (d *Document) uniqueKeys() []string {
	var ordered []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			ordered = append(ordered, name)
		}
	}
	var walk func(*types.Entry)
	walk = func(e *types.Entry) {
		add(e.Name)
		for _, c := range e.Children {
			walk(c)
		}
		if e.EndTerminator {
			add(terminatorName(e.Name))
		}
	}
	for _, e := range d.Entries {
		walk(e)
	}
	return ordered
}
