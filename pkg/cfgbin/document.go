package cfgbin

import (
	"github.com/joshuapare/cfgkit/internal/text"
	"github.com/joshuapare/cfgkit/pkg/types"
)

// Document is a fully decoded cfg.bin container: the ordered forest of
// top-level entries plus the text encoding state needed to re-encode it.
type Document struct {
	// Entries is the ordered forest of top-level entries.
	Entries []*types.Entry

	enc text.Encoding
	// encodingFlag is the raw 16-bit footer value. Non-zero variants
	// (0x0001, 0x0100, 0x0101) all mean UTF-8 but are preserved verbatim so
	// format dialects re-emit byte-identically.
	encodingFlag uint16
}

// New returns an empty document with the given encoding and its default
// footer flag. Used when building a container from scratch.
func New(shiftJIS bool) *Document {
	enc := text.UTF8
	if shiftJIS {
		enc = text.ShiftJIS
	}
	return &Document{enc: enc, encodingFlag: enc.DefaultFlag()}
}

// EncodingName reports the active string encoding ("Shift_JIS" or "UTF-8").
func (d *Document) EncodingName() string {
	return d.enc.String()
}

// EncodingFlag reports the raw footer encoding value preserved from the
// source file.
func (d *Document) EncodingFlag() uint16 {
	return d.encodingFlag
}

// EntryCount returns the total number of flat records the document
// flattens to, terminators included. This is the value written to the
// file header.
func (d *Document) EntryCount() int {
	total := 0
	for _, e := range d.Entries {
		total += e.Count()
	}
	return total
}
