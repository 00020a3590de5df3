// Package text handles the character encodings and interchange text forms
// used by cfg.bin files. The container stores strings either as UTF-8 or
// Shift-JIS (CP932), selected by a 16-bit flag in the file footer.
package text

import (
	"golang.org/x/text/encoding/japanese"
)

// Encoding identifies the character encoding of a cfg.bin string table.
type Encoding int

const (
	// ShiftJIS is used by Japanese releases (footer flag 0).
	ShiftJIS Encoding = iota
	// UTF8 is used by overseas releases (any non-zero footer flag).
	UTF8
)

func (e Encoding) String() string {
	switch e {
	case ShiftJIS:
		return "Shift_JIS"
	case UTF8:
		return "UTF-8"
	default:
		return "Unknown"
	}
}

// FromFlag maps the raw 16-bit footer flag to an Encoding. Zero means
// Shift-JIS; every non-zero value (0x0001, 0x0100, 0x0101 dialects) means
// UTF-8. The raw value itself is preserved by the caller for re-emission.
func FromFlag(flag uint16) Encoding {
	if flag == 0 {
		return ShiftJIS
	}
	return UTF8
}

// DefaultFlag returns the footer flag written for documents built from
// scratch with the given encoding.
func (e Encoding) DefaultFlag() uint16 {
	if e == ShiftJIS {
		return 0
	}
	return 1
}

// Decode converts raw string-table bytes to a Go string. Invalid byte
// sequences are decoded lossily (replacement runes) rather than failing;
// real files contain occasional mojibake and the codec must not reject
// them.
func (e Encoding) Decode(b []byte) string {
	if e == ShiftJIS {
		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
		if err == nil {
			return string(decoded)
		}
	}
	// UTF-8 is passed through; Go strings tolerate invalid sequences and
	// render them as replacement runes on display.
	return string(b)
}

// Encode converts a Go string to raw string-table bytes. Runes with no
// Shift-JIS mapping fall back to the UTF-8 bytes so re-encoding never
// fails outright.
func (e Encoding) Encode(s string) []byte {
	if e == ShiftJIS {
		encoded, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(s))
		if err == nil {
			return encoded
		}
	}
	return []byte(s)
}
