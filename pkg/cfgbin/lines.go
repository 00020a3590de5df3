package cfgbin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/joshuapare/cfgkit/internal/text"
	"github.com/joshuapare/cfgkit/pkg/types"
)

// Line-oriented text form: line N (zero-based) carries the text field with
// global index N. Backslash, carriage return, and line feed are escaped on
// output; input additionally accepts \t.

// timestampPattern matches the 19-character "YYYY/MM/DD HH:MM:SS" stamp
// some files carry in their first three text fields.
var timestampPattern = regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}$`)

// ExportLines renders the sequential text fields as the line-oriented
// form, one escaped value per line with a trailing newline.
func (d *Document) ExportLines() string {
	texts := d.Texts()
	var b strings.Builder
	for _, t := range texts {
		b.WriteString(text.EscapeLine(t.Value))
		b.WriteByte('\n')
	}
	return b.String()
}

// ResolveLineOffset decides which text-field index the first supplied line
// applies to. Matching counts start at 0. One tolerated mismatch exists:
// when the document expects exactly 3 more fields than were supplied and
// its first text value is a timestamp, the leading 3 fields (build stamp
// block) are left untouched and lines apply from index 3. Any other
// mismatch is a hard error naming both counts.
func ResolveLineOffset(expected, supplied int, firstValue string) (int, error) {
	if supplied == expected {
		return 0, nil
	}
	if expected == supplied+3 && timestampPattern.MatchString(firstValue) {
		return 3, nil
	}
	return 0, fmt.Errorf("expected %d lines, got %d: %w", expected, supplied, types.ErrLineCount)
}

// ApplyLines updates the document's text fields from the line-oriented
// form.
func (d *Document) ApplyLines(content string) error {
	lines := text.SplitLines(content)
	texts := d.Texts()

	first := ""
	if len(texts) > 0 {
		first = texts[0].Value
	}
	offset, err := ResolveLineOffset(len(texts), len(lines), first)
	if err != nil {
		return err
	}

	updates := make([]types.TextEntry, 0, len(lines))
	for i, line := range lines {
		updates = append(updates, types.TextEntry{
			Index: texts[offset+i].Index,
			Value: text.UnescapeLine(line),
		})
	}
	d.ApplyTexts(updates)
	return nil
}
