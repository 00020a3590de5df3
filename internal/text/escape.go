package text

import "strings"

// Escape/unescape rules for the line-oriented text interchange form. One
// line per text field, so embedded line breaks and the escape character
// itself must be encoded.

// EscapeLine encodes a text value for the line-oriented form: backslash,
// carriage return, and line feed become \\, \r, and \n.
func EscapeLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\r':
			b.WriteString(`\r`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UnescapeLine decodes a line of the line-oriented form: \n, \r, \t, and
// \\ map to their control characters; any other escape is kept literally
// (backslash included), matching the permissive reader behavior.
func UnescapeLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// SplitLines splits interchange text into lines, accepting LF and CRLF
// terminators. A trailing newline does not produce a final empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
