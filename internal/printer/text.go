package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/cfgkit/pkg/types"
)

// printEntryText prints an entry in human-readable text format.
func (p *Printer) printEntryText(e *types.Entry, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	name := e.Name
	if p.opts.ShowOccurrences {
		name = e.Decorated()
	}
	if _, err := fmt.Fprintf(p.writer, "%s[%s]\n", indent, name); err != nil {
		return err
	}

	if p.opts.ShowValues {
		for i, v := range e.Variables {
			if err := p.printVariableText(i, v, depth+1); err != nil {
				return err
			}
		}
	}

	if !p.withinDepth(depth + 1) {
		return nil
	}
	for _, child := range e.Children {
		if err := p.printEntryText(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// printVariableText prints a single variable in human-readable text format.
func (p *Printer) printVariableText(index int, v types.Variable, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if _, err := fmt.Fprintf(p.writer, "%s[%d]", indent, index); err != nil {
		return err
	}
	if p.opts.ShowTypes {
		if _, err := fmt.Fprintf(p.writer, " (%s)", v.Type); err != nil {
			return err
		}
	}

	var err error
	switch v.Type {
	case types.VarString:
		if v.Text == nil {
			_, err = fmt.Fprintf(p.writer, " = <absent>\n")
		} else {
			_, err = fmt.Fprintf(p.writer, " = %q\n", *v.Text)
		}
	case types.VarInt:
		_, err = fmt.Fprintf(p.writer, " = %d\n", v.Int)
	case types.VarFloat:
		_, err = fmt.Fprintf(p.writer, " = %g\n", v.Float)
	default:
		_, err = fmt.Fprintf(p.writer, " = 0x%08X\n", v.Raw)
	}
	return err
}
