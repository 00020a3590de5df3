// Package printer renders a decoded entry forest in human-readable or
// machine-readable form.
package printer

import (
	"io"

	"github.com/joshuapare/cfgkit/pkg/types"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowValues includes variable data in output.
	// Default: true
	ShowValues bool

	// ShowTypes includes variable type names.
	// Default: true
	ShowTypes bool

	// ShowOccurrences appends the occurrence index to entry names,
	// matching the on-disk decorated form.
	// Default: false
	ShowOccurrences bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   DefaultMaxDepth,
		ShowValues: true,
		ShowTypes:  true,
	}
}

// Printer handles formatted output of entry trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintEntries prints a forest of entries in the configured format.
func (p *Printer) PrintEntries(entries []*types.Entry) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printEntriesJSON(entries)
	default:
		for _, e := range entries {
			if err := p.printEntryText(e, 0); err != nil {
				return err
			}
		}
		return nil
	}
}

// withinDepth reports whether children at the given depth should be visited.
func (p *Printer) withinDepth(depth int) bool {
	return p.opts.MaxDepth == 0 || depth < p.opts.MaxDepth
}
