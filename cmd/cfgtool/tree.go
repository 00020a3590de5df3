package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/printer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/spf13/cobra"
)

var (
	treeDepth       int
	treeNoValues    bool
	treeOccurrences bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Limit tree depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeNoValues, "no-values", false, "Hide variable values")
	cmd.Flags().
		BoolVar(&treeOccurrences, "occurrences", false, "Show decorated names with occurrence indexes")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the reconstructed entry tree",
		Long: `The tree command decodes a cfg.bin container and prints the entry
tree reconstructed from record naming conventions, with each entry's typed
variables.

Example:
  cfgtool tree chara_param.cfg.bin
  cfgtool tree chara_param.cfg.bin --depth 2 --no-values
  cfgtool tree chara_param.cfg.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

func runTree(args []string) error {
	path := args[0]

	printVerbose("Opening file: %s\n", path)

	doc, err := cfgbin.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = treeDepth
	opts.ShowValues = !treeNoValues
	opts.ShowOccurrences = treeOccurrences
	if jsonOut {
		opts.Format = printer.FormatJSON
	}

	return printer.New(os.Stdout, opts).PrintEntries(doc.Entries)
}
