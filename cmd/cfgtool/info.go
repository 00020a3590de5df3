package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Decode a cfg.bin file and report basic metadata",
		Long: `The info command decodes a cfg.bin container and displays basic
metadata: file size, string encoding, record and text-field counts, and
the number of top-level entries.

Example:
  cfgtool info chara_param.cfg.bin
  cfgtool info chara_param.cfg.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening file: %s\n", path)

	doc, err := cfgbin.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	texts := doc.Texts()

	if jsonOut {
		return printJSON(map[string]any{
			"file":       path,
			"encoding":   doc.EncodingName(),
			"records":    doc.EntryCount(),
			"entries":    len(doc.Entries),
			"textFields": len(texts),
		})
	}

	printInfo("\nFile Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		printInfo("  Size: %d bytes\n", stat.Size())
	}
	printInfo("  Encoding: %s\n", doc.EncodingName())
	printInfo("  Records: %d\n", doc.EntryCount())
	printInfo("  Top-level entries: %d\n", len(doc.Entries))
	printInfo("  Text fields: %d\n", len(texts))

	return nil
}
