package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/writer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newImportCmd())
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file> <lines.txt> [output]",
		Short: "Import line-oriented text and re-encode",
		Long: `The import command loads a cfg.bin container, replaces its text
fields from a line-oriented text file (line N updates text index N), and
writes a re-encoded container. The line count must match the field count;
the one tolerated mismatch is a file missing the three leading build-stamp
fields, which are then left untouched.

The output defaults to <base>_updated.cfg.bin next to the input.

Example:
  cfgtool import chara_text.cfg.bin dialog.txt
  cfgtool import chara_text.cfg.bin dialog.txt out.cfg.bin`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args)
		},
	}
	return cmd
}

func runImport(args []string) error {
	path := args[0]
	linesPath := args[1]
	outputPath := derivedPath(path, "updated")
	if len(args) > 2 {
		outputPath = args[2]
	}

	printVerbose("Opening file: %s\n", path)

	doc, err := cfgbin.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	content, err := os.ReadFile(linesPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", linesPath, err)
	}
	if err := doc.ApplyLines(string(content)); err != nil {
		return fmt.Errorf("failed to apply %s: %w", linesPath, err)
	}

	data, err := doc.Save()
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printInfo("Imported text, wrote %s\n", outputPath)
	return nil
}
