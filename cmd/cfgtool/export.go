package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/writer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/spf13/cobra"
)

var exportStdout bool

func init() {
	cmd := newExportCmd()
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> [output.txt]",
		Short: "Export text fields as escaped lines",
		Long: `The export command renders the sequential text fields of a cfg.bin
container in line-oriented form: one field per line, in global index
order, with backslashes and line breaks escaped. This form round-trips
through the import command.

The output defaults to <base>.txt next to the input.

Example:
  cfgtool export chara_text.cfg.bin
  cfgtool export chara_text.cfg.bin dialog.txt
  cfgtool export chara_text.cfg.bin --stdout`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportLines(args)
		},
	}
	return cmd
}

func runExportLines(args []string) error {
	path := args[0]
	outputPath := siblingPath(path, ".txt")
	if len(args) > 1 {
		outputPath = args[1]
	}
	if len(args) > 1 && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	printVerbose("Opening file: %s\n", path)

	doc, err := cfgbin.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	content := doc.ExportLines()
	if exportStdout {
		_, err = os.Stdout.WriteString(content)
		return err
	}

	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteFile([]byte(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printInfo("Exported %d text fields to %s\n", len(doc.Texts()), outputPath)
	return nil
}
