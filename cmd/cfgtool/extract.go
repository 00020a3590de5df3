package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/writer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/spf13/cobra"
)

var extractStdout bool

func init() {
	cmd := newExtractCmd()
	cmd.Flags().BoolVar(&extractStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file> [output.json]",
		Short: "Extract text fields to JSON",
		Long: `The extract command pulls every String-typed variable out of a
cfg.bin container as an indexed JSON list. Each record carries the global
text index used to reapply translations, plus the owning entry name and
variable position for context.

The output defaults to <file>.json next to the input.

Example:
  cfgtool extract chara_text.cfg.bin
  cfgtool extract chara_text.cfg.bin texts.json
  cfgtool extract chara_text.cfg.bin --stdout`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(args)
		},
	}
	return cmd
}

func runExtract(args []string) error {
	path := args[0]
	outputPath := siblingPath(path, ".json")
	if len(args) > 1 {
		outputPath = args[1]
	}
	if len(args) > 1 && extractStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	printVerbose("Opening file: %s\n", path)

	doc, err := cfgbin.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	texts := doc.Texts()
	data, err := json.MarshalIndent(texts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode texts: %w", err)
	}
	data = append(data, '\n')

	if extractStdout {
		_, err = os.Stdout.Write(data)
		return err
	}

	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printInfo("Extracted %d text fields to %s\n", len(texts), outputPath)
	return nil
}
