package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/mmfile"
	"github.com/joshuapare/cfgkit/internal/writer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/spf13/cobra"
)

var addressesStdout bool

func init() {
	cmd := newAddressesCmd()
	cmd.Flags().BoolVar(&addressesStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(cmd)
}

func newAddressesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addresses <file> [output.json]",
		Short: "Extract text fields keyed by string-table address",
		Long: `The addresses command scans the flat record stream and lists every
referenced string allocation by its byte offset in the string table. This
mode never consults the key table, so it also works on files whose record
names cannot be resolved. The resulting JSON feeds the patch command.

The output defaults to <base>_addresses.json next to the input.

Example:
  cfgtool addresses event_text.cfg.bin
  cfgtool addresses event_text.cfg.bin --stdout`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddresses(args)
		},
	}
	return cmd
}

func runAddresses(args []string) error {
	path := args[0]
	outputPath := siblingPath(path, "_addresses.json")
	if len(args) > 1 {
		outputPath = args[1]
	}
	if len(args) > 1 && addressesStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	printVerbose("Opening file: %s\n", path)

	raw, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	texts, err := cfgbin.ExtractAddressed(raw)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}

	data, err := json.MarshalIndent(texts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode texts: %w", err)
	}
	data = append(data, '\n')

	if addressesStdout {
		_, err = os.Stdout.Write(data)
		return err
	}

	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printInfo("Extracted %d addressed strings to %s\n", len(texts), outputPath)
	return nil
}
