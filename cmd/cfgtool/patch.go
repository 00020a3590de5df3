package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/mmfile"
	"github.com/joshuapare/cfgkit/internal/writer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/joshuapare/cfgkit/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPatchCmd())
}

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file> <addresses.json> [output]",
		Short: "Patch string allocations in place by address",
		Long: `The patch command rewrites string allocations of a cfg.bin container
at the byte addresses listed in a JSON file produced by the addresses
command. The rest of the container is copied through untouched, so the
output stays byte-compatible with tools that depend on exact offsets.
Replacements longer than the original allocation are rejected.

The output defaults to <base>_patched.cfg.bin next to the input.

Example:
  cfgtool patch event_text.cfg.bin event_text_addresses.json
  cfgtool patch event_text.cfg.bin translated.json out.cfg.bin`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args)
		},
	}
	return cmd
}

func runPatch(args []string) error {
	path := args[0]
	patchesPath := args[1]
	outputPath := derivedPath(path, "patched")
	if len(args) > 2 {
		outputPath = args[2]
	}

	printVerbose("Opening file: %s\n", path)

	raw, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer func() { _ = cleanup() }()

	patchesRaw, err := os.ReadFile(patchesPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", patchesPath, err)
	}
	var patches []types.AddressedText
	if err := json.Unmarshal(patchesRaw, &patches); err != nil {
		return &types.Error{Kind: types.ErrKindInterchange, Msg: patchesPath, Err: err}
	}

	patched, err := cfgbin.PatchAddressed(raw, patches)
	if err != nil {
		return fmt.Errorf("failed to patch %s: %w", path, err)
	}

	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteFile(patched); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printInfo("Patched %d strings, wrote %s\n", len(patches), outputPath)
	return nil
}
