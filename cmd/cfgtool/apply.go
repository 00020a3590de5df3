package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joshuapare/cfgkit/internal/writer"
	"github.com/joshuapare/cfgkit/pkg/cfgbin"
	"github.com/joshuapare/cfgkit/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newApplyCmd())
}

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <file> <texts.json> [output]",
		Short: "Apply JSON text updates and re-encode",
		Long: `The apply command loads a cfg.bin container, replaces its text
fields from an extracted JSON list (matched by global index), and writes a
re-encoded container. An empty value clears the field. Indexes absent from
the JSON keep their current text.

The output defaults to <base>_updated.cfg.bin next to the input.

Example:
  cfgtool apply chara_text.cfg.bin chara_text.json
  cfgtool apply chara_text.cfg.bin translated.json out.cfg.bin`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args)
		},
	}
	return cmd
}

func runApply(args []string) error {
	path := args[0]
	textsPath := args[1]
	outputPath := derivedPath(path, "updated")
	if len(args) > 2 {
		outputPath = args[2]
	}

	printVerbose("Opening file: %s\n", path)

	doc, err := cfgbin.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	raw, err := os.ReadFile(textsPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", textsPath, err)
	}
	var texts []types.TextEntry
	if err := json.Unmarshal(raw, &texts); err != nil {
		return &types.Error{Kind: types.ErrKindInterchange, Msg: textsPath, Err: err}
	}

	doc.ApplyTexts(texts)

	data, err := doc.Save()
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	w := &writer.FileWriter{Path: outputPath}
	if err := w.WriteFile(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	printInfo("Applied %d text records, wrote %s\n", len(texts), outputPath)
	return nil
}
