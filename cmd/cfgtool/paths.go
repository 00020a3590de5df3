package main

import (
	"path/filepath"
	"strings"
)

// derivedPath builds an output path next to the input file by inserting a
// tag before the extension. The compound ".cfg.bin" extension is treated
// as one unit.
func derivedPath(input, tag string) string {
	if strings.HasSuffix(input, ".cfg.bin") {
		return strings.TrimSuffix(input, ".cfg.bin") + "_" + tag + ".cfg.bin"
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_" + tag + ext
}

// siblingPath builds an output path next to the input file by swapping its
// extension.
func siblingPath(input, newExt string) string {
	if strings.HasSuffix(input, ".cfg.bin") {
		return strings.TrimSuffix(input, ".cfg.bin") + newExt
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + newExt
}
