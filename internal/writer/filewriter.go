// Package writer exposes sinks for encoded cfg.bin emission.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes container bytes to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteFile writes buf to the configured path atomically via temp file + rename.
func (w *FileWriter) WriteFile(buf []byte) error {
	// Temp file in the same directory so the rename stays on one filesystem
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".cfgkit-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, writeErr := tmpFile.Write(buf); writeErr != nil {
		return fmt.Errorf("write temp file: %w", writeErr)
	}

	if syncErr := tmpFile.Sync(); syncErr != nil {
		return fmt.Errorf("sync temp file: %w", syncErr)
	}

	// Close before rename
	if closeErr := tmpFile.Close(); closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	tmpFile = nil // Don't clean up in defer

	if renameErr := os.Rename(tmpPath, w.Path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", renameErr)
	}

	return nil
}
