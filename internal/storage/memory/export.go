// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/podtools/podscan/pkg/core"
)

// exportJSON writes one decoded recording to a JSON file, optionally
// gzipped. The output name is derived from the source filename.
func (b *Backend) exportJSON(ds *core.Dataset) error {
	base := filepath.Base(ds.Header.Filename)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == "" {
		base = "recording"
	}

	var filename string
	if b.cfg.CompressOutput {
		filename = base + ".json.gz"
	} else {
		filename = base + ".json"
	}

	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	// Ensure output directory exists
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := b.writeGzipJSON(outputPath, ds); err != nil {
			return err
		}
	} else {
		if err := b.writeJSON(outputPath, ds); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func (b *Backend) writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func (b *Backend) writeGzipJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if err := json.NewEncoder(gz).Encode(v); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return gz.Close()
}
