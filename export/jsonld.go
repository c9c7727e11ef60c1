// Package export serializes generated documents to JSON-LD files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/statmeta/cdigen/model"
)

// Marshal renders a document as JSON-LD. Pretty output uses four-space
// indentation, matching the published examples of the vocabulary.
func Marshal(doc *model.Document, pretty bool) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("export: nil document")
	}
	if pretty {
		return json.MarshalIndent(doc, "", "    ")
	}
	return json.Marshal(doc)
}

// WriteFile serializes a document to path, creating parent directories as
// needed.
func WriteFile(path string, doc *model.Document, pretty bool) error {
	data, err := Marshal(doc, pretty)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
