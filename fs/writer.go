package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Ensure Writer implements carbon.DocumentWriter at compile time.
var _ carbon.DocumentWriter = (*Writer)(nil)

// Writer persists a crawled document set as a single JSON file. The
// file is written to a temporary path and renamed into place, so an
// interrupted crawl never leaves a truncated document file behind.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteDocuments validates and writes the documents as a JSON record list.
func (w *Writer) WriteDocuments(ctx context.Context, docs []*carbon.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, doc := range docs {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, w.path)
}
