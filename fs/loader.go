// Package fs provides file-based document storage: a JSON loader for
// the build pipeline and an atomic writer for crawl output.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Ensure Loader implements carbon.DocumentLoader at compile time.
var _ carbon.DocumentLoader = (*Loader)(nil)

// Loader reads crawled documents from a JSON file. Two shapes are
// accepted: a list of {url, title, content} records, or a mapping from
// URL to page text where the title is derived from the URL's last path
// segment.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and validates documents from the file at path.
func (l *Loader) Load(ctx context.Context, path string) ([]*carbon.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, carbon.Errorf(carbon.ENOTFOUND, "document file %q not found", path)
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, carbon.Errorf(carbon.EINVALID, "document file %q is empty", path)
	}

	return decodeDocuments(data)
}

// decodeDocuments dispatches on the top-level JSON token: a list of
// records or a URL-to-text mapping.
func decodeDocuments(data []byte) ([]*carbon.Document, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		return decodeRecords(data)
	case len(trimmed) > 0 && trimmed[0] == '{':
		return decodeMapping(data)
	default:
		return nil, carbon.Errorf(carbon.EINVALID, "document file must contain a JSON list of records or a URL-to-text object")
	}
}

// record mirrors one entry of the list shape. Pointer fields
// distinguish missing keys from empty values.
type record struct {
	URL     *string `json:"url"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func decodeRecords(data []byte) ([]*carbon.Document, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, carbon.Errorf(carbon.EINVALID, "invalid JSON document file: %v", err)
	}
	if len(records) == 0 {
		return nil, carbon.Errorf(carbon.EINVALID, "document file contains no documents")
	}

	docs := make([]*carbon.Document, 0, len(records))
	for i, rec := range records {
		var missing []string
		if rec.URL == nil {
			missing = append(missing, "url")
		}
		if rec.Title == nil {
			missing = append(missing, "title")
		}
		if rec.Content == nil {
			missing = append(missing, "content")
		}
		if len(missing) > 0 {
			return nil, carbon.Errorf(carbon.EINVALID, "record %d missing required fields: %s", i, strings.Join(missing, ", "))
		}

		doc := &carbon.Document{URL: *rec.URL, Title: *rec.Title, Content: *rec.Content}
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func decodeMapping(data []byte) ([]*carbon.Document, error) {
	var pages map[string]string
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, carbon.Errorf(carbon.EINVALID, "invalid JSON document file: %v", err)
	}
	if len(pages) == 0 {
		return nil, carbon.Errorf(carbon.EINVALID, "document file contains no documents")
	}

	// Sort by URL so repeated loads see the same document order.
	docs := make([]*carbon.Document, 0, len(pages))
	for _, url := range slices.Sorted(maps.Keys(pages)) {
		doc := &carbon.Document{URL: url, Title: TitleFromURL(url), Content: pages[url]}
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// TitleFromURL derives a document title from the last path segment of
// its URL. Trailing slashes are ignored; a URL with no path yields the
// URL itself.
func TitleFromURL(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx != -1 && idx+1 < len(trimmed) {
		if seg := trimmed[idx+1:]; !strings.Contains(seg, ":") {
			return seg
		}
	}
	return trimmed
}
