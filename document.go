package carbon

import "context"

// Document represents a crawled documentation page. Documents are
// created by the crawler (or loaded from a document file), consumed
// once by the chunker, and never mutated.
type Document struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate returns an error if the document contains invalid fields.
// Content may be empty; empty documents simply produce zero chunks.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// DocumentLoader reads crawled documents from a document file.
type DocumentLoader interface {
	// Load reads and validates documents from the file at path.
	// Returns ENOTFOUND if the file does not exist, and EINVALID if the
	// file is empty, malformed, or contains records missing required keys.
	Load(ctx context.Context, path string) ([]*Document, error)
}

// DocumentWriter persists a crawled document set.
type DocumentWriter interface {
	WriteDocuments(ctx context.Context, docs []*Document) error
}

// Stats summarizes a document set. Reporting only; the retrieval path
// never consults it.
type Stats struct {
	TotalDocuments       int     `json:"totalDocuments"`
	TotalContentLength   int     `json:"totalContentLength"`
	AverageContentLength float64 `json:"averageContentLength"`
	UniqueURLs           int     `json:"uniqueUrls"`
	FileSizeBytes        int64   `json:"fileSizeBytes"`
}

// ComputeStats derives Stats from a loaded document set and the size of
// the file it was loaded from.
func ComputeStats(docs []*Document, fileSize int64) Stats {
	stats := Stats{
		TotalDocuments: len(docs),
		FileSizeBytes:  fileSize,
	}

	urls := make(map[string]struct{}, len(docs))
	for _, doc := range docs {
		stats.TotalContentLength += len(doc.Content)
		urls[doc.URL] = struct{}{}
	}
	stats.UniqueURLs = len(urls)

	if len(docs) > 0 {
		stats.AverageContentLength = float64(stats.TotalContentLength) / float64(len(docs))
	}

	return stats
}
