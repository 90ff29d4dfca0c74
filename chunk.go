package carbon

import (
	"strings"
	"unicode/utf8"
)

// SourceLabel is attached to every chunk's metadata as provenance.
const SourceLabel = "IBM Carbon Design System"

// Default chunking parameters.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Chunk is a bounded substring of a document, the unit of embedding and
// retrieval. Chunks are immutable once created and destroyed when the
// index is rebuilt.
type Chunk struct {
	Text      string        `json:"text"`
	Embedding []float32     `json:"embedding,omitempty"`
	Metadata  ChunkMetadata `json:"metadata"`
}

// ChunkMetadata carries chunk provenance: the source page plus the
// chunk's character offset within it.
type ChunkMetadata struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	Source     string `json:"source"`
	StartIndex int    `json:"startIndex"`
}

// SearchResult represents a retrieval match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float32 `json:"score"`
}

// Span is a substring of a source text with its character offset.
type Span struct {
	Text  string
	Start int
}

// splitBoundaries are tried in order when choosing a cut point:
// paragraph break, line break, sentence end, word break. A hard cut at
// the window end is the final fallback.
var splitBoundaries = []string{"\n\n", "\n", ". ", " "}

// SplitDocument splits a document's content into overlapping chunks
// carrying the document's provenance. Documents no longer than
// chunkSize yield exactly one chunk; empty documents yield none.
func SplitDocument(doc *Document, chunkSize, chunkOverlap int) ([]*Chunk, error) {
	spans, err := SplitText(doc.Content, chunkSize, chunkOverlap)
	if err != nil {
		return nil, err
	}

	chunks := make([]*Chunk, 0, len(spans))
	for _, span := range spans {
		chunks = append(chunks, &Chunk{
			Text: span.Text,
			Metadata: ChunkMetadata{
				URL:        doc.URL,
				Title:      doc.Title,
				Source:     SourceLabel,
				StartIndex: span.Start,
			},
		})
	}
	return chunks, nil
}

// SplitText slices text into a greedy sliding window of spans at most
// chunkSize characters long. Sizes and offsets count characters, not
// bytes, so multi-byte text is never cut mid-rune. Each window prefers
// to end at the largest boundary that fits; consecutive spans overlap
// by exactly chunkOverlap characters except where a boundary cut
// shifted the window end. Span offsets increase monotonically. Returns
// EINVALID unless 0 <= chunkOverlap < chunkSize.
func SplitText(text string, chunkSize, chunkOverlap int) ([]Span, error) {
	if chunkSize <= 0 {
		return nil, Errorf(EINVALID, "chunk size must be positive, got %d", chunkSize)
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, Errorf(EINVALID, "chunk overlap %d must be non-negative and smaller than chunk size %d", chunkOverlap, chunkSize)
	}
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)
	var spans []Span
	start := 0
	for {
		if len(runes)-start <= chunkSize {
			spans = append(spans, Span{Text: string(runes[start:]), Start: start})
			return spans, nil
		}
		end := start + cutAt(string(runes[start:start+chunkSize]), chunkOverlap)
		spans = append(spans, Span{Text: string(runes[start:end]), Start: start})
		start = end - chunkOverlap
	}
}

// cutAt picks the cut position in characters within a full window,
// preferring the last occurrence of the largest boundary that still
// leaves the window advancing past the overlap region. Falls back to a
// hard cut at the window end when no boundary qualifies. The boundary
// separators are ASCII, so their byte and character lengths agree.
func cutAt(window string, overlap int) int {
	for _, sep := range splitBoundaries {
		idx := strings.LastIndex(window, sep)
		if idx < 0 {
			continue
		}
		if cut := utf8.RuneCountInString(window[:idx]); cut > overlap {
			return cut + len(sep)
		}
	}
	return utf8.RuneCountInString(window)
}
