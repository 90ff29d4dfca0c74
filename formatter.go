package carbon

import "strings"

// FormatContext formats retrieved chunks for inclusion in an LLM prompt.
// Chunks appear in retrieval order, each introduced by its source title.
// Falls back to the source URL when a title is missing.
func FormatContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, result := range results {
		header := result.Chunk.Metadata.Title
		if header == "" {
			header = result.Chunk.Metadata.URL
		}
		parts = append(parts, "From "+header+":\n"+result.Chunk.Text+"\n")
	}

	return strings.Join(parts, "\n")
}
