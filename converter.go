package carbon

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into
	// Markdown, which is what gets chunked and indexed.
	Convert(html string) (string, error)
}
