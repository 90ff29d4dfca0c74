package carbon

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	Extract(html string) (*ExtractResult, error)
}
