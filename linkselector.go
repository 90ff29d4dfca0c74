package carbon

// LinkPriority represents crawl priority (higher = more important).
type LinkPriority int

// Link priority levels for crawl ordering.
const (
	PriorityIgnore     LinkPriority = 0
	PriorityFooter     LinkPriority = 20
	PriorityContent    LinkPriority = 50
	PriorityNavigation LinkPriority = 100
	PriorityTOC        LinkPriority = 110
)

// DiscoveredLink represents a URL with priority metadata.
type DiscoveredLink struct {
	URL      string
	Priority LinkPriority
	Text     string
	Source   string // "nav", "toc", "content", "footer"
}

// LinkSelector extracts prioritized links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns discovered links with
	// priority. The baseURL is used to resolve relative URLs.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}
