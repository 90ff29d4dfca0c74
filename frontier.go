package carbon

// URLFrontier manages a crawl worklist with deduplication. It replaces
// recursive link-following with an explicit queue so crawl depth never
// grows the call stack and crawls can be cut off cleanly.
type URLFrontier interface {
	// Push adds a link to the frontier.
	// Returns false if the URL has already been seen.
	Push(link DiscoveredLink) bool

	// Pop returns the next URL by priority.
	// Returns false if the frontier is empty.
	Pop() (DiscoveredLink, bool)

	// Len returns the number of URLs in the queue.
	Len() int
}
