// Package goquery implements link extraction from HTML pages using
// CSS selectors.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Compile-time interface verification.
var _ carbon.LinkSelector = (*Selector)(nil)

// SelectorConfig defines a CSS selector with its priority and source label.
type SelectorConfig struct {
	Selector string
	Priority carbon.LinkPriority
	Source   string
}

// Selector extracts prioritized links using universal CSS selectors
// that work across documentation sites. Common HTML patterns and class
// names identify navigation, TOC, content, and footer areas.
type Selector struct {
	configs []SelectorConfig
}

// NewSelector creates a Selector with the default selector set.
//
// Priority order (highest to lowest):
//   - TOC: .toc, .sidebar, .table-of-contents, aside
//   - Navigation: nav, [role="navigation"], .nav, .menu, .navbar
//   - Content: main, article, .content, .doc-content
//   - Footer: footer, .footer
func NewSelector() *Selector {
	return &Selector{
		configs: []SelectorConfig{
			{
				Selector: ".toc a[href], .table-of-contents a[href], .sidebar a[href], aside a[href]",
				Priority: carbon.PriorityTOC,
				Source:   "toc",
			},
			{
				Selector: `nav a[href], [role="navigation"] a[href], .nav a[href], .menu a[href], .navbar a[href]`,
				Priority: carbon.PriorityNavigation,
				Source:   "nav",
			},
			{
				Selector: "main a[href], article a[href], .content a[href], .doc-content a[href]",
				Priority: carbon.PriorityContent,
				Source:   "content",
			},
			{
				Selector: "footer a[href], .footer a[href]",
				Priority: carbon.PriorityFooter,
				Source:   "footer",
			},
		},
	}
}

// ExtractLinks parses HTML and returns discovered links with priority.
// Links are deduplicated by URL, keeping the highest priority version;
// the result maintains document order by first occurrence. External
// links (different host than baseURL) are filtered out.
func (s *Selector) ExtractLinks(html string, baseURL string) ([]carbon.DiscoveredLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, carbon.Errorf(carbon.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, carbon.Errorf(carbon.EINVALID, "failed to parse HTML: %v", err)
	}

	// Track seen URLs with their index in the result slice for O(1) updates
	seen := make(map[string]int)
	var links []carbon.DiscoveredLink

	for _, config := range s.configs {
		doc.Find(config.Selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" {
				return
			}

			// Skip non-HTTP links (javascript:, mailto:, etc.)
			if isNonHTTPLink(href) {
				return
			}

			resolved := resolveURL(base, href)
			if resolved == "" {
				return
			}

			// Filter external links (exact host match, subdomains are filtered)
			if !isSameHost(base, resolved) {
				return
			}

			link := carbon.DiscoveredLink{
				URL:      resolved,
				Priority: config.Priority,
				Text:     strings.TrimSpace(sel.Text()),
				Source:   config.Source,
			}

			if idx, ok := seen[resolved]; ok {
				// Update if this has higher priority
				if config.Priority > links[idx].Priority {
					links[idx] = link
				}
			} else {
				seen[resolved] = len(links)
				links = append(links, link)
			}
		})
	}

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isSameHost checks if the resolved URL has the same host as the base URL.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
