package mock

import carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"

var _ carbon.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of carbon.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html string, baseURL string) ([]carbon.DiscoveredLink, error)
}

func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]carbon.DiscoveredLink, error) {
	return s.ExtractLinksFn(html, baseURL)
}
