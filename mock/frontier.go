package mock

import carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"

var _ carbon.URLFrontier = (*URLFrontier)(nil)

// URLFrontier is a mock implementation of carbon.URLFrontier.
type URLFrontier struct {
	PushFn func(link carbon.DiscoveredLink) bool
	PopFn  func() (carbon.DiscoveredLink, bool)
	LenFn  func() int
}

func (f *URLFrontier) Push(link carbon.DiscoveredLink) bool {
	return f.PushFn(link)
}

func (f *URLFrontier) Pop() (carbon.DiscoveredLink, bool) {
	return f.PopFn()
}

func (f *URLFrontier) Len() int {
	return f.LenFn()
}
