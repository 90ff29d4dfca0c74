package mock

import carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"

var _ carbon.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of carbon.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*carbon.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*carbon.ExtractResult, error) {
	return e.ExtractFn(html)
}
