package mock

import carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"

var _ carbon.Converter = (*Converter)(nil)

// Converter is a mock implementation of carbon.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
