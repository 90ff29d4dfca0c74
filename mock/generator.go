package mock

import (
	"context"
	"iter"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

var _ carbon.Generator = (*Generator)(nil)

// Generator is a mock implementation of carbon.Generator.
type Generator struct {
	StreamFn func(ctx context.Context, prompt string) iter.Seq2[string, error]
}

func (g *Generator) Stream(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return g.StreamFn(ctx, prompt)
}

// StreamTokens returns a StreamFn that yields the given tokens in order.
func StreamTokens(tokens ...string) func(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(ctx context.Context, prompt string) iter.Seq2[string, error] {
		return func(yield func(string, error) bool) {
			for _, token := range tokens {
				if !yield(token, nil) {
					return
				}
			}
		}
	}
}
