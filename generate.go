package carbon

import (
	"context"
	"iter"
)

// Generator streams completions from a language model.
type Generator interface {
	// Stream yields completion tokens in generation order, never
	// reordered or buffered beyond the current token. The sequence stops
	// after yielding a non-nil error when the provider call or the open
	// stream fails.
	Stream(ctx context.Context, prompt string) iter.Seq2[string, error]
}
