package mock

import (
	"context"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

var _ carbon.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of carbon.Embedder.
type Embedder struct {
	EmbedFn      func(ctx context.Context, text string) ([]float32, error)
	EmbedBatchFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedBatchFn(ctx, texts)
}
