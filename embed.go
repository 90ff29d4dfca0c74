package carbon

import "context"

// Embedder produces embedding vectors for text via a remote provider.
// Vector dimensionality is fixed by the provider's model; an index is
// internally consistent only if every entry and every query vector came
// from the same provider and model.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns one vector per input text, in input order.
	// Batching bounds the request count during index builds; it is an
	// optimization, not a correctness requirement.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
