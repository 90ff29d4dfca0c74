package openai

import (
	"context"

	goopenai "github.com/sashabaranov/go-openai"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Compile-time interface verification.
var _ carbon.Embedder = (*Embedder)(nil)

// Embedder computes embeddings via the OpenAI embeddings endpoint.
type Embedder struct {
	client *goopenai.Client
	model  goopenai.EmbeddingModel
}

// NewEmbedder returns an Embedder using the default embedding model.
func NewEmbedder(client *goopenai.Client) *Embedder {
	return &Embedder{client: client, model: DefaultEmbeddingModel}
}

// Embed computes the embedding for a single text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch computes embeddings for a batch of texts, returning one
// vector per input in input order.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, carbon.Errorf(carbon.EINVALID, "no texts to embed")
	}

	resp, err := e.client.CreateEmbeddings(ctx, goopenai.EmbeddingRequestStrings{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, carbon.Errorf(carbon.EUNAVAILABLE, "embedding request failed: %v", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, carbon.Errorf(carbon.EUNAVAILABLE,
			"embedding response has %d vectors for %d inputs", len(resp.Data), len(texts))
	}

	// The API reports each vector's position explicitly.
	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, carbon.Errorf(carbon.EUNAVAILABLE, "embedding response index %d out of range", d.Index)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}
