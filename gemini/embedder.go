package gemini

import (
	"context"

	"google.golang.org/genai"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Ensure Embedder implements carbon.Embedder at compile time.
var _ carbon.Embedder = (*Embedder)(nil)

// Embedder computes embeddings using the Gemini embedding model.
type Embedder struct {
	client *genai.Client
}

// NewEmbedder creates a new Embedder.
func NewEmbedder(client *genai.Client) *Embedder {
	return &Embedder{client: client}
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

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, "user")
	}

	resp, err := e.client.Models.EmbedContent(ctx, embeddingModel, contents, nil)
	if err != nil {
		return nil, carbon.Errorf(carbon.EUNAVAILABLE, "embedding request failed: %v", err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, carbon.Errorf(carbon.EUNAVAILABLE, "embedding response incomplete")
	}

	vectors := make([][]float32, len(texts))
	for i, emb := range resp.Embeddings {
		vectors[i] = emb.Values
	}
	return vectors, nil
}
