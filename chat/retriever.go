// Package chat provides the interactive question answering flow:
// retrieval of relevant chunks, grounded answer generation, and the
// console session loop.
package chat

import (
	"context"
	"strings"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// DefaultTopK is the number of chunks retrieved per question.
const DefaultTopK = 2

// Retriever finds the chunks most similar to a question by embedding
// the question and searching the index.
type Retriever struct {
	Embedder carbon.Embedder
	Index    carbon.ChunkIndex
}

// Retrieve returns up to k chunks relevant to the question, most
// similar first.
func (r *Retriever) Retrieve(ctx context.Context, question string, k int) ([]carbon.SearchResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, carbon.Errorf(carbon.EINVALID, "question required")
	}
	if k < 1 {
		return nil, carbon.Errorf(carbon.EINVALID, "k must be at least 1, got %d", k)
	}

	embedding, err := r.Embedder.Embed(ctx, question)
	if err != nil {
		return nil, err
	}

	return r.Index.Search(ctx, embedding, k)
}
