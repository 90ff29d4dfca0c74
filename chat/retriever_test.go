package chat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/chat"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/mock"
)

func TestRetriever_Retrieve(t *testing.T) {
	t.Parallel()

	t.Run("embeds the question and searches the index", func(t *testing.T) {
		t.Parallel()

		var embedded string
		want := []carbon.SearchResult{
			{Chunk: &carbon.Chunk{Text: "button guidance"}, Score: 0.9},
			{Chunk: &carbon.Chunk{Text: "button variants"}, Score: 0.8},
		}

		retriever := &chat.Retriever{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					embedded = text
					return []float32{1, 0, 0}, nil
				},
			},
			Index: &mock.ChunkIndex{
				SearchFn: func(ctx context.Context, embedding []float32, k int) ([]carbon.SearchResult, error) {
					assert.Equal(t, []float32{1, 0, 0}, embedding)
					assert.Equal(t, 2, k)
					return want, nil
				},
			},
		}

		results, err := retriever.Retrieve(context.Background(), "How do buttons work?", 2)
		require.NoError(t, err)
		assert.Equal(t, "How do buttons work?", embedded)
		assert.Equal(t, want, results)
	})

	t.Run("rejects blank questions without calling the embedder", func(t *testing.T) {
		t.Parallel()

		retriever := &chat.Retriever{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					t.Fatal("Embed should not be called")
					return nil, nil
				},
			},
		}

		_, err := retriever.Retrieve(context.Background(), "   ", 2)
		require.Error(t, err)
		assert.Equal(t, carbon.EINVALID, carbon.ErrorCode(err))
	})

	t.Run("rejects non-positive k", func(t *testing.T) {
		t.Parallel()

		retriever := &chat.Retriever{}

		_, err := retriever.Retrieve(context.Background(), "question", 0)
		require.Error(t, err)
		assert.Equal(t, carbon.EINVALID, carbon.ErrorCode(err))
	})

	t.Run("propagates embedder failures", func(t *testing.T) {
		t.Parallel()

		retriever := &chat.Retriever{
			Embedder: &mock.Embedder{
				EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
					return nil, carbon.Errorf(carbon.EUNAVAILABLE, "embedding request failed")
				},
			},
		}

		_, err := retriever.Retrieve(context.Background(), "question", 2)
		require.Error(t, err)
		assert.Equal(t, carbon.EUNAVAILABLE, carbon.ErrorCode(err))
	})
}
