package chat_test

import (
	"bytes"
	"context"
	"iter"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/chat"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/mock"
)

func newTestRetriever(t *testing.T, calls *int) *chat.Retriever {
	t.Helper()
	return &chat.Retriever{
		Embedder: &mock.Embedder{
			EmbedFn: func(ctx context.Context, text string) ([]float32, error) {
				return []float32{1, 0, 0}, nil
			},
		},
		Index: &mock.ChunkIndex{
			SearchFn: func(ctx context.Context, embedding []float32, k int) ([]carbon.SearchResult, error) {
				if calls != nil {
					*calls++
				}
				return []carbon.SearchResult{
					{Chunk: &carbon.Chunk{Text: "docs", Metadata: carbon.ChunkMetadata{Title: "Page"}}},
				}, nil
			},
		},
	}
}

func TestSession_Run(t *testing.T) {
	t.Parallel()

	t.Run("answers a question then exits", func(t *testing.T) {
		t.Parallel()

		var out, errOut bytes.Buffer
		session := &chat.Session{
			Retriever: newTestRetriever(t, nil),
			Answerer:  &chat.Answerer{Generator: &mock.Generator{StreamFn: mock.StreamTokens("Hello ", "there.")}},
			In:        strings.NewReader("what is carbon?\nexit\n"),
			Stdout:    &out,
			Stderr:    &errOut,
		}

		require.NoError(t, session.Run(context.Background()))

		output := out.String()
		assert.Contains(t, output, "Carbon Design System ChatBot (type 'exit' to quit)")
		assert.Contains(t, output, "Your question: ")
		assert.Contains(t, output, "\nAnswer: Hello there.\n")
		assert.Contains(t, output, "Goodbye!")
		assert.Empty(t, errOut.String())
	})

	t.Run("exit keyword matches case-insensitively without retrieval", func(t *testing.T) {
		t.Parallel()

		var calls int
		var out bytes.Buffer
		session := &chat.Session{
			Retriever: newTestRetriever(t, &calls),
			Answerer:  &chat.Answerer{Generator: &mock.Generator{StreamFn: mock.StreamTokens("unused")}},
			In:        strings.NewReader("EXIT\n"),
			Stdout:    &out,
			Stderr:    &out,
		}

		require.NoError(t, session.Run(context.Background()))
		assert.Zero(t, calls)
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("empty input loops without retrieval", func(t *testing.T) {
		t.Parallel()

		var calls int
		var out bytes.Buffer
		session := &chat.Session{
			Retriever: newTestRetriever(t, &calls),
			Answerer:  &chat.Answerer{Generator: &mock.Generator{StreamFn: mock.StreamTokens("answer")}},
			In:        strings.NewReader("\n   \nreal question\nexit\n"),
			Stdout:    &out,
			Stderr:    &out,
		}

		require.NoError(t, session.Run(context.Background()))
		assert.Equal(t, 1, calls)
	})

	t.Run("a failed turn is reported and the session continues", func(t *testing.T) {
		t.Parallel()

		turn := 0
		generator := &mock.Generator{
			StreamFn: func(ctx context.Context, prompt string) iter.Seq2[string, error] {
				turn++
				if turn == 1 {
					return func(yield func(string, error) bool) {
						yield("", carbon.Errorf(carbon.EUNAVAILABLE, "model overloaded"))
					}
				}
				return mock.StreamTokens("recovered")(ctx, prompt)
			},
		}

		var out, errOut bytes.Buffer
		session := &chat.Session{
			Retriever: newTestRetriever(t, nil),
			Answerer:  &chat.Answerer{Generator: generator},
			In:        strings.NewReader("first\nsecond\nexit\n"),
			Stdout:    &out,
			Stderr:    &errOut,
		}

		require.NoError(t, session.Run(context.Background()))

		assert.Contains(t, errOut.String(), "model overloaded")
		assert.Contains(t, out.String(), "recovered")
		assert.Contains(t, out.String(), "Goodbye!")
	})

	t.Run("end of input terminates cleanly", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		session := &chat.Session{
			Retriever: newTestRetriever(t, nil),
			Answerer:  &chat.Answerer{Generator: &mock.Generator{StreamFn: mock.StreamTokens("answer")}},
			In:        strings.NewReader(""),
			Stdout:    &out,
			Stderr:    &out,
		}

		require.NoError(t, session.Run(context.Background()))
	})
}
