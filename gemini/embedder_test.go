package gemini_test

import (
	"context"
	"testing"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_EmbedBatch_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	embedder := gemini.NewEmbedder(nil) // nil client ok, validation runs first

	_, err := embedder.EmbedBatch(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, carbon.EINVALID, carbon.ErrorCode(err))
	assert.Contains(t, carbon.ErrorMessage(err), "no texts to embed")
}
