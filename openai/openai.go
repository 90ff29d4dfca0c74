// Package openai implements embedding and answer generation using the
// OpenAI API. It is the default provider.
package openai

import (
	goopenai "github.com/sashabaranov/go-openai"
)

// Default models. text-embedding-3-small produces 1536-dimensional
// vectors; the chat model is used with a low temperature so answers
// stay close to the retrieved documentation.
const (
	DefaultEmbeddingModel = goopenai.SmallEmbedding3
	DefaultChatModel      = goopenai.GPT4o
	defaultTemperature    = 0.1
)

// NewClient returns an OpenAI API client for the given key.
func NewClient(apiKey string) *goopenai.Client {
	return goopenai.NewClient(apiKey)
}
