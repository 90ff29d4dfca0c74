// Package gemini implements embedding and answer generation using the
// Google Gemini API as an alternative to the default OpenAI provider.
package gemini

import (
	"context"

	"google.golang.org/genai"
)

const (
	embeddingModel = "gemini-embedding-001"
	chatModel      = "gemini-2.5-flash"
)

// NewClient returns a Gemini API client for the given key.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}
