package gemini

import (
	"context"
	"iter"

	"google.golang.org/genai"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Ensure Generator implements carbon.Generator at compile time.
var _ carbon.Generator = (*Generator)(nil)

// Generator streams answers from the Gemini chat model.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Stream sends the prompt and yields response tokens as they arrive.
// Iteration stops at the first error.
func (g *Generator) Stream(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		temp := float32(0.1)
		config := &genai.GenerateContentConfig{Temperature: &temp}

		contents := []*genai.Content{genai.NewContentFromText(prompt, "user")}
		for resp, err := range g.client.Models.GenerateContentStream(ctx, chatModel, contents, config) {
			if err != nil {
				yield("", carbon.Errorf(carbon.EUNAVAILABLE, "generation stream failed: %v", err))
				return
			}
			token := resp.Text()
			if token == "" {
				continue
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}
