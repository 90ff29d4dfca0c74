package openai

import (
	"context"
	"errors"
	"io"
	"iter"

	goopenai "github.com/sashabaranov/go-openai"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Compile-time interface verification.
var _ carbon.Generator = (*Generator)(nil)

// Generator streams chat completions from the OpenAI API.
type Generator struct {
	client *goopenai.Client
	model  string
}

// NewGenerator returns a Generator using the default chat model.
func NewGenerator(client *goopenai.Client) *Generator {
	return &Generator{client: client, model: DefaultChatModel}
}

// Stream sends the prompt as a single user message and yields response
// tokens as they arrive. Iteration stops at the first error.
func (g *Generator) Stream(ctx context.Context, prompt string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stream, err := g.client.CreateChatCompletionStream(ctx, goopenai.ChatCompletionRequest{
			Model:       g.model,
			Temperature: defaultTemperature,
			Stream:      true,
			Messages: []goopenai.ChatCompletionMessage{
				{Role: goopenai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			yield("", carbon.Errorf(carbon.EUNAVAILABLE, "chat completion request failed: %v", err))
			return
		}
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", carbon.Errorf(carbon.EUNAVAILABLE, "chat completion stream failed: %v", err))
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			token := resp.Choices[0].Delta.Content
			if token == "" {
				continue
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}
