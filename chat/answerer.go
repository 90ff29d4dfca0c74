package chat

import (
	"context"
	"strings"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

const systemFraming = `You are an expert on the IBM Carbon Design System.
Use the following documentation to answer the question accurately.
If the specific information isn't in the documentation, say so.
Give a URL for more information on the related topic, at hand.`

// Answerer produces grounded answers by prompting a language model with
// retrieved documentation.
type Answerer struct {
	Generator carbon.Generator
}

// BuildPrompt assembles the full prompt: the fixed framing, the
// retrieved documentation in retrieval order, and the verbatim question.
func BuildPrompt(results []carbon.SearchResult, question string) string {
	var sb strings.Builder
	sb.WriteString(systemFraming)
	sb.WriteString("\n\nDocumentation:\n")
	sb.WriteString(carbon.FormatContext(results))
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString("\n")
	return sb.String()
}

// Answer streams a grounded answer, passing each token to emit as it
// arrives, and returns the assembled text. If the stream fails, any
// partial text is discarded and the error is returned.
func (a *Answerer) Answer(ctx context.Context, question string, results []carbon.SearchResult, emit func(token string)) (string, error) {
	prompt := BuildPrompt(results, question)

	var sb strings.Builder
	for token, err := range a.Generator.Stream(ctx, prompt) {
		if err != nil {
			return "", err
		}
		if emit != nil {
			emit(token)
		}
		sb.WriteString(token)
	}

	return sb.String(), nil
}
