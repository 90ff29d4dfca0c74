package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

const exitKeyword = "exit"

// Session runs the interactive question loop on a console. Each turn
// retrieves relevant chunks and streams an answer; a failed turn is
// reported and the loop continues.
type Session struct {
	Retriever *Retriever
	Answerer  *Answerer
	TopK      int

	In     io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run reads questions until the exit keyword or end of input. The exit
// keyword match is case-insensitive; empty input is skipped without
// touching the index.
func (s *Session) Run(ctx context.Context) error {
	topK := s.TopK
	if topK < 1 {
		topK = DefaultTopK
	}

	fmt.Fprintln(s.Stdout, "\nCarbon Design System ChatBot (type 'exit' to quit)")
	fmt.Fprintln(s.Stdout, "----------------------------------------")

	scanner := bufio.NewScanner(s.In)
	for {
		fmt.Fprint(s.Stdout, "\nYour question: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())

		if strings.EqualFold(question, exitKeyword) {
			fmt.Fprintln(s.Stdout, "Goodbye!")
			return nil
		}
		if question == "" {
			continue
		}

		if err := s.answerTurn(ctx, question, topK); err != nil {
			fmt.Fprintf(s.Stderr, "Error: %s\n", carbon.ErrorMessage(err))
		}
	}
	return scanner.Err()
}

func (s *Session) answerTurn(ctx context.Context, question string, topK int) error {
	results, err := s.Retriever.Retrieve(ctx, question, topK)
	if err != nil {
		return err
	}

	fmt.Fprint(s.Stdout, "\nAnswer: ")
	_, err = s.Answerer.Answer(ctx, question, results, func(token string) {
		fmt.Fprint(s.Stdout, token)
	})
	if err != nil {
		fmt.Fprintln(s.Stdout)
		return err
	}
	fmt.Fprintln(s.Stdout)
	return nil
}
