package main

import (
	"fmt"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/chat"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	index, err := deps.NewStore(c.Index).Open(deps.Ctx)
	if err != nil {
		if carbon.ErrorCode(err) == carbon.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Error: Vector database not found!")
			fmt.Fprintln(deps.Stderr, "Run 'carbon build' first to create the vector index.")
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", carbon.ErrorMessage(err))
		return err
	}
	defer index.Close()

	count, err := index.Count(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carbon.ErrorMessage(err))
		return err
	}
	deps.Logger.Info("vector index opened", "dir", c.Index, "chunks", count)

	session := &chat.Session{
		Retriever: &chat.Retriever{Embedder: deps.Embedder, Index: index},
		Answerer:  &chat.Answerer{Generator: deps.Generator},
		TopK:      c.TopK,
		In:        deps.Stdin,
		Stdout:    deps.Stdout,
		Stderr:    deps.Stderr,
	}
	return session.Run(deps.Ctx)
}
