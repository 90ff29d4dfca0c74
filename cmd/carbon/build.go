package main

import (
	"fmt"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/ingest"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Loading Carbon documentation from %s...\n", c.Docs)

	builder := &ingest.Builder{
		Loader:       deps.Loader,
		Embedder:     deps.Embedder,
		Store:        deps.NewStore(c.Index),
		ChunkSize:    c.ChunkSize,
		ChunkOverlap: c.ChunkOverlap,
		BatchSize:    c.BatchSize,
	}

	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressLoaded:
			fmt.Fprintf(deps.Stdout, "Processing %d documents...\n", event.Total)
		case ingest.ProgressChunked:
			fmt.Fprintf(deps.Stdout, "Embedding %d chunks...\n", event.Total)
		case ingest.ProgressEmbedded:
			fmt.Fprintf(deps.Stdout, "  embedded %d/%d\n", event.Completed, event.Total)
		case ingest.ProgressFinished:
			// Summary printed after the build completes
		}
	}

	result, err := builder.Build(deps.Ctx, c.Docs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carbon.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Vector database created at %s (%d chunks, %d dimensions)\n",
		c.Index, result.Chunks, result.Dimensions)
	return nil
}
