package main

import (
	"fmt"
	"os"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Loader.Load(deps.Ctx, c.Docs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carbon.ErrorMessage(err))
		return err
	}

	var fileSize int64
	if info, err := os.Stat(c.Docs); err == nil {
		fileSize = info.Size()
	}

	stats := carbon.ComputeStats(docs, fileSize)

	fmt.Fprintln(deps.Stdout, "Documentation statistics:")
	fmt.Fprintf(deps.Stdout, "total_documents: %d\n", stats.TotalDocuments)
	fmt.Fprintf(deps.Stdout, "total_content_length: %d\n", stats.TotalContentLength)
	fmt.Fprintf(deps.Stdout, "average_content_length: %.1f\n", stats.AverageContentLength)
	fmt.Fprintf(deps.Stdout, "unique_urls: %d\n", stats.UniqueURLs)
	fmt.Fprintf(deps.Stdout, "file_size_bytes: %d\n", stats.FileSizeBytes)
	return nil
}
