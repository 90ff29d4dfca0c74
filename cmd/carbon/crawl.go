package main

import (
	"fmt"
	"regexp"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	// Compile filters to URLFilter (validates regex patterns early)
	var urlFilter *carbon.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &carbon.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case crawl.ProgressFinished:
			// Summary printed after crawl completes
		}
	}

	docs, result, err := deps.Crawler.Crawl(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	if err := deps.NewWriter(c.Output).WriteDocuments(deps.Ctx, docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", carbon.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s) to %s\n",
		result.Saved, crawl.FormatBytes(result.Bytes), c.Output)
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Skipped %d pages\n", result.Failed)
	}
	return nil
}
